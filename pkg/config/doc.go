// Package config loads env-tagged configuration structs from environment
// variables, with an optional .env file for development. Parsing is done
// by caarlos0/env; godotenv supplies the .env fallback.
package config
