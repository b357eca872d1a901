package hintstore

import "errors"

var (
	ErrInvalidRedisURL = errors.New("invalid redis connection url")
	ErrRedisNotReady   = errors.New("redis is not ready")
)
