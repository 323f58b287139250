package server

import "errors"

var (
	errNoHandler       = errors.New("http handler is not provided")
	errNoListenAddress = errors.New("http listen address is empty")
)
