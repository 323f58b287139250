package client

import "errors"

var ErrNilDependency = errors.New("client app dependency is nil")
