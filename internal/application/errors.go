package application

import "errors"

var ErrUpstream = errors.New("upstream api error")
var ErrTokenNotFound = errors.New("token not found")
var ErrNoCredentials = errors.New("api credentials not configured")
var ErrEmptySymbol = errors.New("symbol is required")
