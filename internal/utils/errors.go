package utils

import "errors"

var ErrDuplicateEmail = errors.New("email already registered")
var ErrNotFound = errors.New("not found")
