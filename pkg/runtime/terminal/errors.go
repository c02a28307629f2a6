package terminal

import "errors"

var errNotInitialized = errors.New("application is not initialized")
