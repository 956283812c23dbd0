package store

import "errors"

var ErrProductNotFound = errors.New("product not found")
