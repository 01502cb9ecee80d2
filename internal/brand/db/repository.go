package db

import "errors"

var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrBrandHasProducts = errors.New("brand is referenced by products")
)
