package domain

import "errors"

var (
	ErrNoSession       = errors.New("no stored session")
	ErrProductNotFound = errors.New("product not found")
)
