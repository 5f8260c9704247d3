package client

import "errors"

var (
	ErrNoImagePath  = errors.New("image path is required")
	ErrSameInOut    = errors.New("output path must differ from the input image")
	ErrOutputExists = errors.New("output file already exists")
)
