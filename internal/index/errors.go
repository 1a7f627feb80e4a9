package index

import "errors"

var (
	// ErrPageWriteFailed indicates index.html could not be written.
	ErrPageWriteFailed = errors.New("index page write failed")
	// ErrTOCWriteFailed indicates _book.yaml could not be written or is not
	// a regular file after the write.
	ErrTOCWriteFailed = errors.New("table of contents write failed")
)
