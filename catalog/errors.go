package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrRetrieval marks every network or decode failure against the catalog.
	ErrRetrieval = errors.New("catalog retrieval failed")

	// ErrInvalidQuery is returned by ValidateQuery for search text that is too short.
	ErrInvalidQuery = errors.New("search query too short")

	// ErrUnknownCategory is returned by ParseCategory.
	ErrUnknownCategory = errors.New("unknown category")
)

// RetrievalError wraps a failed request to one catalog endpoint.
type RetrievalError struct {
	Endpoint string
	Err      error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRetrieval, e.Endpoint, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

func (e *RetrievalError) Is(target error) bool {
	return target == ErrRetrieval
}
