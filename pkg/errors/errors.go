package errors

import "fmt"

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when validation fails
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrAPI is returned when the shop API answers with a non-2xx status.
// Message carries the server-reported error when the body could be decoded.
type ErrAPI struct {
	StatusCode int
	Message    string
}

func (e *ErrAPI) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("shop API error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("shop API error: status %d", e.StatusCode)
}
