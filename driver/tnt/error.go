package tnt

import (
	"errors"
	"fmt"
)

// Error definitions for err113 compliance.
var (
	// ErrUnexpectedResponse is returned when the response from tarantool
	// has an unexpected format.
	ErrUnexpectedResponse = errors.New("unexpected response from tarantool")
)

// DecodingError represents an error that occurs during decoding of a
// tarantool reply.
type DecodingError struct {
	ObjectType string
	Text       string
	Err        error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	suffix := e.ObjectType
	if e.Text != "" {
		suffix = fmt.Sprintf("%s, %s", suffix, e.Text)
	}

	return fmt.Sprintf("failed to decode %s: %s", suffix, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

// NewRangeReplyDecodingError returns a new range reply decoding error.
func NewRangeReplyDecodingError(text string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{
		ObjectType: "rangeReply",
		Text:       text,
		Err:        err,
	}
}

// NewDeleteReplyDecodingError returns a new delete reply decoding error.
func NewDeleteReplyDecodingError(text string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{
		ObjectType: "deleteReply",
		Text:       text,
		Err:        err,
	}
}
