package engine

import "errors"

var (
	// ErrDelivery indicates the sink rejected an encoded command.
	ErrDelivery = errors.New("command delivery failed")

	// ErrInvalidRequest indicates a malformed request (nil or missing fields).
	ErrInvalidRequest = errors.New("invalid request")
)
