// Package platform carries method calls between Go and the native host.
// The controls use it for haptic feedback; the host installs a NativeBridge
// at startup and may call back into Go through HandleMethodCall.
package platform

import (
	"encoding/json"
	"errors"
)

// MessageCodec encodes and decodes channel payloads.
type MessageCodec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

// JsonCodec implements MessageCodec with encoding/json.
type JsonCodec struct{}

// Encode serializes value to JSON.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON into maps, slices and scalars. Empty input
// decodes to nil.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DefaultCodec is the codec used by every channel.
var DefaultCodec MessageCodec = JsonCodec{}

var (
	// ErrChannelNotFound is returned for calls to an unregistered channel.
	ErrChannelNotFound = errors.New("platform channel not found")
	// ErrMethodNotFound is returned when no handler serves the method.
	ErrMethodNotFound = errors.New("method not implemented")
	// ErrInvalidArguments is returned when call arguments have the wrong shape.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrPlatformUnavailable is returned when no native bridge is installed.
	ErrPlatformUnavailable = errors.New("platform feature unavailable")
)

// ChannelError is an error reported by native code.
type ChannelError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *ChannelError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// NewChannelError creates a ChannelError.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}
