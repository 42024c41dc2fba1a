package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingContext = errors.New("missing club context")
	ErrUnknownOutcome = errors.New("unknown checkout outcome")
)

// ProcessorRequestError reports a checkout session request that did not
// succeed. StatusCode is zero when no response was received.
type ProcessorRequestError struct {
	StatusCode int
	Payload    json.RawMessage
	Err        error
}

func (e *ProcessorRequestError) Error() string {
	var b strings.Builder

	b.WriteString("checkout session request failed")

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " with status %d", e.StatusCode)
	}

	if msg := e.Message(); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *ProcessorRequestError) Unwrap() error {
	return e.Err
}

// Message extracts the processor's human-readable error from the payload.
func (e *ProcessorRequestError) Message() string {
	if len(e.Payload) == 0 {
		return ""
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(e.Payload, &body); err != nil {
		return strings.TrimSpace(string(e.Payload))
	}

	if body.Error != "" {
		return body.Error
	}

	return body.Message
}
