package checkout

import (
	"fmt"
	"strings"
)

// Outcome is how the buyer came back from the hosted checkout page.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeCancel  Outcome = "cancel"
)

func ParseOutcome(s string) (Outcome, error) {
	switch o := Outcome(strings.ToLower(strings.TrimSpace(s))); o {
	case OutcomeSuccess, OutcomeCancel:
		return o, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

type Clearer interface {
	Clear()
}

// Resolve settles the cart once the buyer returns from checkout. Both a
// completed and a cancelled checkout end the shopping session.
func Resolve(outcome Outcome, c Clearer) {
	switch outcome {
	case OutcomeSuccess, OutcomeCancel:
		c.Clear()
	}
}
