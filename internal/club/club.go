package club

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncompleteScope = errors.New("incomplete club scope")

// Scope identifies the club, age group and division that catalog, cart and
// transaction operations are bound to.
type Scope struct {
	Club     string
	AgeGroup string
	Division string
}

// Missing returns the names of the empty scope fields.
func (s Scope) Missing() []string {
	var missing []string

	if strings.TrimSpace(s.Club) == "" {
		missing = append(missing, "club")
	}

	if strings.TrimSpace(s.AgeGroup) == "" {
		missing = append(missing, "age group")
	}

	if strings.TrimSpace(s.Division) == "" {
		missing = append(missing, "division")
	}

	return missing
}

func (s Scope) Complete() bool {
	return len(s.Missing()) == 0
}

// Validate returns ErrIncompleteScope naming the missing fields, or nil.
func (s Scope) Validate() error {
	missing := s.Missing()
	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("%w: missing %s", ErrIncompleteScope, strings.Join(missing, ", "))
}

func (s Scope) String() string {
	return fmt.Sprintf("%s/%s/%s", s.Club, s.AgeGroup, s.Division)
}
