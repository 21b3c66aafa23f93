package typename

import (
	"fmt"

	"github.com/xjanssen/typename-go/internal/itanium"
)

// DemangleError reports a mangled name the platform demangler could not
// parse. Demangling is deterministic, so the same input fails the same
// way on retry.
type DemangleError struct {
	Mangled string // the input symbol
	Err     error  // underlying demangler error
}

func (e *DemangleError) Error() string {
	return fmt.Sprintf("typename: cannot demangle %q: %v", e.Mangled, e.Err)
}

func (e *DemangleError) Unwrap() error { return e.Err }

// Demangle translates a mangled C++ type name into canonical form using
// the ruleset. It returns a *DemangleError if the name cannot be parsed.
func (r Ruleset) Demangle(mangled string) (string, error) {
	demangled, err := itanium.Demangle(mangled)
	if err != nil {
		return "", &DemangleError{Mangled: mangled, Err: err}
	}
	return r.Canonical(demangled), nil
}

// Demangle translates a mangled C++ type name into canonical form using
// DefaultRules.
func Demangle(mangled string) (string, error) {
	return DefaultRules().Demangle(mangled)
}
