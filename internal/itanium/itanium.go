// Package itanium adapts the Itanium C++ ABI demangler for type names.
package itanium

import (
	"errors"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

// Demangle translates a mangled name into its demangled form.
//
// Type names obtained from std::type_info lack the "_Z" prefix carried
// by symbol names, so when the bare name is rejected the call is retried
// with the prefix added (the same accommodation c++filt -t makes).
func Demangle(symbol string) (string, error) {
	s, err := demangle.ToString(symbol)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, demangle.ErrNotMangledName) && !strings.HasPrefix(symbol, "_Z") {
		if s, retryErr := demangle.ToString("_Z" + symbol); retryErr == nil {
			return s, nil
		}
	}
	return "", err
}
