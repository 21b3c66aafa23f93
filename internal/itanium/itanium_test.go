package itanium

import (
	"strings"
	"testing"
)

func TestDemangleSymbolName(t *testing.T) {
	got, err := Demangle("_ZSt6vectorIiSaIiEE")
	if err != nil {
		t.Fatalf("Demangle: %v", err)
	}
	if !strings.HasPrefix(got, "std::vector<int") {
		t.Fatalf("got %q, want std::vector<int...>", got)
	}
}

func TestDemangleRetriesWithoutPrefix(t *testing.T) {
	// typeid(std::vector<int>).name() yields the encoding without _Z.
	got, err := Demangle("St6vectorIiSaIiEE")
	if err != nil {
		t.Fatalf("Demangle: %v", err)
	}
	if !strings.HasPrefix(got, "std::vector<int") {
		t.Fatalf("got %q, want std::vector<int...>", got)
	}
}

func TestDemangleRejectsGarbage(t *testing.T) {
	if _, err := Demangle("@@@"); err == nil {
		t.Fatalf("expected error")
	}
}
