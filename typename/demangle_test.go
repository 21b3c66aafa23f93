package typename

import (
	"errors"
	"strings"
	"testing"
)

func TestDemangle(t *testing.T) {
	tests := []struct {
		mangled string
		want    string
	}{
		// typeid-style names, no _Z prefix
		{"St6vectorIiSaIiEE", "std::vector<int>"},
		{"St6vectorIdSaIdEE", "std::vector<double>"},
		{"St3mapIiiSt4lessIiESaISt4pairIKiiEEE", "std::map<int,int>"},
		// symbol-style name
		{"_ZSt6vectorIiSaIiEE", "std::vector<int>"},
	}
	for _, tt := range tests {
		got, err := Demangle(tt.mangled)
		if err != nil {
			t.Fatalf("Demangle(%q): %v", tt.mangled, err)
		}
		if got != tt.want {
			t.Fatalf("Demangle(%q) = %q, want %q", tt.mangled, got, tt.want)
		}
	}
}

func TestDemangleFailure(t *testing.T) {
	mangled := "@not@a@mangled@name@"
	_, err := Demangle(mangled)
	if err == nil {
		t.Fatalf("expected error for %q", mangled)
	}

	var derr *DemangleError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DemangleError, got %T", err)
	}
	if derr.Mangled != mangled {
		t.Fatalf("error carries %q, want %q", derr.Mangled, mangled)
	}
	if !strings.Contains(err.Error(), mangled) {
		t.Fatalf("error message %q does not mention the input", err.Error())
	}
	if derr.Unwrap() == nil {
		t.Fatalf("expected wrapped demangler error")
	}
}
