package typename

import (
	"fmt"
	"strings"
)

// An Expansion rewrites a typedef alias into its full template
// instantiation, matching whole tokens only.
type Expansion struct {
	From string
	To   string
}

// A Ruleset holds the rewrites applied during canonicalization.
// StripParameters are removed first (token plus its balanced <...>
// span), then Expansions are applied; const relocation and bracket
// spacing are fixed parts of the pipeline and not configurable.
type Ruleset struct {
	StripParameters []string
	Expansions      []Expansion
}

// DefaultRules returns the ruleset for gcc/libstdc++ demangler output:
// default allocators and map/set comparators stripped, std::string
// expanded to its basic_string instantiation.
func DefaultRules() Ruleset {
	return Ruleset{
		StripParameters: []string{
			",std::allocator<",
			",std::less<",
		},
		Expansions: []Expansion{
			{From: "std::string", To: "std::basic_string<char>"},
		},
	}
}

// Validate reports rules the rewrite passes cannot terminate on.
func (r Ruleset) Validate() error {
	for _, e := range r.Expansions {
		if e.From == "" {
			return fmt.Errorf("typename: expansion for %q has empty source", e.To)
		}
		if strings.Contains(e.To, e.From) {
			return fmt.Errorf("typename: expansion %q -> %q rewrites its own output", e.From, e.To)
		}
	}
	for _, tok := range r.StripParameters {
		if !strings.HasSuffix(tok, "<") {
			return fmt.Errorf("typename: strip token %q does not end with '<'", tok)
		}
	}
	return nil
}

// Canonical applies the ruleset to a demangled type name.
// The pass order is load-bearing: comma spacing is normalized before
// parameter stripping so the strip tokens match, and bracket spacing is
// fixed last so stripping cannot re-create an adjacent '>' pair.
func (r Ruleset) Canonical(name string) string {
	name = replaceAll(name, ", ", ",")
	for _, token := range r.StripParameters {
		name = removeParameter(name, token)
	}
	for _, e := range r.Expansions {
		name = replaceDelimited(name, e.From, e.To)
	}
	name = constBeforeIdentifier(name)
	name = replaceAll(name, ">>", "> >")
	return name
}

// Canonical applies DefaultRules to a demangled type name.
func Canonical(name string) string {
	return DefaultRules().Canonical(name)
}
