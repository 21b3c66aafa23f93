package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/xjanssen/typename-go/typename"
)

// rulesFile is the on-disk shape of a --rules file:
//
//	strip = [",boost::container::new_allocator<"]
//
//	[[expand]]
//	from = "std::wstring"
//	to = "std::basic_string<wchar_t>"
type rulesFile struct {
	Strip  []string         `toml:"strip"`
	Expand []rulesExpansion `toml:"expand"`
}

type rulesExpansion struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// loadRules returns the default ruleset extended by the rules file at
// path, if any.
func loadRules(path string) (typename.Ruleset, error) {
	rules := typename.DefaultRules()
	if path == "" {
		return rules, nil
	}

	var rf rulesFile
	if _, err := toml.DecodeFile(path, &rf); err != nil {
		return typename.Ruleset{}, fmt.Errorf("failed to load rules file: %w", err)
	}

	rules.StripParameters = append(rules.StripParameters, rf.Strip...)
	for _, e := range rf.Expand {
		rules.Expansions = append(rules.Expansions, typename.Expansion{From: e.From, To: e.To})
	}
	if err := rules.Validate(); err != nil {
		return typename.Ruleset{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return rules, nil
}
