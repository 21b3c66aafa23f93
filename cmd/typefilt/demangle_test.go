package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xjanssen/typename-go/typename"
)

func TestDemangleNamesPreservesOrder(t *testing.T) {
	names := []string{
		"St6vectorIiSaIiEE",
		"St6vectorIdSaIdEE",
		"St3mapIiiSt4lessIiESaISt4pairIKiiEEE",
		"St6vectorIiSaIiEE",
	}
	want := []string{
		"std::vector<int>",
		"std::vector<double>",
		"std::map<int,int>",
		"std::vector<int>",
	}

	for _, jobs := range []int{1, 4} {
		got, err := demangleNames(names, typename.DefaultRules(), demangleOptions{jobs: jobs})
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDemangleNamesStopsOnError(t *testing.T) {
	names := []string{"St6vectorIiSaIiEE", "@bad@"}
	_, err := demangleNames(names, typename.DefaultRules(), demangleOptions{jobs: 1})
	require.Error(t, err)

	var derr *typename.DemangleError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, "@bad@", derr.Mangled)
}

func TestDemangleNamesKeepGoing(t *testing.T) {
	names := []string{"St6vectorIiSaIiEE", "@bad@", "St6vectorIdSaIdEE"}
	got, err := demangleNames(names, typename.DefaultRules(), demangleOptions{jobs: 2, keepGoing: true})
	require.NoError(t, err)
	require.Equal(t, []string{"std::vector<int>", "@bad@", "std::vector<double>"}, got)
}
