// Package typename canonicalizes demangled C++ type names into the
// textual form used by dictionary and reflection lookup systems.
//
// The conventions (const qualifiers before identifiers, no spaces after
// commas, default allocators and comparators stripped, no adjacent
// closing angle brackets) match the names under which data dictionaries
// register their types. Demangler output differs from these conventions
// in spacing and qualifier placement, so a lookup keyed on the raw
// demangled string would miss.
package typename

import "strings"

// removeParameter deletes every occurrence of token plus the balanced
// <...> span that follows it. The token is expected to end with the
// opening '<' of the span, e.g. ",std::allocator<". A span left open at
// the end of the string stops the scan with the token untouched.
func removeParameter(name, token string) string {
	for {
		index := strings.Index(name, token)
		if index < 0 {
			return name
		}

		depth := 1
		inx := index + len(token)
		closed := false
		for inx < len(name) && !closed {
			switch name[inx] {
			case '<':
				depth++
			case '>':
				depth--
				if depth == 0 {
					name = name[:index] + name[inx+1:]
					// A comma separated the removed parameter from the
					// preceding one; drop the space it may have carried.
					if index < len(name) && name[index] == ' ' && (index == 0 || name[index-1] != '>') {
						name = name[:index] + name[index+1:]
					}
					closed = true
				}
			}
			inx++
		}
		if !closed {
			return name
		}
	}
}

func isAlnumOrUnderscore(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// replaceDelimited replaces from with to wherever the match is not part
// of a larger identifier, i.e. not preceded or followed by a letter,
// digit, or underscore. from must not be a substring of to.
func replaceDelimited(name, from, to string) string {
	pos := 0
	for {
		i := strings.Index(name[pos:], from)
		if i < 0 {
			return name
		}
		pos += i
		switch {
		case pos != 0 && isAlnumOrUnderscore(name[pos-1]):
			pos++
		case pos+len(from) < len(name) && isAlnumOrUnderscore(name[pos+len(from)]):
			pos++
		default:
			name = name[:pos] + to + name[pos+len(from):]
		}
	}
}

// replaceAll replaces every occurrence of from with to, rescanning from
// the replacement point so that occurrences formed across an earlier
// replacement boundary are caught (">>>>" becomes "> > > >", not
// "> >> >"). from must not be a substring of to.
func replaceAll(name, from, to string) string {
	pos := 0
	for {
		i := strings.Index(name[pos:], from)
		if i < 0 {
			return name
		}
		pos += i
		name = name[:pos] + to + name[pos+len(from):]
	}
}

// constBeforeIdentifier rewrites trailing const qualifiers ("T const")
// into leading ones ("const T"). The qualifier is re-inserted after the
// '<' or ',' opening the template argument it belongs to; a qualifier on
// an argument nested deeper is never hoisted past its enclosing span.
// A qualifier on the outermost type moves to the front of the name.
func constBeforeIdentifier(name string) string {
	const toBeMoved = " const"
	for {
		index := strings.Index(name, toBeMoved)
		if index < 0 {
			return name
		}
		name = name[:index] + name[index+len(toBeMoved):]

		inserted := false
		depth := 0
		for inx := index - 1; inx >= 0 && !inserted; inx-- {
			switch c := name[inx]; {
			case c == '>':
				depth++
			case depth > 0:
				if c == '<' {
					depth--
				}
			case c == '<' || c == ',':
				name = name[:inx+1] + "const " + name[inx+1:]
				inserted = true
			}
		}
		if !inserted {
			name = "const " + name
		}
	}
}
