// String-to-number parsing for numeric text input.
package numwords

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// parseInt reads the leading base-10 integer of s.
//
// Leading whitespace is skipped and a single '+' or '-' is honoured. Parsing
// stops at the first byte that is not an ASCII digit, so fractional parts,
// exponents and trailing text are ignored: "42.9" and "42px" both read as 42.
//
// Returns NaN when s has no leading digits. A digit run too long for float64
// returns ±Inf; range checks are left to the caller.
func parseInt(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" {
		switch s[0] {
		case '-':
			negative = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	// Only digits remain, so the sole possible error is ErrRange, which
	// already carries ±Inf as its value.
	f, _ := strconv.ParseFloat(s[:end], 64)
	if negative {
		f = -f
	}
	return f
}
