// Ordinal forms of English cardinal text.
package numwords

import "strings"

// ordinalTh lists the final words that take a plain "th".
var ordinalTh = [6]string{"hundred", "thousand", "million", "billion", "trillion", "quadrillion"}

// MakeOrdinal turns English cardinal text into its ordinal form by rewriting
// its final word: "twenty" → "twentieth", "twenty-one" → "twenty-first",
// "one hundred" → "one hundredth". The final word is the text after the last
// space or hyphen.
//
// Words outside the generated vocabulary get a plain "th" suffix.
// Empty input is returned unchanged.
func MakeOrdinal(words string) string {
	if words == "" {
		return words
	}

	cut := strings.LastIndexAny(words, " -") + 1
	head, last := words[:cut], words[cut:]

	for _, w := range ordinalTh {
		if last == w {
			return words + "th"
		}
	}
	if strings.HasSuffix(last, "teen") {
		return words + "th"
	}
	if strings.HasSuffix(last, "y") {
		return head + strings.TrimSuffix(last, "y") + "ieth"
	}
	if o, ok := irregularOrdinals[last]; ok {
		return head + o
	}

	return words + "th"
}
