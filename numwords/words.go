// Word tables for English number-to-text conversion.
package numwords

const (
	ten         int64 = 10
	hundred     int64 = 100
	thousand    int64 = 1_000
	million     int64 = 1_000_000
	billion     int64 = 1_000_000_000
	trillion    int64 = 1_000_000_000_000
	quadrillion int64 = 1_000_000_000_000_000

	wordZero     = "zero"
	wordNegative = "minus"
	wordHundred  = "hundred"
)

// ones is indexed by value (0–19).
var ones = [20]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are never composed.
var tens = [10]string{
	"zero",
	"ten",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

type magnitude struct {
	value int64
	word  string
}

// magnitudes lists the comma-separated tiers from largest to smallest.
// hundred is handled separately because it never takes a comma.
var magnitudes = [5]magnitude{
	{value: quadrillion, word: "quadrillion"},
	{value: trillion, word: "trillion"},
	{value: billion, word: "billion"},
	{value: million, word: "million"},
	{value: thousand, word: "thousand"},
}

// irregularOrdinals maps the cardinal words whose ordinal is not formed by a
// plain suffix.
var irregularOrdinals = map[string]string{
	"zero":   "zeroth",
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"four":   "fourth",
	"five":   "fifth",
	"six":    "sixth",
	"seven":  "seventh",
	"eight":  "eighth",
	"nine":   "ninth",
	"ten":    "tenth",
	"eleven": "eleventh",
	"twelve": "twelfth",
}
