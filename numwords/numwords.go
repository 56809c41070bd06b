// Package numwords converts integers into English words.
//
// The package provides three entry points over the same conversion:
//
//   - ToWords turns a number into cardinal English text, optionally ordinal.
//   - ToWordsOrdinal produces the ordinal text directly ("twenty-first").
//   - ToOrdinal produces a digit ordinal ("21st").
//
// Input may be any Go integer or float type, or a numeric string. Strings are
// read as base-10 integers and anything after the leading digits is ignored;
// floats are truncated toward zero. Only values whose magnitude does not
// exceed MaxSafe (2^53 − 1) are accepted, so that every accepted value is an
// exact integer in float64 as well as int64.
//
// Magnitude words follow the short scale up to quadrillion. Every magnitude
// above hundred is followed by a comma when more groups follow:
//
//	1234 → "one thousand, two hundred thirty-four"
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - English only, no "and" between hundreds and tens.
//   - Fractional parts are dropped, never spelled out.
package numwords

// MaxSafe is the largest magnitude accepted by the converters.
const MaxSafe int64 = 1<<53 - 1

// Number is the set of input types accepted by the converters.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string
}

// ToWords returns the English cardinal text for n, or its ordinal form when
// asOrdinal is true.
//
// Returns a *NotFiniteError when n is NaN, infinite, or a string without
// leading digits, and an *UnsafeRangeError when the integer part of n is
// larger in magnitude than MaxSafe.
func ToWords[T Number](n T, asOrdinal bool) (string, error) {
	v, err := resolve(n)
	if err != nil {
		return "", err
	}
	words := generate(v, nil)
	if asOrdinal {
		return MakeOrdinal(words), nil
	}
	return words, nil
}

// ToWordsOrdinal returns the English ordinal text for n ("twenty-first").
// Errors are the same as for ToWords.
func ToWordsOrdinal[T Number](n T) (string, error) {
	return ToWords(n, true)
}

// ToOrdinal returns n in digits followed by its English ordinal suffix
// ("1st", "22nd", "113th"). Negative values keep their sign ("-3rd").
// Errors are the same as for ToWords.
func ToOrdinal[T Number](n T) (string, error) {
	v, err := resolve(n)
	if err != nil {
		return "", err
	}
	return digitOrdinal(v), nil
}

// IsSafe reports whether f is finite and no larger in magnitude than MaxSafe.
func IsSafe(f float64) bool {
	return isSafe(f)
}
