// Unexported conversion functions for English number-to-text conversion.
package numwords

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// generate appends the words for n to words and recurses on what is left
// once the largest tier of n has been spelled out. Each top-level call must
// pass a nil accumulator; nested calls for a tier's multiplier do the same.
//
// Callers must ensure |n| <= MaxSafe.
func generate(n int64, words []string) string {
	if n == 0 {
		if len(words) == 0 {
			return wordZero
		}
		return strings.TrimSuffix(strings.Join(words, " "), ",")
	}

	if n < 0 {
		words = append(words, wordNegative)
		n = -n
	}

	var (
		word      string
		remainder int64
	)

	switch {
	case n < 20:
		word = ones[n]
	case n < hundred:
		word = tens[n/ten]
		// The ones digit joins the tens word here so the hyphen stays inside one token.
		if o := n % ten; o > 0 {
			word += "-" + ones[o]
		}
	case n < thousand:
		remainder = n % hundred
		word = generate(n/hundred, nil) + " " + wordHundred
	default:
		for _, mag := range magnitudes {
			if n >= mag.value {
				remainder = n % mag.value
				word = generate(n/mag.value, nil) + " " + mag.word + ","
				break
			}
		}
	}

	return generate(remainder, append(words, word))
}

// resolve normalizes n to an int64 within ±MaxSafe.
// Strings go through parseInt; floats are truncated toward zero.
func resolve[T Number](n T) (int64, error) {
	v := reflect.ValueOf(n)

	switch v.Kind() {
	case reflect.String:
		return fromFloat(n, parseInt(v.String()))
	case reflect.Float32, reflect.Float64:
		return fromFloat(n, v.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i > MaxSafe || i < -MaxSafe {
			return 0, &UnsafeRangeError{Value: n}
		}
		return i, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > uint64(MaxSafe) {
			return 0, &UnsafeRangeError{Value: n}
		}
		return int64(u), nil
	}

	return 0, &NotFiniteError{Value: n}
}

// fromFloat validates f and truncates it. orig is the caller's value, kept
// for error messages.
func fromFloat(orig any, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &NotFiniteError{Value: orig}
	}
	f = math.Trunc(f)
	if !isSafe(f) {
		return 0, &UnsafeRangeError{Value: orig}
	}
	return int64(f), nil
}

// isSafe reports whether f is finite and |f| <= MaxSafe.
func isSafe(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) <= float64(MaxSafe)
}

// digitOrdinal formats n in base 10 with its ordinal suffix.
func digitOrdinal(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	suffix := "th"
	// 11, 12 and 13 take "th" regardless of their last digit.
	if lastTwo := abs % hundred; lastTwo < 11 || lastTwo > 13 {
		switch abs % ten {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.FormatInt(n, 10) + suffix
}
