// Command smoketest sweeps numwords over a contiguous range and a random
// sample up to MaxSafe, checking structural properties of every result.
//
//	go run ./cmd/smoketest -from -1000 -to 100000 -sample 200000
//
// Failures are reported on stderr; the summary goes to stdout. The exit
// status is 1 if any check failed.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/az-ai-labs/numwords/numwords"
)

const (
	maxWorkers    = 4
	chunkSize     = 4096
	maxFailLogs   = 20
	defaultSample = 100_000
)

var vocabulary = func() map[string]bool {
	words := []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
		"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
		"hundred", "thousand", "million", "billion", "trillion", "quadrillion",
		"minus",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()

type Stats struct {
	mu          sync.Mutex
	checked     int
	failures    map[string]int
	failLogged  int
	wordLengths []float64
	longest     int64
	maxLen      int
}

type chunkState struct {
	checked  int
	failures map[string]int
	lengths  []float64
	longest  int64
	maxLen   int
	fails    []string
}

func main() {
	from := flag.Int64("from", -1000, "first value of the contiguous sweep")
	to := flag.Int64("to", 100_000, "last value of the contiguous sweep")
	sample := flag.Int("sample", defaultSample, "number of random values up to MaxSafe")
	seed := flag.Uint64("seed", 1, "random sample seed")
	flag.Parse()

	if *from > *to || *from < -numwords.MaxSafe || *to > numwords.MaxSafe {
		fmt.Fprintf(os.Stderr, "Usage: %s [-from N] [-to N] [-sample N] [-seed N] with -MaxSafe <= from <= to <= MaxSafe\n", os.Args[0])
		os.Exit(1)
	}

	stats := &Stats{failures: make(map[string]int)}
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	run := func(values []int64) {
		wg.Add(1)
		semaphore <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-semaphore }()
			mergeChunkState(processChunk(values), stats)
		}()
	}

	for lo := *from; lo <= *to; lo += chunkSize {
		hi := min(lo+chunkSize-1, *to)
		values := make([]int64, 0, hi-lo+1)
		for n := lo; n <= hi; n++ {
			values = append(values, n)
		}
		run(values)
		if hi == *to {
			break
		}
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	for left := *sample; left > 0; left -= chunkSize {
		values := make([]int64, min(left, chunkSize))
		for i := range values {
			values[i] = rng.Int64N(2*numwords.MaxSafe+1) - numwords.MaxSafe
		}
		run(values)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if len(stats.failures) > 0 {
		os.Exit(1)
	}
}

func processChunk(values []int64) *chunkState {
	cs := &chunkState{failures: make(map[string]int)}
	for _, n := range values {
		cs.check(n)
	}
	return cs
}

func (cs *chunkState) fail(check string, n int64, detail string) {
	cs.failures[check]++
	cs.fails = append(cs.fails, fmt.Sprintf("%s: %d: %s", check, n, detail))
}

func (cs *chunkState) check(n int64) {
	cs.checked++

	words, err := numwords.ToWords(n, false)
	if err != nil {
		cs.fail("ERROR", n, err.Error())
		return
	}

	cs.lengths = append(cs.lengths, float64(len(words)))
	if len(words) > cs.maxLen {
		cs.maxLen = len(words)
		cs.longest = n
	}

	if strings.Contains(words, "  ") || strings.HasSuffix(words, ",") || strings.Contains(words, ",,") {
		cs.fail("SHAPE", n, words)
	}
	for _, tok := range strings.FieldsFunc(words, func(r rune) bool { return r == ' ' || r == '-' }) {
		if !vocabulary[strings.TrimSuffix(tok, ",")] {
			cs.fail("VOCAB", n, fmt.Sprintf("%q in %q", tok, words))
			break
		}
	}

	if n > 0 {
		neg, err := numwords.ToWords(-n, false)
		if want := "minus " + words; err != nil || neg != want {
			pos, got, exp := firstDivergence(want, neg)
			cs.fail("SYMMETRY", n, fmt.Sprintf("first divergence at byte %d (got 0x%02x, want 0x%02x)", pos, got, exp))
		}
	}

	ord, err := numwords.ToWordsOrdinal(n)
	if err != nil {
		cs.fail("ORDINAL", n, err.Error())
		return
	}
	cut := strings.LastIndexAny(words, " -") + 1
	if !strings.HasPrefix(ord, words[:cut]) || !hasOrdinalEnding(ord) {
		cs.fail("ORDINAL", n, fmt.Sprintf("%q -> %q", words, ord))
	}

	digits, err := numwords.ToOrdinal(n)
	if err != nil || !hasOrdinalEnding(digits) {
		cs.fail("DIGITS", n, digits)
	}
}

func hasOrdinalEnding(s string) bool {
	for _, suffix := range []string{"th", "st", "nd", "rd"} {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func mergeChunkState(cs *chunkState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.checked += cs.checked
	for check, count := range cs.failures {
		stats.failures[check] += count
	}
	for _, line := range cs.fails {
		if stats.failLogged >= maxFailLogs {
			break
		}
		fmt.Fprintln(os.Stderr, line)
		stats.failLogged++
	}

	stats.wordLengths = append(stats.wordLengths, cs.lengths...)
	if cs.maxLen > stats.maxLen {
		stats.maxLen = cs.maxLen
		stats.longest = cs.longest
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(want, got string) (pos int, g, w byte) {
	n := min(len(want), len(got))
	for i := range n {
		if want[i] != got[i] {
			return i, got[i], want[i]
		}
	}
	pos = n
	if pos < len(got) {
		g = got[pos]
	}
	if pos < len(want) {
		w = want[pos]
	}
	return pos, g, w
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Values checked:          %d\n", stats.checked)
	fmt.Printf("Median text length:      %.0f\n", computeMedian(stats.wordLengths))
	fmt.Printf("Longest text:            %d (%d bytes)\n", stats.longest, stats.maxLen)
	fmt.Println()

	if len(stats.failures) == 0 {
		fmt.Println("All checks passed")
		return
	}

	checks := make([]string, 0, len(stats.failures))
	for check := range stats.failures {
		checks = append(checks, check)
	}
	sort.Strings(checks)

	fmt.Println("Failures:")
	for _, check := range checks {
		fmt.Printf("  %-15s %d\n", check+":", stats.failures[check])
	}
}
