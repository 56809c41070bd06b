// Package batch converts newline-separated numbers concurrently.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/az-ai-labs/numwords/internal/cache"
	"github.com/az-ai-labs/numwords/internal/logger"
	"github.com/az-ai-labs/numwords/internal/worker"
	"github.com/az-ai-labs/numwords/numwords"
)

// ErrLinesFailed is returned by Run when at least one line could not be converted.
var ErrLinesFailed = errors.New("batch: some lines failed")

const maxLineBytes = 1 << 20

// Options configures Run.
type Options struct {
	Workers int
	Ordinal bool
	Cache   cache.Store    // nil disables memoization
	Logger  *logger.Logger // nil disables logging
}

// Line is the outcome of converting one input line.
type Line struct {
	Number int // 1-based line number in the input
	Input  string
	Words  string
	Err    error
}

// GetError implements worker.Result.
func (l *Line) GetError() error { return l.Err }

// Summary describes a finished run.
type Summary struct {
	Lines   int
	Failed  int
	Elapsed time.Duration
}

// convertJob converts line with the shared memo. A cancelled context turns
// the line into a failure without converting it.
func convertJob(line Line, ordinal bool, store cache.Store) worker.JobFunc {
	return func(ctx context.Context) worker.Result {
		if err := ctx.Err(); err != nil {
			line.Err = err
			return &line
		}
		line.Words, line.Err = cache.Memoize(store, cache.Key("words", line.Input, ordinal), func() (string, error) {
			return numwords.ToWords(line.Input, ordinal)
		})
		return &line
	}
}

// Run reads one number per line from r and writes "input<TAB>words" lines
// to w in input order. Blank lines are skipped. Lines that fail are written
// as "input<TAB>error: message" and counted in the summary; if any failed,
// the returned error wraps ErrLinesFailed.
func Run(ctx context.Context, r io.Reader, w io.Writer, opt Options) (Summary, error) {
	start := time.Now()

	store := opt.Cache
	if store == nil {
		store = cache.Nop{}
	}

	pool := worker.NewPool(ctx, opt.Workers)
	pool.Start()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		input := strings.TrimSpace(sc.Text())
		if input == "" {
			continue
		}
		job := convertJob(Line{Number: n, Input: input}, opt.Ordinal, store)
		if err := pool.Submit(job); err != nil {
			pool.Shutdown()
			return Summary{}, fmt.Errorf("batch: submit line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		pool.Shutdown()
		return Summary{}, fmt.Errorf("batch: read input: %w", err)
	}

	results := pool.Wait()
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	bw := bufio.NewWriter(w)
	sum := Summary{Lines: len(results)}
	for _, res := range results {
		line := res.(*Line)
		if line.Err != nil {
			sum.Failed++
			fmt.Fprintf(bw, "%s\terror: %v\n", line.Input, line.Err)
			if opt.Logger != nil {
				opt.Logger.Debug().Int("line", line.Number).Str("input", line.Input).Err(line.Err).Msg("line failed")
			}
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\n", line.Input, line.Words)
	}
	if err := bw.Flush(); err != nil {
		return sum, fmt.Errorf("batch: write output: %w", err)
	}
	sum.Elapsed = time.Since(start)

	if opt.Logger != nil {
		opt.Logger.Info().
			Int("lines", sum.Lines).
			Int("failed", sum.Failed).
			Int("workers", pool.Workers()).
			Dur("elapsed", sum.Elapsed).
			Msg("batch done")
	}

	if sum.Failed > 0 {
		return sum, fmt.Errorf("%w: %d of %d", ErrLinesFailed, sum.Failed, sum.Lines)
	}
	return sum, nil
}
