package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/az-ai-labs/numwords/internal/batch"
	"github.com/az-ai-labs/numwords/internal/config"
	"github.com/az-ai-labs/numwords/numwords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command tree with an isolated HOME.
func run(t *testing.T, ctx context.Context, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWordsCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"cardinal", []string{"words", "7", "1234"}, "seven\none thousand, two hundred thirty-four\n"},
		{"ordinal", []string{"words", "--ordinal", "21", "100"}, "twenty-first\none hundredth\n"},
		{"negative", []string{"words", "--", "-5"}, "minus five\n"},
		{"string float", []string{"words", "42.9"}, "forty-two\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, context.Background(), "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWordsCmdErrors(t *testing.T) {
	out, _, err := run(t, context.Background(), "", "words", "3", "abc", "4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, numwords.ErrNotFinite))
	assert.True(t, strings.HasPrefix(err.Error(), "abc: "))
	assert.Equal(t, "three\n", out)

	_, _, err = run(t, context.Background(), "", "words", "9007199254740992")
	assert.True(t, errors.Is(err, numwords.ErrUnsafeRange))

	_, _, err = run(t, context.Background(), "", "words")
	assert.Error(t, err)
}

func TestOrdinalCmd(t *testing.T) {
	out, _, err := run(t, context.Background(), "", "ordinal", "1", "22", "113", "11")
	require.NoError(t, err)
	assert.Equal(t, "1st\n22nd\n113th\n11th\n", out)
}

func TestBatchCmdStdin(t *testing.T) {
	out, _, err := run(t, context.Background(), "1\n\n2\n", "batch")
	require.NoError(t, err)
	assert.Equal(t, "1\tone\n2\ttwo\n", out)
}

func TestBatchCmdFile(t *testing.T) {
	path := writeFile(t, "in.txt", "3\n12\n")

	out, _, err := run(t, context.Background(), "", "batch", "--ordinal", "--workers", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "3\tthird\n12\ttwelfth\n", out)
}

func TestBatchCmdFailedLines(t *testing.T) {
	out, _, err := run(t, context.Background(), "5\nx\n", "batch", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, batch.ErrLinesFailed))
	assert.Equal(t, "5\tfive\nx\terror: numwords: not a finite number: x (string)\n", out)
}

func TestBatchCmdMissingFile(t *testing.T) {
	_, _, err := run(t, context.Background(), "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}

func showConfig(t *testing.T, args ...string) config.Config {
	t.Helper()
	out, _, err := run(t, context.Background(), "", append([]string{"config", "show"}, args...)...)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	return cfg
}

func TestConfigShowDefaults(t *testing.T) {
	assert.Equal(t, config.Default(), showConfig(t))
}

func TestConfigShowLayers(t *testing.T) {
	path := writeFile(t, "config.yaml", "server:\n  addr: \":9090\"\nbatch:\n  workers: 2\n")
	t.Setenv("NUMWORDS_BATCH_WORKERS", "9")

	cfg := showConfig(t, "--config", path, "--log-level", "debug")
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 9, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInvalidConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", "batch:\n  workers: 0\n")

	_, _, err := run(t, context.Background(), "", "--config", path, "words", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch.workers")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, context.Background(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "numwords "+Version+"\n", out)
}

func TestServeCmdStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, logs, err := run(t, ctx, "", "serve", "--addr", "127.0.0.1:0", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"message":"http listening"`)
	assert.Contains(t, logs, `"message":"http shutting down"`)
	assert.Less(t, strings.Index(logs, "http listening"), strings.Index(logs, "http shutting down"))
}
