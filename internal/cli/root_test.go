package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mmr-tortoise/cardinfo/internal/directory"
	"github.com/mmr-tortoise/cardinfo/internal/logging"
	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// harness wires a root command to in-memory streams and an observed logger.
type harness struct {
	cmd    *cobra.Command
	logs   *observer.ObservedLogs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, stdin string, opts ...Option) *harness {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	opts = append([]Option{WithLogger(zap.New(core))}, opts...)

	h := &harness{
		cmd:    NewRootCommand(opts...),
		logs:   logs,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.cmd.SetIn(strings.NewReader(stdin))
	h.cmd.SetOut(h.stdout)
	h.cmd.SetErr(h.stderr)
	return h
}

func (h *harness) run(args ...string) model.ExitCode {
	h.cmd.SetArgs(args)
	return Run(h.cmd)
}

// failureEntry returns the single diagnostic entry written for a failure.
func (h *harness) failureEntry(t *testing.T) map[string]interface{} {
	t.Helper()
	entries := h.logs.FilterMessage(logging.FailureMessage).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	return entries[0].ContextMap()
}

const amyText = "Credit card info:\n" +
	"Number:     1234567\n" +
	"Expiration: 04/25\n" +
	"CVV:        123\n"

// TestRoot_ReadsNameFromStdin covers the default interactive flow: the name
// is read from one line of input and trimmed.
func TestRoot_ReadsNameFromStdin(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
	}{
		{name: "newline terminated", stdin: "Amy\n"},
		{name: "surrounding whitespace", stdin: "  Amy \t\r\n"},
		{name: "no trailing newline", stdin: "Amy"},
		{name: "only first line is read", stdin: "Amy\nTim\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.stdin)
			assert.Equal(t, model.ExitSuccess, h.run())
			// Input is not a terminal, so no prompt is printed.
			assert.Equal(t, amyText, h.stdout.String())
			assert.Empty(t, h.stderr.String())
			assert.Equal(t, 0, h.logs.Len())
		})
	}
}

// TestRoot_UnknownName checks the InvalidInput path end to end: the exact
// message on stdout, exit code 2, and a diagnostic entry.
func TestRoot_UnknownName(t *testing.T) {
	h := newHarness(t, "Zoe\n")

	assert.Equal(t, model.ExitInvalidInput, h.run())
	assert.Equal(t, "No credit card was found for Zoe.\n", h.stdout.String())

	fields := h.failureEntry(t)
	assert.Equal(t, "invalid_input", fields["kind"])
	assert.Equal(t, "Zoe", fields["name"])
	assert.Equal(t, "No credit card was found for Zoe.", fields["error"])

	_, err := uuid.Parse(fields["invocation"].(string))
	assert.NoError(t, err)
}

// TestRoot_EmptyInput treats end of input as an empty name.
func TestRoot_EmptyInput(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, model.ExitInvalidInput, h.run())
	assert.Equal(t, "No credit card was found for .\n", h.stdout.String())
}

// TestRoot_ReadFailure checks that a broken input stream is an internal
// failure whose cause is only visible in the log.
func TestRoot_ReadFailure(t *testing.T) {
	h := newHarness(t, "")
	h.cmd.SetIn(iotest.ErrReader(errors.New("broken pipe")))

	assert.Equal(t, model.ExitGeneralError, h.run())
	assert.Equal(t, model.GenericUserMessage+"\n", h.stdout.String())
	assert.NotContains(t, h.stdout.String(), "broken pipe")

	fields := h.failureEntry(t)
	assert.Equal(t, "other", fields["kind"])
	assert.Equal(t, []interface{}{"Failed to read name from input.", "broken pipe"}, fields["chain"])
}

// TestRoot_DirectoryFlag loads the directory from a file.
func TestRoot_DirectoryFlag(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		h := newHarness(t, "Zoe\n")
		code := h.run("--directory", filepath.Join("testdata", "cards.yaml"))
		assert.Equal(t, model.ExitSuccess, code)
		assert.Contains(t, h.stdout.String(), "Number:     7654321")
		assert.Contains(t, h.stdout.String(), "Expiration: 11/30")
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join("testdata", "missing.yaml")
		h := newHarness(t, "Amy\n")

		assert.Equal(t, model.ExitInvalidInput, h.run("--directory", path))
		assert.Equal(t, "Card directory file not found: "+path+".\n", h.stdout.String())

		fields := h.failureEntry(t)
		assert.Equal(t, path, fields["directory"])
	})

	t.Run("preset directory wins", func(t *testing.T) {
		dir := directory.New(map[string]string{"Eve": "1 2 3 4"})
		h := newHarness(t, "Eve\n", WithDirectory(dir))
		assert.Equal(t, model.ExitSuccess, h.run("--directory", "ignored.yaml"))
		assert.Contains(t, h.stdout.String(), "Number:     1")
	})
}

// TestRun_UnexpectedErrors covers errors raised by cobra itself, which
// are printed to stderr and never reach the diagnostic log.
func TestRun_UnexpectedErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"--nope"}, want: "unknown flag: --nope"},
		{name: "too many lookup args", args: []string{"lookup", "Amy", "Tim"}, want: "accepts at most 1 arg(s)"},
		{name: "parse needs one arg", args: []string{"parse"}, want: "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "")
			assert.Equal(t, model.ExitGeneralError, h.run(tt.args...))
			assert.True(t, strings.HasPrefix(h.stderr.String(), "Error: "))
			assert.Contains(t, h.stderr.String(), tt.want)
			assert.Empty(t, h.stdout.String())
			assert.Equal(t, 0, h.logs.Len())
		})
	}
}

// TestRun_InvalidLogFormat ensures a bad --log-format is reported before any
// logger exists.
func TestRun_InvalidLogFormat(t *testing.T) {
	cmd := NewRootCommand()
	stderr := &bytes.Buffer{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--log-format", "xml", "list"})

	assert.Equal(t, model.ExitGeneralError, Run(cmd))
	assert.Contains(t, stderr.String(), `invalid log format "xml"`)
}

func TestVersionFlag(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, model.ExitSuccess, h.run("--version"))
	assert.Contains(t, h.stdout.String(), "dev (commit: none, built: unknown)")
}
