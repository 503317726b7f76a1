package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tverrors "github.com/rileyhilliard/termviz/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs a test from an empty git root so no real config is found.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

// execute runs a fresh command tree and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "termviz"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("connection failed"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "termviz"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "my-view" for "termviz"`),
			want: "my-view",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestRootWithoutTerminalPrintsHelp(t *testing.T) {
	isolate(t)
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "dashboard")
	assert.Contains(t, out, "graph")
	assert.Contains(t, out, "status")
}

func TestDashboardOnce(t *testing.T) {
	isolate(t)
	out, err := execute(t, "dashboard", "--once", "--seed", "7", "--entities", "2", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "System 1")
	assert.Contains(t, lines[0], "System 2")
	assert.Contains(t, lines[2], "CPU:")
	assert.Contains(t, lines[4], "NetSpeed:")
	assert.Contains(t, lines[5], "Upload:")
	assert.Contains(t, lines[6], "Download:")
}

func TestDashboardOnce_Repeatable(t *testing.T) {
	isolate(t)
	a, err := execute(t, "dashboard", "--once", "--seed", "3")
	require.NoError(t, err)
	b, err := execute(t, "dashboard", "--once", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDashboardInvalidSource(t *testing.T) {
	isolate(t)
	_, err := execute(t, "dashboard", "--once", "--source", "ssh")
	require.Error(t, err)
	assert.True(t, tverrors.IsCode(err, tverrors.ErrConfig))
}

func TestGraphOnce(t *testing.T) {
	isolate(t)
	out, err := execute(t, "graph", "--once")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 20)
	for i := 0; i < 6; i++ {
		assert.Contains(t, out, "("+string(rune('0'+i))+")")
	}
	assert.Contains(t, out, "*")
}

func TestGraphOnce_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graphs:\n  - name: empty\n    matrix: []\n"), 0o644))

	out, err := execute(t, "graph", "--once", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "Empty graph.\n", out)
}

func TestGraphTooSmall(t *testing.T) {
	isolate(t)
	_, err := execute(t, "graph", "--once", "--width", "3")
	require.Error(t, err)
	assert.True(t, tverrors.IsCode(err, tverrors.ErrViewport))
}

func TestStatusOnce(t *testing.T) {
	isolate(t)
	out, err := execute(t, "status", "--once")
	require.NoError(t, err)
	assert.Equal(t, "📊 API Status Dashboard\n\n"+
		"✅  https://api.github.com\n"+
		"✅  https://example.com\n"+
		"❌  https://httpstat.us/503\n", out)
}

func TestConfigFileIsUsed(t *testing.T) {
	dir := isolate(t)
	cfg := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("graph:\n  width: 20\n  height: 10\n"), 0o644))

	out, err := execute(t, "--config", cfg, "graph", "--once")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 10)
}

func TestUnknownCommand(t *testing.T) {
	isolate(t)
	_, err := execute(t, "nope")
	require.Error(t, err)
	assert.True(t, isUnknownCommandError(err))
	assert.Equal(t, "nope", extractUnknownCommand(err))
}
