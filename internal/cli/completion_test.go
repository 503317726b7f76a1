package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionBashGeneration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRootCmd().GenBashCompletion(&buf))

	output := buf.String()
	assert.Contains(t, output, "# bash completion for termviz")
	assert.Contains(t, output, "__termviz_debug")
	assert.Contains(t, output, "complete -o default -F __start_termviz termviz")
}

func TestCompletionZshGeneration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRootCmd().GenZshCompletion(&buf))

	output := buf.String()
	assert.Contains(t, output, "#compdef termviz")
	assert.Contains(t, output, "_termviz()")
}

func TestCompletionFishGeneration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRootCmd().GenFishCompletion(&buf, true))

	output := buf.String()
	assert.Contains(t, output, "fish completion for termviz")
	assert.Contains(t, output, "complete -c termviz")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRootCmd().GenPowerShellCompletion(&buf))

	output := buf.String()
	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesViewCommands(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rootCmd.GenBashCompletion(&buf))

	output := buf.String()
	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_termviz")

	// Commands with local flags get their own functions
	assert.Contains(t, output, "_termviz_dashboard()")
	assert.Contains(t, output, "_termviz_graph()")
	assert.Contains(t, output, "_termviz_status()")
}
