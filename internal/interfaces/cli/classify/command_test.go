package classify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rulesFile, fallback = "", "Others"

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand_BuiltinRules(t *testing.T) {
	out, err := execute(t, "streetlight", "not", "working")
	require.NoError(t, err)
	assert.Equal(t, "Road & Transport\n", out)
}

func TestClassifyCommand_RulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - department: Water Board
    keywords: [leak, pipe]
`), 0o600))

	out, err := execute(t, "--rules", path, "--fallback", "General", "burst pipe on 3rd street")
	require.NoError(t, err)
	assert.Equal(t, "Water Board\n", out)

	out, err = execute(t, "--rules", path, "--fallback", "General", "noisy neighbours")
	require.NoError(t, err)
	assert.Equal(t, "General\n", out)
}

func TestClassifyCommand_RequiresText(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)
}
