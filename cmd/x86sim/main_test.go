package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, source string, args ...string) (stdout string, stderr string, err error) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.asm")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, path))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := runCommand(t, "MOV EAX, 7\nPRINT_REG EAX\n")
	assert.NoError(err)
	assert.Equal("EAX: 7\n", stdout)
}

func TestRunDefine(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := runCommand(t, "MOV EAX, COUNT\nPRINT_REG EAX\n", "-D", "count=12")
	assert.NoError(err)
	assert.Equal("EAX: 12\n", stdout)
}

func TestRunLabels(t *testing.T) {
	assert := assert.New(t)

	stdout, _, err := runCommand(t, "START:\nNOP\nEND:\n", "--labels")
	assert.NoError(err)
	assert.Equal("START: 1\nEND: 3\n", stdout)
}

func TestRunMaxSteps(t *testing.T) {
	assert := assert.New(t)

	_, stderr, err := runCommand(t, "SPIN:\nJMP SPIN\n", "--max-steps", "10")
	assert.Error(err)
	assert.Contains(stderr, "step limit")
}

func TestRunConfig(t *testing.T) {
	assert := assert.New(t)

	cfgPath := filepath.Join(t.TempDir(), "x86sim.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_steps = 3\n[equates]\nFIVE = \"5\"\n"), 0o644))

	stdout, _, err := runCommand(t, "MOV EAX, FIVE\nPRINT_REG EAX\n", "--config", cfgPath)
	assert.NoError(err)
	assert.Equal("EAX: 5\n", stdout)

	_, _, err = runCommand(t, "NOP\nNOP\nNOP\nNOP\n", "--config", cfgPath)
	assert.Error(err)
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	_, _, err := runCommand(t, "NOP\n", "--log-level", "loud")
	assert.Error(err)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.asm")})
	assert.Error(cmd.Execute())
}
