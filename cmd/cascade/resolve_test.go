package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	// flags keep their values between executions
	resolveCmd.Flags().Set("outermost-first", "false")
	resolveCmd.Flags().Set("verify", "false")
	resolveCmd.Flags().Set("format", "tree")
	rootCmd.PersistentFlags().Set("trace", "error")
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestResolveVerify(t *testing.T) {
	out, errOut, err := run(t, "resolve", "../../fixture/testdata/groups.yaml", "--verify")
	require.NoError(t, err, errOut)
	assert.Contains(t, out, "padding-top: 2pt")
	assert.Contains(t, out, "all expectations met")
	assert.Contains(t, errOut, "diagnostic:")
}

func TestResolveOutermostFirst(t *testing.T) {
	_, errOut, err := run(t, "resolve", "../../fixture/testdata/groups.yaml", "--verify", "--outermost-first")
	assert.True(t, errors.Is(err, errExpectations), "expected the span to turn blue, got %v", err)
	assert.Contains(t, errOut, "mismatch:")
}

func TestResolveDot(t *testing.T) {
	out, _, err := run(t, "resolve", "../../fixture/testdata/scenarios.yaml", "--format", "dot", "--trace", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph g {")
}

func TestResolveErrors(t *testing.T) {
	_, _, err := run(t, "resolve", "does-not-exist.yaml")
	assert.Error(t, err)
	_, _, err = run(t, "resolve", "../../fixture/testdata/scenarios.yaml", "--trace", "loud")
	assert.Error(t, err)
	_, _, err = run(t, "resolve", "../../fixture/testdata/scenarios.yaml", "--format", "xml")
	assert.Error(t, err)
	_, _, err = run(t, "resolve")
	assert.Error(t, err)
}
