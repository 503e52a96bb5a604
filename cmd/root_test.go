package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	err := run(context.Background(), root, append([]string{"--config", cfgPath, "--no-color"}, args...))
	return out.String(), err
}

func TestExerciseWithArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"factorial", []string{"factorial", "5"}, "The factorial of 5 is 120\n"},
		{"factorial negative", []string{"factorial", "--", "-3"}, "The factorial of -3 is 1\n"},
		{"factorial negative unescaped", []string{"factorial", "-3"}, "The factorial of -3 is 1\n"},
		{"verify negative unescaped", []string{"verify", "-2"}, "Negative number\n"},
		{"price negative unescaped", []string{"price", "-5", "100"}, "The new price is -5.500000\n"},
		{"verify", []string{"verify", "0"}, "Zero\n"},
		{"sign", []string{"sign", "12"}, "Positive\n"},
		{"price", []string{"price", "100", "2000"}, "The new price is 80.000000\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestExerciseArgErrors(t *testing.T) {
	_, err := execute(t, "", "factorial", "1", "2")
	require.Error(t, err)

	_, err = execute(t, "", "factorial", "abc")
	require.Error(t, err)

	_, err = execute(t, "", "price", "10")
	require.Error(t, err)
}

func TestExerciseReadsStdin(t *testing.T) {
	out, err := execute(t, "4\n", "factorial")
	require.NoError(t, err)
	require.Equal(t, "Enter a number: The factorial of 4 is 24\n", out)
}

func TestExerciseStdinEndsEarly(t *testing.T) {
	out, err := execute(t, "", "verify")
	require.NoError(t, err)
	require.Equal(t, "Enter a number: ", out)
}

func TestRootHeadless(t *testing.T) {
	out, err := execute(t, "sign\n-1\nY\nfactorial\n6\n")
	require.NoError(t, err)
	require.Contains(t, out, "Negative\n")
	require.Contains(t, out, "The factorial of 6 is 720\n")
}

func TestManifest(t *testing.T) {
	out, err := execute(t, "", "manifest")
	require.NoError(t, err)

	var tools []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tools))
	require.Len(t, tools, 4)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool["name"].(string))
	}
	require.Equal(t, []string{"factorial", "price", "sign", "verify"}, names)
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "", "--log-level", "debug", "config", "--show")
	require.NoError(t, err)
	require.Contains(t, out, `"log_level": "debug"`)
	require.Contains(t, out, `"max_attempts": 3`)
	require.Contains(t, out, `"color": false`)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "trace", "verify", "1")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	require.Contains(t, out, version)
}
