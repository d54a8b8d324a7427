package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transcript(t *testing.T, name string) []string {
	t.Helper()

	var out bytes.Buffer
	require.NoError(t, runScenarios(&out, slogt.New(t), name))

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestIntKeysScenario(t *testing.T) {
	t.Parallel()

	want := []string{
		"Value 'a' inserted into map with key: 0",
		"Value 'b' inserted into map with key: 1",
		"Value 'c' inserted into map with key: 2",
		"Value 'd' inserted into map with key: 3",
		"key: 0 value: 'a'",
		"key: 1 value: 'b'",
		"key: 2 value: 'c'",
		"key: 3 value: 'd'",
		"Tried to insert again with key: 3 -> insertion result: false",
		"key: 0 value: 'a'",
		"key: 1 value: 'b'",
		"key: 2 value: 'c'",
		"key: 3 value: 'd'",
		"Checking GetOrInsertDefault. Key: 1 value: 'b'",
		"Checking GetOrInsertDefault. Key: 3 value: 'd'",
		`Checking GetOrInsertDefault. Key: 5 value: '\x00'`,
		"Checking Get. Key: 1 value: 'b'",
		"Checking Get. Key: 3 value: 'd'",
		"key not found: value for non existing key 7 requested",
		"key: 0 value: 'a'",
		"key: 1 value: 'b'",
		"key: 2 value: 'c'",
		"key: 3 value: 'd'",
		`key: 5 value: '\x00'`,
	}

	if diff := cmp.Diff(want, transcript(t, "ints")); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestStringKeysScenario(t *testing.T) {
	t.Parallel()

	want := []string{
		"key: Tim value: Mayers",
		"key: John value: Smith",
		"Mayers",
		"key: Tim value: Mayers",
		"key: John value: Changed name!",
	}

	if diff := cmp.Diff(want, transcript(t, "strings")); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestBoolKeysScenario(t *testing.T) {
	t.Parallel()

	lines := transcript(t, "bools")

	assert.Contains(t, lines, `for: true, "yes" --> inserted`)
	assert.Contains(t, lines, `for: false, "nie" --> not inserted`)
	assert.Contains(t, lines, "value for true is: yes")
	assert.Contains(t, lines, "value for false is: no")
	assert.Contains(t, lines, "key not found: value for true not specified")
	assert.Contains(t, lines, "key not found: value for false not specified")
	assert.Contains(t, lines, "true said in another way: yes, of course, naturally...")
	assert.Contains(t, lines, "'true' in polish: prawda")
	assert.Contains(t, lines, "'false' in polish without polish letters ;): nieprawda")
	assert.Equal(t, lines, transcript(t, "bools"), "bool scenario output must be stable")
	assert.Contains(t, lines, "BoolMap: None, TrackedBoolMap: Some(0)")
}

func TestIntKeyScenario(t *testing.T) {
	t.Parallel()

	want := []string{
		"VectorMap[uint, rune].IsIntKey(): false",
		"VectorMap[string, string].IsIntKey(): false",
		"VectorMap[int, string].IsIntKey(): true",
		"BoolMap[float64].IsIntKey(): false",
		"maps.IsIntKey[int](): true",
		"maps.IsIntKey[float64](): false",
	}

	if diff := cmp.Diff(want, transcript(t, "intkey")); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRunScenarios_All(t *testing.T) {
	t.Parallel()

	lines := transcript(t, "all")

	separators := 0

	for _, line := range lines {
		if line == "==============================" {
			separators++
		}
	}

	assert.Equal(t, scenarios().Len()-1, separators)
	assert.Equal(t, "Value 'a' inserted into map with key: 0", lines[0])
	assert.Equal(t, "maps.IsIntKey[float64](): false", lines[len(lines)-1])
}

func TestRunScenarios_Unknown(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := runScenarios(&out, slogt.New(t), "floats")
	require.ErrorIs(t, err, errUnknownScenario)
	assert.Contains(t, err.Error(), "floats")
	assert.Empty(t, out.String())
}

func TestRun(t *testing.T) { //nolint:paralleltest
	t.Run("help", func(t *testing.T) {
		var out, errOut bytes.Buffer

		assert.Equal(t, 0, run(&out, &errOut, []string{"--help"}))
		assert.Contains(t, out.String(), "Usage: vectormap-demo")
	})

	t.Run("single scenario with json logs", func(t *testing.T) {
		var out, errOut bytes.Buffer

		code := run(&out, &errOut, []string{"--scenario=strings", "--json", "--log-level=debug"})
		require.Equal(t, 0, code, errOut.String())
		assert.Contains(t, out.String(), "key: John value: Changed name!")
		assert.Contains(t, errOut.String(), `"msg":"string keys done"`)
		assert.Contains(t, errOut.String(), `"scenario":"strings"`)
	})

	t.Run("bad log level", func(t *testing.T) {
		var out, errOut bytes.Buffer

		assert.Equal(t, 1, run(&out, &errOut, []string{"--log-level=loud"}))
		assert.Contains(t, errOut.String(), "invalid log level")
	})

	t.Run("log level offsets are rejected", func(t *testing.T) {
		var out, errOut bytes.Buffer

		assert.Equal(t, 1, run(&out, &errOut, []string{"--log-level=info+2"}))
		assert.Contains(t, errOut.String(), "invalid log level")
	})

	t.Run("unknown flag", func(t *testing.T) {
		var out, errOut bytes.Buffer

		assert.Equal(t, 1, run(&out, &errOut, []string{"--nope"}))
		assert.Contains(t, errOut.String(), "error:")
	})

	t.Run("unknown scenario", func(t *testing.T) {
		var out, errOut bytes.Buffer

		assert.Equal(t, 1, run(&out, &errOut, []string{"--scenario", "floats"}))
		assert.Contains(t, errOut.String(), "unknown scenario")
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		var out, errOut bytes.Buffer

		assert.Equal(t, 1, run(&out, &errOut, []string{"extra"}))
		assert.Contains(t, errOut.String(), "unexpected arguments")
	})
}
