package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadTrace(t *testing.T) {
	in := `# time intensity
0.0 1
0.5,2.5   # inline comment

1.0;  4e3
1.5	-2
`
	tr, err := ReadTrace(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5, 1, 1.5}, tr.Time)
	require.Equal(t, []float64{1, 2.5, 4000, -2}, tr.Intensity)
}

func TestReadTraceErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line string
	}{
		{name: "one column", in: "0 1\n2\n", line: "line 2"},
		{name: "three columns", in: "0 1 2\n", line: "line 1"},
		{name: "bad time", in: "0 1\nx 2\n", line: "line 2"},
		{name: "bad intensity", in: "0 1\n1 2\n2 high\n", line: "line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTrace(strings.NewReader(tt.in))
			require.True(t, errors.Is(err, errMalformedTrace), "got %v", err)
			require.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestLoadTrace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tic.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 10\n2 20\n"), 0o600))

	tr, err := LoadTrace(path)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20}, tr.Intensity)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1\n"), 0o600))
	_, err = LoadTrace(bad)
	require.ErrorContains(t, err, "bad.txt")

	_, err = LoadTrace(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}
