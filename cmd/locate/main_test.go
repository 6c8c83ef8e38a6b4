package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/poiesic/locate/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runApp runs the locate app with args and returns what it wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"locate"}, args...))
	return out.String(), err
}

func TestLocateCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "sample collection without arguments",
			args: nil,
			want: "Target: a\nCollection: a, b, c, \nResult: a\n",
		},
		{
			name: "int found",
			args: []string{"--target", "4", "0", "1", "2", "4", "8", "16"},
			want: "Target: 4\nCollection: 0, 1, 2, 4, 8, 16, \nResult: 4\n",
		},
		{
			name: "int not found",
			args: []string{"--target", "5", "1", "3"},
			want: "Target: 5\nCollection: 1, 3, \nNot found\n",
		},
		{
			name: "negative numbers after terminator",
			args: []string{"--target", "-3", "--", "-5", "-3", "0"},
			want: "Target: -3\nCollection: -5, -3, 0, \nResult: -3\n",
		},
		{
			name: "float found",
			args: []string{"-t", "float", "--target", "1.0", "0.0", "1.0", "2.0"},
			want: "Target: 1\nCollection: 0, 1, 2, \nResult: 1\n",
		},
		{
			name: "float not found",
			args: []string{"--type", "float", "--target", "3.14", "0.0", "1.0", "3.0"},
			want: "Target: 3.14\nCollection: 0, 1, 3, \nNot found\n",
		},
		{
			name: "char found",
			args: []string{"-t", "char", "--target", "b", "a", "b", "c"},
			want: "Target: b\nCollection: a, b, c, \nResult: b\n",
		},
		{
			name: "string found",
			args: []string{"-t", "string", "--target", "bee", "ant", "bee", "wasp"},
			want: "Target: bee\nCollection: ant, bee, wasp, \nResult: bee\n",
		},
		{
			name: "empty collection",
			args: []string{"--target", "0"},
			want: "Target: 0\nCollection: \nNot found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLocateCommandValidation(t *testing.T) {
	t.Run("unsorted collection is rejected", func(t *testing.T) {
		_, err := runApp(t, "--target", "1", "3", "1", "2")
		require.Error(t, err)
		assert.ErrorIs(t, err, search.ErrUnsortedCollection)
	})

	t.Run("unsorted collection allowed when check disabled", func(t *testing.T) {
		out, err := runApp(t, "--check-sorted=false", "--target", "1", "3", "1", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Collection: 3, 1, 2, ")
	})

	t.Run("missing target fails", func(t *testing.T) {
		_, err := runApp(t, "1", "2", "3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "target is required")
	})

	t.Run("unknown type fails", func(t *testing.T) {
		_, err := runApp(t, "--type", "complex", "--target", "1", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid element type")
	})

	t.Run("malformed element fails", func(t *testing.T) {
		_, err := runApp(t, "--target", "1", "1", "two")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid element")
	})

	t.Run("malformed target fails", func(t *testing.T) {
		_, err := runApp(t, "-t", "char", "--target", "ab", "a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid target")
		assert.Contains(t, err.Error(), "not a single character")
	})
}

func TestLocateCommandFlags(t *testing.T) {
	app := newApp()

	find := func(name string) cli.Flag {
		for _, flag := range app.Flags {
			for _, n := range flag.Names() {
				if n == name {
					return flag
				}
			}
		}
		return nil
	}

	t.Run("type defaults to int", func(t *testing.T) {
		f, ok := find("type").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "int", f.Value)
		assert.Equal(t, []string{"t"}, f.Aliases)
	})

	t.Run("check-sorted defaults to true", func(t *testing.T) {
		f, ok := find("check-sorted").(*cli.BoolFlag)
		require.True(t, ok)
		assert.True(t, f.Value)
	})

	t.Run("target has no default", func(t *testing.T) {
		f, ok := find("target").(*cli.StringFlag)
		require.True(t, ok)
		assert.Empty(t, f.Value)
		assert.False(t, f.Required)
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				_, err := runApp(t, "--log-level", level)
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "invalid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("debug level logs searches", func(t *testing.T) {
		defer slog.SetDefault(slog.Default())

		var out, logs bytes.Buffer
		app := newApp()
		app.Writer = &out
		app.ErrWriter = &logs

		err := app.Run([]string{"locate", "-l", "debug", "--target", "2", "1", "2", "3"})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Result: 2")
		assert.Contains(t, logs.String(), "search finished")
		assert.Contains(t, logs.String(), "probes=1")
	})
}
