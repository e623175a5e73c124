package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")

	out.Reset()
	require.NoError(t, run(context.Background(), &out, &out, nil))
	require.Contains(t, out.String(), "SCENARIO.hcl")
}

func TestRun_ParseErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--no-such-flag", "x.hcl"}, "flag provided but not defined: -no-such-flag"},
		{"bad format", []string{"-log-format", "xml", "x.hcl"}, "invalid log-format"},
		{"bad level", []string{"-log-level", "loud", "x.hcl"}, "invalid log-level"},
		{"two files", []string{"a.hcl", "b.hcl"}, "exactly one scenario file"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), &out, &out, tc.args)
			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRun_Terrain(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs,
		[]string{"-log-level", "info", "../../examples/terrain.hcl"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "ridge-crossing (astar): found")
	assert.Contains(t, out.String(), "ridge-crossing-diagonal (astar): found")
	assert.Contains(t, out.String(), "nearest-lake (find): '~' at (5,1)")
	assert.Contains(t, logs.String(), "Running scenario.")
}

func TestRun_IslandsJSONLogs(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs,
		[]string{"-log-format", "json", "-log-level", "debug", "../../examples/islands.hcl"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "island-1 (flood): 4 cells of '1'")
	assert.Contains(t, out.String(), "island-2 (flood8): 4 cells of '2'")
	assert.Contains(t, out.String(), "bridge (astar): found 2 steps, cost 3,")
	assert.Contains(t, out.String(), "water (components): 2 regions of '.', largest 11 cells")
	assert.Contains(t, logs.String(), `"msg":"Search finished."`)
}

func TestRun_BadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("map {\n  rows = [\"..\", \".\"]\n}\n"), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), &out, &out, []string{path})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "invalid map")
}

// keyedScreen presses a key as soon as it is initialised and remembers what
// was on screen when it was closed.
type keyedScreen struct {
	tcell.SimulationScreen
	atStart *rune
}

func (k keyedScreen) Init() error {
	if err := k.SimulationScreen.Init(); err != nil {
		return err
	}
	k.SetSize(40, 10)
	k.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	return nil
}

func (k keyedScreen) Fini() {
	*k.atStart, _, _, _ = k.GetContent(0, 0)
	k.SimulationScreen.Fini()
}

func TestRun_View(t *testing.T) {
	var atStart rune
	orig := newScreen
	newScreen = func() (tcell.Screen, error) {
		return keyedScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8"), atStart: &atStart}, nil
	}
	t.Cleanup(func() { newScreen = orig })

	var out bytes.Buffer
	err := run(context.Background(), &out, &out, []string{"-view", "../../examples/terrain.hcl"})
	require.NoError(t, err)
	require.Equal(t, 'S', atStart)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger("error", "text", &buf).Warn("hidden")
	require.Empty(t, buf.String())

	newLogger("debug", "json", &buf).Debug("shown", "k", "v")
	require.Contains(t, buf.String(), `"k":"v"`)
}
