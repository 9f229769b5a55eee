package experiments

import (
	"encoding/csv"
	"jump61/experiments/metrics"
	"jump61/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1
}

func TestNewAgent(t *testing.T) {
	_, err := NewAgent(metrics.AgentConfig{Kind: "search", Depth: 2}, 0)
	require.NoError(t, err)
	_, err = NewAgent(metrics.AgentConfig{Kind: "search", Depth: 2, Eval: "charge"}, 0)
	require.NoError(t, err)
	_, err = NewAgent(metrics.AgentConfig{Kind: "random", Seed: 3}, 0)
	require.NoError(t, err)

	_, err = NewAgent(metrics.AgentConfig{Kind: "search", Eval: "material"}, 0)
	require.ErrorIs(t, err, ErrUnknownEvaluation)
	_, err = NewAgent(metrics.AgentConfig{Kind: "mcts"}, 0)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"depth", "evaluation", "random"} {
		_, err := Lookup(name)
		require.NoError(t, err, name)
	}
	_, err := Lookup("speedup")
	require.ErrorIs(t, err, ErrUnknownExperiment)
}

func TestExperimentDepthCap(t *testing.T) {
	require.Len(t, depthsUpTo(0), len(depthConfigs))
	require.Len(t, depthsUpTo(2), 2)
	require.Len(t, depthsUpTo(meta.MAX_SEARCH_DEPTH), len(depthConfigs))

	dir, err := RunDepthExperiment(t.TempDir(), 3, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 2, countRows(t, filepath.Join(dir, "game_records.csv")))
}

func TestRun(t *testing.T) {
	search := metrics.AgentConfig{ID: 1, Kind: "search", Depth: 1}
	random := metrics.AgentConfig{ID: 2, Kind: "random", Seed: 5}
	outDir := t.TempDir()

	dir, err := Run("smoke", 3, 2, []metrics.AgentConfig{search, random}, [][2]metrics.AgentConfig{{search, random}, {random, search}}, outDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outDir, "smoke"), filepath.Dir(dir))

	require.Equal(t, 2, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")))
	require.Positive(t, countRows(t, filepath.Join(dir, "move_records.csv")))
}

func TestRunRejectsUnknownAgents(t *testing.T) {
	bad := metrics.AgentConfig{ID: 1, Kind: "oracle"}
	_, err := Run("bad", 3, 1, []metrics.AgentConfig{bad}, [][2]metrics.AgentConfig{{bad, bad}}, t.TempDir())
	require.ErrorIs(t, err, ErrUnknownKind)
}
