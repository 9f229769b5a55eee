package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counts events", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddNode()
		c.AddClone()
		c.AddCutoff()
		m := c.Complete(-2)
		require.Equal(t, 3, m.Depth)
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.Clones)
		require.Equal(t, 1, m.Cutoffs)
		require.Equal(t, -2, m.Value)

		c.Start(1)
		require.Zero(t, c.Complete(0).Nodes, "start resets the counters")
	})

	t.Run("dummy only keeps the value", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNode()
		require.Equal(t, SearchMetric{Value: 5}, c.Complete(5))
	})
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "depth")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "depth"), filepath.Dir(w.Dir()))

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: "search", Depth: 3, Eval: "cells"},
		{ID: 2, Kind: "random", Seed: 7},
	}))
	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "kind", "depth", "eval", "seed"},
		{"1", "search", "3", "cells", "0"},
		{"2", "random", "0", "", "7"},
	}, rows)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 2,
		GameMetric: GameMetric{ID: "g", StartingPlayer: "red", Winner: "blue", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 12},
	}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "g", "1", "2", "red", "blue", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12"}, rows[1])

	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "red", Square: 0, SearchMetric: SearchMetric{Fallback: true}}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: "blue", Square: 4, SearchMetric: SearchMetric{Depth: 2, Nodes: 9, Clones: 8, Cutoffs: 1, Value: -1}}},
	}))
	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, "fallback", rows[0][10])
	require.Equal(t, []string{"1", "2", "blue", "4", "2", "0s", "9", "8", "1", "-1", "false"}, rows[2])
}
