package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onemax/internal/ga"
)

// popOf builds an evaluated population from bit patterns.
func popOf(t *testing.T, patterns ...string) *ga.Population {
	t.Helper()
	pop := &ga.Population{Members: make([]ga.Individual, len(patterns))}
	for i, s := range patterns {
		g := make(ga.Genome, len(s))
		for j, c := range s {
			g[j] = uint8(c - '0')
		}
		pop.Members[i].Genome = g
	}
	pop.Evaluate()
	return pop
}

func TestReporter_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	rep, err := NewReporter(&buf, "", "")
	require.NoError(t, err)
	defer rep.Close()

	rep.Generation(1, popOf(t, "1010", "0000"))
	rep.Generation(2, popOf(t, "1110", "1010"))

	pop := popOf(t, "1111", "1010")
	rep.Final(pop, 2)

	out := buf.String()
	assert.Contains(t, out, "Best fitness: 0.5000\n")
	assert.Contains(t, out, "Best fitness: 0.7500\n")
	assert.Contains(t, out, "1111 f=1.0000\n")
	assert.Contains(t, out, "1010 f=0.5000\n")
	assert.Contains(t, out, "Generations: 2\n")
}

func TestReporter_CSVAndJSONL(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "run.csv")
	jsonPath := filepath.Join(dir, "run.jsonl")

	var buf bytes.Buffer
	rep, err := NewReporter(&buf, csvPath, jsonPath)
	require.NoError(t, err)

	rep.Generation(1, popOf(t, "1010", "0000")) // best 0.5, mean 0.25
	rep.Generation(2, popOf(t, "1111", "1111")) // best 1.0, mean 1.0
	rep.Close()

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "generation,best_fitness,mean_fitness", lines[0])
	assert.Equal(t, "1,0.5000,0.2500", lines[1])
	assert.Equal(t, "2,1.0000,1.0000", lines[2])

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	jsonLines := strings.Split(strings.TrimSpace(string(jsonData)), "\n")
	require.Len(t, jsonLines, 2)

	var summary GenerationSummary
	require.NoError(t, json.Unmarshal([]byte(jsonLines[0]), &summary))
	assert.Equal(t, 1, summary.Generation)
	assert.Equal(t, 0.5, summary.BestFitness)
	assert.Equal(t, 0.25, summary.MeanFitness)
}

func TestNewReporter_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "nested", "run.csv")

	var buf bytes.Buffer
	rep, err := NewReporter(&buf, csvPath, "")
	require.NoError(t, err)
	rep.Close()

	_, err = os.Stat(csvPath)
	assert.NoError(t, err)
}
