package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"onemax/internal/ga"
)

// Reporter handles all run output: a per-generation console line, an
// optional CSV file, an optional JSONL file, and the final population
// dump. It implements ga.Reporter.
type Reporter struct {
	out       io.Writer
	csvFile   *os.File
	csvWriter *csv.Writer
	jsonFile  *os.File
}

// NewReporter creates a reporter writing to out. Empty csvPath or
// jsonPath disables that file.
func NewReporter(out io.Writer, csvPath, jsonPath string) (*Reporter, error) {
	r := &Reporter{out: out}

	if csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
			return nil, err
		}
		f, err := os.Create(csvPath)
		if err != nil {
			return nil, err
		}
		r.csvFile = f
		r.csvWriter = csv.NewWriter(f)
		if err := r.csvWriter.Write([]string{"generation", "best_fitness", "mean_fitness"}); err != nil {
			f.Close()
			return nil, err
		}
	}

	if jsonPath != "" {
		if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
			r.Close()
			return nil, err
		}
		f, err := os.Create(jsonPath)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.jsonFile = f
	}

	return r, nil
}

// Close flushes and closes all log files
func (r *Reporter) Close() {
	if r.csvWriter != nil {
		r.csvWriter.Flush()
	}
	if r.csvFile != nil {
		r.csvFile.Close()
	}
	if r.jsonFile != nil {
		r.jsonFile.Close()
	}
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
	MeanFitness float64 `json:"mean_fitness"`
}

// Generation logs one evaluation step.
func (r *Reporter) Generation(gen int, pop *ga.Population) {
	var sum float64
	for _, m := range pop.Members {
		sum += m.Fitness
	}
	summary := GenerationSummary{
		Generation:  gen,
		BestFitness: pop.Best().Fitness,
		MeanFitness: sum / float64(pop.Size()),
	}

	fmt.Fprintf(r.out, "Best fitness: %.4f\n", summary.BestFitness)

	if r.csvWriter != nil {
		row := []string{
			strconv.Itoa(gen),
			fmt.Sprintf("%.4f", summary.BestFitness),
			fmt.Sprintf("%.4f", summary.MeanFitness),
		}
		r.csvWriter.Write(row)
		r.csvWriter.Flush()
	}

	if r.jsonFile != nil {
		line, _ := json.Marshal(summary)
		r.jsonFile.WriteString(string(line) + "\n")
	}
}

// Final prints the full population, one genome per line with its
// fitness, and the terminal generation count.
func (r *Reporter) Final(pop *ga.Population, gen int) {
	for _, m := range pop.Members {
		fmt.Fprintf(r.out, "%s f=%.4f\n", m.Genome, m.Fitness)
	}
	fmt.Fprintf(r.out, "Generations: %d\n", gen)
}
