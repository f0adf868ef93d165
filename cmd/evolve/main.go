package main

import (
	"flag"
	"fmt"
	"os"

	"onemax/internal/config"
	"onemax/internal/ga"
	"onemax/internal/logging"
	"onemax/internal/rng"
)

func main() {
	configPath := flag.String("config", "", "path to config file (empty = built-in defaults)")
	seed := flag.Int64("seed", 0, "override config seed (negative = seed from time)")
	generations := flag.Int("generations", -1, "override max generations (negative = use config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *generations >= 0 {
		cfg.GA.MaxGenerations = *generations
	}

	src := rng.New(cfg.Seed)
	if cfg.Seed < 0 {
		src = rng.NewFromTime()
	}

	reporter, err := logging.NewReporter(os.Stdout, cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating reporter: %v\n", err)
		os.Exit(1)
	}
	defer reporter.Close()

	params := cfg.Params()
	runner, err := ga.NewRunner(params, src, reporter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OneMax GA\n")
	fmt.Printf("Genome length: %d, Population: %d, Bottleneck: %d, Max generations: %d\n",
		params.GenomeLength, params.PopulationSize, params.Bottleneck, params.MaxGenerations)
	fmt.Printf("Seed: %d\n", cfg.Seed)
	fmt.Println("---")

	runner.Run()
}
