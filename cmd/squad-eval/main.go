package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	squadeval "github.com/jamesainslie/go-squadeval"
	"github.com/jamesainslie/go-squadeval/internal/evalio"
	"github.com/jamesainslie/go-squadeval/prplot"
)

func main() {
	var (
		dataPath   = flag.String("data", "", "Path to SQuAD 2.0 dataset file (required)")
		predPath   = flag.String("pred", "", "Path to predictions file (required)")
		naProbPath = flag.String("na-probs", "", "Path to no-answer probability file")
		naThresh   = flag.Float64("na-prob-thresh", 1.0, "No-answer probability threshold")
		plotDir    = flag.String("plot-dir", "", "Directory for precision-recall plots (needs -na-probs)")
		scoresOut  = flag.String("scores-out", "", "Path to write threshold-adjusted F1 scores")
		workers    = flag.Int("workers", 1, "Number of scoring workers")
		verbose    = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *dataPath == "" || *predPath == "" {
		fmt.Fprintln(os.Stderr, "error: -data and -pred required")
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	dataset, err := evalio.ReadDataset(*dataPath)
	if err != nil {
		fatal(err)
	}
	preds, err := evalio.ReadPredictions(*predPath)
	if err != nil {
		fatal(err)
	}

	var naProbs squadeval.NoAnswerProbs
	if *naProbPath != "" {
		naProbs, err = evalio.ReadNoAnswerProbs(*naProbPath)
		if err != nil {
			fatal(err)
		}
	}

	opts := []squadeval.Option{
		squadeval.WithNoAnswerThreshold(*naThresh),
		squadeval.WithParallelism(*workers),
		squadeval.WithLogger(logger),
	}
	if *plotDir != "" {
		opts = append(opts, squadeval.WithPlotSink(prplot.Renderer{}, *plotDir))
	}
	if *scoresOut != "" {
		opts = append(opts, squadeval.WithScoreSink(evalio.FileScoreSink{}, *scoresOut))
	}

	eval := squadeval.New(opts...)
	summary, err := eval.Evaluate(dataset, preds, naProbs)
	if err != nil {
		fatal(err)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
