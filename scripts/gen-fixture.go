//go:build ignore

// Generate a small synthetic evaluation fixture under testdata/sample.
// Usage: go run ./scripts/gen-fixture.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	squadeval "github.com/jamesainslie/go-squadeval"
)

func main() {
	outDir := filepath.Join("testdata", "sample")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	dataset := struct {
		Version string            `json:"version"`
		Data    squadeval.Dataset `json:"data"`
	}{
		Version: "v2.0",
		Data: squadeval.Dataset{
			{
				Title: "Geography",
				Paragraphs: []squadeval.Paragraph{
					{
						Context: "Paris is the capital of France. The Seine flows through it.",
						QAs: []squadeval.QA{
							{
								ID:       "geo-1",
								Question: "What is the capital of France?",
								Answers: []squadeval.Answer{
									{Text: "Paris", AnswerStart: 0},
									{Text: "Paris.", AnswerStart: 0},
								},
							},
							{
								ID:       "geo-2",
								Question: "Which river flows through Paris?",
								Answers:  []squadeval.Answer{{Text: "The Seine", AnswerStart: 32}},
							},
							{
								ID:           "geo-3",
								Question:     "What is the capital of the Atlantic Ocean?",
								Answers:      []squadeval.Answer{},
								IsImpossible: true,
								PlausibleAnswers: []squadeval.Answer{
									{Text: "Paris", AnswerStart: 0},
								},
							},
						},
					},
				},
			},
			{
				Title: "Zoology",
				Paragraphs: []squadeval.Paragraph{
					{
						Context: "The blue whale is the largest known animal.",
						QAs: []squadeval.QA{
							{
								ID:       "zoo-1",
								Question: "What is the largest known animal?",
								Answers:  []squadeval.Answer{{Text: "The blue whale", AnswerStart: 0}},
							},
							{
								ID:           "zoo-2",
								Question:     "Which animal is infinitely large?",
								Answers:      []squadeval.Answer{},
								IsImpossible: true,
							},
						},
					},
				},
			},
		},
	}

	preds := squadeval.Predictions{
		"geo-1": "Paris",
		"geo-2": "Seine",
		"geo-3": "Paris",
		"zoo-1": "the blue whale",
		"zoo-2": "",
	}

	naProbs := squadeval.NoAnswerProbs{
		"geo-1": 0.05,
		"geo-2": 0.15,
		"geo-3": 0.6,
		"zoo-1": 0.1,
		"zoo-2": 0.85,
	}

	writeJSON(filepath.Join(outDir, "dev.json"), dataset)
	writeJSON(filepath.Join(outDir, "predictions.json"), preds)
	writeJSON(filepath.Join(outDir, "na_probs.json"), naProbs)
}

func writeJSON(path string, v interface{}) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Println("Wrote", path)
}
