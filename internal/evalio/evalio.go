// Package evalio loads evaluation inputs from JSON files and persists
// score mappings. It is the file-handling collaborator around the
// side-effect-free squadeval core.
package evalio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	squadeval "github.com/jamesainslie/go-squadeval"
)

// datasetFile mirrors the on-disk SQuAD 2.0 layout.
type datasetFile struct {
	Version string            `json:"version"`
	Data    squadeval.Dataset `json:"data"`
}

// ReadDataset loads a SQuAD 2.0 dataset file.
func ReadDataset(path string) (squadeval.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var f datasetFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return f.Data, nil
}

// ReadPredictions loads a predictions file, a flat JSON object mapping
// question id to predicted answer text.
func ReadPredictions(path string) (squadeval.Predictions, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}

	var preds squadeval.Predictions
	if err := json.Unmarshal(raw, &preds); err != nil {
		return nil, fmt.Errorf("parse predictions %s: %w", path, err)
	}
	return preds, nil
}

// ReadNoAnswerProbs loads a no-answer probability file, a flat JSON
// object mapping question id to a probability in [0, 1].
func ReadNoAnswerProbs(path string) (squadeval.NoAnswerProbs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read no-answer probabilities: %w", err)
	}

	var probs squadeval.NoAnswerProbs
	if err := json.Unmarshal(raw, &probs); err != nil {
		return nil, fmt.Errorf("parse no-answer probabilities %s: %w", path, err)
	}
	return probs, nil
}

// FileScoreSink persists score mappings as JSON files, creating parent
// directories as needed. It implements squadeval.ScoreSink.
type FileScoreSink struct{}

// Persist writes scores to path as a flat JSON object.
func (FileScoreSink) Persist(scores map[string]float64, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	raw, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}
