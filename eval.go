package squadeval

import (
	"errors"
	"log/slog"
	"path/filepath"
)

// PlotSink renders a precision-recall trace to an image file. The sink
// owns path handling and file creation; the evaluator only supplies
// data. Implementations must be usable for independent calls with no
// shared drawing state.
type PlotSink interface {
	EmitPlot(points []PRPoint, path, title string) error
}

// ScoreSink persists a per-question score mapping.
type ScoreSink interface {
	Persist(scores map[string]float64, path string) error
}

// Evaluator scores prediction files against SQuAD 2.0 style annotated
// datasets. Each Evaluate call is a pure function of its inputs; an
// Evaluator is safe for concurrent use.
type Evaluator struct {
	naProbThresh float64
	workers      int
	prAnalysis   bool
	plotDir      string
	scorePath    string
	plots        PlotSink
	scores       ScoreSink
	logger       *slog.Logger
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Evaluator{
		naProbThresh: cfg.naProbThresh,
		workers:      cfg.workers,
		prAnalysis:   cfg.prAnalysis,
		plotDir:      cfg.plotDir,
		scorePath:    cfg.scorePath,
		plots:        cfg.plots,
		scores:       cfg.scores,
		logger:       cfg.logger,
	}
}

// Evaluate scores preds against dataset and aggregates the result into
// an ordered summary. naProbs may be nil, meaning the model always
// answers; the probability-dependent outputs (best_* and pr_*) are
// produced only when naProbs is supplied.
//
// The summary always carries exact, f1 and total, plus HasAns_* and
// NoAns_* triplets for whichever subsets are non-empty. Returns
// ErrNoQuestions when no question had a prediction.
func (e *Evaluator) Evaluate(dataset Dataset, preds Predictions, naProbs NoAnswerProbs) (*Summary, error) {
	hasAns := HasAnswerByID(dataset)

	probs := naProbs
	if probs == nil {
		probs = NoAnswerProbs{}
	}

	exactRaw, f1Raw := e.RawScores(dataset, preds)
	if len(exactRaw) == 0 {
		return nil, ErrNoQuestions
	}

	exactAdj := ApplyNoAnswerThreshold(exactRaw, probs, hasAns, e.naProbThresh)
	f1Adj := ApplyNoAnswerThreshold(f1Raw, probs, hasAns, e.naProbThresh)

	out := subsetSummary(exactAdj, f1Adj, nil)
	if subset := scoredSubset(exactAdj, hasAns, true); len(subset) > 0 {
		out.merge(subsetSummary(exactAdj, f1Adj, subset), "HasAns")
	}
	if subset := scoredSubset(exactAdj, hasAns, false); len(subset) > 0 {
		out.merge(subsetSummary(exactAdj, f1Adj, subset), "NoAns")
	}

	if naProbs != nil {
		bestExact, bestExactThresh := FindBestThreshold(preds, exactRaw, probs, hasAns)
		bestF1, bestF1Thresh := FindBestThreshold(preds, f1Raw, probs, hasAns)
		out.Set("best_exact", bestExact)
		out.Set("best_exact_thresh", bestExactThresh)
		out.Set("best_f1", bestF1)
		out.Set("best_f1_thresh", bestF1Thresh)

		if e.prAnalysis {
			if err := e.precisionRecallAnalysis(out, exactRaw, f1Raw, probs, hasAns); err != nil {
				if !errors.Is(err, ErrNoAnswerable) {
					return nil, err
				}
				e.logger.Warn("skipping precision-recall analysis", "reason", "no answerable questions")
			}
		}
	}

	if e.scores != nil && e.scorePath != "" {
		if err := e.scores.Persist(f1Adj, e.scorePath); err != nil {
			e.logger.Error("persisting scores", "path", e.scorePath, "error", err)
		}
	}

	return out, nil
}

// scoredSubset returns the scored question ids whose has-answer
// classification equals want.
func scoredSubset(scores map[string]float64, hasAns map[string]bool, want bool) []string {
	var qids []string
	for qid := range scores {
		if hasAns[qid] == want {
			qids = append(qids, qid)
		}
	}
	return qids
}

// precisionRecallAnalysis adds pr_exact_ap, pr_f1_ap and pr_oracle_ap
// to out and renders one curve per metric through the plot sink. The
// oracle curve scores every question by its ground truth alone, giving
// the ceiling for the binary answerable-versus-unanswerable task.
func (e *Evaluator) precisionRecallAnalysis(out *Summary, exactRaw, f1Raw map[string]float64, probs NoAnswerProbs, hasAns map[string]bool) error {
	numTruePos := 0
	for _, has := range hasAns {
		if has {
			numTruePos++
		}
	}
	if numTruePos == 0 {
		return ErrNoAnswerable
	}

	oracle := make(map[string]float64, len(exactRaw))
	for qid := range exactRaw {
		if hasAns[qid] {
			oracle[qid] = 1
		} else {
			oracle[qid] = 0
		}
	}

	curves := []struct {
		key    string
		scores map[string]float64
		file   string
		title  string
	}{
		{"pr_exact_ap", exactRaw, "pr_exact.png", "Precision-Recall curve for Exact Match score"},
		{"pr_f1_ap", f1Raw, "pr_f1.png", "Precision-Recall curve for F1 score"},
		{"pr_oracle_ap", oracle, "pr_oracle.png", "Oracle Precision-Recall curve (binary task of HasAns vs. NoAns)"},
	}
	for _, c := range curves {
		curve, err := PrecisionRecall(c.scores, probs, numTruePos, hasAns)
		if err != nil {
			return err
		}
		out.Set(c.key, 100*curve.AveragePrecision)

		if e.plots != nil {
			path := filepath.Join(e.plotDir, c.file)
			if err := e.plots.EmitPlot(curve.Points, path, c.title); err != nil {
				// Plotting is a side effect; a failed render does not
				// invalidate the computed metrics.
				e.logger.Error("emitting plot", "path", path, "error", err)
			}
		}
	}
	return nil
}
