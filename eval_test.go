package squadeval

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"reflect"
	"testing"
)

// testDataset covers the interesting score shapes: an exact match, a
// correctly rejected unanswerable question, a partial overlap, a wrong
// answer on an unanswerable question, and a question with no
// prediction at all.
func testDataset() Dataset {
	return Dataset{
		{
			Title: "capitals",
			Paragraphs: []Paragraph{
				{
					Context: "Paris is the capital of France.",
					QAs: []QA{
						{ID: "q1", Question: "What is the capital of France?", Answers: []Answer{
							{Text: "Paris", AnswerStart: 0},
							{Text: "paris.", AnswerStart: 0},
						}},
						{ID: "q2", Question: "What is the capital of the Moon?", IsImpossible: true},
					},
				},
			},
		},
		{
			Title: "animals",
			Paragraphs: []Paragraph{
				{
					Context: "The blue whale is the largest animal.",
					QAs: []QA{
						{ID: "q3", Question: "What is the largest animal?", Answers: []Answer{{Text: "blue whale"}}},
						{ID: "q4", Question: "What is the smallest animal?", IsImpossible: true},
						{ID: "q5", Question: "Which letter is first?", Answers: []Answer{{Text: "x"}}},
					},
				},
			},
		},
	}
}

func testPredictions() Predictions {
	// q5 intentionally has no prediction.
	return Predictions{
		"q1": "Paris",
		"q2": "",
		"q3": "whale",
		"q4": "something",
	}
}

func testNoAnswerProbs() NoAnswerProbs {
	return NoAnswerProbs{"q1": 0.1, "q2": 0.9, "q3": 0.2, "q4": 0.8}
}

func quietEvaluator(opts ...Option) *Evaluator {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return New(opts...)
}

func wantMetric(t *testing.T, s *Summary, key string, want float64) {
	t.Helper()
	got, ok := s.Get(key)
	if !ok {
		t.Errorf("summary missing %q", key)
		return
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("summary[%q] = %v, want %v", key, got, want)
	}
}

func TestEvaluate(t *testing.T) {
	eval := quietEvaluator(WithPRAnalysis())
	summary, err := eval.Evaluate(testDataset(), testPredictions(), testNoAnswerProbs())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	wantMetric(t, summary, "exact", 50)
	wantMetric(t, summary, "f1", 100*(1+1+2.0/3.0+0)/4)
	wantMetric(t, summary, "total", 4)

	wantMetric(t, summary, "HasAns_exact", 50)
	wantMetric(t, summary, "HasAns_f1", 100*(1+2.0/3.0)/2)
	wantMetric(t, summary, "HasAns_total", 2)
	wantMetric(t, summary, "NoAns_exact", 50)
	wantMetric(t, summary, "NoAns_f1", 50)
	wantMetric(t, summary, "NoAns_total", 2)

	wantMetric(t, summary, "best_exact", 75)
	wantMetric(t, summary, "best_exact_thresh", 0.1)
	wantMetric(t, summary, "best_f1", 100*(2+1+2.0/3.0)/4)
	wantMetric(t, summary, "best_f1_thresh", 0.2)

	wantMetric(t, summary, "pr_exact_ap", 100.0/3.0)
	wantMetric(t, summary, "pr_f1_ap", 100*14.0/27.0)
	wantMetric(t, summary, "pr_oracle_ap", 200.0/3.0)

	wantKeys := []string{
		"exact", "f1", "total",
		"HasAns_exact", "HasAns_f1", "HasAns_total",
		"NoAns_exact", "NoAns_f1", "NoAns_total",
		"best_exact", "best_exact_thresh", "best_f1", "best_f1_thresh",
		"pr_exact_ap", "pr_f1_ap", "pr_oracle_ap",
	}
	if got := summary.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("summary keys = %v, want %v", got, wantKeys)
	}
}

func TestEvaluateWithoutProbs(t *testing.T) {
	summary, err := quietEvaluator().Evaluate(testDataset(), testPredictions(), nil)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	wantMetric(t, summary, "exact", 50)
	wantMetric(t, summary, "total", 4)

	for _, key := range []string{"best_exact", "best_f1", "pr_exact_ap"} {
		if _, ok := summary.Get(key); ok {
			t.Errorf("summary unexpectedly contains %q without probabilities", key)
		}
	}
}

func TestEvaluateSubsetOmittedWhenEmpty(t *testing.T) {
	dataset := Dataset{{Paragraphs: []Paragraph{{QAs: []QA{
		{ID: "q1", IsImpossible: true},
		{ID: "q2", IsImpossible: true},
	}}}}}
	preds := Predictions{"q1": "", "q2": ""}

	summary, err := quietEvaluator().Evaluate(dataset, preds, nil)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	wantMetric(t, summary, "exact", 100)
	wantMetric(t, summary, "NoAns_total", 2)
	if _, ok := summary.Get("HasAns_total"); ok {
		t.Error("summary contains HasAns_* for a dataset without answerable questions")
	}
}

func TestEvaluateNoScoredQuestions(t *testing.T) {
	_, err := quietEvaluator().Evaluate(testDataset(), Predictions{}, nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Evaluate() error = %v, want ErrNoQuestions", err)
	}
}

func TestEvaluateSkipsPRWithoutAnswerable(t *testing.T) {
	dataset := Dataset{{Paragraphs: []Paragraph{{QAs: []QA{
		{ID: "q1", IsImpossible: true},
	}}}}}
	preds := Predictions{"q1": ""}

	summary, err := quietEvaluator(WithPRAnalysis()).Evaluate(dataset, preds, NoAnswerProbs{"q1": 0.5})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if _, ok := summary.Get("pr_exact_ap"); ok {
		t.Error("summary contains pr_exact_ap although the curve is undefined")
	}
	wantMetric(t, summary, "best_exact", 100)
}

type recordingPlotSink struct {
	paths  []string
	titles []string
}

func (r *recordingPlotSink) EmitPlot(points []PRPoint, path, title string) error {
	if len(points) == 0 {
		panic("plot sink received empty curve")
	}
	r.paths = append(r.paths, path)
	r.titles = append(r.titles, title)
	return nil
}

type recordingScoreSink struct {
	scores map[string]float64
	path   string
}

func (r *recordingScoreSink) Persist(scores map[string]float64, path string) error {
	r.scores = scores
	r.path = path
	return nil
}

func TestEvaluateSinks(t *testing.T) {
	plots := &recordingPlotSink{}
	scores := &recordingScoreSink{}

	eval := quietEvaluator(
		WithPlotSink(plots, "out/images"),
		WithScoreSink(scores, "out/f1_scores.json"),
	)
	if _, err := eval.Evaluate(testDataset(), testPredictions(), testNoAnswerProbs()); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	wantPaths := []string{
		filepath.Join("out/images", "pr_exact.png"),
		filepath.Join("out/images", "pr_f1.png"),
		filepath.Join("out/images", "pr_oracle.png"),
	}
	if !reflect.DeepEqual(plots.paths, wantPaths) {
		t.Errorf("plot paths = %v, want %v", plots.paths, wantPaths)
	}

	if scores.path != "out/f1_scores.json" {
		t.Errorf("score path = %q, want %q", scores.path, "out/f1_scores.json")
	}
	// Default threshold is 1.0, so the persisted map equals the raw F1
	// scores for in-range probabilities.
	want := map[string]float64{"q1": 1, "q2": 1, "q3": 2.0 / 3.0, "q4": 0}
	if !reflect.DeepEqual(scores.scores, want) {
		t.Errorf("persisted scores = %v, want %v", scores.scores, want)
	}
}

func TestHasAnswerByID(t *testing.T) {
	hasAns := HasAnswerByID(testDataset())

	want := map[string]bool{"q1": true, "q2": false, "q3": true, "q4": false, "q5": true}
	if !reflect.DeepEqual(hasAns, want) {
		t.Errorf("HasAnswerByID() = %v, want %v", hasAns, want)
	}
}
