// Package squadeval scores machine-generated answers against
// human-annotated references for SQuAD 2.0 style reading-comprehension
// benchmarks with unanswerable questions.
//
// # Quick Start
//
//	eval := squadeval.New()
//	summary, err := eval.Evaluate(dataset, preds, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, k := range summary.Keys() {
//	    v, _ := summary.Get(k)
//	    fmt.Printf("%s: %.2f\n", k, v)
//	}
//
// # No-Answer Probabilities
//
// When the model also reports a per-question probability that the
// question is unanswerable, pass the mapping as the third argument.
// The summary then additionally carries the best achievable exact and
// F1 scores with the thresholds that achieve them, and, when enabled
// via WithPRAnalysis or WithPlotSink, the average precision of the
// exact, F1 and oracle precision-recall curves.
//
// # Side Effects
//
// The evaluator itself never touches the filesystem. Plot rendering
// and score persistence go through the PlotSink and ScoreSink
// interfaces; see the prplot and internal/evalio packages for the
// bundled implementations.
package squadeval
