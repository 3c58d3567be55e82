package squadeval

// PRPoint is one operating point on a precision-recall curve.
type PRPoint struct {
	Precision float64
	Recall    float64
}

// PRCurve is the trace produced by sweeping the no-answer decision
// threshold, plus the step-function area under it.
type PRCurve struct {
	Points []PRPoint
	// AveragePrecision is in [0, 1].
	AveragePrecision float64
}

// PrecisionRecall sweeps the no-answer decision threshold from most
// confidently answerable to most confidently unanswerable, admitting
// one scored question at a time. True positives accumulate from the
// raw scores of has-answer questions; at each step precision is the
// true-positive mass over questions admitted so far and recall is the
// mass over numTruePos, the count of answerable questions in the
// ground truth.
//
// A point is emitted only when the probability changes to the next id
// (equal probabilities form a single step) or at the end of the sweep.
// The curve starts at the implicit (precision 1, recall 0) point and
// average precision is the step-function area under the emitted points.
//
// Returns ErrNoAnswerable when numTruePos is zero: the curve is
// undefined and the analysis must be skipped rather than zeroed.
func PrecisionRecall(scores map[string]float64, naProbs NoAnswerProbs, numTruePos int, hasAns map[string]bool) (*PRCurve, error) {
	if numTruePos <= 0 {
		return nil, ErrNoAnswerable
	}

	qids := make([]string, 0, len(scores))
	for qid := range scores {
		qids = append(qids, qid)
	}
	sortByProb(qids, naProbs)

	curve := &PRCurve{Points: []PRPoint{{Precision: 1, Recall: 0}}}
	var truePos float64
	for i, qid := range qids {
		if hasAns[qid] {
			truePos += scores[qid]
		}
		if i+1 < len(qids) && naProbs[qid] == naProbs[qids[i+1]] {
			continue // same threshold step
		}
		p := truePos / float64(i+1)
		r := truePos / float64(numTruePos)
		prev := curve.Points[len(curve.Points)-1]
		curve.AveragePrecision += p * (r - prev.Recall)
		curve.Points = append(curve.Points, PRPoint{Precision: p, Recall: r})
	}

	return curve, nil
}
