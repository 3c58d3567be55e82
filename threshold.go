package squadeval

import "sort"

// ApplyNoAnswerThreshold overrides scores for questions whose no-answer
// probability strictly exceeds thresh: the model is then treated as
// predicting "no answer", which scores 1 on genuinely unanswerable
// questions and 0 otherwise. All other scores pass through unchanged.
// Ids missing from naProbs default to probability 0.
func ApplyNoAnswerThreshold(scores map[string]float64, naProbs NoAnswerProbs, hasAns map[string]bool, thresh float64) map[string]float64 {
	adjusted := make(map[string]float64, len(scores))
	for qid, s := range scores {
		if naProbs[qid] > thresh {
			if hasAns[qid] {
				adjusted[qid] = 0
			} else {
				adjusted[qid] = 1
			}
		} else {
			adjusted[qid] = s
		}
	}
	return adjusted
}

// sortByProb orders qids by ascending no-answer probability, breaking
// ties by id so sweeps are deterministic.
func sortByProb(qids []string, naProbs NoAnswerProbs) {
	sort.Slice(qids, func(i, j int) bool {
		pi, pj := naProbs[qids[i]], naProbs[qids[j]]
		if pi != pj {
			return pi < pj
		}
		return qids[i] < qids[j]
	})
}

// FindBestThreshold sweeps the no-answer decision threshold and returns
// the maximum achievable total score, as a percentage of all scored
// questions, together with the probability value that achieves it.
//
// The sweep starts from the all-reject baseline (every question
// predicted unanswerable, scoring one point per genuinely unanswerable
// question) and admits questions one at a time in ascending order of
// no-answer probability. Admitting a has-answer question adds its raw
// score; admitting a no-answer question costs a point when the stored
// prediction is non-empty, since the system then answered a question
// it should have rejected. Each candidate threshold is visited exactly
// once, so the sweep is O(n log n) in the sort rather than O(n^2).
// Ids absent from scores are skipped. The threshold stays at 0 unless
// some admission strictly beats the baseline.
func FindBestThreshold(preds Predictions, scores map[string]float64, naProbs NoAnswerProbs, hasAns map[string]bool) (bestScorePct, bestThresh float64) {
	if len(scores) == 0 {
		return 0, 0
	}

	numNoAns := 0
	for _, has := range hasAns {
		if !has {
			numNoAns++
		}
	}

	qids := make([]string, 0, len(hasAns))
	for qid := range hasAns {
		qids = append(qids, qid)
	}
	sortByProb(qids, naProbs)

	cur := float64(numNoAns)
	best := cur
	bestThresh = 0.0
	for _, qid := range qids {
		s, ok := scores[qid]
		if !ok {
			continue
		}
		if hasAns[qid] {
			cur += s
		} else if preds[qid] != "" {
			cur--
		}
		if cur > best {
			best = cur
			bestThresh = naProbs[qid]
		}
	}

	return 100 * best / float64(len(scores)), bestThresh
}
