// Package answer canonicalizes free-text answers and scores predicted
// answers against gold answers at the single-pair level.
package answer

// ExactMatch reports whether gold and pred are identical after
// normalization.
func ExactMatch(gold, pred string) bool {
	return Normalize(gold) == Normalize(pred)
}

// F1 computes token-overlap F1 between gold and pred in [0, 1].
//
// Tokens are counted as a bag: each shared token contributes up to the
// minimum of its occurrence counts on the two sides. When either side
// tokenizes to nothing, the score is 1 only if both sides are empty;
// an empty prediction must exactly match an empty gold to count.
func F1(gold, pred string) float64 {
	goldToks := Tokens(gold)
	predToks := Tokens(pred)

	if len(goldToks) == 0 || len(predToks) == 0 {
		if len(goldToks) == len(predToks) {
			return 1
		}
		return 0
	}

	remaining := make(map[string]int, len(goldToks))
	for _, t := range goldToks {
		remaining[t]++
	}

	numSame := 0
	for _, t := range predToks {
		if remaining[t] > 0 {
			remaining[t]--
			numSame++
		}
	}

	if numSame == 0 {
		return 0
	}

	precision := float64(numSame) / float64(len(predToks))
	recall := float64(numSame) / float64(len(goldToks))
	return 2 * precision * recall / (precision + recall)
}
