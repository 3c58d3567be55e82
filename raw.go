package squadeval

import (
	"sync"

	"github.com/jamesainslie/go-squadeval/answer"
)

// goldCandidates returns the gold answer texts of qa whose normalized
// form is non-empty. Questions where nothing remains are genuinely
// unanswerable: the single empty string is the only correct answer.
func goldCandidates(qa QA) []string {
	var golds []string
	for _, a := range qa.Answers {
		if answer.Normalize(a.Text) != "" {
			golds = append(golds, a.Text)
		}
	}
	if len(golds) == 0 {
		golds = []string{""}
	}
	return golds
}

// scoreQuestion scores pred against every gold candidate of qa and
// keeps the maximum, so any acceptable answer may match.
func scoreQuestion(qa QA, pred string) (exact, f1 float64) {
	for _, gold := range goldCandidates(qa) {
		if answer.ExactMatch(gold, pred) {
			exact = 1
		}
		if s := answer.F1(gold, pred); s > f1 {
			f1 = s
		}
	}
	return exact, f1
}

// RawScores computes per-question exact-match and F1 scores for every
// question in the dataset that has a prediction. Questions without a
// prediction are logged and excluded from both result maps.
func (e *Evaluator) RawScores(dataset Dataset, preds Predictions) (exact, f1 map[string]float64) {
	exact = make(map[string]float64)
	f1 = make(map[string]float64)

	if e.workers > 1 {
		e.rawScoresParallel(dataset, preds, exact, f1)
		return exact, f1
	}

	for _, art := range dataset {
		for _, p := range art.Paragraphs {
			e.scoreParagraph(p, preds, exact, f1)
		}
	}
	return exact, f1
}

func (e *Evaluator) scoreParagraph(p Paragraph, preds Predictions, exact, f1 map[string]float64) {
	for _, qa := range p.QAs {
		pred, ok := preds[qa.ID]
		if !ok {
			e.logger.Warn("missing prediction", "qid", qa.ID)
			continue
		}
		em, fs := scoreQuestion(qa, pred)
		exact[qa.ID] = em
		f1[qa.ID] = fs
	}
}

// rawScoresParallel distributes paragraphs across e.workers goroutines.
// Every question id is written by exactly one worker, so merging the
// per-worker maps is a disjoint union and the result is identical to
// the serial path.
func (e *Evaluator) rawScoresParallel(dataset Dataset, preds Predictions, exact, f1 map[string]float64) {
	paragraphs := make(chan Paragraph)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			localExact := make(map[string]float64)
			localF1 := make(map[string]float64)
			for p := range paragraphs {
				e.scoreParagraph(p, preds, localExact, localF1)
			}
			mu.Lock()
			for qid, v := range localExact {
				exact[qid] = v
			}
			for qid, v := range localF1 {
				f1[qid] = v
			}
			mu.Unlock()
		}()
	}

	for _, art := range dataset {
		for _, p := range art.Paragraphs {
			paragraphs <- p
		}
	}
	close(paragraphs)
	wg.Wait()
}
