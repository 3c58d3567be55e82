package squadeval

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func TestRawScores(t *testing.T) {
	eval := quietEvaluator()

	exact, f1 := eval.RawScores(testDataset(), testPredictions())

	wantExact := map[string]float64{"q1": 1, "q2": 1, "q3": 0, "q4": 0}
	if !reflect.DeepEqual(exact, wantExact) {
		t.Errorf("exact scores = %v, want %v", exact, wantExact)
	}

	wantF1 := map[string]float64{"q1": 1, "q2": 1, "q3": 2.0 / 3.0, "q4": 0}
	for qid, want := range wantF1 {
		if math.Abs(f1[qid]-want) > 1e-9 {
			t.Errorf("f1[%q] = %v, want %v", qid, f1[qid], want)
		}
	}
	if _, ok := exact["q5"]; ok {
		t.Error("q5 scored despite missing prediction")
	}
}

func TestRawScoresMaxOverGolds(t *testing.T) {
	dataset := Dataset{{Paragraphs: []Paragraph{{QAs: []QA{
		{ID: "q1", Answers: []Answer{{Text: "x b c"}, {Text: "b"}}},
	}}}}}

	eval := quietEvaluator()
	exact, f1 := eval.RawScores(dataset, Predictions{"q1": "b"})

	if exact["q1"] != 1 {
		t.Errorf("exact = %v, want 1 (second gold matches)", exact["q1"])
	}
	if f1["q1"] != 1 {
		t.Errorf("f1 = %v, want 1 (second gold matches)", f1["q1"])
	}
}

func TestRawScoresEmptyNormalizingGolds(t *testing.T) {
	// Every gold normalizes to nothing, so the question counts as
	// unanswerable and only the empty prediction is correct.
	dataset := Dataset{{Paragraphs: []Paragraph{{QAs: []QA{
		{ID: "q1", Answers: []Answer{{Text: "the"}, {Text: "..."}}},
		{ID: "q2", Answers: []Answer{{Text: "an"}}},
	}}}}}
	preds := Predictions{"q1": "", "q2": "something"}

	eval := quietEvaluator()
	exact, f1 := eval.RawScores(dataset, preds)

	if exact["q1"] != 1 || f1["q1"] != 1 {
		t.Errorf("q1 = (%v, %v), want (1, 1)", exact["q1"], f1["q1"])
	}
	if exact["q2"] != 0 || f1["q2"] != 0 {
		t.Errorf("q2 = (%v, %v), want (0, 0)", exact["q2"], f1["q2"])
	}
}

func TestRawScoresParallelMatchesSerial(t *testing.T) {
	var dataset Dataset
	preds := Predictions{}
	for i := 0; i < 40; i++ {
		qid := fmt.Sprintf("q%d", i)
		qa := QA{ID: qid, Answers: []Answer{{Text: fmt.Sprintf("answer %d", i)}}}
		if i%5 == 0 {
			qa.Answers = nil
		}
		dataset = append(dataset, Article{Paragraphs: []Paragraph{{QAs: []QA{qa}}}})

		switch i % 3 {
		case 0:
			preds[qid] = fmt.Sprintf("answer %d", i)
		case 1:
			preds[qid] = "answer"
		default:
			preds[qid] = ""
		}
	}

	serialExact, serialF1 := quietEvaluator().RawScores(dataset, preds)
	parallelExact, parallelF1 := quietEvaluator(WithParallelism(4)).RawScores(dataset, preds)

	if !reflect.DeepEqual(serialExact, parallelExact) {
		t.Errorf("parallel exact scores differ from serial:\n%v\n%v", parallelExact, serialExact)
	}
	if !reflect.DeepEqual(serialF1, parallelF1) {
		t.Errorf("parallel f1 scores differ from serial:\n%v\n%v", parallelF1, serialF1)
	}
}
