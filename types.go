package squadeval

// Answer is one annotated answer span for a question.
type Answer struct {
	Text        string `json:"text"`
	AnswerStart int    `json:"answer_start"`
}

// QA is a single question with its annotated answers. An empty Answers
// list marks the question unanswerable.
type QA struct {
	ID               string   `json:"id"`
	Question         string   `json:"question"`
	Answers          []Answer `json:"answers"`
	PlausibleAnswers []Answer `json:"plausible_answers,omitempty"`
	IsImpossible     bool     `json:"is_impossible,omitempty"`
}

// Paragraph groups the questions asked against one context passage.
type Paragraph struct {
	Context string `json:"context"`
	QAs     []QA   `json:"qas"`
}

// Article is one titled collection of paragraphs.
type Article struct {
	Title      string      `json:"title"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Dataset is the in-memory form of a SQuAD 2.0 style evaluation set.
type Dataset []Article

// Predictions maps question id to predicted answer text. An empty
// string predicts "no answer".
type Predictions map[string]string

// NoAnswerProbs maps question id to the model's predicted probability
// that the question is unanswerable. Ids not present default to 0,
// meaning the model always answers.
type NoAnswerProbs map[string]float64

// HasAnswerByID derives the has-answer classification for every
// question in the dataset: true when the question carries at least one
// gold answer. The result is the immutable ground truth for a run.
func HasAnswerByID(dataset Dataset) map[string]bool {
	hasAns := make(map[string]bool)
	for _, art := range dataset {
		for _, p := range art.Paragraphs {
			for _, qa := range p.QAs {
				hasAns[qa.ID] = len(qa.Answers) > 0
			}
		}
	}
	return hasAns
}
