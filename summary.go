package squadeval

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Summary is an ordered mapping from metric name to value. Iteration
// and JSON output preserve insertion order so textual output is stable
// across runs.
type Summary struct {
	keys   []string
	values map[string]float64
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{values: make(map[string]float64)}
}

// Set records v under key. A key keeps its original position when set
// again.
func (s *Summary) Set(key string, v float64) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value recorded under key.
func (s *Summary) Get(key string) (float64, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the metric names in insertion order.
func (s *Summary) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of recorded metrics.
func (s *Summary) Len() int {
	return len(s.keys)
}

// merge copies every entry of src into s under prefix.
func (s *Summary) merge(src *Summary, prefix string) {
	for _, k := range src.keys {
		s.Set(prefix+"_"+k, src.values[k])
	}
}

// MarshalJSON emits the metrics as a JSON object in insertion order.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(s.values[k], 'g', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// subsetSummary computes the mean exact and F1 scores (scaled to
// percentages) over qids, or over every scored question when qids is
// nil. The caller guarantees the subset is non-empty.
func subsetSummary(exact, f1 map[string]float64, qids []string) *Summary {
	if qids == nil {
		qids = make([]string, 0, len(exact))
		for qid := range exact {
			qids = append(qids, qid)
		}
	}

	var sumExact, sumF1 float64
	for _, qid := range qids {
		sumExact += exact[qid]
		sumF1 += f1[qid]
	}

	total := float64(len(qids))
	s := NewSummary()
	s.Set("exact", 100*sumExact/total)
	s.Set("f1", 100*sumF1/total)
	s.Set("total", total)
	return s
}
