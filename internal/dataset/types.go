package dataset

import (
	"encoding/json"
	"fmt"
)

// JSONL field names shared by ground-truth and prediction files.
const (
	FieldID       = "QA_number"
	FieldQuestion = "Question"
	FieldAnswer   = "Answer"
)

// Record is one parsed line of a JSONL file. All fields of the line are kept,
// not just the ones the matcher reads.
type Record map[string]any

// ID returns the record identifier, or "" when the field is absent or null.
func (r Record) ID() string {
	return r.stringField(FieldID)
}

// Question returns the question text, or "" when absent.
func (r Record) Question() string {
	return r.stringField(FieldQuestion)
}

// Answer returns the answer text, or "" when absent.
func (r Record) Answer() string {
	return r.stringField(FieldAnswer)
}

// stringField renders scalar values as text. Numbers keep their literal form
// because records are decoded with json.Number.
func (r Record) stringField(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprint(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

// RecordSet maps QA_number to the record that carried it.
type RecordSet map[string]Record

// AnswerPair joins a ground-truth record and a prediction record sharing an ID.
type AnswerPair struct {
	ID          string `json:"qa_number" yaml:"qa_number"`
	Question    string `json:"question,omitempty" yaml:"question,omitempty"`
	GroundTruth string `json:"ground_truth" yaml:"ground_truth"`
	Prediction  string `json:"prediction" yaml:"prediction"`
}
