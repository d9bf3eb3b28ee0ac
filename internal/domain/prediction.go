package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// PredictionMode represents what kind of symbol is being predicted
type PredictionMode string

const (
	// PredictionModeChar - Next character (or BACKSPACE / SPACE key)
	PredictionModeChar PredictionMode = "char"
	// PredictionModeWord - Next word chosen from a caller-supplied allow-list
	PredictionModeWord PredictionMode = "word"
)

// Reserved key tokens accepted in character mode alongside single characters
const (
	TokenBackspace = "BACKSPACE"
	TokenSpace     = "SPACE"
)

// Prediction is a single ranked candidate. Symbol is a character, a reserved
// token or a word; Confidence is the model-reported score, used for ordering only.
type Prediction struct {
	Symbol     string
	Confidence float64
}

// PredictionList is ordered highest confidence first, as reported by the model.
type PredictionList []Prediction

// EmptyPredictions returns a non-nil empty list so it encodes as [] rather than null.
func EmptyPredictions() PredictionList {
	return PredictionList{}
}

// WordAllowList struct - Set of words a word prediction may take
type WordAllowList struct {
	words map[string]struct{}
	order []string
}

// NewWordAllowList builds an allow-list from the caller slice.
// Blank entries are ignored and duplicates collapse; order of first appearance is kept.
func NewWordAllowList(words []string) WordAllowList {
	allow := WordAllowList{
		words: make(map[string]struct{}, len(words)),
		order: make([]string, 0, len(words)),
	}
	for _, w := range words {
		if isBlank(w) {
			continue
		}
		if _, ok := allow.words[w]; ok {
			continue
		}
		allow.words[w] = struct{}{}
		allow.order = append(allow.order, w)
	}
	return allow
}

// Contains reports exact (case-sensitive) membership
func (a WordAllowList) Contains(word string) bool {
	_, ok := a.words[word]
	return ok
}

// Len returns the number of distinct words
func (a WordAllowList) Len() int {
	return len(a.order)
}

// Words returns the distinct words in first-seen order
func (a WordAllowList) Words() []string {
	words := make([]string, len(a.order))
	copy(words, a.order)
	return words
}

// PredictionResult is the tagged result of one prediction request.
// Predictions is never nil; Outcome tells why it may be empty.
type PredictionResult struct {
	Mode        PredictionMode
	Predictions PredictionList
	Outcome     Outcome
	Err         error
	Provider    string
	Model       string
	Latency     time.Duration
}

// Empty reports whether the result carries no predictions
func (r *PredictionResult) Empty() bool {
	return r == nil || len(r.Predictions) == 0
}

// wordTerminators end the word being typed in character mode
const wordTerminators = ".!?,;:"

// IsWordFinished reports whether text ends in whitespace or sentence punctuation,
// in which case there is no current word to complete.
func IsWordFinished(text string) bool {
	r, size := utf8.DecodeLastRuneInString(text)
	if size == 0 {
		return false
	}
	return unicode.IsSpace(r) || strings.ContainsRune(wordTerminators, r)
}

// IsBlank reports whether text is empty or whitespace only
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func isBlank(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			return false
		}
	}
	return true
}
