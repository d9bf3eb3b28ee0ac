package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Default sanitizer contract
const (
	DefaultSentinel = "NONE"
	DefaultMaxChars = 5
	DefaultMaxWords = 3
)

// SanitizerConfig struct - Sentinels and output caps for both prediction modes
type SanitizerConfig struct {
	CharSentinel string
	WordSentinel string
	MaxChars     int
	MaxWords     int
}

// Sanitizer turns raw model text into a bounded, validated PredictionList.
// It never returns an error: anything out of contract becomes an empty list
// and the reason is reported through the Outcome.
type Sanitizer struct {
	config SanitizerConfig
}

// NewSanitizer func - Creates a sanitizer, filling zero values with defaults
func NewSanitizer(config SanitizerConfig) *Sanitizer {
	if config.CharSentinel == "" {
		config.CharSentinel = DefaultSentinel
	}
	if config.WordSentinel == "" {
		config.WordSentinel = DefaultSentinel
	}
	if config.MaxChars <= 0 {
		config.MaxChars = DefaultMaxChars
	}
	if config.MaxWords <= 0 {
		config.MaxWords = DefaultMaxWords
	}
	return &Sanitizer{config: config}
}

// Config returns the effective configuration
func (s *Sanitizer) Config() SanitizerConfig {
	return s.config
}

// SanitizeChars validates a character-mode answer.
// Kept symbols are single ASCII letters or digits, BACKSPACE or SPACE.
func (s *Sanitizer) SanitizeChars(raw string) (PredictionList, Outcome) {
	return s.sanitize(raw, s.config.CharSentinel, s.config.MaxChars, IsCharSymbol)
}

// SanitizeWords validates a word-mode answer against the allow-list
func (s *Sanitizer) SanitizeWords(raw string, allow WordAllowList) (PredictionList, Outcome) {
	return s.sanitize(raw, s.config.WordSentinel, s.config.MaxWords, allow.Contains)
}

func (s *Sanitizer) sanitize(raw, sentinel string, limit int, keep func(string) bool) (PredictionList, Outcome) {
	text := strings.TrimSpace(raw)
	if text == sentinel {
		return EmptyPredictions(), OutcomeNoPrediction
	}

	pairs, err := ParsePredictionPairs(text)
	if err != nil {
		logrus.Debugf("Discarding model answer: %v", err)
		return EmptyPredictions(), OutcomeMalformed
	}

	result := make(PredictionList, 0, limit)
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if len(result) == limit {
			break
		}
		if !keep(p.Symbol) {
			logrus.Debugf("Dropping out-of-contract symbol %q", p.Symbol)
			continue
		}
		if _, dup := seen[p.Symbol]; dup {
			continue
		}
		seen[p.Symbol] = struct{}{}
		result = append(result, p)
	}
	return result, OutcomeOK
}

// IsCharSymbol reports whether symbol is a valid character-mode prediction
func IsCharSymbol(symbol string) bool {
	if symbol == TokenBackspace || symbol == TokenSpace {
		return true
	}
	if len(symbol) != 1 {
		return false
	}
	c := symbol[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// ParsePredictionPairs decodes the canonical answer grammar:
//
//	answer := "[" [ pair { "," pair } ] "]"
//	pair   := "[" json-string "," json-number "]"
//
// optionally wrapped in one markdown code fence. Any deviation is an error
// wrapping ErrMalformedCompletion.
func ParsePredictionPairs(text string) ([]Prediction, error) {
	text = stripCodeFence(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrMalformedCompletion)
	}

	dec := json.NewDecoder(strings.NewReader(text))
	var elements []json.RawMessage
	if err := dec.Decode(&elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}
	if elements == nil {
		return nil, fmt.Errorf("%w: answer is not an array", ErrMalformedCompletion)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after array", ErrMalformedCompletion)
	}

	pairs := make([]Prediction, 0, len(elements))
	for i, el := range elements {
		var tuple []json.RawMessage
		if err := json.Unmarshal(el, &tuple); err != nil || len(tuple) != 2 {
			return nil, fmt.Errorf("%w: element %d is not a [symbol, confidence] pair", ErrMalformedCompletion, i)
		}
		var p Prediction
		if !isJSONString(tuple[0]) || json.Unmarshal(tuple[0], &p.Symbol) != nil {
			return nil, fmt.Errorf("%w: element %d symbol is not a string", ErrMalformedCompletion, i)
		}
		if !isJSONNumber(tuple[1]) || json.Unmarshal(tuple[1], &p.Confidence) != nil {
			return nil, fmt.Errorf("%w: element %d confidence is not a number", ErrMalformedCompletion, i)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	// drop an info string such as "json" on the opening fence line
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 && !strings.ContainsAny(inner[:nl], "[]") {
		inner = inner[nl+1:]
	}
	return strings.TrimSpace(inner)
}

func isJSONString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'))
}
