// Package parse interprets raw model replies into typed results. Which parser
// applies is decided solely by the task kind, never inferred from the reply
// content. Parsers are strict: a reply that does not match the expected shape
// fails with a ParseError instead of being repaired.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/harithravi/talklens/pkg/models"
)

// ParseError reports a model reply that did not match the expected shape for
// its task. The raw reply is deliberately not carried here so it can never
// leak into an HTTP response.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parsing model reply: " + e.Reason
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

const (
	categoryMarker    = "Category:"
	subcategoryMarker = "Subcategory:"
)

// Score parses the reply as a floating-point number.
func Score(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	score, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Reason: "reply is not numeric"}
	}
	return score, nil
}

// Label returns the reply trimmed of surrounding whitespace. Any non-empty
// string is accepted; there is no enumeration to validate against.
func Label(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ParseError{Reason: "reply is empty"}
	}
	return trimmed, nil
}

// Classification splits the reply into the fixed two-line shape:
//
//	Category: <category>
//	Subcategory: <subcategory>
//
// A reply with fewer than two lines, or with either marker missing, is a
// recognized failure mode and returns a ParseError.
func Classification(raw string) (models.Classification, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) < 2 {
		return models.Classification{}, &ParseError{Reason: "expected two lines, got fewer"}
	}

	categoryLine := strings.TrimSpace(lines[0])
	subcategoryLine := strings.TrimSpace(lines[1])

	if !strings.HasPrefix(categoryLine, categoryMarker) {
		return models.Classification{}, &ParseError{Reason: fmt.Sprintf("line 1 missing %q marker", categoryMarker)}
	}
	if !strings.HasPrefix(subcategoryLine, subcategoryMarker) {
		return models.Classification{}, &ParseError{Reason: fmt.Sprintf("line 2 missing %q marker", subcategoryMarker)}
	}

	return models.Classification{
		Category:    strings.TrimSpace(strings.TrimPrefix(categoryLine, categoryMarker)),
		Subcategory: strings.TrimSpace(strings.TrimPrefix(subcategoryLine, subcategoryMarker)),
	}, nil
}

// Report parses the reply as a JSON analysis report. A reply wrapped in
// Markdown code fences or followed by commentary fails loudly; nothing is
// stripped or guessed.
func Report(raw string) (models.AnalysisReport, error) {
	var report models.AnalysisReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return models.AnalysisReport{}, &ParseError{Reason: "reply is not valid JSON"}
	}
	return report, nil
}
