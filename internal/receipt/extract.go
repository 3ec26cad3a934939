package receipt

import (
	"encoding/json"
	"errors"
	"strings"
)

// LineItem is a single purchased item as reported by the extractor.
type LineItem struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// ExtractedFields holds the candidate values parsed from the completion.
// Every field is optional; nil means the extractor could not determine it,
// which is distinct from a zero or empty value.
type ExtractedFields struct {
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Merchant    *string  `json:"merchant"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Items       []LineItem `json:"items"`
}

// ExtractFields locates a JSON object embedded in the completion text and
// parses it. The model is instructed to return bare JSON but often wraps it
// in prose or markdown fences, so the span from the first '{' to the last
// '}' is taken. Known limitation: a completion carrying two independent
// JSON fragments selects the wrong span.
func ExtractFields(text string) (*ExtractedFields, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ParseError{Raw: truncate(text, 500), Err: errors.New("no JSON object in completion")}
	}

	var fields ExtractedFields
	if err := json.Unmarshal([]byte(text[start:end+1]), &fields); err != nil {
		return nil, &ParseError{Raw: truncate(text, 500), Err: err}
	}
	return &fields, nil
}
