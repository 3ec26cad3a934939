package receipt

import (
	"log"
	"math"
	"time"

	"carline/internal/domain"
)

const (
	maxPlausibleAmount = 1_000_000
	reviewThreshold    = 0.8
	dateLayout         = "2006-01-02"
)

// Result is the structured, confidence-scored outcome handed to expense
// creation. Amount, date, and category are always populated (defaulted when
// the extraction lacked them); merchant and description stay optional.
type Result struct {
	Amount      float64                `json:"amount"`
	Date        string                 `json:"date"`
	Merchant    *string                `json:"merchant,omitempty"`
	Category    domain.ReceiptCategory `json:"category"`
	Description *string                `json:"description,omitempty"`
	Confidence  float64                `json:"confidence"`
	NeedsReview bool                   `json:"needs_review"`
}

// Normalize corrects implausible extracted values and returns a copy.
// The asymmetry is deliberate: a suspicious amount is logged but kept
// (large one-off purchases are plausible), while an out-of-window date is
// logged and overwritten with today, so the returned date always falls in
// the trailing one-year window and never in the future.
func Normalize(f *ExtractedFields, now time.Time) *ExtractedFields {
	out := *f

	if out.Amount != nil && (*out.Amount <= 0 || *out.Amount > maxPlausibleAmount) {
		log.Printf("suspicious amount in receipt extraction: %v", *out.Amount)
	}

	if out.Date != nil {
		parsed, err := parseDate(*out.Date)
		if err != nil || parsed.After(now) || parsed.Before(now.AddDate(-1, 0, 0)) {
			log.Printf("suspicious date in receipt extraction: %q", *out.Date)
			today := now.Format(dateLayout)
			out.Date = &today
		}
	}

	if out.Category != nil && !domain.ReceiptCategory(*out.Category).IsValid() {
		other := string(domain.ReceiptCategoryOther)
		out.Category = &other
	}

	return &out
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Score computes the weighted completeness score over raw extracted fields.
// It measures completeness, not factual correctness.
func Score(f *ExtractedFields) float64 {
	var confidence float64

	// Amount (most important - 40%)
	if f.Amount != nil && *f.Amount > 0 {
		confidence += 0.4
	}
	// Date (30%)
	if f.Date != nil {
		confidence += 0.3
	}
	// Merchant (15%)
	if f.Merchant != nil && *f.Merchant != "" {
		confidence += 0.15
	}
	// Category (10%)
	if f.Category != nil {
		confidence += 0.1
	}
	// Description or items (5%)
	if f.Description != nil || len(f.Items) > 0 {
		confidence += 0.05
	}

	return math.Min(confidence, 1.0)
}

// BuildResult normalizes the raw extraction and assembles the final record.
// Confidence and the review gates are computed on the raw fields, so a date
// that normalization overwrote still counts as present, and a missing
// amount forces review no matter how high the score.
func BuildResult(raw *ExtractedFields, now time.Time) *Result {
	validated := Normalize(raw, now)
	confidence := Score(raw)
	needsReview := confidence < reviewThreshold || raw.Amount == nil || raw.Date == nil

	res := &Result{
		Category:    domain.ReceiptCategoryOther,
		Merchant:    validated.Merchant,
		Description: validated.Description,
		Confidence:  confidence,
		NeedsReview: needsReview,
		Date:        now.Format(dateLayout),
	}
	if validated.Amount != nil {
		res.Amount = *validated.Amount
	}
	if validated.Date != nil {
		res.Date = *validated.Date
	}
	if validated.Category != nil {
		res.Category = domain.ReceiptCategory(*validated.Category)
	}
	return res
}
