package receipt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carline/internal/domain"
	"carline/internal/receipt"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestScore_AllFieldsPresent(t *testing.T) {
	f := &receipt.ExtractedFields{
		Amount:      fptr(350),
		Date:        sptr("2026-08-15"),
		Merchant:    sptr("OKKO"),
		Category:    sptr("fuel"),
		Description: sptr("fuel purchase"),
	}
	assert.InDelta(t, 1.0, receipt.Score(f), 1e-9)
}

func TestScore_Empty(t *testing.T) {
	assert.Zero(t, receipt.Score(&receipt.ExtractedFields{}))
}

func TestScore_AmountZeroDoesNotCount(t *testing.T) {
	f := &receipt.ExtractedFields{Amount: fptr(0)}
	assert.Zero(t, receipt.Score(f))
}

func TestScore_EmptyMerchantDoesNotCount(t *testing.T) {
	f := &receipt.ExtractedFields{Merchant: sptr("")}
	assert.Zero(t, receipt.Score(f))
}

func TestScore_ItemsCountForDescriptionWeight(t *testing.T) {
	f := &receipt.ExtractedFields{Items: []receipt.LineItem{{Name: "A95"}}}
	assert.InDelta(t, 0.05, receipt.Score(f), 1e-9)
}

func TestScore_PartialCombination(t *testing.T) {
	f := &receipt.ExtractedFields{
		Amount: fptr(42),
		Date:   sptr("2026-08-15"),
	}
	assert.InDelta(t, 0.7, receipt.Score(f), 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	f := &receipt.ExtractedFields{
		Amount:   fptr(99.99),
		Merchant: sptr("ATB"),
		Category: sptr("other"),
	}
	first := receipt.Score(f)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, receipt.Score(f))
	}
}

func TestNormalize_KeepsSuspiciousAmount(t *testing.T) {
	f := &receipt.ExtractedFields{Amount: fptr(2_000_000)}
	out := receipt.Normalize(f, testNow)
	assert.Equal(t, 2_000_000.0, *out.Amount)
}

func TestNormalize_FutureDateReplacedWithToday(t *testing.T) {
	f := &receipt.ExtractedFields{Date: sptr("2027-01-01")}
	out := receipt.Normalize(f, testNow)
	assert.Equal(t, "2026-08-30", *out.Date)
}

func TestNormalize_StaleDateReplacedWithToday(t *testing.T) {
	f := &receipt.ExtractedFields{Date: sptr("2024-01-01")}
	out := receipt.Normalize(f, testNow)
	assert.Equal(t, "2026-08-30", *out.Date)
}

func TestNormalize_UnparseableDateReplacedWithToday(t *testing.T) {
	f := &receipt.ExtractedFields{Date: sptr("15.08.2026")}
	out := receipt.Normalize(f, testNow)
	assert.Equal(t, "2026-08-30", *out.Date)
}

func TestNormalize_RecentDateKept(t *testing.T) {
	f := &receipt.ExtractedFields{Date: sptr("2026-08-15")}
	out := receipt.Normalize(f, testNow)
	assert.Equal(t, "2026-08-15", *out.Date)
}

func TestNormalize_InvalidCategoryBecomesOther(t *testing.T) {
	f := &receipt.ExtractedFields{Category: sptr("groceries")}
	out := receipt.Normalize(f, testNow)
	assert.Equal(t, "other", *out.Category)
}

func TestNormalize_ValidCategoryKept(t *testing.T) {
	f := &receipt.ExtractedFields{Category: sptr("carwash")}
	out := receipt.Normalize(f, testNow)
	assert.Equal(t, "carwash", *out.Category)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	f := &receipt.ExtractedFields{Date: sptr("2027-01-01"), Category: sptr("bogus")}
	_ = receipt.Normalize(f, testNow)
	assert.Equal(t, "2027-01-01", *f.Date)
	assert.Equal(t, "bogus", *f.Category)
}

func TestBuildResult_CompleteExtraction(t *testing.T) {
	raw := &receipt.ExtractedFields{
		Amount:      fptr(350.75),
		Date:        sptr("2026-08-15"),
		Merchant:    sptr("OKKO"),
		Category:    sptr("fuel"),
		Description: sptr("A95 20L"),
	}

	res := receipt.BuildResult(raw, testNow)
	assert.Equal(t, 350.75, res.Amount)
	assert.Equal(t, "2026-08-15", res.Date)
	assert.Equal(t, "OKKO", *res.Merchant)
	assert.Equal(t, domain.ReceiptCategoryFuel, res.Category)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.False(t, res.NeedsReview)
}

func TestBuildResult_MissingAmountForcesReview(t *testing.T) {
	raw := &receipt.ExtractedFields{
		Date:        sptr("2026-08-15"),
		Merchant:    sptr("OKKO"),
		Category:    sptr("fuel"),
		Description: sptr("fuel"),
	}

	res := receipt.BuildResult(raw, testNow)
	assert.Zero(t, res.Amount)
	assert.True(t, res.NeedsReview)
}

func TestBuildResult_MissingDateDefaultsToTodayAndForcesReview(t *testing.T) {
	raw := &receipt.ExtractedFields{
		Amount:      fptr(100),
		Merchant:    sptr("ATB"),
		Category:    sptr("other"),
		Description: sptr("misc"),
	}

	res := receipt.BuildResult(raw, testNow)
	assert.Equal(t, "2026-08-30", res.Date)
	assert.True(t, res.NeedsReview)
}

func TestBuildResult_ConfidenceScoredOnRawDate(t *testing.T) {
	// The future date is overwritten during normalization but still counts
	// toward confidence, because the extractor did report one.
	raw := &receipt.ExtractedFields{
		Amount:      fptr(100),
		Date:        sptr("2027-05-05"),
		Merchant:    sptr("OKKO"),
		Category:    sptr("fuel"),
		Description: sptr("fuel"),
	}

	res := receipt.BuildResult(raw, testNow)
	assert.Equal(t, "2026-08-30", res.Date)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.False(t, res.NeedsReview)
}

func TestBuildResult_LowConfidenceForcesReview(t *testing.T) {
	raw := &receipt.ExtractedFields{
		Amount: fptr(100),
		Date:   sptr("2026-08-15"),
	}

	res := receipt.BuildResult(raw, testNow)
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)
	assert.True(t, res.NeedsReview)
}

func TestBuildResult_EmptyExtractionDefaults(t *testing.T) {
	res := receipt.BuildResult(&receipt.ExtractedFields{}, testNow)
	assert.Zero(t, res.Amount)
	assert.Equal(t, "2026-08-30", res.Date)
	assert.Equal(t, domain.ReceiptCategoryOther, res.Category)
	assert.Nil(t, res.Merchant)
	assert.Nil(t, res.Description)
	assert.Zero(t, res.Confidence)
	assert.True(t, res.NeedsReview)
}
