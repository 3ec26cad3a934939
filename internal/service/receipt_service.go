package service

import (
	"context"
	"errors"
	"log"
	"time"

	"carline/internal/domain"
	"carline/internal/port"
	"carline/internal/receipt"
)

// HealthStatus reports whether the receipt extraction service is usable.
type HealthStatus struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
}

const (
	healthAvailable     = "available"
	healthNotConfigured = "not_configured"
)

// ReceiptService turns a receipt photo into a confidence-scored expense draft.
type ReceiptService interface {
	Process(ctx context.Context, image string) (*receipt.Result, error)
	Health() HealthStatus
}

type receiptService struct {
	completer  port.ReceiptCompleter
	configured bool
}

// NewReceiptService creates a new ReceiptService implementation. A nil or
// unconfigured completer disables processing without failing startup.
func NewReceiptService(completer port.ReceiptCompleter, configured bool) ReceiptService {
	return &receiptService{
		completer:  completer,
		configured: configured,
	}
}

// Process runs the extraction pipeline: validate the image, call the vision
// completion service, parse the completion, then normalize and score.
//
// A malformed image is reported to the caller as-is. Every downstream
// failure (missing configuration, upstream error, unparseable completion)
// is logged with detail and collapsed into a single opaque processing error,
// so callers cannot distinguish provider faults from parse faults.
func (s *receiptService) Process(ctx context.Context, image string) (*receipt.Result, error) {
	cleaned, err := receipt.CleanImage(image)
	if err != nil {
		return nil, err
	}

	if !s.configured {
		log.Printf("receipt processing rejected: %v", domain.ErrAINotConfigured)
		return nil, domain.ErrReceiptProcessing
	}

	text, err := s.completer.Complete(ctx, cleaned)
	if err != nil {
		var upstream *receipt.UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("receipt completion failed: %v", upstream)
		} else {
			log.Printf("receipt completion failed: %v", err)
		}
		return nil, domain.ErrReceiptProcessing
	}

	fields, err := receipt.ExtractFields(text)
	if err != nil {
		var parseErr *receipt.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("receipt completion unparseable: %v; raw: %q", parseErr, parseErr.Raw)
		} else {
			log.Printf("receipt completion unparseable: %v", err)
		}
		return nil, domain.ErrReceiptProcessing
	}

	return receipt.BuildResult(fields, time.Now()), nil
}

func (s *receiptService) Health() HealthStatus {
	status := healthAvailable
	if !s.configured {
		status = healthNotConfigured
	}
	return HealthStatus{
		Status:     status,
		Configured: s.configured,
	}
}
