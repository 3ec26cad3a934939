package port

import "context"

// ReceiptCompleter is the outbound boundary to the vision completion
// service: one blocking round trip, no internal retry.
type ReceiptCompleter interface {
	Complete(ctx context.Context, image string) (string, error)
}
