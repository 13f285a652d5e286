package ports

import (
	"context"

	"dealqa/domain/deal"
)

// DealFetcher retrieves the remote record for one deal identifier.
// The identifier is an opaque string; its shape (numeric platform ID or
// string deal code) is the remote service's contract, not ours.
type DealFetcher interface {
	FetchDeal(ctx context.Context, dealID string) (deal.RemoteRecord, error)
}
