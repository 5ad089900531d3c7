package ports

import (
	"context"

	"tradesafe/internal/domain"
)

// RecordRepository fetches safety records and writes back generated
// document URLs. Records are otherwise read-only to this service.
type RecordRepository interface {
	Get(ctx context.Context, docType domain.DocType, id string) (domain.Record, error)
	SetDocumentURL(ctx context.Context, docType domain.DocType, id, url string) error
}

// BrandingRepository provides the per-company branding configuration.
type BrandingRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (domain.Branding, error)
}
