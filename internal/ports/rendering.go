package ports

import "context"

// PDFRenderer converts one composed HTML document into PDF bytes. A single
// request/response round trip: no retry, no streaming, no partial result.
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// ObjectStore uploads document bytes and returns a public URL.
type ObjectStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (publicURL string, err error)
}
