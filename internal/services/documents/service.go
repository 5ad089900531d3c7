package documents

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"tradesafe/internal/domain"
	"tradesafe/internal/ports"
	"tradesafe/internal/render"
)

// Service runs one document generation end to end: fetch record and
// branding, compose HTML, render to PDF, deliver. Each invocation is an
// independent, stateless unit of work.
type Service struct {
	records  ports.RecordRepository
	branding ports.BrandingRepository
	renderer ports.PDFRenderer
	store    ports.ObjectStore
	now      func() time.Time
}

func New(records ports.RecordRepository, branding ports.BrandingRepository, renderer ports.PDFRenderer, store ports.ObjectStore) *Service {
	return &Service{records: records, branding: branding, renderer: renderer, store: store, now: time.Now}
}

// WithClock overrides the timestamp source so tests can freeze it.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GenerateResult is the delivery payload. Exactly one of DocumentURL and
// PDFBase64 is set: the URL when storage accepted the upload, the inline
// base64 bytes when storage failed but the PDF itself was produced. Callers
// branch on field presence.
type GenerateResult struct {
	Reference   string         `json:"reference"`
	DocType     domain.DocType `json:"document_type"`
	DocumentURL string         `json:"document_url,omitempty"`
	PDFBase64   string         `json:"pdf_base64,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

var ErrUnknownDocType = errors.New("unknown document type")

// Generate produces and delivers one document. The progress callback is
// optional; workers use it to surface pipeline steps on the job row.
func (s *Service) Generate(ctx context.Context, docType domain.DocType, recordID string, progress func(step string, p float64)) (GenerateResult, error) {
	if !docType.Valid() {
		return GenerateResult{}, fmt.Errorf("%w: %q", ErrUnknownDocType, docType)
	}
	report := func(step string, p float64) {
		if progress != nil {
			progress(step, p)
		}
	}

	rec, err := s.records.Get(ctx, docType, recordID)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("fetch record: %w", err)
	}
	branding, err := s.branding.GetByOwner(ctx, rec.Owner())
	if err != nil {
		return GenerateResult{}, fmt.Errorf("fetch branding: %w", err)
	}

	// One timestamp per render so the document is internally consistent.
	generatedAt := s.now()

	report("rendering document", 0.2)
	html, err := render.Render(rec, branding, generatedAt)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("render document: %w", err)
	}

	report("generating pdf", 0.5)
	pdf, err := s.renderer.Render(ctx, string(html))
	if err != nil {
		return GenerateResult{}, fmt.Errorf("render pdf: %w", err)
	}

	report("uploading document", 0.8)
	res := GenerateResult{Reference: recordID, DocType: docType, GeneratedAt: generatedAt}
	path := fmt.Sprintf("%s/%s/%s.pdf", rec.Owner(), docType, recordID)
	url, err := s.store.Upload(ctx, path, "application/pdf", pdf)
	if err != nil {
		// The PDF exists; degrade to inline transport rather than failing.
		log.Printf("storage upload failed for %s/%s, returning inline pdf: %v", docType, recordID, err)
		res.PDFBase64 = base64.StdEncoding.EncodeToString(pdf)
		return res, nil
	}
	if err := s.records.SetDocumentURL(ctx, docType, recordID, url); err != nil {
		log.Printf("document url write-back failed for %s/%s: %v", docType, recordID, err)
	}
	res.DocumentURL = url
	return res, nil
}

// Process adapts Generate for the background job workers; the result is the
// JSON payload stored on the completed job row.
func (s *Service) Process(ctx context.Context, job ports.DocumentJob, progress func(step string, p float64)) ([]byte, error) {
	res, err := s.Generate(ctx, job.DocType, job.RecordID, progress)
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
