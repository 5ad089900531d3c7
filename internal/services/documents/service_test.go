package documents

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradesafe/internal/domain"
	"tradesafe/internal/ports"
)

type fakeRecords struct {
	rec       domain.Record
	getErr    error
	savedURL  string
	saveErr   error
	saveCalls int
}

func (f *fakeRecords) Get(ctx context.Context, docType domain.DocType, id string) (domain.Record, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.rec, nil
}

func (f *fakeRecords) SetDocumentURL(ctx context.Context, docType domain.DocType, id, url string) error {
	f.saveCalls++
	f.savedURL = url
	return f.saveErr
}

type fakeBranding struct {
	branding domain.Branding
	err      error
}

func (f *fakeBranding) GetByOwner(ctx context.Context, ownerID string) (domain.Branding, error) {
	return f.branding, f.err
}

type fakeRenderer struct {
	pdf      []byte
	err      error
	lastHTML string
}

func (f *fakeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	return f.pdf, f.err
}

type fakeStore struct {
	url      string
	err      error
	lastPath string
}

func (f *fakeStore) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	f.lastPath = path
	return f.url, f.err
}

var testClock = func() time.Time { return time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC) }

func testService(records *fakeRecords, store *fakeStore) (*Service, *fakeRenderer) {
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.7")}
	svc := New(records, &fakeBranding{}, renderer, store).WithClock(testClock)
	return svc, renderer
}

func accidentFixture() domain.AccidentRecord {
	return domain.AccidentRecord{
		Meta:        domain.Meta{ID: "rec-1", OwnerID: "owner-1"},
		InjuredName: "J. Smith",
		Severity:    "minor",
	}
}

func TestGenerateHappyPath(t *testing.T) {
	records := &fakeRecords{rec: accidentFixture()}
	store := &fakeStore{url: "https://files.example/object/public/safety-documents/owner-1/accident/rec-1.pdf"}
	svc, renderer := testService(records, store)

	var steps []string
	res, err := svc.Generate(context.Background(), domain.DocAccident, "rec-1", func(step string, p float64) {
		steps = append(steps, step)
	})
	require.NoError(t, err)

	assert.Equal(t, "rec-1", res.Reference)
	assert.Equal(t, domain.DocAccident, res.DocType)
	assert.Equal(t, store.url, res.DocumentURL)
	assert.Empty(t, res.PDFBase64, "URL delivery must not also inline the PDF")
	assert.Equal(t, testClock(), res.GeneratedAt)

	assert.Equal(t, []string{"rendering document", "generating pdf", "uploading document"}, steps)
	assert.Equal(t, "owner-1/accident/rec-1.pdf", store.lastPath)
	assert.True(t, strings.HasPrefix(renderer.lastHTML, "<!DOCTYPE html>"))
	assert.Contains(t, renderer.lastHTML, "J. Smith")

	assert.Equal(t, 1, records.saveCalls)
	assert.Equal(t, store.url, records.savedURL)
}

func TestGenerateStorageFailureFallsBackToInlinePDF(t *testing.T) {
	records := &fakeRecords{rec: accidentFixture()}
	store := &fakeStore{err: errors.New("storage returned 503")}
	svc, _ := testService(records, store)

	res, err := svc.Generate(context.Background(), domain.DocAccident, "rec-1", nil)
	require.NoError(t, err, "storage failure degrades delivery, it does not fail generation")

	assert.Empty(t, res.DocumentURL)
	decoded, decErr := base64.StdEncoding.DecodeString(res.PDFBase64)
	require.NoError(t, decErr)
	assert.Equal(t, []byte("%PDF-1.7"), decoded)
	assert.Zero(t, records.saveCalls, "no URL write-back without an upload")
}

func TestGenerateURLWriteBackFailureIsNonFatal(t *testing.T) {
	records := &fakeRecords{rec: accidentFixture(), saveErr: errors.New("row gone")}
	store := &fakeStore{url: "https://files.example/x.pdf"}
	svc, _ := testService(records, store)

	res, err := svc.Generate(context.Background(), domain.DocAccident, "rec-1", nil)
	require.NoError(t, err)
	assert.Equal(t, store.url, res.DocumentURL)
}

func TestGenerateUnknownDocType(t *testing.T) {
	svc, _ := testService(&fakeRecords{}, &fakeStore{})
	_, err := svc.Generate(context.Background(), "invoice", "rec-1", nil)
	assert.ErrorIs(t, err, ErrUnknownDocType)
}

func TestGenerateRecordNotFound(t *testing.T) {
	notFound := errors.New("not found")
	records := &fakeRecords{getErr: notFound}
	svc, _ := testService(records, &fakeStore{})

	_, err := svc.Generate(context.Background(), domain.DocAccident, "missing", nil)
	assert.ErrorIs(t, err, notFound)
	assert.Contains(t, err.Error(), "fetch record")
}

func TestGenerateRendererFailure(t *testing.T) {
	records := &fakeRecords{rec: accidentFixture()}
	store := &fakeStore{}
	svc, renderer := testService(records, store)
	renderer.err = errors.New("rendering service returned 500")

	_, err := svc.Generate(context.Background(), domain.DocAccident, "rec-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render pdf")
	assert.Empty(t, store.lastPath, "no upload after a failed render")
}

func TestProcessMarshalsResult(t *testing.T) {
	records := &fakeRecords{rec: accidentFixture()}
	svc, _ := testService(records, &fakeStore{url: "https://files.example/x.pdf"})

	out, err := svc.Process(context.Background(), ports.DocumentJob{
		ID: "job-1", DocType: domain.DocAccident, RecordID: "rec-1",
	}, nil)
	require.NoError(t, err)

	var res GenerateResult
	require.NoError(t, json.Unmarshal(out, &res))
	assert.Equal(t, "rec-1", res.Reference)
	assert.Equal(t, "https://files.example/x.pdf", res.DocumentURL)
}

func TestGenerateNilProgressIsSafe(t *testing.T) {
	records := &fakeRecords{rec: accidentFixture()}
	svc, _ := testService(records, &fakeStore{url: "https://files.example/x.pdf"})

	_, err := svc.Generate(context.Background(), domain.DocAccident, "rec-1", nil)
	assert.NoError(t, err)
}
