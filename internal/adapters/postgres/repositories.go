package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"tradesafe/internal/domain"
)

// RecordRepository

// Get loads one safety record. The type-specific fields live in a JSONB
// payload; shared metadata comes from columns.
func (db *DB) Get(ctx context.Context, docType domain.DocType, id string) (domain.Record, error) {
	var (
		ownerID     string
		payload     []byte
		documentURL *string
		createdAt   time.Time
	)
	err := db.Pool.QueryRow(ctx, `
        SELECT owner_id, payload, document_url, created_at
        FROM safety_records
        WHERE id = $1 AND doc_type = $2
    `, id, string(docType)).Scan(&ownerID, &payload, &documentURL, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	meta := domain.Meta{ID: id, OwnerID: ownerID, CreatedAt: createdAt, DocumentURL: documentURL}
	return decodeRecord(docType, meta, payload)
}

func (db *DB) SetDocumentURL(ctx context.Context, docType domain.DocType, id, url string) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE safety_records SET document_url = $3 WHERE id = $1 AND doc_type = $2
    `, id, string(docType), url)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// decodeRecord unmarshals a JSONB payload into the variant matching the
// document type. The doc_type column is the single source of truth for the
// record's shape.
func decodeRecord(docType domain.DocType, meta domain.Meta, payload []byte) (domain.Record, error) {
	switch docType {
	case domain.DocAccident:
		return decodeInto(&domain.AccidentRecord{Meta: meta}, payload, docType)
	case domain.DocNearMiss:
		return decodeInto(&domain.NearMissRecord{Meta: meta}, payload, docType)
	case domain.DocRiddor:
		return decodeInto(&domain.RiddorRecord{Meta: meta}, payload, docType)
	case domain.DocCoshh:
		return decodeInto(&domain.CoshhRecord{Meta: meta}, payload, docType)
	case domain.DocPermitToWork:
		return decodeInto(&domain.PermitToWorkRecord{Meta: meta}, payload, docType)
	case domain.DocSafeIsolation:
		return decodeInto(&domain.SafeIsolationRecord{Meta: meta}, payload, docType)
	case domain.DocPreUseCheck:
		return decodeInto(&domain.PreUseCheckRecord{Meta: meta}, payload, docType)
	case domain.DocEquipmentRegister:
		return decodeInto(&domain.EquipmentRegisterRecord{Meta: meta}, payload, docType)
	case domain.DocFireWatch:
		return decodeInto(&domain.FireWatchRecord{Meta: meta}, payload, docType)
	case domain.DocSiteInspection:
		return decodeInto(&domain.SiteInspectionRecord{Meta: meta}, payload, docType)
	case domain.DocObservation:
		return decodeInto(&domain.ObservationRecord{Meta: meta}, payload, docType)
	case domain.DocSiteDiary:
		return decodeInto(&domain.SiteDiaryRecord{Meta: meta}, payload, docType)
	case domain.DocToolboxTalk:
		return decodeInto(&domain.ToolboxTalkRecord{Meta: meta}, payload, docType)
	}
	return nil, fmt.Errorf("unknown doc type %q", docType)
}

// Unmarshal fills the payload fields around the pre-populated Meta; Meta
// fields are json:"-" so the payload cannot clobber them.
func decodeInto[T domain.Record](rec *T, payload []byte, docType domain.DocType) (domain.Record, error) {
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", docType, err)
	}
	return *rec, nil
}

// BrandingRepository

// GetByOwner returns the owner's branding, or the zero value when none has
// been configured; documents still render with the default accents.
func (db *DB) GetByOwner(ctx context.Context, ownerID string) (domain.Branding, error) {
	var payload []byte
	err := db.Pool.QueryRow(ctx, `
        SELECT payload FROM branding_settings WHERE owner_id = $1
    `, ownerID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Branding{}, nil
	}
	if err != nil {
		return domain.Branding{}, err
	}
	var b domain.Branding
	if err := json.Unmarshal(payload, &b); err != nil {
		return domain.Branding{}, fmt.Errorf("decode branding: %w", err)
	}
	return b, nil
}
