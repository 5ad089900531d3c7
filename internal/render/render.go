// Package render turns safety records into complete branded HTML documents.
// Rendering is a pure function of (record, branding, timestamp): no network,
// no mutation, no randomness. Templates tolerate any combination of missing
// optional fields; a nil record is the only caller error.
package render

import (
	"errors"
	"fmt"
	"time"

	"tradesafe/internal/domain"
)

// ErrNilRecord is returned when Render is handed a nil record. Validating
// record existence is the caller's job, before invocation.
var ErrNilRecord = errors.New("nil record")

// Render dispatches a record to its document template.
func Render(rec domain.Record, b domain.Branding, now time.Time) (SafeHTML, error) {
	if rec == nil {
		return "", ErrNilRecord
	}
	switch r := rec.(type) {
	case domain.AccidentRecord:
		return Accident(r, b, now), nil
	case domain.NearMissRecord:
		return NearMiss(r, b, now), nil
	case domain.RiddorRecord:
		return Riddor(r, b, now), nil
	case domain.CoshhRecord:
		return Coshh(r, b, now), nil
	case domain.PermitToWorkRecord:
		return PermitToWork(r, b, now), nil
	case domain.SafeIsolationRecord:
		return SafeIsolation(r, b, now), nil
	case domain.PreUseCheckRecord:
		return PreUseCheck(r, b, now), nil
	case domain.EquipmentRegisterRecord:
		return EquipmentRegister(r, b, now), nil
	case domain.FireWatchRecord:
		return FireWatch(r, b, now), nil
	case domain.SiteInspectionRecord:
		return SiteInspection(r, b, now), nil
	case domain.ObservationRecord:
		return Observation(r, b, now), nil
	case domain.SiteDiaryRecord:
		return SiteDiary(r, b, now), nil
	case domain.ToolboxTalkRecord:
		return ToolboxTalk(r, b, now), nil
	}
	return "", fmt.Errorf("no template for record type %T", rec)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// statusLabel is the badge text for a domain status value; absent values
// still get a readable label.
func statusLabel(v string) string {
	if v == "" {
		return "not specified"
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
