package render

import (
	"fmt"
	"time"

	"tradesafe/internal/domain"
)

const (
	permitFootnote    = "Issued under the permit to work arrangements required by the Management of Health and Safety at Work Regulations 1999 and HSE guidance HSG250. Work must stop when the permit expires."
	isolationFootnote = "Safe isolation carried out per the Electricity at Work Regulations 1989 and HSE guidance GS38. Prove dead before touch; lock off and retain the key."
	fireWatchFootnote = "Fire watch maintained under the Regulatory Reform (Fire Safety) Order 2005 and the conditions of the associated hot works permit."
)

var permitStatus = map[string]StatusColour{
	"active":  StatusSuccess,
	"expired": StatusDanger,
	"closed":  StatusInfo,
	"draft":   StatusGrey,
}

// PermitToWork renders a permit to work with issuer and recipient
// signatories. An expired permit carries a warning banner.
func PermitToWork(r domain.PermitToWorkRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Permit Details"),
		KeyValueGrid([]KV{
			{"Permit Number", r.PermitNumber},
			{"Status", r.Status},
			{"Location", r.Location},
			{"Issued By", r.IssuedBy},
			{"Issued To", r.IssuedTo},
			{"Isolation Required", yesNo(r.IsolationRequired)},
			{"Valid From", r.ValidFrom},
			{"Valid To", r.ValidTo},
		}, 3),
	)

	if r.Status == "expired" {
		body = join(body, WarningBanner("This permit has expired. No work may proceed under it; a new permit must be issued."))
	}

	body = join(body, SectionHeader("Work Description"))
	if r.WorkDescription != "" {
		body = join(body, TextBox(r.WorkDescription, b.Primary()))
	} else {
		body = join(body, nonePlaceholder("No description recorded"))
	}

	if len(r.Hazards) > 0 {
		body = join(body, SectionHeader("Identified Hazards"), BadgeList(r.Hazards, StatusDanger.Foreground()))
	}
	if len(r.Precautions) > 0 {
		body = join(body, SectionHeader("Precautions"), BulletList(r.Precautions))
	}
	if r.EmergencyArrangements != "" {
		body = join(body, SectionHeader("Emergency Arrangements"), Paragraph(r.EmergencyArrangements))
	}

	body = join(body, SectionHeader("Authorisation"), SignatureBlock([]domain.Signatory{
		{Role: "Issued By", Name: r.IssuedBy, Date: r.ValidFrom},
		{Role: "Accepted By", Name: r.IssuedTo},
	}))

	return Compose(Page{
		Title:       "Permit to Work",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.Status),
		Status:      statusFor(permitStatus, r.Status, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    permitFootnote,
		GeneratedAt: now,
	})
}

var isolationStatus = map[string]StatusColour{
	"isolated":     StatusWarning,
	"re-energised": StatusSuccess,
	"pending":      StatusGrey,
}

// SafeIsolation renders a safe isolation certificate. While the circuit is
// isolated the document carries a do-not-energise warning.
func SafeIsolation(r domain.SafeIsolationRecord, b domain.Branding, now time.Time) SafeHTML {
	body := SafeHTML("")
	if r.Status == "isolated" {
		body = join(body, WarningBanner("Circuit is isolated and locked off. Do not attempt to re-energise. Danger of death."))
	}

	body = join(body,
		SectionHeader("Isolation Details"),
		KeyValueGrid([]KV{
			{"Circuit", r.CircuitDescription},
			{"Location", r.Location},
			{"Isolation Point", r.IsolationPoint},
			{"Status", r.Status},
			{"Isolation Date", r.IsolationDate},
			{"Electrician", r.ElectricianName},
		}, 3),
		SectionHeader("Test Instrument"),
		KeyValueGrid([]KV{
			{"Instrument", r.TestInstrument},
			{"Serial Number", r.InstrumentSerial},
			{"Lock Off Applied", yesNo(r.LockOffApplied)},
			{"Warning Notice Posted", yesNo(r.WarningNoticePosted)},
		}, 2),
	)

	body = join(body, SectionHeader("Prove Dead Procedure"))
	if len(r.ProvingSteps) > 0 {
		body = join(body, Checklist(r.ProvingSteps))
	} else {
		body = join(body, nonePlaceholder("No proving steps recorded"))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Electrician", Name: r.ElectricianName, Date: r.IsolationDate},
	}))

	return Compose(Page{
		Title:       "Safe Isolation Certificate",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.Status),
		Status:      statusFor(isolationStatus, r.Status, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    isolationFootnote,
		GeneratedAt: now,
	})
}

// FireWatch renders a fire watch log for hot works.
func FireWatch(r domain.FireWatchRecord, b domain.Branding, now time.Time) SafeHTML {
	status, label := StatusWarning, "watch open"
	if r.AllClearConfirmed {
		status, label = StatusSuccess, "all clear"
	}

	body := join(
		SectionHeader("Watch Details"),
		KeyValueGrid([]KV{
			{"Location", r.Location},
			{"Date", r.WatchDate},
			{"Fire Watcher", r.WatcherName},
			{"Start Time", r.StartTime},
			{"End Time", r.EndTime},
			{"Hot Works Permit", r.HotWorksPermitRef},
		}, 3),
	)

	if !r.AllClearConfirmed {
		body = join(body, WarningBanner(fmt.Sprintf("Fire watch at %s has not been signed off. The all clear must be confirmed before the watch ends.", orDefault(r.Location, "this location"))))
	}

	body = join(body, SectionHeader("Checks Completed"))
	if len(r.Checks) > 0 {
		body = join(body, Checklist(r.Checks))
	} else {
		body = join(body, nonePlaceholder("No checks recorded"))
	}

	if len(r.Extinguishers) > 0 {
		body = join(body, SectionHeader("Fire Fighting Equipment"), BadgeList(r.Extinguishers, b.Primary()))
	}
	if r.IncidentsObserved != "" {
		body = join(body, SectionHeader("Incidents Observed"), TextBox(r.IncidentsObserved, StatusDanger.Foreground()))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Fire Watcher", Name: r.WatcherName, Date: r.WatchDate},
	}))

	return Compose(Page{
		Title:       "Fire Watch Log",
		Reference:   r.Ref(),
		StatusLabel: label,
		Status:      status,
		Branding:    b,
		Body:        body,
		Footnote:    fireWatchFootnote,
		GeneratedAt: now,
	})
}
