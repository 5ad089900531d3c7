package render

import (
	"time"

	"tradesafe/internal/domain"
)

// Regulatory footnotes are fixed per document family.
const (
	riddorFootnote = "Reportable incidents must be notified under the Reporting of Injuries, Diseases and Dangerous Occurrences Regulations 2013 (RIDDOR). Report online at www.hse.gov.uk/riddor or call the HSE Incident Contact Centre on 0345 300 9923."
	accidentFootnote = "Retained in accordance with the Social Security (Claims and Payments) Regulations 1979 and RIDDOR 2013. Accident records must be kept for at least three years."
	nearMissFootnote = "Near miss reporting supports the Management of Health and Safety at Work Regulations 1999. Investigate and act on near misses before they become accidents."
)

var accidentSeverity = map[string]StatusColour{
	"minor":    StatusSuccess,
	"moderate": StatusWarning,
	"major":    StatusDanger,
	"fatal":    StatusDanger,
}

// Accident renders an accident report. Missing optional fields degrade to
// placeholders or skipped sections; only a nil record is the caller's error.
func Accident(r domain.AccidentRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Incident Summary"),
		KeyValueGrid([]KV{
			{"Injured Person", r.InjuredName},
			{"Role", r.InjuredRole},
			{"Severity", r.Severity},
			{"Incident Date", r.IncidentDate},
			{"Time", r.IncidentTime},
			{"Location", r.Location},
		}, 3),
	)

	if r.IsRiddorReportable {
		body = join(body, WarningBanner("This incident is reportable to the HSE under RIDDOR 2013. Submit the report without delay."))
	}

	body = join(body, SectionHeader("Incident Details"))
	if r.Description != "" {
		body = join(body, TextBox(r.Description, b.Primary()))
	} else {
		body = join(body, nonePlaceholder("No description recorded"))
	}
	body = join(body, KeyValueGrid([]KV{
		{"Injury Type", r.InjuryType},
		{"Body Part Affected", r.BodyPartAffected},
	}, 2))

	if r.FirstAidGiven || r.FirstAiderName != "" || r.TreatmentDetails != "" {
		body = join(body,
			SectionHeader("First Aid & Treatment"),
			KeyValueGrid([]KV{
				{"First Aid Given", yesNo(r.FirstAidGiven)},
				{"First Aider", r.FirstAiderName},
			}, 2),
		)
		if r.TreatmentDetails != "" {
			body = join(body, Paragraph(r.TreatmentDetails))
		}
	}

	if len(r.Witnesses) > 0 {
		body = join(body, SectionHeader("Witnesses"), BulletList(r.Witnesses))
	}
	if len(r.CorrectiveActions) > 0 {
		body = join(body, SectionHeader("Corrective Actions"), BulletList(r.CorrectiveActions))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Reported By", Name: r.ReportedBy},
		{Role: "Manager", Name: r.ManagerName},
	}))

	return Compose(Page{
		Title:       "Accident Report",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.Severity),
		Status:      statusFor(accidentSeverity, r.Severity, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    accidentFootnote,
		GeneratedAt: now,
	})
}

var nearMissSeverity = map[string]StatusColour{
	"low":      StatusSuccess,
	"medium":   StatusWarning,
	"high":     StatusDanger,
	"critical": StatusDanger,
}

// NearMiss renders a near miss report.
func NearMiss(r domain.NearMissRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Event Summary"),
		KeyValueGrid([]KV{
			{"Reported By", r.ReportedBy},
			{"Event Date", r.EventDate},
			{"Location", r.Location},
			{"Severity", r.Severity},
			{"Category", r.Category},
		}, 3),
	)

	body = join(body, SectionHeader("What Happened"))
	if r.Description != "" {
		body = join(body, TextBox(r.Description, b.Primary()))
	} else {
		body = join(body, nonePlaceholder("No description recorded"))
	}
	if r.PotentialOutcome != "" {
		body = join(body, SectionHeader("Potential Outcome"), Paragraph(r.PotentialOutcome))
	}
	if r.ImmediateAction != "" {
		body = join(body, SectionHeader("Immediate Action Taken"), Paragraph(r.ImmediateAction))
	}
	if len(r.PreventiveActions) > 0 {
		body = join(body, SectionHeader("Preventive Actions"), BulletList(r.PreventiveActions))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Reported By", Name: r.ReportedBy},
	}))

	return Compose(Page{
		Title:       "Near Miss Report",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.Severity),
		Status:      statusFor(nearMissSeverity, r.Severity, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    nearMissFootnote,
		GeneratedAt: now,
	})
}

var riddorStatus = map[string]StatusColour{
	"submitted": StatusSuccess,
	"pending":   StatusWarning,
	"overdue":   StatusDanger,
}

// Riddor renders a RIDDOR report. The regulatory warning is mandatory for
// this document type regardless of record content.
func Riddor(r domain.RiddorRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		WarningBanner("This document records an incident reportable to the HSE under RIDDOR 2013."),
		SectionHeader("Incident Details"),
		KeyValueGrid([]KV{
			{"Incident Type", r.IncidentType},
			{"Incident Date", r.IncidentDate},
			{"Location", r.Location},
			{"Injured Person", r.InjuredName},
			{"Occupation", r.InjuredOccupation},
			{"Over 7 Day Absence", yesNo(r.OverSevenDayAbsence)},
		}, 3),
	)
	if r.Description != "" {
		body = join(body, TextBox(r.Description, b.Primary()))
	}
	if r.InjuryDetails != "" {
		body = join(body, SectionHeader("Injury Details"), Paragraph(r.InjuryDetails))
	}

	body = join(body,
		SectionHeader("HSE Reporting"),
		KeyValueGrid([]KV{
			{"Report Status", r.ReportStatus},
			{"Reported Date", r.ReportedDate},
			{"HSE Reference", r.HseReference},
			{"Reporting Method", r.ReportingMethod},
		}, 2),
		SectionHeader("Sign Off"),
		SignatureBlock([]domain.Signatory{
			{Role: "Responsible Person", Name: r.ResponsiblePerson},
		}),
	)

	return Compose(Page{
		Title:       "RIDDOR Report",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.ReportStatus),
		Status:      statusFor(riddorStatus, r.ReportStatus, StatusWarning),
		Branding:    b,
		Body:        body,
		Footnote:    riddorFootnote,
		GeneratedAt: now,
	})
}
