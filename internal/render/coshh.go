package render

import (
	"time"

	"tradesafe/internal/domain"
)

const coshhFootnote = "Assessment carried out under the Control of Substances Hazardous to Health Regulations 2002 (COSHH). Review whenever the work or the substance changes, and at least annually."

var coshhRisk = map[string]StatusColour{
	"low":       StatusSuccess,
	"medium":    StatusWarning,
	"high":      StatusDanger,
	"very-high": StatusDanger,
}

// Coshh renders a COSHH assessment. The GHS hazards and control measures
// sections are mandatory for this family: an empty list renders the section
// header with a "None specified" placeholder rather than disappearing.
func Coshh(r domain.CoshhRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Substance"),
		KeyValueGrid([]KV{
			{"Substance", r.SubstanceName},
			{"Supplier", r.Supplier},
			{"Risk Rating", r.RiskRating},
			{"Assessment Date", r.AssessmentDate},
			{"Assessed By", r.AssessorName},
			{"Review Date", r.ReviewDate},
		}, 3),
	)

	body = join(body, SectionHeader("GHS Hazards"))
	if len(r.GhsHazards) > 0 {
		body = join(body, BadgeList(r.GhsHazards, StatusDanger.Foreground()))
	} else {
		body = join(body, nonePlaceholder("None specified"))
	}

	if len(r.ExposureRoutes) > 0 {
		body = join(body, SectionHeader("Routes of Exposure"), BadgeList(r.ExposureRoutes, b.Primary()))
	}

	body = join(body, SectionHeader("Control Measures"))
	if len(r.ControlMeasures) > 0 {
		body = join(body, BulletList(r.ControlMeasures))
	} else {
		body = join(body, nonePlaceholder("None specified"))
	}

	if len(r.PpeRequired) > 0 {
		body = join(body, SectionHeader("PPE Required"), BadgeList(r.PpeRequired, b.Primary()))
	}
	if r.StorageRequirements != "" {
		body = join(body, SectionHeader("Storage"), Paragraph(r.StorageRequirements))
	}
	if r.EmergencyProcedures != "" || r.FirstAidMeasures != "" {
		body = join(body, SectionHeader("Emergency & First Aid"))
		if r.EmergencyProcedures != "" {
			body = join(body, TextBox(r.EmergencyProcedures, StatusDanger.Foreground()))
		}
		if r.FirstAidMeasures != "" {
			body = join(body, Paragraph(r.FirstAidMeasures))
		}
	}
	if r.DisposalMethod != "" {
		body = join(body, SectionHeader("Disposal"), Paragraph(r.DisposalMethod))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Assessor", Name: r.AssessorName, Date: r.AssessmentDate},
	}))

	return Compose(Page{
		Title:       "COSHH Assessment",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.RiskRating),
		Status:      statusFor(coshhRisk, r.RiskRating, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    coshhFootnote,
		GeneratedAt: now,
	})
}
