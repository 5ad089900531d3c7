package render

import (
	"fmt"
	"time"

	"tradesafe/internal/domain"
)

const (
	preUseFootnote   = "Pre-use inspection required by the Provision and Use of Work Equipment Regulations 1998 (PUWER). Defective equipment must be withdrawn from service immediately."
	registerFootnote = "Maintained under the Provision and Use of Work Equipment Regulations 1998 (PUWER) and, where applicable, the Electricity at Work Regulations 1989."
)

var preUseResult = map[string]StatusColour{
	"pass": StatusSuccess,
	"fail": StatusDanger,
}

// PreUseCheck renders a pre-use equipment check. A failed check carries a
// do-not-use warning ahead of the detail sections.
func PreUseCheck(r domain.PreUseCheckRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Equipment"),
		KeyValueGrid([]KV{
			{"Equipment", r.EquipmentName},
			{"Asset ID", r.EquipmentID},
			{"Check Date", r.CheckDate},
			{"Operator", r.OperatorName},
			{"Overall Result", r.OverallResult},
		}, 3),
	)

	if r.OverallResult == "fail" {
		body = join(body, WarningBanner(fmt.Sprintf("%s failed its pre-use check and must not be used. Quarantine the equipment and report the defect.", orDefault(r.EquipmentName, "This equipment"))))
	}

	body = join(body, SectionHeader("Check Items"))
	if len(r.CheckItems) > 0 {
		body = join(body, Checklist(r.CheckItems))
	} else {
		body = join(body, nonePlaceholder("No check items recorded"))
	}

	if r.DefectsFound != "" {
		body = join(body, SectionHeader("Defects Found"), TextBox(r.DefectsFound, StatusDanger.Foreground()))
	}
	if r.ActionTaken != "" {
		body = join(body, SectionHeader("Action Taken"), Paragraph(r.ActionTaken))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Operator", Name: r.OperatorName, Date: r.CheckDate},
	}))

	return Compose(Page{
		Title:       "Pre-Use Equipment Check",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.OverallResult),
		Status:      statusFor(preUseResult, r.OverallResult, StatusWarning),
		Branding:    b,
		Body:        body,
		Footnote:    preUseFootnote,
		GeneratedAt: now,
	})
}

var registerStatus = map[string]StatusColour{
	"current":  StatusSuccess,
	"due-soon": StatusWarning,
	"overdue":  StatusDanger,
}

// EquipmentRegister renders the asset inspection register as a data table.
func EquipmentRegister(r domain.EquipmentRegisterRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Register"),
		KeyValueGrid([]KV{
			{"Register", r.RegisterName},
			{"Status", r.Status},
			{"Reviewed By", r.ReviewedBy},
			{"Review Date", r.ReviewDate},
		}, 2),
	)

	body = join(body, SectionHeader("Equipment"))
	if len(r.Items) > 0 {
		rows := make([][]string, 0, len(r.Items))
		for _, item := range r.Items {
			rows = append(rows, []string{
				item.Name, item.SerialNumber, item.Location,
				item.LastInspected, item.NextDue, item.Condition,
			})
		}
		body = join(body, DataTable(
			[]string{"Equipment", "Serial No.", "Location", "Last Inspected", "Next Due", "Condition"},
			rows,
		))
	} else {
		body = join(body, nonePlaceholder("No equipment recorded"))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Reviewed By", Name: r.ReviewedBy, Date: r.ReviewDate},
	}))

	return Compose(Page{
		Title:       "Equipment Register",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.Status),
		Status:      statusFor(registerStatus, r.Status, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    registerFootnote,
		GeneratedAt: now,
	})
}
