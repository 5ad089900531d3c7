package render

import (
	"strconv"
	"time"

	"tradesafe/internal/domain"
)

const (
	inspectionFootnote  = "Workplace inspection under the Health and Safety at Work etc. Act 1974 and the Management of Health and Safety at Work Regulations 1999."
	observationFootnote = "Behavioural safety observation supporting the Management of Health and Safety at Work Regulations 1999. Feedback is given in good faith and without blame."
	diaryFootnote       = "Site diary maintained under the Construction (Design and Management) Regulations 2015 record-keeping duties."
	toolboxFootnote     = "Toolbox talk delivered as part of the information, instruction and training duties of the Health and Safety at Work etc. Act 1974 section 2."
)

var inspectionRating = map[string]StatusColour{
	"good":         StatusSuccess,
	"satisfactory": StatusWarning,
	"poor":         StatusDanger,
}

// SiteInspection renders a workplace inspection report.
func SiteInspection(r domain.SiteInspectionRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Inspection"),
		KeyValueGrid([]KV{
			{"Site", r.SiteName},
			{"Date", r.InspectionDate},
			{"Inspector", r.InspectorName},
			{"Overall Rating", r.OverallRating},
		}, 2),
	)

	if r.OverallRating == "poor" {
		body = join(body, WarningBanner("This inspection rated the workplace as poor. The actions below must be completed before work continues."))
	}

	body = join(body, SectionHeader("Inspection Items"))
	if len(r.Items) > 0 {
		body = join(body, Checklist(r.Items))
	} else {
		body = join(body, nonePlaceholder("No inspection items recorded"))
	}

	if r.Observations != "" {
		body = join(body, SectionHeader("Observations"), TextBox(r.Observations, b.Primary()))
	}
	if len(r.ActionsRequired) > 0 {
		body = join(body, SectionHeader("Actions Required"), BulletList(r.ActionsRequired))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Inspector", Name: r.InspectorName, Date: r.InspectionDate},
	}))

	return Compose(Page{
		Title:       "Workplace Inspection",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.OverallRating),
		Status:      statusFor(inspectionRating, r.OverallRating, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    inspectionFootnote,
		GeneratedAt: now,
	})
}

var observationRisk = map[string]StatusColour{
	"low":    StatusSuccess,
	"medium": StatusWarning,
	"high":   StatusDanger,
}

// Observation renders a behavioural safety observation.
func Observation(r domain.ObservationRecord, b domain.Branding, now time.Time) SafeHTML {
	body := join(
		SectionHeader("Observation"),
		KeyValueGrid([]KV{
			{"Observer", r.ObserverName},
			{"Date", r.ObservedDate},
			{"Location", r.Location},
			{"Task Observed", r.TaskObserved},
			{"Risk Level", r.RiskLevel},
		}, 3),
	)

	if len(r.SafeBehaviours) > 0 {
		body = join(body, SectionHeader("Safe Behaviours"), BulletList(r.SafeBehaviours))
	}
	if len(r.UnsafeBehaviours) > 0 {
		body = join(body, SectionHeader("Unsafe Behaviours"), BulletList(r.UnsafeBehaviours))
	}
	if r.FeedbackGiven != "" {
		body = join(body, SectionHeader("Feedback"), TextBox(r.FeedbackGiven, b.Primary()))
	}
	if len(r.AgreedActions) > 0 {
		body = join(body, SectionHeader("Agreed Actions"), BulletList(r.AgreedActions))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Observer", Name: r.ObserverName, Date: r.ObservedDate},
	}))

	return Compose(Page{
		Title:       "Behavioural Observation",
		Reference:   r.Ref(),
		StatusLabel: statusLabel(r.RiskLevel),
		Status:      statusFor(observationRisk, r.RiskLevel, StatusGrey),
		Branding:    b,
		Body:        body,
		Footnote:    observationFootnote,
		GeneratedAt: now,
	})
}

// SiteDiary renders a daily site diary entry. Diary entries are plain log
// records, so the badge is always informational.
func SiteDiary(r domain.SiteDiaryRecord, b domain.Branding, now time.Time) SafeHTML {
	workers := ""
	if r.WorkersOnSite > 0 {
		workers = strconv.Itoa(r.WorkersOnSite)
	}
	body := join(
		SectionHeader("Day Summary"),
		KeyValueGrid([]KV{
			{"Site", r.SiteName},
			{"Date", r.EntryDate},
			{"Author", r.Author},
			{"Weather", r.Weather},
			{"Workers On Site", workers},
		}, 3),
	)

	if r.WorkCompleted != "" {
		body = join(body, SectionHeader("Work Completed"), TextBox(r.WorkCompleted, b.Primary()))
	}
	if len(r.MaterialsDelivered) > 0 {
		body = join(body, SectionHeader("Materials Delivered"), BulletList(r.MaterialsDelivered))
	}
	if len(r.Visitors) > 0 {
		body = join(body, SectionHeader("Visitors"), BulletList(r.Visitors))
	}
	if r.DelaysOrIssues != "" {
		body = join(body, SectionHeader("Delays & Issues"), Paragraph(r.DelaysOrIssues))
	}
	if r.Notes != "" {
		body = join(body, SectionHeader("Notes"), Paragraph(r.Notes))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Author", Name: r.Author, Date: r.EntryDate},
	}))

	return Compose(Page{
		Title:       "Site Diary",
		Reference:   r.Ref(),
		StatusLabel: "logged",
		Status:      StatusInfo,
		Branding:    b,
		Body:        body,
		Footnote:    diaryFootnote,
		GeneratedAt: now,
	})
}

// ToolboxTalk renders a toolbox talk record with one signature block per
// attendee.
func ToolboxTalk(r domain.ToolboxTalkRecord, b domain.Branding, now time.Time) SafeHTML {
	duration := ""
	if r.DurationMinutes > 0 {
		duration = strconv.Itoa(r.DurationMinutes) + " minutes"
	}
	body := join(
		SectionHeader("Talk Details"),
		KeyValueGrid([]KV{
			{"Topic", r.Topic},
			{"Date", r.TalkDate},
			{"Presenter", r.PresenterName},
			{"Location", r.Location},
			{"Duration", duration},
		}, 3),
	)

	body = join(body, SectionHeader("Key Points"))
	if len(r.KeyPoints) > 0 {
		body = join(body, BulletList(r.KeyPoints))
	} else {
		body = join(body, nonePlaceholder("No key points recorded"))
	}

	if r.QuestionsRaised != "" {
		body = join(body, SectionHeader("Questions Raised"), Paragraph(r.QuestionsRaised))
	}

	body = join(body, SectionHeader("Attendance"))
	if len(r.Attendees) > 0 {
		sigs := make([]domain.Signatory, 0, len(r.Attendees))
		for _, a := range r.Attendees {
			if a.Role == "" {
				a.Role = "Attendee"
			}
			sigs = append(sigs, a)
		}
		body = join(body, SignatureBlock(sigs))
	} else {
		body = join(body, nonePlaceholder("No attendees recorded"))
	}

	body = join(body, SectionHeader("Sign Off"), SignatureBlock([]domain.Signatory{
		{Role: "Presenter", Name: r.PresenterName, Date: r.TalkDate},
	}))

	return Compose(Page{
		Title:       "Toolbox Talk",
		Reference:   r.Ref(),
		StatusLabel: "delivered",
		Status:      StatusInfo,
		Branding:    b,
		Body:        body,
		Footnote:    toolboxFootnote,
		GeneratedAt: now,
	})
}
