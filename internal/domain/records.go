package domain

import "time"

// DocType identifies one of the closed set of safety document shapes.
type DocType string

const (
	DocAccident          DocType = "accident"
	DocNearMiss          DocType = "near-miss"
	DocRiddor            DocType = "riddor"
	DocCoshh             DocType = "coshh"
	DocPermitToWork      DocType = "permit-to-work"
	DocSafeIsolation     DocType = "safe-isolation"
	DocPreUseCheck       DocType = "pre-use-check"
	DocEquipmentRegister DocType = "equipment-register"
	DocFireWatch         DocType = "fire-watch"
	DocSiteInspection    DocType = "site-inspection"
	DocObservation       DocType = "observation"
	DocSiteDiary         DocType = "site-diary"
	DocToolboxTalk       DocType = "toolbox-talk"
)

// DocTypes lists every supported document type in presentation order.
var DocTypes = []DocType{
	DocAccident, DocNearMiss, DocRiddor, DocCoshh, DocPermitToWork,
	DocSafeIsolation, DocPreUseCheck, DocEquipmentRegister, DocFireWatch,
	DocSiteInspection, DocObservation, DocSiteDiary, DocToolboxTalk,
}

func (t DocType) Valid() bool {
	for _, known := range DocTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Meta carries the fields every safety record shares. Record payloads are
// stored as JSON; meta fields come from table columns, hence json:"-".
type Meta struct {
	ID          string     `json:"-"`
	OwnerID     string     `json:"-"`
	CreatedAt   time.Time  `json:"-"`
	DocumentURL *string    `json:"-"`
}

func (m Meta) Ref() string   { return m.ID }
func (m Meta) Owner() string { return m.OwnerID }

// Record is the closed union of safety record shapes. Each variant maps to
// exactly one document template; there is no open extension point.
type Record interface {
	Ref() string
	Owner() string
	Type() DocType
}

// CheckItem is a single line of a checklist-style section.
type CheckItem struct {
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
	Notes  string `json:"notes,omitempty"`
}

// Signatory is one signing party on a document. Name, date and image are all
// optional; the rendered document always shows a place to sign regardless.
type Signatory struct {
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	Date     string `json:"date,omitempty"`
	ImageURL string `json:"signature_image,omitempty"`
}

type AccidentRecord struct {
	Meta
	InjuredName        string   `json:"injured_name"`
	InjuredRole        string   `json:"injured_role,omitempty"`
	IncidentDate       string   `json:"incident_date"`
	IncidentTime       string   `json:"incident_time,omitempty"`
	Location           string   `json:"location,omitempty"`
	Severity           string   `json:"severity"` // minor|moderate|major|fatal
	InjuryType         string   `json:"injury_type,omitempty"`
	BodyPartAffected   string   `json:"body_part_affected,omitempty"`
	Description        string   `json:"description,omitempty"`
	FirstAidGiven      bool     `json:"first_aid_given,omitempty"`
	FirstAiderName     string   `json:"first_aider_name,omitempty"`
	TreatmentDetails   string   `json:"treatment_details,omitempty"`
	Witnesses          []string `json:"witnesses,omitempty"`
	IsRiddorReportable bool     `json:"is_riddor_reportable,omitempty"`
	CorrectiveActions  []string `json:"corrective_actions,omitempty"`
	ReportedBy         string   `json:"reported_by,omitempty"`
	ManagerName        string   `json:"manager_name,omitempty"`
}

func (AccidentRecord) Type() DocType { return DocAccident }

type NearMissRecord struct {
	Meta
	ReportedBy        string   `json:"reported_by,omitempty"`
	EventDate         string   `json:"event_date"`
	Location          string   `json:"location,omitempty"`
	Severity          string   `json:"severity"` // low|medium|high|critical
	Category          string   `json:"category,omitempty"`
	Description       string   `json:"description,omitempty"`
	PotentialOutcome  string   `json:"potential_outcome,omitempty"`
	ImmediateAction   string   `json:"immediate_action,omitempty"`
	PreventiveActions []string `json:"preventive_actions,omitempty"`
}

func (NearMissRecord) Type() DocType { return DocNearMiss }

type RiddorRecord struct {
	Meta
	IncidentType      string `json:"incident_type"`
	ReportStatus      string `json:"report_status"` // submitted|pending|overdue
	InjuredName       string `json:"injured_name,omitempty"`
	InjuredOccupation string `json:"injured_occupation,omitempty"`
	IncidentDate      string `json:"incident_date"`
	ReportedDate      string `json:"reported_date,omitempty"`
	HseReference      string `json:"hse_reference,omitempty"`
	Location          string `json:"location,omitempty"`
	Description       string `json:"description,omitempty"`
	InjuryDetails     string `json:"injury_details,omitempty"`
	OverSevenDayAbsence bool `json:"over_seven_day_absence,omitempty"`
	ReportingMethod   string `json:"reporting_method,omitempty"`
	ResponsiblePerson string `json:"responsible_person,omitempty"`
}

func (RiddorRecord) Type() DocType { return DocRiddor }

type CoshhRecord struct {
	Meta
	SubstanceName       string   `json:"substance_name"`
	Supplier            string   `json:"supplier,omitempty"`
	AssessmentDate      string   `json:"assessment_date,omitempty"`
	AssessorName        string   `json:"assessor_name,omitempty"`
	RiskRating          string   `json:"risk_rating"` // low|medium|high|very-high
	GhsHazards          []string `json:"ghs_hazards,omitempty"`
	ExposureRoutes      []string `json:"exposure_routes,omitempty"`
	ControlMeasures     []string `json:"control_measures,omitempty"`
	PpeRequired         []string `json:"ppe_required,omitempty"`
	StorageRequirements string   `json:"storage_requirements,omitempty"`
	EmergencyProcedures string   `json:"emergency_procedures,omitempty"`
	FirstAidMeasures    string   `json:"first_aid_measures,omitempty"`
	DisposalMethod      string   `json:"disposal_method,omitempty"`
	ReviewDate          string   `json:"review_date,omitempty"`
}

func (CoshhRecord) Type() DocType { return DocCoshh }

type PermitToWorkRecord struct {
	Meta
	PermitNumber          string   `json:"permit_number,omitempty"`
	WorkDescription       string   `json:"work_description"`
	Location              string   `json:"location,omitempty"`
	Status                string   `json:"status"` // draft|active|expired|closed
	IssuedBy              string   `json:"issued_by,omitempty"`
	IssuedTo              string   `json:"issued_to,omitempty"`
	ValidFrom             string   `json:"valid_from,omitempty"`
	ValidTo               string   `json:"valid_to,omitempty"`
	Hazards               []string `json:"hazards,omitempty"`
	Precautions           []string `json:"precautions,omitempty"`
	IsolationRequired     bool     `json:"isolation_required,omitempty"`
	EmergencyArrangements string   `json:"emergency_arrangements,omitempty"`
}

func (PermitToWorkRecord) Type() DocType { return DocPermitToWork }

type SafeIsolationRecord struct {
	Meta
	CircuitDescription  string      `json:"circuit_description"`
	Location            string      `json:"location,omitempty"`
	IsolationPoint      string      `json:"isolation_point,omitempty"`
	Status              string      `json:"status"` // isolated|re-energised|pending
	IsolationDate       string      `json:"isolation_date,omitempty"`
	TestInstrument      string      `json:"test_instrument,omitempty"`
	InstrumentSerial    string      `json:"instrument_serial,omitempty"`
	ProvingSteps        []CheckItem `json:"proving_steps,omitempty"`
	LockOffApplied      bool        `json:"lock_off_applied,omitempty"`
	WarningNoticePosted bool        `json:"warning_notice_posted,omitempty"`
	ElectricianName     string      `json:"electrician_name,omitempty"`
}

func (SafeIsolationRecord) Type() DocType { return DocSafeIsolation }

type PreUseCheckRecord struct {
	Meta
	EquipmentName string      `json:"equipment_name"`
	EquipmentID   string      `json:"equipment_id,omitempty"`
	CheckDate     string      `json:"check_date,omitempty"`
	OperatorName  string      `json:"operator_name,omitempty"`
	OverallResult string      `json:"overall_result"` // pass|fail
	CheckItems    []CheckItem `json:"check_items,omitempty"`
	DefectsFound  string      `json:"defects_found,omitempty"`
	ActionTaken   string      `json:"action_taken,omitempty"`
}

func (PreUseCheckRecord) Type() DocType { return DocPreUseCheck }

// EquipmentItem is one asset line in an equipment register.
type EquipmentItem struct {
	Name          string `json:"name"`
	SerialNumber  string `json:"serial_number,omitempty"`
	Location      string `json:"location,omitempty"`
	LastInspected string `json:"last_inspected,omitempty"`
	NextDue       string `json:"next_due,omitempty"`
	Condition     string `json:"condition,omitempty"`
}

type EquipmentRegisterRecord struct {
	Meta
	RegisterName string          `json:"register_name,omitempty"`
	Status       string          `json:"status"` // current|due-soon|overdue
	Items        []EquipmentItem `json:"items,omitempty"`
	ReviewedBy   string          `json:"reviewed_by,omitempty"`
	ReviewDate   string          `json:"review_date,omitempty"`
}

func (EquipmentRegisterRecord) Type() DocType { return DocEquipmentRegister }

type FireWatchRecord struct {
	Meta
	Location          string      `json:"location"`
	WatchDate         string      `json:"watch_date,omitempty"`
	StartTime         string      `json:"start_time,omitempty"`
	EndTime           string      `json:"end_time,omitempty"`
	WatcherName       string      `json:"watcher_name,omitempty"`
	HotWorksPermitRef string      `json:"hot_works_permit_ref,omitempty"`
	Checks            []CheckItem `json:"checks,omitempty"`
	Extinguishers     []string    `json:"extinguishers,omitempty"`
	IncidentsObserved string      `json:"incidents_observed,omitempty"`
	AllClearConfirmed bool        `json:"all_clear_confirmed,omitempty"`
}

func (FireWatchRecord) Type() DocType { return DocFireWatch }

type SiteInspectionRecord struct {
	Meta
	SiteName        string      `json:"site_name"`
	InspectionDate  string      `json:"inspection_date,omitempty"`
	InspectorName   string      `json:"inspector_name,omitempty"`
	OverallRating   string      `json:"overall_rating"` // good|satisfactory|poor
	Items           []CheckItem `json:"items,omitempty"`
	Observations    string      `json:"observations,omitempty"`
	ActionsRequired []string    `json:"actions_required,omitempty"`
}

func (SiteInspectionRecord) Type() DocType { return DocSiteInspection }

type ObservationRecord struct {
	Meta
	ObserverName     string   `json:"observer_name,omitempty"`
	ObservedDate     string   `json:"observed_date,omitempty"`
	Location         string   `json:"location,omitempty"`
	TaskObserved     string   `json:"task_observed"`
	RiskLevel        string   `json:"risk_level"` // low|medium|high
	SafeBehaviours   []string `json:"safe_behaviours,omitempty"`
	UnsafeBehaviours []string `json:"unsafe_behaviours,omitempty"`
	FeedbackGiven    string   `json:"feedback_given,omitempty"`
	AgreedActions    []string `json:"agreed_actions,omitempty"`
}

func (ObservationRecord) Type() DocType { return DocObservation }

type SiteDiaryRecord struct {
	Meta
	SiteName           string   `json:"site_name"`
	EntryDate          string   `json:"entry_date,omitempty"`
	Author             string   `json:"author,omitempty"`
	Weather            string   `json:"weather,omitempty"`
	WorkersOnSite      int      `json:"workers_on_site,omitempty"`
	WorkCompleted      string   `json:"work_completed,omitempty"`
	MaterialsDelivered []string `json:"materials_delivered,omitempty"`
	Visitors           []string `json:"visitors,omitempty"`
	DelaysOrIssues     string   `json:"delays_or_issues,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

func (SiteDiaryRecord) Type() DocType { return DocSiteDiary }

type ToolboxTalkRecord struct {
	Meta
	Topic           string      `json:"topic"`
	TalkDate        string      `json:"talk_date,omitempty"`
	PresenterName   string      `json:"presenter_name,omitempty"`
	Location        string      `json:"location,omitempty"`
	DurationMinutes int         `json:"duration_minutes,omitempty"`
	KeyPoints       []string    `json:"key_points,omitempty"`
	Attendees       []Signatory `json:"attendees,omitempty"`
	QuestionsRaised string      `json:"questions_raised,omitempty"`
}

func (ToolboxTalkRecord) Type() DocType { return DocToolboxTalk }
