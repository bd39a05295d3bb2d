package schemas

// -- Generation Payload Schemas --
//
// These structs mirror the wire schema of the report-rendering service's
// /api/generate-report endpoint. They are constructed fresh per submission
// and never mutated afterwards.

// ProcessDetail wraps a finding's free-text reproduction steps together with
// a reserved slot for an image reference. Image upload is not implemented;
// the field is always sent empty so the rendering service's schema stays
// satisfied.
type ProcessDetail struct {
	Text      string `json:"text"`
	ImagePath string `json:"image_path"`
}

// VulnerabilityPayload is the wire form of a single finding. Note the field
// rename: the model's riskLevel travels as "risk".
type VulnerabilityPayload struct {
	Risk        RiskLevel     `json:"risk"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Advice      string        `json:"advice"`
	Process     ProcessDetail `json:"process"`
}

// GenerationPayload is the body of a report generation request. All scalar
// identity fields pass through from the Report unchanged; Vulnerabilities
// preserves the report's insertion order and is an empty (non-nil) slice
// when the report has no findings.
type GenerationPayload struct {
	SystemName      string                 `json:"systemName"`
	ReportDate      string                 `json:"reportDate"`
	ShortDate       string                 `json:"sDate"`
	IPOrDomain      string                 `json:"ipOrDomain"`
	TestDateRange   string                 `json:"testDateRange"`
	ContactName     string                 `json:"contactName"`
	ContactPhone    string                 `json:"contactPhone"`
	TesterName      string                 `json:"testerName"`
	TesterPhone     string                 `json:"testerPhone"`
	TestAccount     string                 `json:"testAccount"`
	Vulnerabilities []VulnerabilityPayload `json:"vulnerabilities"`
}

// ErrorBody is the structured failure response of both remote services.
type ErrorBody struct {
	Error string `json:"error"`
}
