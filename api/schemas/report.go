package schemas

// -- Report Schemas --

// RiskLevel represents the severity tier assigned to a finding. The set is
// closed; the rendering service groups and colors findings by these values.
type RiskLevel string

// Constants defining the standard risk tiers for findings.
const (
	RiskHigh   RiskLevel = "High"   // Represents a high-risk vulnerability.
	RiskMedium RiskLevel = "Medium" // Represents a medium-risk vulnerability.
	RiskLow    RiskLevel = "Low"    // Represents a low-risk vulnerability.
)

// Valid reports whether the risk level is one of the closed set.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}

// Finding is a single recorded vulnerability entry within a report.
//
// ID is opaque and unique within a report. It is assigned by the report
// builder at creation time and never reused; display numbering in the
// rendered document is positional, not ID-based.
type Finding struct {
	ID          string    `json:"id" yaml:"id"`
	RiskLevel   RiskLevel `json:"riskLevel" yaml:"risk_level"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Process     string    `json:"process" yaml:"process"`
	Advice      string    `json:"advice" yaml:"advice"`
}

// Report is the aggregate the operator assembles before submission: scalar
// identity and contact fields plus an ordered sequence of findings.
// Insertion order of Findings is meaningful and is preserved all the way
// into the rendered document.
type Report struct {
	SystemName    string `json:"systemName" yaml:"system_name"`
	ReportDate    string `json:"reportDate" yaml:"report_date"`
	ShortDate     string `json:"sDate" yaml:"short_date"`
	IPOrDomain    string `json:"ipOrDomain" yaml:"ip_or_domain"`
	TestDateRange string `json:"testDateRange" yaml:"test_date_range"`
	ContactName   string `json:"contactName" yaml:"contact_name"`
	ContactPhone  string `json:"contactPhone" yaml:"contact_phone"`
	TesterName    string `json:"testerName" yaml:"tester_name"`
	TesterPhone   string `json:"testerPhone" yaml:"tester_phone"`
	TestAccount   string `json:"testAccount" yaml:"test_account"`

	Findings []Finding `json:"findings" yaml:"findings"`
}

// Clone returns a deep copy of the report. Submission reads a full snapshot,
// so the copy must not share the findings slice with the original.
func (r *Report) Clone() Report {
	out := *r
	if r.Findings != nil {
		out.Findings = make([]Finding, len(r.Findings))
		copy(out.Findings, r.Findings)
	}
	return out
}
