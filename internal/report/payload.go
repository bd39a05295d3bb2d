// File: internal/report/payload.go
package report

import (
	"github.com/hollisng/reportforge/api/schemas"
)

// ToPayload derives the wire payload for the rendering service from a report
// snapshot. It is a pure mapping: deterministic, order-preserving, and
// without validation (the builder gates what enters the report).
//
// The renames match the service schema: riskLevel travels as "risk", and the
// free-text reproduction steps are wrapped into a process object whose
// image_path slot is reserved but unused.
func ToPayload(r schemas.Report) schemas.GenerationPayload {
	vulns := make([]schemas.VulnerabilityPayload, 0, len(r.Findings))
	for _, f := range r.Findings {
		vulns = append(vulns, schemas.VulnerabilityPayload{
			Risk:        f.RiskLevel,
			Name:        f.Name,
			Description: f.Description,
			Advice:      f.Advice,
			Process: schemas.ProcessDetail{
				Text:      f.Process,
				ImagePath: "",
			},
		})
	}

	return schemas.GenerationPayload{
		SystemName:      r.SystemName,
		ReportDate:      r.ReportDate,
		ShortDate:       r.ShortDate,
		IPOrDomain:      r.IPOrDomain,
		TestDateRange:   r.TestDateRange,
		ContactName:     r.ContactName,
		ContactPhone:    r.ContactPhone,
		TesterName:      r.TesterName,
		TesterPhone:     r.TesterPhone,
		TestAccount:     r.TestAccount,
		Vulnerabilities: vulns,
	}
}
