package schemas

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevel_Valid(t *testing.T) {
	assert.True(t, RiskHigh.Valid())
	assert.True(t, RiskMedium.Valid())
	assert.True(t, RiskLow.Valid())
	assert.False(t, RiskLevel("Critical").Valid())
	assert.False(t, RiskLevel("").Valid())
}

func TestReport_Clone(t *testing.T) {
	r := Report{
		SystemName: "Portal",
		Findings: []Finding{
			{ID: "1", RiskLevel: RiskHigh, Name: "SQLi"},
		},
	}

	c := r.Clone()
	c.Findings[0].Name = "mutated"
	c.SystemName = "mutated"

	assert.Equal(t, "SQLi", r.Findings[0].Name)
	assert.Equal(t, "Portal", r.SystemName)
}

func TestGenerationPayload_WireFieldNames(t *testing.T) {
	p := GenerationPayload{
		SystemName:    "Portal",
		ShortDate:     "20260830",
		TestDateRange: "8/20-8/28",
		Vulnerabilities: []VulnerabilityPayload{
			{Risk: RiskHigh, Name: "SQLi", Process: ProcessDetail{Text: "steps"}},
		},
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p)
	require.NoError(t, err)

	s := string(data)
	// The rendering service's schema is exact; these names are load-bearing.
	assert.Contains(t, s, `"systemName":"Portal"`)
	assert.Contains(t, s, `"sDate":"20260830"`)
	assert.Contains(t, s, `"testDateRange":"8/20-8/28"`)
	assert.Contains(t, s, `"risk":"High"`)
	assert.Contains(t, s, `"process":{"text":"steps","image_path":""}`)
}
