// File: internal/report/builder_test.go
package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hollisng/reportforge/api/schemas"
)

func newTestBuilder() *Builder {
	return NewBuilder(zap.NewNop())
}

func TestAddFinding_ValidationGate(t *testing.T) {
	b := newTestBuilder()

	// Blank name or description must leave the sequence unchanged.
	assert.False(t, b.AddFinding(Draft{Description: "desc"}))
	assert.False(t, b.AddFinding(Draft{Name: "XSS"}))
	assert.False(t, b.AddFinding(Draft{}))
	assert.Empty(t, b.Snapshot().Findings)

	ok := b.AddFinding(Draft{RiskLevel: schemas.RiskHigh, Name: "XSS", Description: "reflected"})
	assert.True(t, ok)
	require.Len(t, b.Snapshot().Findings, 1)
}

func TestAddFinding_AssignsUniqueIDsInOrder(t *testing.T) {
	b := newTestBuilder()

	for i := 0; i < 50; i++ {
		require.True(t, b.AddFinding(Draft{
			Name:        fmt.Sprintf("finding-%d", i),
			Description: "d",
		}))
	}

	findings := b.Snapshot().Findings
	require.Len(t, findings, 50)

	seen := make(map[string]bool)
	for i, f := range findings {
		assert.False(t, seen[f.ID], "id %q reused", f.ID)
		seen[f.ID] = true
		assert.Equal(t, fmt.Sprintf("finding-%d", i), f.Name, "insertion order must be preserved")
	}
}

func TestAddFinding_DefaultsInvalidRisk(t *testing.T) {
	b := newTestBuilder()
	require.True(t, b.AddFinding(Draft{RiskLevel: "Catastrophic", Name: "n", Description: "d"}))
	assert.Equal(t, schemas.RiskMedium, b.Snapshot().Findings[0].RiskLevel)
}

func TestRemoveFinding(t *testing.T) {
	b := newTestBuilder()
	b.AddFinding(Draft{Name: "a", Description: "d"})
	b.AddFinding(Draft{Name: "b", Description: "d"})
	b.AddFinding(Draft{Name: "c", Description: "d"})

	findings := b.Snapshot().Findings
	require.Len(t, findings, 3)

	assert.True(t, b.RemoveFinding(findings[1].ID))
	assert.False(t, b.RemoveFinding("no-such-id"), "unknown id must be a no-op")

	remaining := b.Snapshot().Findings
	require.Len(t, remaining, 2)
	// Ids of survivors are untouched; numbering is positional.
	assert.Equal(t, findings[0].ID, remaining[0].ID)
	assert.Equal(t, findings[2].ID, remaining[1].ID)
	assert.Equal(t, "a", remaining[0].Name)
	assert.Equal(t, "c", remaining[1].Name)
}

// TestAddRemove_ReplayEquivalence checks that any interleaving of adds and
// removes ends up equal to replaying only the surviving adds in their
// original insertion order.
func TestAddRemove_ReplayEquivalence(t *testing.T) {
	b := newTestBuilder()

	var ids []string
	add := func(name string) string {
		require.True(t, b.AddFinding(Draft{Name: name, Description: "d"}))
		fs := b.Snapshot().Findings
		id := fs[len(fs)-1].ID
		ids = append(ids, id)
		return id
	}

	a := add("a")
	add("b")
	c := add("c")
	b.RemoveFinding(a)
	add("d")
	b.RemoveFinding(c)
	add("e")

	// Survivors, in insertion order: b, d, e.
	replay := newTestBuilder()
	for _, name := range []string{"b", "d", "e"} {
		require.True(t, replay.AddFinding(Draft{Name: name, Description: "d"}))
	}

	got := b.Snapshot().Findings
	want := replay.Snapshot().Findings
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
	}
}

func TestUpdateField_PartialUpdate(t *testing.T) {
	b := newTestBuilder()
	assert.True(t, b.UpdateField("systemName", "Portal"))
	assert.True(t, b.UpdateField("contactPhone", "555-0100"))
	assert.False(t, b.UpdateField("nonsense", "x"))

	r := b.Snapshot()
	assert.Equal(t, "Portal", r.SystemName)
	assert.Equal(t, "555-0100", r.ContactPhone)
	assert.Empty(t, r.TesterName, "untouched fields stay untouched")

	assert.True(t, b.UpdateField("systemName", "Portal v2"))
	r = b.Snapshot()
	assert.Equal(t, "Portal v2", r.SystemName)
	assert.Equal(t, "555-0100", r.ContactPhone)
}

func TestOnChange_NotifiedOnlyOnSuccess(t *testing.T) {
	b := newTestBuilder()
	notified := 0
	b.OnChange(func() { notified++ })

	b.AddFinding(Draft{})                             // rejected: no notify
	b.AddFinding(Draft{Name: "n", Description: "d"}) // +1
	b.UpdateField("systemName", "s")                 // +1
	b.UpdateField("bogus", "x")                      // rejected: no notify
	b.RemoveFinding("missing")                       // no-op: no notify

	assert.Equal(t, 2, notified)
}

func TestDraftBuffer_ClearedOnCommit(t *testing.T) {
	b := newTestBuilder()
	b.SetDraft(Draft{RiskLevel: schemas.RiskHigh, Name: "n", Description: "d", Advice: "fix"})

	require.True(t, b.CommitDraft())

	d := b.Draft()
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Description)
	assert.Empty(t, d.Advice)
	assert.Equal(t, schemas.RiskMedium, d.RiskLevel, "cleared buffer returns to the default tier")
}

func TestSnapshot_IsIsolated(t *testing.T) {
	b := newTestBuilder()
	b.AddFinding(Draft{Name: "n", Description: "d"})

	snap := b.Snapshot()
	snap.Findings[0].Name = "mutated"
	snap.SystemName = "mutated"

	r := b.Snapshot()
	assert.Equal(t, "n", r.Findings[0].Name)
	assert.Empty(t, r.SystemName)
}

func TestLoad_KeepsCounterAhead(t *testing.T) {
	b := newTestBuilder()
	b.Load(schemas.Report{Findings: []schemas.Finding{
		{ID: "7", Name: "n", Description: "d"},
		{Name: "unnumbered", Description: "d"},
	}})

	require.True(t, b.AddFinding(Draft{Name: "new", Description: "d"}))
	fs := b.Snapshot().Findings
	require.Len(t, fs, 3)

	seen := make(map[string]bool)
	for _, f := range fs {
		assert.NotEmpty(t, f.ID)
		assert.False(t, seen[f.ID], "id %q reused after Load", f.ID)
		seen[f.ID] = true
	}
}
