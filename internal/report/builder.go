// File: internal/report/builder.go
package report

import (
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/hollisng/reportforge/api/schemas"
)

// Draft is the editing buffer for the finding currently being composed.
// It has no identity until it is committed into the report.
type Draft struct {
	RiskLevel   schemas.RiskLevel
	Name        string
	Description string
	Process     string
	Advice      string
}

// Builder owns the in-memory report for one session. It is created empty,
// mutated field-by-field and finding-by-finding, and discarded when the
// session ends; nothing is persisted.
//
// All mutations are serialized by an internal mutex so a UI layer and the
// submission path can share one instance.
type Builder struct {
	mu     sync.Mutex
	logger *zap.Logger

	report schemas.Report
	draft  Draft

	// nextID is a monotonic logical counter. Finding ids only need to be
	// unique within a session, and a counter cannot collide under rapid
	// successive creation the way wall-clock ids can.
	nextID uint64

	// onChange is invoked after every successful mutation so an observing
	// layer can re-render. Never called for rejected (no-op) mutations.
	onChange func()
}

// NewBuilder creates an empty report builder.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		logger: logger.Named("report_builder"),
		draft:  Draft{RiskLevel: schemas.RiskMedium},
		nextID: 1,
	}
}

// OnChange registers the mutation observer. Passing nil clears it.
func (b *Builder) OnChange(fn func()) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// AddFinding validates and commits a draft as a new finding at the end of
// the sequence, then clears the editing buffer.
//
// A draft with a blank name or description is silently ignored and the
// findings sequence is left unchanged. This is a validation gate, not an
// error; the return value reports whether the finding was added.
func (b *Builder) AddFinding(d Draft) bool {
	if d.Name == "" || d.Description == "" {
		return false
	}
	if !d.RiskLevel.Valid() {
		d.RiskLevel = schemas.RiskMedium
	}

	b.mu.Lock()
	id := strconv.FormatUint(b.nextID, 10)
	b.nextID++
	b.report.Findings = append(b.report.Findings, schemas.Finding{
		ID:          id,
		RiskLevel:   d.RiskLevel,
		Name:        d.Name,
		Description: d.Description,
		Process:     d.Process,
		Advice:      d.Advice,
	})
	b.draft = Draft{RiskLevel: schemas.RiskMedium}
	notify := b.onChange
	b.mu.Unlock()

	b.logger.Debug("Finding added.", zap.String("id", id), zap.String("risk", string(d.RiskLevel)))
	if notify != nil {
		notify()
	}
	return true
}

// RemoveFinding removes the finding with the matching id if present,
// otherwise it is a no-op. Remaining ids are not renumbered; display
// numbering is positional, not id-based.
func (b *Builder) RemoveFinding(id string) bool {
	b.mu.Lock()
	idx := -1
	for i, f := range b.report.Findings {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return false
	}
	b.report.Findings = append(b.report.Findings[:idx], b.report.Findings[idx+1:]...)
	notify := b.onChange
	b.mu.Unlock()

	b.logger.Debug("Finding removed.", zap.String("id", id))
	if notify != nil {
		notify()
	}
	return true
}

// UpdateField replaces a single scalar field, addressed by its wire name,
// leaving all others untouched. Unknown field names are rejected.
func (b *Builder) UpdateField(name, value string) bool {
	b.mu.Lock()
	ok := true
	switch name {
	case "systemName":
		b.report.SystemName = value
	case "reportDate":
		b.report.ReportDate = value
	case "sDate":
		b.report.ShortDate = value
	case "ipOrDomain":
		b.report.IPOrDomain = value
	case "testDateRange":
		b.report.TestDateRange = value
	case "contactName":
		b.report.ContactName = value
	case "contactPhone":
		b.report.ContactPhone = value
	case "testerName":
		b.report.TesterName = value
	case "testerPhone":
		b.report.TesterPhone = value
	case "testAccount":
		b.report.TestAccount = value
	default:
		ok = false
	}
	notify := b.onChange
	b.mu.Unlock()

	if !ok {
		b.logger.Warn("Ignoring update for unknown report field.", zap.String("field", name))
		return false
	}
	if notify != nil {
		notify()
	}
	return true
}

// SetDraft replaces the current editing buffer.
func (b *Builder) SetDraft(d Draft) {
	b.mu.Lock()
	b.draft = d
	b.mu.Unlock()
}

// Draft returns a copy of the current editing buffer.
func (b *Builder) Draft() Draft {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

// CommitDraft adds the current editing buffer as a finding. It shares
// AddFinding's validation gate and buffer-clearing behavior.
func (b *Builder) CommitDraft() bool {
	b.mu.Lock()
	d := b.draft
	b.mu.Unlock()
	return b.AddFinding(d)
}

// Snapshot returns a deep copy of the report for submission. The submission
// pipeline never observes later mutations.
func (b *Builder) Snapshot() schemas.Report {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.report.Clone()
}

// Load replaces the whole report, keeping the id counter ahead of any
// numeric ids already present so future findings stay unique.
func (b *Builder) Load(r schemas.Report) {
	b.mu.Lock()
	b.report = r.Clone()
	for i := range b.report.Findings {
		f := &b.report.Findings[i]
		if f.ID == "" {
			f.ID = strconv.FormatUint(b.nextID, 10)
			b.nextID++
			continue
		}
		if n, err := strconv.ParseUint(f.ID, 10, 64); err == nil && n >= b.nextID {
			b.nextID = n + 1
		}
	}
	notify := b.onChange
	b.mu.Unlock()

	if notify != nil {
		notify()
	}
}
