package fees

import (
	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/arabic"
	"github.com/markaz/backend/core/staff"
)

// Collector classifications
const (
	CollectorTeacher = "teacher"
	CollectorManager = "manager"
)

// Resolver classifies who collected a fee. CreatedBy is free text that may be
// a teacher's full name, a teacher's phone, or a manager marker; matching goes
// through arabic.Normalize so spelling variants of the same name resolve
// identically. Anything that matches no teacher classifies as manager-collected
// rather than dropping out of every aggregate.
type Resolver struct {
	managerMarkers map[string]bool
}

// DefaultManagerMarkers are the values the collection UI historically wrote
// for manager-direct collections.
var DefaultManagerMarkers = []string{"manager", "المدير", "الإدارة", "الادارة"}

func NewResolver(managerMarkers ...string) *Resolver {
	if len(managerMarkers) == 0 {
		managerMarkers = DefaultManagerMarkers
	}
	markers := make(map[string]bool, len(managerMarkers))
	for _, m := range managerMarkers {
		markers[arabic.Normalize(m)] = true
	}
	return &Resolver{managerMarkers: markers}
}

// CollectedBy reports whether the record was collected by the given teacher.
func (r *Resolver) CollectedBy(rec Record, t staff.Teacher) bool {
	if rec.CollectorID != "" {
		return rec.CollectorID == t.ID
	}
	createdBy := core.CleanString(rec.CreatedBy)
	if createdBy == "" {
		return false
	}
	if createdBy == t.FullName || (t.Phone != "" && createdBy == t.Phone) {
		return true
	}
	return arabic.Equivalent(createdBy, t.FullName)
}

// IsManagerMarker reports whether the free-text identity is one of the known
// manager markers.
func (r *Resolver) IsManagerMarker(createdBy string) bool {
	return r.managerMarkers[arabic.Normalize(createdBy)]
}

// Classify resolves the collector of a record against the candidate teachers.
// A manager marker wins outright, before any teacher matching, so a teacher
// whose name happens to resemble a marker never claims a manager-direct
// collection. Otherwise it returns CollectorTeacher plus the teacher's ID on a
// match, and CollectorManager for unmatched free text.
func (r *Resolver) Classify(rec Record, teachers []staff.Teacher) (collector, teacherID string) {
	if rec.CollectorID == "" && r.IsManagerMarker(core.CleanString(rec.CreatedBy)) {
		return CollectorManager, ""
	}
	for _, t := range teachers {
		if r.CollectedBy(rec, t) {
			return CollectorTeacher, t.ID
		}
	}
	return CollectorManager, ""
}

// Backfill computes explicit collector IDs for historical records that only
// carry free-text identities. It is a one-time migration helper: new records
// get CollectorID at creation time and never go through fuzzy matching again.
func (r *Resolver) Backfill(records []Record, teachers []staff.Teacher) map[string]string {
	resolved := make(map[string]string)
	for _, rec := range records {
		if rec.CollectorID != "" {
			continue
		}
		if collector, teacherID := r.Classify(rec, teachers); collector == CollectorTeacher {
			resolved[rec.ID] = teacherID
		}
	}
	return resolved
}
