package attendance

import (
	"time"

	"github.com/markaz/backend/core"
)

type (
	Repository interface {
		// MonthRecords returns every recorded day for the teacher in the month.
		MonthRecords(teacherID string, month core.MonthKey) ([]Record, error)
		// UpsertRecord saves the record, replacing any existing status for the
		// same (teacher, day).
		UpsertRecord(rec Record) (Record, error)
		DeleteRecord(teacherID string, day time.Time) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) MonthRecords(teacherID string, month core.MonthKey) ([]Record, error) {
	return svc.repo.MonthRecords(teacherID, month)
}

// SetStatus records a status for one teacher day. Only directors and
// supervisors may write, and never for themselves.
func (svc *Service) SetStatus(actor core.Actor, teacherID string, date time.Time, status string, notes ...string) (Record, error) {
	if !actor.CanEditLedgers() {
		return Record{}, core.NewPermissionError("only a director or supervisor may mark attendance")
	}
	if actor.ID == teacherID {
		return Record{}, core.NewPermissionError("staff may not mark their own attendance")
	}
	if !ValidStatus(status) {
		return Record{}, core.NewValidationError(ErrInvalidStatus, core.FieldError{Field: "status", Error: ErrInvalidStatus.Error()})
	}

	rec := Record{
		TeacherID: teacherID,
		Date:      Day(date),
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	if len(notes) > 0 {
		rec.Notes = notes[0]
	}
	return svc.repo.UpsertRecord(rec)
}

// Clear removes the record for one teacher day, reverting it to the implicit
// "present" state.
func (svc *Service) Clear(actor core.Actor, teacherID string, date time.Time) error {
	if !actor.CanEditLedgers() {
		return core.NewPermissionError("only a director or supervisor may mark attendance")
	}
	return svc.repo.DeleteRecord(teacherID, Day(date))
}
