package roster

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// errors
	ErrStudentNotFound = errors.New("student not found")
	ErrGroupNotFound   = errors.New("group not found")
)

// Student statuses
const (
	StatusActive   = "active"
	StatusArchived = "archived"
	StatusPending  = "pending"
)

type Student struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	GroupID        string          `json:"group_id"` // empty when unassigned
	MonthlyAmount  decimal.Decimal `json:"monthly_amount"`
	EnrollmentDate time.Time       `json:"enrollment_date"`
	Status         string          `json:"status"`
}

func (s Student) IsArchived() bool { return s.Status == StatusArchived }

type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TeacherID string `json:"teacher_id"` // empty when unstaffed
}
