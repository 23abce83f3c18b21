package inmemdb

import (
	"sync"
	"time"

	"github.com/markaz/backend/core/adjustment"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/finance"
	"github.com/markaz/backend/core/roster"
	"github.com/markaz/backend/core/staff"
)

type (
	DB struct {
		teacher     *teacherTable
		student     *studentTable
		group       *groupTable
		attendance  *attendanceTable
		adjustment  *adjustmentTable
		fee         *feeTable
		exemption   *exemptionTable
		transaction *transactionTable
	}

	teacherTable struct {
		sync.RWMutex
		table map[string]*staff.Teacher
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*roster.Student
	}

	groupTable struct {
		sync.RWMutex
		table map[string]*roster.Group
	}

	// keyed by teacherID, then day (midnight UTC)
	attendanceTable struct {
		sync.RWMutex
		table map[string]map[time.Time]*attendance.Record
	}

	adjustmentTable struct {
		sync.RWMutex
		table map[string]*adjustment.Adjustment
	}

	feeTable struct {
		sync.RWMutex
		table map[string]*fees.Record
	}

	// keyed by (studentID, month)
	exemptionTable struct {
		sync.RWMutex
		table map[exemptionKey]*exemption.Exemption
	}

	exemptionKey struct {
		studentID string
		month     string
	}

	transactionTable struct {
		sync.RWMutex
		table map[string]*finance.Transaction
	}
)

func Open() (*DB, error) {
	db := &DB{
		teacher:     &teacherTable{table: make(map[string]*staff.Teacher)},
		student:     &studentTable{table: make(map[string]*roster.Student)},
		group:       &groupTable{table: make(map[string]*roster.Group)},
		attendance:  &attendanceTable{table: make(map[string]map[time.Time]*attendance.Record)},
		adjustment:  &adjustmentTable{table: make(map[string]*adjustment.Adjustment)},
		fee:         &feeTable{table: make(map[string]*fees.Record)},
		exemption:   &exemptionTable{table: make(map[exemptionKey]*exemption.Exemption)},
		transaction: &transactionTable{table: make(map[string]*finance.Transaction)},
	}
	return db, nil
}

func (db *DB) Close() error { return nil }
