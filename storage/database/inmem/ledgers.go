package inmemdb

import (
	"time"

	"github.com/google/uuid"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/adjustment"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/finance"
)

// attendance

type attendanceRepository struct {
	db *attendanceTable
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) MonthRecords(teacherID string, month core.MonthKey) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var recs []attendance.Record
	for day, rec := range repo.db.table[teacherID] {
		if month.Contains(day) {
			recs = append(recs, *rec)
		}
	}
	return recs, nil
}

func (repo *attendanceRepository) UpsertRecord(rec attendance.Record) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	days, ok := repo.db.table[rec.TeacherID]
	if !ok {
		days = make(map[time.Time]*attendance.Record)
		repo.db.table[rec.TeacherID] = days
	}
	rec.Date = attendance.Day(rec.Date)
	days[rec.Date] = &rec
	return rec, nil
}

func (repo *attendanceRepository) DeleteRecord(teacherID string, day time.Time) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	days, ok := repo.db.table[teacherID]
	if !ok {
		return attendance.ErrNotFound
	}
	day = attendance.Day(day)
	if _, ok := days[day]; !ok {
		return attendance.ErrNotFound
	}
	delete(days, day)
	return nil
}

// manual adjustments

type adjustmentRepository struct {
	db *adjustmentTable
}

func NewAdjustmentRepository(db *DB) adjustment.Repository {
	return &adjustmentRepository{db: db.adjustment}
}

func (repo *adjustmentRepository) CreateAdjustment(adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if adj.ID == "" {
		adj.ID = uuid.NewString()
	}
	repo.db.table[adj.ID] = &adj
	return adj, nil
}

func (repo *adjustmentRepository) MonthAdjustments(teacherID string, month core.MonthKey) ([]adjustment.Adjustment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var adjs []adjustment.Adjustment
	for _, adj := range repo.db.table {
		if adj.TeacherID == teacherID && month.Contains(adj.AppliedAt) {
			adjs = append(adjs, *adj)
		}
	}
	return adjs, nil
}

func (repo *adjustmentRepository) DeleteAdjustment(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return adjustment.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

// fees

type feeRepository struct {
	db *feeTable
}

func NewFeeRepository(db *DB) fees.Repository {
	return &feeRepository{db: db.fee}
}

func (repo *feeRepository) QueryAllFees() ([]fees.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	recs := make([]fees.Record, 0, len(repo.db.table))
	for _, rec := range repo.db.table {
		recs = append(recs, *rec)
	}
	return recs, nil
}

func (repo *feeRepository) StudentFees(studentID string) ([]fees.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var recs []fees.Record
	for _, rec := range repo.db.table {
		if rec.StudentID == studentID {
			recs = append(recs, *rec)
		}
	}
	return recs, nil
}

// SaveFee seeds the ledger; fee creation proper lives in the external
// collection CRUD.
func (repo *feeRepository) SaveFee(rec fees.Record) (fees.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	repo.db.table[rec.ID] = &rec
	return rec, nil
}

// exemptions

type exemptionRepository struct {
	db *exemptionTable
}

func NewExemptionRepository(db *DB) exemption.Repository {
	return &exemptionRepository{db: db.exemption}
}

func (repo *exemptionRepository) MonthExemptions(month core.MonthKey) ([]exemption.Exemption, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var exs []exemption.Exemption
	for key, ex := range repo.db.table {
		if key.month == month.String() {
			exs = append(exs, *ex)
		}
	}
	return exs, nil
}

func (repo *exemptionRepository) UpsertExemption(ex exemption.Exemption) (exemption.Exemption, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	key := exemptionKey{studentID: ex.StudentID, month: ex.Month.String()}
	if prev, ok := repo.db.table[key]; ok {
		ex.ID = prev.ID
	} else if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	repo.db.table[key] = &ex
	return ex, nil
}

func (repo *exemptionRepository) DeleteExemption(studentID string, month core.MonthKey) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	key := exemptionKey{studentID: studentID, month: month.String()}
	if _, ok := repo.db.table[key]; !ok {
		return exemption.ErrNotFound
	}
	delete(repo.db.table, key)
	return nil
}

// transactions

type transactionRepository struct {
	db *transactionTable
}

func NewTransactionRepository(db *DB) finance.Repository {
	return &transactionRepository{db: db.transaction}
}

func (repo *transactionRepository) AppendTransaction(tx finance.Transaction) (finance.Transaction, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	repo.db.table[tx.ID] = &tx
	return tx, nil
}

func (repo *transactionRepository) QueryTransactions(f finance.Filter) ([]finance.Transaction, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var txs []finance.Transaction
	for _, tx := range repo.db.table {
		if f.Matches(*tx) {
			txs = append(txs, *tx)
		}
	}
	return txs, nil
}

func (repo *transactionRepository) DeleteTransaction(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return finance.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
