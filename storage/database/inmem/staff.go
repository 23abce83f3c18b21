package inmemdb

import (
	"github.com/google/uuid"

	"github.com/markaz/backend/core/roster"
	"github.com/markaz/backend/core/staff"
)

type teacherRepository struct {
	db *teacherTable
}

func NewTeacherRepository(db *DB) staff.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) GetTeacherByID(id string) (staff.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return staff.Teacher{}, staff.ErrNotFound
}

func (repo *teacherRepository) QueryAllTeachers() ([]staff.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	teachers := make([]staff.Teacher, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		teachers = append(teachers, *t)
	}
	return teachers, nil
}

// SaveTeacher seeds the directory; teacher CRUD proper lives in the external
// collaborator.
func (repo *teacherRepository) SaveTeacher(t staff.Teacher) (staff.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

type rosterRepository struct {
	students *studentTable
	groups   *groupTable
}

func NewRosterRepository(db *DB) roster.Repository {
	return &rosterRepository{students: db.student, groups: db.group}
}

func (repo *rosterRepository) GetStudentByID(id string) (roster.Student, error) {
	repo.students.RLock()
	defer repo.students.RUnlock()

	if s, ok := repo.students.table[id]; ok {
		return *s, nil
	}
	return roster.Student{}, roster.ErrStudentNotFound
}

func (repo *rosterRepository) QueryAllStudents() ([]roster.Student, error) {
	repo.students.RLock()
	defer repo.students.RUnlock()

	students := make([]roster.Student, 0, len(repo.students.table))
	for _, s := range repo.students.table {
		students = append(students, *s)
	}
	return students, nil
}

func (repo *rosterRepository) QueryAllGroups() ([]roster.Group, error) {
	repo.groups.RLock()
	defer repo.groups.RUnlock()

	groups := make([]roster.Group, 0, len(repo.groups.table))
	for _, g := range repo.groups.table {
		groups = append(groups, *g)
	}
	return groups, nil
}

func (repo *rosterRepository) SaveStudent(s roster.Student) (roster.Student, error) {
	repo.students.Lock()
	defer repo.students.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	repo.students.table[s.ID] = &s
	return s, nil
}

func (repo *rosterRepository) SaveGroup(g roster.Group) (roster.Group, error) {
	repo.groups.Lock()
	defer repo.groups.Unlock()

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	repo.groups.table[g.ID] = &g
	return g, nil
}
