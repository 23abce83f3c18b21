package roster

import (
	"github.com/markaz/backend/core"
)

type (
	// Repository reads the student and group directories (external CRUD).
	Repository interface {
		GetStudentByID(id string) (Student, error)
		QueryAllStudents() ([]Student, error)
		QueryAllGroups() ([]Group, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetStudent(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

// TeacherGroups returns the groups staffed by the given teacher.
func (svc *Service) TeacherGroups(teacherID string) ([]Group, error) {
	groups, err := svc.repo.QueryAllGroups()
	if err != nil {
		return nil, err
	}
	taught := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.TeacherID == teacherID {
			taught = append(taught, g)
		}
	}
	return taught, nil
}

// TeacherStudents returns every student assigned to one of the teacher's groups.
func (svc *Service) TeacherStudents(teacherID string) ([]Student, error) {
	groups, err := svc.TeacherGroups(teacherID)
	if err != nil {
		return nil, err
	}
	groupIDs := make(map[string]bool, len(groups))
	for _, g := range groups {
		groupIDs[g.ID] = true
	}

	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	taught := make([]Student, 0, len(students))
	for _, s := range students {
		if s.GroupID != "" && groupIDs[s.GroupID] {
			taught = append(taught, s)
		}
	}
	return taught, nil
}

// MonthCohort returns the teacher's students that count towards fee
// expectation for the given month: not archived, and enrolled on or before the
// end of that month. Students enrolled after the month carry no expectation
// for it.
func (svc *Service) MonthCohort(teacherID string, month core.MonthKey) ([]Student, error) {
	students, err := svc.TeacherStudents(teacherID)
	if err != nil {
		return nil, err
	}
	cohort := students[:0]
	for _, s := range students {
		if s.IsArchived() {
			continue
		}
		if s.EnrollmentDate.UTC().Before(month.End()) {
			cohort = append(cohort, s)
		}
	}
	return cohort, nil
}
