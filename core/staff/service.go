package staff

type (
	// Repository reads the teacher directory. Teacher CRUD itself lives in an
	// external collaborator; this service only consumes it.
	Repository interface {
		GetTeacherByID(id string) (Teacher, error)
		QueryAllTeachers() ([]Teacher, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) GetByID(id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(id)
}

func (svc *Service) QueryAll() ([]Teacher, error) {
	return svc.repo.QueryAllTeachers()
}

func (svc *Service) QueryActive() ([]Teacher, error) {
	teachers, err := svc.repo.QueryAllTeachers()
	if err != nil {
		return nil, err
	}
	active := teachers[:0]
	for _, t := range teachers {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	return active, nil
}
