package core

// Roles. Authentication and role resolution live outside this service;
// callers pass the already-resolved actor along with every write.
const (
	RoleDirector   = "director"
	RoleSupervisor = "supervisor"
	RoleManager    = "manager"
	RoleTeacher    = "teacher"
)

// Actor identifies the staff member performing a write.
type Actor struct {
	ID   string
	Name string
	Role string
}

func (a Actor) IsDirector() bool   { return a.Role == RoleDirector }
func (a Actor) IsSupervisor() bool { return a.Role == RoleSupervisor }
func (a Actor) IsManager() bool    { return a.Role == RoleManager }

// CanEditLedgers reports whether the actor may create or update attendance
// and manual adjustment records.
func (a Actor) CanEditLedgers() bool {
	return a.IsDirector() || a.IsSupervisor()
}
