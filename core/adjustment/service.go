package adjustment

import (
	"time"

	"github.com/markaz/backend/core"
)

type (
	Repository interface {
		CreateAdjustment(adj Adjustment) (Adjustment, error)
		MonthAdjustments(teacherID string, month core.MonthKey) ([]Adjustment, error)
		DeleteAdjustment(id string) error
	}

	Service struct {
		repo     Repository
		notifSvc core.NotificationService
	}
)

func NewService(repo Repository, notifSvc core.NotificationService) *Service {
	return &Service{repo: repo, notifSvc: notifSvc}
}

// Create persists a manual adjustment and notifies the teacher. The
// notification is fire-and-forget: the ledger write succeeds whether or not
// delivery does.
func (svc *Service) Create(actor core.Actor, na NewAdjustment) (Adjustment, error) {
	if !actor.CanEditLedgers() {
		return Adjustment{}, core.NewPermissionError("only a director or supervisor may record adjustments")
	}
	if actor.ID == na.TeacherID {
		return Adjustment{}, core.NewPermissionError("staff may not record their own adjustments")
	}

	adj, err := svc.repo.CreateAdjustment(Adjustment{
		TeacherID: na.TeacherID,
		Amount:    na.Amount.Abs(),
		Kind:      na.Kind,
		Reason:    na.Reason,
		AppliedAt: time.Now().UTC(),
	})
	if err != nil {
		return Adjustment{}, err
	}

	kind := core.NotifyDeduction
	if adj.IsReward() {
		kind = core.NotifyReward
	}
	svc.notifSvc.Notify(&core.Notification{
		TeacherID: adj.TeacherID,
		Kind:      kind,
		Amount:    adj.Amount,
		Note:      adj.Reason,
		Actor:     actor.Name,
	})

	return adj, nil
}

func (svc *Service) MonthAdjustments(teacherID string, month core.MonthKey) ([]Adjustment, error) {
	return svc.repo.MonthAdjustments(teacherID, month)
}

func (svc *Service) Delete(actor core.Actor, id string) error {
	if !actor.IsDirector() {
		return core.NewPermissionError("only a director may delete adjustments")
	}
	return svc.repo.DeleteAdjustment(id)
}
