package notifsvc

import (
	"fmt"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/markaz/backend/core"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// sendgridService delivers notifications to the manager inbox by email.
// Delivery is best-effort: failures are logged and dropped, never returned to
// the ledger write that triggered the notification.
type sendgridService struct {
	key        string
	from       *sgmail.Email
	to         *sgmail.Email
	subjPrefix string
	logger     core.Logger
}

var _ core.NotificationService = (*sendgridService)(nil)

func NewSendgridService(conf *core.Config, logger core.Logger) core.NotificationService {
	return &sendgridService{
		key:        conf.SendgridAPIKey,
		from:       toSGEmail(conf.DefaultFromEmail),
		to:         toSGEmail(conf.ManagerEmail),
		subjPrefix: "[" + conf.AppName + "] ",
		logger:     logger,
	}
}

func (svc *sendgridService) Notify(notifications ...*core.Notification) {
	for _, n := range notifications {
		n := n
		go func() {
			if err := svc.send(n); err != nil {
				svc.logger.Error("sending notification", err)
			}
		}()
	}
}

func (svc *sendgridService) send(n *core.Notification) error {
	p := sgmail.NewPersonalization()
	p.Subject = svc.subjPrefix + svc.subject(n)
	p.AddTos(svc.to)

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", svc.body(n)))

	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = "POST"
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func (svc *sendgridService) subject(n *core.Notification) string {
	switch n.Kind {
	case core.NotifyReport:
		return "Monthly report: " + n.TeacherName
	case core.NotifyReward:
		return "Reward recorded: " + n.TeacherName
	default:
		return "Deduction recorded: " + n.TeacherName
	}
}

func (svc *sendgridService) body(n *core.Notification) string {
	if n.Kind == core.NotifyReport {
		return n.Body
	}
	return fmt.Sprintf("%s of %s for teacher %s: %s (recorded by %s)", n.Kind, n.Amount, n.TeacherName, n.Note, n.Actor)
}

func toSGEmail(addr mail.Address) *sgmail.Email {
	return sgmail.NewEmail(addr.Name, addr.Address)
}
