package notifsvc

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/markaz/backend/core"
)

var (
	// SentNotifications collects everything the console service "delivered";
	// tests inspect it.
	SentNotifications = make([]core.Notification, 0)
	mu                sync.Mutex
)

type consoleService struct {
	appName       string
	disableOutput bool
}

var _ core.NotificationService = (*consoleService)(nil)

func NewConsoleService(conf *core.Config) core.NotificationService {
	return &consoleService{
		appName:       conf.AppName,
		disableOutput: conf.TestMode,
	}
}

func (svc consoleService) Notify(notifications ...*core.Notification) {
	for _, n := range notifications {
		go svc.deliver(n)
	}
}

func (svc consoleService) deliver(n *core.Notification) {
	mu.Lock()
	SentNotifications = append(SentNotifications, *n)
	mu.Unlock()

	if svc.disableOutput {
		return
	}

	body := new(strings.Builder)
	fmt.Fprintf(body, "[%s] %s\n", svc.appName, time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(body, "To teacher: %s\n", n.TeacherID)
	switch n.Kind {
	case core.NotifyReport:
		body.WriteString(n.Body)
	default:
		fmt.Fprintf(body, "%s of %s: %s (by %s)\n", n.Kind, n.Amount, n.Note, n.Actor)
	}
	log.Print(body.String())
}

// Sent returns a copy of the captured notifications.
func Sent() []core.Notification {
	mu.Lock()
	defer mu.Unlock()
	return append([]core.Notification(nil), SentNotifications...)
}

// ClearSent resets the captured notifications between tests.
func ClearSent() {
	mu.Lock()
	SentNotifications = SentNotifications[:0]
	mu.Unlock()
}
