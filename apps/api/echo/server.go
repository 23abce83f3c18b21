package echoapi

import (
	"context"
	"net/http"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/adjustment"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/finance"
	"github.com/markaz/backend/core/payroll"
	"github.com/markaz/backend/core/roster"
	"github.com/markaz/backend/core/staff"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Conf       *core.Config
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		Engine    *payroll.Engine
		StaffSvc  *staff.Service
		RosterSvc *roster.Service
		AttSvc    *attendance.Service
		AdjSvc    *adjustment.Service
		FeeSvc    *fees.Service
		ExSvc     *exemption.Service
		FinSvc    *finance.Service
		NotifSvc  core.NotificationService
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options, shutdown chan os.Signal) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: shutdown,
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf
	translator = s.opts.Translator

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1", actorMiddleware())

	registerPayrollAPI(v1, s.opts)
	registerLedgerAPI(v1, s.opts)
	registerDirectoryAPI(v1, s.opts)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) signalShutdown() {
	if s.shutdown != nil {
		s.shutdown <- os.Interrupt
	}
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Markaz API!")
}
