package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/markaz/backend/apps/api/echo"
	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/adjustment"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/finance"
	"github.com/markaz/backend/core/payroll"
	"github.com/markaz/backend/core/roster"
	"github.com/markaz/backend/core/staff"
	logsvc "github.com/markaz/backend/services/logger"
	notifsvc "github.com/markaz/backend/services/notification"
	inmemdb "github.com/markaz/backend/storage/database/inmem"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, conf.AppName+" ", log.LstdFlags|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!(conf.Debug || conf.TestMode))

	// set up validators
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator(enLocale.Locale())
	validate := validator.New()
	core.InitValidators(validate, translator)

	// set up DB
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer db.Close()

	// set up services
	var notifSvc core.NotificationService
	if conf.Debug {
		notifSvc = notifsvc.NewConsoleService(conf)
	} else {
		notifSvc = notifsvc.NewSendgridService(conf, logger)
	}

	staffSvc := staff.NewService(inmemdb.NewTeacherRepository(db))
	rosterSvc := roster.NewService(inmemdb.NewRosterRepository(db))
	attSvc := attendance.NewService(inmemdb.NewAttendanceRepository(db))
	adjSvc := adjustment.NewService(inmemdb.NewAdjustmentRepository(db), notifSvc)
	feeSvc := fees.NewService(inmemdb.NewFeeRepository(db))
	exSvc := exemption.NewService(inmemdb.NewExemptionRepository(db))
	finSvc := finance.NewService(inmemdb.NewTransactionRepository(db))

	engine := payroll.NewEngine(
		payroll.Config{
			WorkingDaysPerMonth: conf.WorkingDaysPerMonth,
			PaidScope:           conf.DeficitPaidScope,
			CountWeekendMarks:   conf.CountWeekendMarks,
			WeekendDays:         conf.WeekendDays,
		},
		fees.NewResolver(),
		staffSvc, rosterSvc, attSvc, adjSvc, feeSvc, exSvc, finSvc,
	)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Address:    conf.Server.Addr,
			Conf:       conf,
			Logger:     logger,
			Validate:   validate,
			Translator: translator,
			Engine:     engine,
			StaffSvc:   staffSvc,
			RosterSvc:  rosterSvc,
			AttSvc:     attSvc,
			AdjSvc:     adjSvc,
			FeeSvc:     feeSvc,
			ExSvc:      exSvc,
			FinSvc:     finSvc,
			NotifSvc:   notifSvc,
		},
		shutdown,
	)
	go app.Start()

	<-shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("stopping server", err)
	}
}
