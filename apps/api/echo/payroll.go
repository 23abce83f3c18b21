package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/payroll"
)

type payrollApi struct {
	engine   *payroll.Engine
	notifSvc core.NotificationService
}

func registerPayrollAPI(g *echo.Group, opts *Options) {
	api := payrollApi{
		engine:   opts.Engine,
		notifSvc: opts.NotifSvc,
	}

	pg := g.Group("/teachers/:id/payroll")
	pg.GET("", api.summarize)
	pg.GET("/report", api.report)
	pg.POST("/report/send", api.sendReport)
}

// Handlers

func (api *payrollApi) load(ctx echo.Context) (payroll.Snapshot, error) {
	month, err := core.ParseMonth(ctx.QueryParam("month"))
	if err != nil {
		return payroll.Snapshot{}, core.NewValidationError(err, core.FieldError{Field: "month", Error: err.Error()})
	}
	snap, err := api.engine.Load(ctx.Param("id"), month)
	if err != nil {
		return payroll.Snapshot{}, errors.Wrap(err, "loading payroll snapshot")
	}
	return snap, nil
}

func (api *payrollApi) summarize(ctx echo.Context) error {
	snap, err := api.load(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.engine.Summarize(snap))
}

func (api *payrollApi) report(ctx echo.Context) error {
	snap, err := api.load(ctx)
	if err != nil {
		return err
	}
	return ctx.String(http.StatusOK, api.engine.Summarize(snap).Text())
}

func (api *payrollApi) sendReport(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	snap, err := api.load(ctx)
	if err != nil {
		return err
	}

	report := api.engine.Summarize(snap)
	api.notifSvc.Notify(&core.Notification{
		TeacherID:   snap.Teacher.ID,
		TeacherName: snap.Teacher.FullName,
		Kind:        core.NotifyReport,
		Body:        report.Text(),
		Actor:       actor.Name,
	})
	return ctx.JSON(http.StatusAccepted, echo.Map{"status": "queued"})
}
