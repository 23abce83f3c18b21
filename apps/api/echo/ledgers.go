package echoapi

import (
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core"
	"github.com/markaz/backend/core/adjustment"
	"github.com/markaz/backend/core/attendance"
	"github.com/markaz/backend/core/exemption"
	"github.com/markaz/backend/core/finance"
)

type ledgerApi struct {
	attSvc     *attendance.Service
	adjSvc     *adjustment.Service
	exSvc      *exemption.Service
	finSvc     *finance.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerLedgerAPI(g *echo.Group, opts *Options) {
	api := ledgerApi{
		attSvc:     opts.AttSvc,
		adjSvc:     opts.AdjSvc,
		exSvc:      opts.ExSvc,
		finSvc:     opts.FinSvc,
		validate:   opts.Validate,
		translator: opts.Translator,
	}

	tg := g.Group("/teachers/:id")
	tg.PUT("/attendance", api.setAttendance)
	tg.POST("/adjustments", api.createAdjustment)
	tg.POST("/payments", api.recordPayment)
	tg.POST("/handovers", api.recordHandover)

	g.POST("/exemptions", api.grantExemption)
	g.DELETE("/exemptions/:studentId", api.revokeExemption)
	g.DELETE("/transactions/:id", api.deleteTransaction)
}

type setAttendanceRequest struct {
	Date   time.Time `json:"date" validate:"required"`
	Status string    `json:"status" validate:"required"`
	Notes  string    `json:"notes"`
}

func (r *setAttendanceRequest) Validate(validate *validator.Validate) error {
	r.Status = core.CleanString(r.Status, true)
	return validate.Struct(r)
}

type moneyRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"dgt0"`
	Description string          `json:"description"`
}

func (r *moneyRequest) Validate(validate *validator.Validate) error {
	r.Description = core.CleanString(r.Description)
	return validate.Struct(r)
}

// Handlers

func (api *ledgerApi) setAttendance(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data setAttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to setAttendanceRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.attSvc.SetStatus(actor, ctx.Param("id"), data.Date, data.Status, data.Notes)
	if err != nil {
		return errors.Wrap(err, "setting attendance status")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *ledgerApi) createAdjustment(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data adjustment.NewAdjustment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAdjustment")
	}
	data.TeacherID = ctx.Param("id")
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	adj, err := api.adjSvc.Create(actor, data)
	if err != nil {
		return errors.Wrap(err, "creating adjustment")
	}
	return ctx.JSON(http.StatusCreated, adj)
}

func (api *ledgerApi) recordPayment(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data moneyRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to moneyRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tx, err := api.finSvc.RecordSalaryPayment(actor, ctx.Param("id"), data.Amount, data.Description)
	if err != nil {
		return errors.Wrap(err, "recording salary payment")
	}
	return ctx.JSON(http.StatusCreated, tx)
}

func (api *ledgerApi) recordHandover(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data moneyRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to moneyRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tx, err := api.finSvc.RecordHandover(actor, ctx.Param("id"), data.Amount, data.Description)
	if err != nil {
		return errors.Wrap(err, "recording handover")
	}
	return ctx.JSON(http.StatusCreated, tx)
}

func (api *ledgerApi) grantExemption(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	var data exemption.NewExemption
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExemption")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	ex, err := api.exSvc.Grant(actor, data)
	if err != nil {
		return errors.Wrap(err, "granting exemption")
	}
	return ctx.JSON(http.StatusCreated, ex)
}

func (api *ledgerApi) revokeExemption(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	month, err := core.ParseMonth(ctx.QueryParam("month"))
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "month", Error: err.Error()})
	}

	if err := api.exSvc.Revoke(actor, ctx.Param("studentId"), month); err != nil {
		return errors.Wrap(err, "revoking exemption")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *ledgerApi) deleteTransaction(ctx echo.Context) error {
	actor, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	if err := api.finSvc.Delete(actor, ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting transaction")
	}
	return ctx.NoContent(http.StatusNoContent)
}
