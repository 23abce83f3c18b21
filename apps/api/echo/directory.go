package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/markaz/backend/core/fees"
	"github.com/markaz/backend/core/roster"
	"github.com/markaz/backend/core/staff"
)

type directoryApi struct {
	staffSvc  *staff.Service
	rosterSvc *roster.Service
	feeSvc    *fees.Service
}

func registerDirectoryAPI(g *echo.Group, opts *Options) {
	api := directoryApi{
		staffSvc:  opts.StaffSvc,
		rosterSvc: opts.RosterSvc,
		feeSvc:    opts.FeeSvc,
	}

	g.GET("/teachers", api.listTeachers)
	g.GET("/students/:studentId/fees", api.studentFees)
}

type studentFeesResponse struct {
	Student   roster.Student  `json:"student"`
	TotalPaid decimal.Decimal `json:"total_paid"`
	AuditRows []string        `json:"audit_rows,omitempty"`
}

// Handlers

func (api *directoryApi) listTeachers(ctx echo.Context) error {
	teachers, err := api.staffSvc.QueryActive()
	if err != nil {
		return errors.Wrap(err, "listing active teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *directoryApi) studentFees(ctx echo.Context) error {
	student, err := api.rosterSvc.GetStudent(ctx.Param("studentId"))
	if err != nil {
		return errors.Wrap(err, "loading student")
	}
	total, badRows, err := api.feeSvc.StudentPaid(student.ID)
	if err != nil {
		return errors.Wrap(err, "summing student fees")
	}
	return ctx.JSON(http.StatusOK, studentFeesResponse{
		Student:   student,
		TotalPaid: total,
		AuditRows: badRows,
	})
}
