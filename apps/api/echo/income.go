package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/income"
)

type incomeApi struct {
	svc *income.Service
}

func registerIncomeAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *income.Service) {
	api := incomeApi{svc: svc}

	ig := g.Group("/incomes", jwt)
	ig.POST("", api.create)
	ig.GET("", api.query)
	ig.GET("/:id", api.retrieve)
	ig.PUT("/:id", api.update)
	ig.PATCH("/:id/archive", api.archive)
	ig.PATCH("/:id/restore", api.restore)
}

func (api *incomeApi) create(ctx echo.Context) error {
	var data income.NewIncome
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewIncome")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	inc, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating income")
	}
	return ctx.JSON(http.StatusCreated, inc)
}

func (api *incomeApi) query(ctx echo.Context) error {
	var (
		incomes []income.Income
		err     error
	)

	month := ctx.QueryParam("month")
	profID := ctx.QueryParam("professor_id")
	enrID := ctx.QueryParam("enrollment_id")
	if month != "" || profID != "" || enrID != "" {
		filter := income.Filter{ProfessorID: profID, EnrollmentID: enrID}
		if month != "" {
			if filter.Month, err = core.ParseMonth(month); err != nil {
				return err
			}
		}
		incomes, err = api.svc.Filter(ctx.Request().Context(), filter)
	} else {
		incomes, err = api.svc.QueryAll(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying incomes")
	}
	if incomes == nil {
		incomes = []income.Income{}
	}
	return ctx.JSON(http.StatusOK, incomes)
}

func (api *incomeApi) retrieve(ctx echo.Context) error {
	inc, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding income by ID")
	}
	return ctx.JSON(http.StatusOK, inc)
}

func (api *incomeApi) update(ctx echo.Context) error {
	var data income.UpdateIncome
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateIncome")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	inc, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating income")
	}
	return ctx.JSON(http.StatusOK, inc)
}

func (api *incomeApi) archive(ctx echo.Context) error {
	if err := api.svc.Archive(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "archiving income")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *incomeApi) restore(ctx echo.Context) error {
	if err := api.svc.Restore(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "restoring income")
	}
	return ctx.NoContent(http.StatusNoContent)
}
