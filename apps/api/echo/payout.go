package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/payout"
)

type payoutApi struct {
	svc *payout.Service
}

func registerPayoutAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *payout.Service) {
	api := payoutApi{svc: svc}

	pg := g.Group("/payouts", jwt)
	pg.POST("", api.create)
	pg.GET("", api.query)
	pg.GET("/:id", api.retrieve)
	pg.PUT("/:id", api.update)
	pg.PATCH("/:id/archive", api.archive)
	pg.PATCH("/:id/restore", api.restore)
}

func (api *payoutApi) create(ctx echo.Context) error {
	var data payout.NewPayout
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayout")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	po, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating payout")
	}
	return ctx.JSON(http.StatusCreated, po)
}

func (api *payoutApi) query(ctx echo.Context) error {
	var (
		payouts []payout.Payout
		err     error
	)

	month := ctx.QueryParam("month")
	profID := ctx.QueryParam("professor_id")
	if month != "" || profID != "" {
		filter := payout.Filter{ProfessorID: profID}
		if month != "" {
			if filter.Month, err = core.ParseMonth(month); err != nil {
				return err
			}
		}
		payouts, err = api.svc.Filter(ctx.Request().Context(), filter)
	} else {
		payouts, err = api.svc.QueryAll(ctx.Request().Context())
	}
	if err != nil {
		return errors.Wrap(err, "querying payouts")
	}
	if payouts == nil {
		payouts = []payout.Payout{}
	}
	return ctx.JSON(http.StatusOK, payouts)
}

func (api *payoutApi) retrieve(ctx echo.Context) error {
	po, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding payout by ID")
	}
	return ctx.JSON(http.StatusOK, po)
}

func (api *payoutApi) update(ctx echo.Context) error {
	var data payout.UpdatePayout
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePayout")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	po, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating payout")
	}
	return ctx.JSON(http.StatusOK, po)
}

func (api *payoutApi) archive(ctx echo.Context) error {
	if err := api.svc.Archive(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "archiving payout")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *payoutApi) restore(ctx echo.Context) error {
	if err := api.svc.Restore(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "restoring payout")
	}
	return ctx.NoContent(http.StatusNoContent)
}
