package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core/currency"
)

type currencyApi struct {
	svc *currency.Service
}

func registerCurrencyAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *currency.Service) {
	api := currencyApi{svc: svc}

	cg := g.Group("/currencies", jwt)
	cg.POST("", api.create)
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.PATCH("/:id/archive", api.archive)
	cg.PATCH("/:id/restore", api.restore)
}

func (api *currencyApi) create(ctx echo.Context) error {
	var data currency.NewCurrency
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCurrency")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cur, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating currency")
	}
	return ctx.JSON(http.StatusCreated, cur)
}

func (api *currencyApi) query(ctx echo.Context) error {
	currencies, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying currencies")
	}
	if currencies == nil {
		currencies = []currency.Currency{}
	}
	return ctx.JSON(http.StatusOK, currencies)
}

func (api *currencyApi) retrieve(ctx echo.Context) error {
	cur, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding currency by ID")
	}
	return ctx.JSON(http.StatusOK, cur)
}

func (api *currencyApi) update(ctx echo.Context) error {
	var data currency.UpdateCurrency
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCurrency")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cur, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating currency")
	}
	return ctx.JSON(http.StatusOK, cur)
}

func (api *currencyApi) archive(ctx echo.Context) error {
	if err := api.svc.Archive(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "archiving currency")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *currencyApi) restore(ctx echo.Context) error {
	if err := api.svc.Restore(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "restoring currency")
	}
	return ctx.NoContent(http.StatusNoContent)
}
