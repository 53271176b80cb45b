package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core/paymethod"
)

type payMethodApi struct {
	svc *paymethod.Service
}

func registerPayMethodAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *paymethod.Service) {
	api := payMethodApi{svc: svc}

	pg := g.Group("/payment-methods", jwt)
	pg.POST("", api.create)
	pg.GET("", api.query)
	pg.GET("/:id", api.retrieve)
	pg.PUT("/:id", api.update)
	pg.PATCH("/:id/archive", api.archive)
	pg.PATCH("/:id/restore", api.restore)
}

func (api *payMethodApi) create(ctx echo.Context) error {
	var data paymethod.NewPaymentMethod
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPaymentMethod")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	pm, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating payment method")
	}
	return ctx.JSON(http.StatusCreated, pm)
}

func (api *payMethodApi) query(ctx echo.Context) error {
	methods, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying payment methods")
	}
	if methods == nil {
		methods = []paymethod.PaymentMethod{}
	}
	return ctx.JSON(http.StatusOK, methods)
}

func (api *payMethodApi) retrieve(ctx echo.Context) error {
	pm, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding payment method by ID")
	}
	return ctx.JSON(http.StatusOK, pm)
}

func (api *payMethodApi) update(ctx echo.Context) error {
	var data paymethod.UpdatePaymentMethod
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePaymentMethod")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	pm, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating payment method")
	}
	return ctx.JSON(http.StatusOK, pm)
}

func (api *payMethodApi) archive(ctx echo.Context) error {
	if err := api.svc.Archive(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "archiving payment method")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *payMethodApi) restore(ctx echo.Context) error {
	if err := api.svc.Restore(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "restoring payment method")
	}
	return ctx.NoContent(http.StatusNoContent)
}
