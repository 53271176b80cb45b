package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core"
	"github.com/acadex/backend/core/accounting"
)

type accountingApi struct {
	svc *accounting.Service
}

func registerAccountingAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *accounting.Service) {
	api := accountingApi{svc: svc}

	ag := g.Group("/accounting/reports", jwt)
	ag.GET("", api.history)
	ag.POST("", api.save)
	ag.POST("/generate", api.generate)
	ag.GET("/:month", api.retrieve)
	ag.GET("/:month/pdf", api.download)
}

func (api *accountingApi) history(ctx echo.Context) error {
	refs, err := api.svc.History(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying report history")
	}
	if refs == nil {
		refs = []accounting.ReportRef{}
	}
	return ctx.JSON(http.StatusOK, refs)
}

// generate builds a fresh report skeleton for the month given in the
// `month` query param; nothing is persisted.
func (api *accountingApi) generate(ctx echo.Context) error {
	m, err := core.ParseMonth(ctx.QueryParam("month"))
	if err != nil {
		return err
	}

	rpt, err := api.svc.Generate(ctx.Request().Context(), m)
	if err != nil {
		return errors.Wrap(err, "generating report")
	}
	return ctx.JSON(http.StatusOK, rpt)
}

func (api *accountingApi) save(ctx echo.Context) error {
	var data accounting.MonthlyReport
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MonthlyReport")
	}

	rpt, err := api.svc.Save(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "saving report")
	}
	return ctx.JSON(http.StatusCreated, rpt)
}

func (api *accountingApi) retrieve(ctx echo.Context) error {
	m, err := core.ParseMonth(ctx.Param("month"))
	if err != nil {
		return err
	}

	rpt, err := api.svc.GetByMonth(ctx.Request().Context(), m)
	if err != nil {
		return errors.Wrap(err, "finding report by month")
	}
	return ctx.JSON(http.StatusOK, rpt)
}

func (api *accountingApi) download(ctx echo.Context) error {
	m, err := core.ParseMonth(ctx.Param("month"))
	if err != nil {
		return err
	}

	rpt, err := api.svc.GetByMonth(ctx.Request().Context(), m)
	if err != nil {
		return errors.Wrap(err, "finding report by month")
	}

	doc, err := api.svc.Render(rpt)
	if err != nil {
		return errors.Wrap(err, "rendering report")
	}

	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, accounting.FileName(m)),
	)
	return ctx.Blob(http.StatusOK, "application/pdf", doc)
}
