package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acadex/backend/core/professor"
)

type professorApi struct {
	svc *professor.Service
}

func registerProfessorAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *professor.Service) {
	api := professorApi{svc: svc}

	pg := g.Group("/professors", jwt)
	pg.POST("", api.create)
	pg.GET("", api.query)
	pg.GET("/:id", api.retrieve)
	pg.PUT("/:id", api.update)
	pg.PATCH("/:id/archive", api.archive)
	pg.PATCH("/:id/restore", api.restore)
}

func (api *professorApi) create(ctx echo.Context) error {
	var data professor.NewProfessor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProfessor")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	prof, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating professor")
	}
	return ctx.JSON(http.StatusCreated, prof)
}

func (api *professorApi) query(ctx echo.Context) error {
	professors, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying professors")
	}
	if professors == nil {
		professors = []professor.Professor{}
	}
	return ctx.JSON(http.StatusOK, professors)
}

func (api *professorApi) retrieve(ctx echo.Context) error {
	prof, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding professor by ID")
	}
	return ctx.JSON(http.StatusOK, prof)
}

func (api *professorApi) update(ctx echo.Context) error {
	var data professor.UpdateProfessor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfessor")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	prof, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating professor")
	}
	return ctx.JSON(http.StatusOK, prof)
}

func (api *professorApi) archive(ctx echo.Context) error {
	if err := api.svc.Archive(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "archiving professor")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *professorApi) restore(ctx echo.Context) error {
	if err := api.svc.Restore(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "restoring professor")
	}
	return ctx.NoContent(http.StatusNoContent)
}
