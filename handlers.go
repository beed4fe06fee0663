package clubsite

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (a *App) handleContentList(c echo.Context) error {
	data, err := a.Content.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (a *App) handleContentGet(c echo.Context) error {
	item, err := a.Content.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (a *App) handlePagesGet(c echo.Context) error {
	ctx := c.Request().Context()
	if name := c.QueryParam("page"); name != "" {
		page, err := a.Pages.GetPage(ctx, name)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, echo.Map{name: page})
	}
	data, err := a.Pages.Load(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (a *App) handleProgramsGet(c echo.Context) error {
	data, err := a.Programs.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (a *App) handleProjectsGet(c echo.Context) error {
	data, err := a.Projects.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

// httpErrorHandler maps repository and storage errors onto JSON responses:
// not-found to 404, unauthorized to 401, malformed input to 400, everything
// else to 500 with the underlying message attached for diagnostics.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var code int
	body := echo.Map{}
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
		body["error"] = "Item not found"
	case errors.Is(err, ErrUnauthorized):
		code = http.StatusUnauthorized
		body["error"] = "Unauthorized - Please log in to admin"
	case errors.Is(err, ErrUnknownSection):
		code = http.StatusBadRequest
		body["error"] = "Unknown page section"
	default:
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			body["error"] = he.Message
		} else {
			code = http.StatusInternalServerError
			body["error"] = "Internal server error"
			body["details"] = err.Error()
		}
	}

	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}
