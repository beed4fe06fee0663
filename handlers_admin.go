package clubsite

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Password string `json:"password"`
}

func (a *App) handleLogin(c echo.Context) error {
	if !a.Gate.AllowAttempt(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if _, err := a.Gate.Login(c, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"error":   "Invalid password",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleAuthStatus(c echo.Context) error {
	sess := a.Gate.Authenticate(c)
	return c.JSON(http.StatusOK, echo.Map{"authenticated": sess.Valid()})
}

func (a *App) handleLogout(c echo.Context) error {
	if err := a.Gate.Logout(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleContentUpdate(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	var partial map[string]json.RawMessage
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	_, err := a.Content.Update(c.Request().Context(), sess, c.Param("id"), partial)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Item updated"})
}

func (a *App) handleContentDelete(c echo.Context) error {
	sess := a.Gate.Authenticate(c)
	if err := a.Content.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Item deleted"})
}

type pagesUpdateRequest struct {
	Page    string          `json:"page"`
	Section string          `json:"section"`
	Data    json.RawMessage `json:"data"`
}

func (a *App) handlePagesUpdate(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	var req pagesUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	ctx := c.Request().Context()

	var (
		page *PageData
		err  error
	)
	if req.Section != "" {
		page, err = a.Pages.ReplaceSection(ctx, sess, req.Page, req.Section, req.Data)
	} else {
		var data PageData
		if uerr := json.Unmarshal(req.Data, &data); uerr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid page data")
		}
		page, err = a.Pages.ReplacePage(ctx, sess, req.Page, data)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": page})
}

func (a *App) handleProgramsPut(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	var partial map[string]json.RawMessage
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	data, err := a.Programs.Merge(c.Request().Context(), sess, partial)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (a *App) handleProgramsPost(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	var p Program
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	created, err := a.Programs.AddProgram(c.Request().Context(), sess, p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) handleProgramsDelete(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Program ID required")
	}
	if err := a.Programs.DeleteProgram(c.Request().Context(), sess, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleProjectsPut(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	var partial map[string]json.RawMessage
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	data, err := a.Projects.Merge(c.Request().Context(), sess, partial)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

func (a *App) handleProjectsPost(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	var p Project
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	created, err := a.Projects.AddProject(c.Request().Context(), sess, p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (a *App) handleProjectsPatch(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	var partial map[string]json.RawMessage
	if err := c.Bind(&partial); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	var id string
	if raw, ok := partial["id"]; ok {
		_ = json.Unmarshal(raw, &id)
		delete(partial, "id")
	}
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Project ID required")
	}
	updated, err := a.Projects.PatchProject(c.Request().Context(), sess, id, partial)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (a *App) handleProjectsDelete(c echo.Context) error {
	sess := a.Gate.Authenticate(c)

	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Project ID required")
	}
	if err := a.Projects.DeleteProject(c.Request().Context(), sess, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (a *App) handleAdminStats(c echo.Context) error {
	sess := a.Gate.Authenticate(c)
	if !sess.Valid() {
		return ErrUnauthorized
	}
	if a.analyticsStore == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Analytics is not enabled")
	}

	days := 30
	if d := c.QueryParam("days"); d != "" {
		if n, err := parsePositiveInt(d); err == nil {
			days = n
		}
	}
	since := time.Now().AddDate(0, 0, -days)

	total, err := a.analyticsStore.TotalViews(since)
	if err != nil {
		return err
	}
	paths, err := a.analyticsStore.TopPaths(since, 20)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"days":       days,
		"totalViews": total,
		"paths":      paths,
	})
}
