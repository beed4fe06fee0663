package clubsite

import (
	"crypto/subtle"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// handleSeed copies the JSON documents from the local data directory into
// the configured storage backend. It exists to initialize a fresh remote
// deployment from checked-in content, guarded by a seed key.
func (a *App) handleSeed(c echo.Context) error {
	if a.Config.SeedKey == "" {
		return echo.NewHTTPError(http.StatusNotFound, "Seeding is not enabled")
	}
	key := c.QueryParam("key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.Config.SeedKey)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid seed key")
	}

	documents := []string{pagesDocument, eventsDocument, programsDocument, projectsDocument}
	results := make(map[string]string, len(documents))
	ctx := c.Request().Context()

	for _, name := range documents {
		raw, err := os.ReadFile(filepath.Join(a.Config.DataDir, name))
		if err != nil {
			results[name] = "error: " + err.Error()
			continue
		}
		if err := a.Storage.WriteDocument(ctx, name, raw); err != nil {
			results[name] = "error: " + err.Error()
			continue
		}
		results[name] = "ok"
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "results": results})
}
