package clubsite

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
)

// readUpload opens a multipart file and returns its bytes.
func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// handleContentCreate creates a new content item from a multipart form: a
// contentData JSON field plus an optional image file. The item lands in the
// events or gallery sub-collection depending on its category.
func (a *App) handleContentCreate(c echo.Context) error {
	sess := a.Gate.Authenticate(c)
	if !sess.Valid() {
		return ErrUnauthorized
	}

	contentData := c.FormValue("contentData")
	if contentData == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "No content data provided")
	}
	var item ContentItem
	if err := json.Unmarshal([]byte(contentData), &item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid content data")
	}
	if item.Category == "" {
		item.Category = "events"
	}
	// Items arriving through this endpoint come from the AI uploader.
	item.AIGenerated = true

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxUploadSize {
			return echo.NewHTTPError(http.StatusBadRequest, "File too large (max 10MB)")
		}
		data, err := readUpload(file)
		if err != nil {
			return err
		}
		filename, processed := prepareUpload(file.Filename, data)
		path, err := a.Storage.UploadImage(c.Request().Context(), item.Category, filename, processed)
		if err != nil {
			return err
		}
		item.Image = &path
	}

	created, err := a.Content.Create(c.Request().Context(), sess, item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"item":    created,
		"message": fmt.Sprintf("Content added to %s", created.Category),
	})
}

// handleGalleryUpload stores a standalone image and returns its public path.
func (a *App) handleGalleryUpload(c echo.Context) error {
	sess := a.Gate.Authenticate(c)
	if !sess.Valid() {
		return ErrUnauthorized
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	if file.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "File too large (max 10MB)")
	}
	category := c.FormValue("category")
	if category == "" {
		category = "events"
	}

	data, err := readUpload(file)
	if err != nil {
		return err
	}
	filename, processed := prepareUpload(file.Filename, data)
	path, err := a.Storage.UploadImage(c.Request().Context(), category, filename, processed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"imagePath": path,
		"filename":  filename,
	})
}

// handleTeamImage stores a team member headshot under uploads/team.
func (a *App) handleTeamImage(c echo.Context) error {
	sess := a.Gate.Authenticate(c)
	if !sess.Valid() {
		return ErrUnauthorized
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	if file.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "File too large (max 10MB)")
	}
	memberType := c.FormValue("memberType")
	memberIndex := c.FormValue("memberIndex")

	data, err := readUpload(file)
	if err != nil {
		return err
	}
	name := file.Filename
	if memberType != "" {
		name = fmt.Sprintf("%s-%s-%s", memberType, memberIndex, file.Filename)
	}
	filename, processed := prepareUpload(name, data)
	path, err := a.Storage.UploadImage(c.Request().Context(), "team", filename, processed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"imagePath": path,
	})
}
