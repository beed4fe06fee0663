package clubsite

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atldatalab/clubsite/vision"
)

// visionUpload reads the image file of an analyze request.
func (a *App) visionUpload(c echo.Context) ([]byte, string, string, error) {
	if a.Vision == nil {
		return nil, "", "", echo.NewHTTPError(http.StatusServiceUnavailable, "AI analysis is not configured")
	}
	file, err := c.FormFile("image")
	if err != nil {
		return nil, "", "", echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	if file.Size > maxUploadSize {
		return nil, "", "", echo.NewHTTPError(http.StatusBadRequest, "File too large (max 10MB)")
	}
	data, err := readUpload(file)
	if err != nil {
		return nil, "", "", err
	}
	return data, file.Header.Get("Content-Type"), file.Filename, nil
}

func (a *App) handleAnalyzeImage(c echo.Context) error {
	data, mimeType, filename, err := a.visionUpload(c)
	if err != nil {
		return err
	}
	analysis, err := a.Vision.AnalyzeImage(c.Request().Context(), data, mimeType)
	if err != nil {
		return visionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"analysis": analysis,
		"filename": filename,
		"size":     len(data),
		"type":     mimeType,
	})
}

func (a *App) handleAnalyzeSchedule(c echo.Context) error {
	data, mimeType, filename, err := a.visionUpload(c)
	if err != nil {
		return err
	}
	result, err := a.Vision.AnalyzeSchedule(c.Request().Context(), data, mimeType)
	if err != nil {
		return visionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"analysis": result,
		"filename": filename,
		"size":     len(data),
		"type":     mimeType,
	})
}

// visionError distinguishes unparseable model output (the raw text is
// returned for diagnosis) from upstream call failures.
func visionError(c echo.Context, err error) error {
	var pe *vision.ParseError
	if errors.As(err, &pe) {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":       "Failed to parse AI response",
			"rawResponse": pe.Raw,
		})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   "AI analysis failed",
		"details": err.Error(),
	})
}
