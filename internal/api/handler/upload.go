package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/ports"
)

// saveImage stores the optional multipart field "image" and returns the
// generated filename. An absent file is not an error; a non-image file is a
// 400.
func saveImage(c echo.Context, images ports.ImageStore) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// Plain JSON requests and multipart forms without an image land
		// here.
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
	}
	defer f.Close()

	filename, err := images.Save(c.Request().Context(), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		if errors.Is(err, ports.ErrNotImage) {
			return "", echo.NewHTTPError(http.StatusBadRequest, "image: must be an image file")
		}
		return "", err
	}
	return filename, nil
}
