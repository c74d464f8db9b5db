package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The admin panel and the public site both consume the same envelope the
// original API spoke: {"success": bool, "item"/"items"/"message": ...}.

func respondItem(c echo.Context, status int, item interface{}) error {
	return c.JSON(status, map[string]interface{}{
		jsonKeySuccess: true,
		jsonKeyItem:    item,
	})
}

func respondItems(c echo.Context, items interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		jsonKeySuccess: true,
		jsonKeyItems:   items,
	})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{
		jsonKeySuccess: true,
		jsonKeyMessage: message,
	})
}

func respondExisting(c echo.Context, item interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		jsonKeySuccess: true,
		jsonKeyMessage: msgDuplicateProject,
		jsonKeyItem:    item,
	})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{
		jsonKeySuccess: false,
		jsonKeyMessage: message,
	})
}
