package handlers

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
)

// StatusResponse is the wire shape for mutation acknowledgements
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OkResponse returns a 200 with {status:"ok", message}
func OkResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: message})
}

// BadRequest returns a 400 Bad Request error
func BadRequest(message string) error {
	return httperror.NewHTTPError(http.StatusBadRequest, message)
}
