package echo

import (
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Status       string `json:"status"`
	ResponseCode int    `json:"response_code"`
	Data         any    `json:"data"`
}

type FailureResponse struct {
	Status       string `json:"status"`
	ResponseCode int    `json:"response_code"`
	Error        string `json:"error"`
}

func getSuccessResponse(code int, data any) SuccessResponse {
	return SuccessResponse{
		Status:       "Success",
		ResponseCode: code,
		Data:         data,
	}
}

func respondSuccess(c echo.Context, code int, data any) error {
	return c.JSON(code, getSuccessResponse(code, data))
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, FailureResponse{
		Status:       "Failure",
		ResponseCode: code,
		Error:        message,
	})
}
