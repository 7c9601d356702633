package utils

import (
	"github.com/gin-gonic/gin"
)

// Response defines the standard API response envelope. Every field except
// Success is omitted when empty, so each endpoint carries only what it needs.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// ListResponse is the envelope for the paginated list endpoint. Count is the
// number of records on this page, Total the number matching the filter across
// all pages.
type ListResponse struct {
	Success    bool        `json:"success"`
	Count      int         `json:"count"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"totalPages"`
	Data       interface{} `json:"data"`
}

// CollectionResponse is the envelope for unpaginated collection endpoints.
type CollectionResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// Success writes a success response with the standard envelope.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList writes a paginated list response.
func SuccessList(c *gin.Context, code int, data interface{}, count int, total int64, totalPages int) {
	c.JSON(code, ListResponse{
		Success:    true,
		Count:      count,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
	})
}

// SuccessCollection writes an unpaginated collection response.
func SuccessCollection(c *gin.Context, code int, data interface{}, count int) {
	c.JSON(code, CollectionResponse{
		Success: true,
		Count:   count,
		Data:    data,
	})
}

// Error writes an error response carrying only a message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

// ErrorDetail writes an error response with a best-effort detail string
// alongside the message.
func ErrorDetail(c *gin.Context, code int, message string, err error) {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(code, resp)
}

// ValidationError writes the 400 response listing every violated constraint.
func ValidationError(c *gin.Context, errs []string) {
	c.JSON(400, Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}
