package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success responses carry {"success": true, ...payload}; error responses carry
// {"error": ..., "details": ...}. The storefront and admin clients both parse
// these shapes.

func SuccessResponse(c *gin.Context, payload gin.H) {
	respondSuccess(c, http.StatusOK, payload)
}

func CreatedResponse(c *gin.Context, payload gin.H) {
	respondSuccess(c, http.StatusCreated, payload)
}

func respondSuccess(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func ErrorResponse(c *gin.Context, statusCode int, message, details string) {
	body := gin.H{"error": message}
	if details != "" {
		body["details"] = details
	}
	c.JSON(statusCode, body)
}

func ValidationErrorResponse(c *gin.Context, details string) {
	ErrorResponse(c, http.StatusBadRequest, "Invalid data", details)
}

func ValidationFieldErrorResponse(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation error",
		"details": fields,
	})
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found", "")
}

func InternalServerErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message, "")
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "Token not provided", "")
}

func ForbiddenResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusForbidden, "Invalid token", "")
}
