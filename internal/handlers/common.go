package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/assist"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHeader carries the opaque user id issued by the auth provider.
const UserHeader = "X-User-ID"

const userKey = "userID"

// RequireUser rejects requests without a user id.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(UserHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(userKey, id)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userKey)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// uintParam parses a positive numeric path parameter, answering 400 on failure.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return false
	}
	return true
}

// respondError maps domain errors onto status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, assist.ErrSessionNotFound),
		errors.Is(err, assist.ErrSessionClosed):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrJobIncomplete),
		errors.Is(err, services.ErrNotPublished),
		errors.Is(err, services.ErrNoChanges),
		errors.Is(err, assist.ErrTagIndex),
		errors.Is(err, assist.ErrEmptyDescription),
		errors.Is(err, assist.ErrWrongSessionKind),
		errors.Is(err, assist.ErrNothingToCopy):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, assist.ErrGenerationInProgress),
		errors.Is(err, assist.ErrSaveInProgress):
		status = http.StatusConflict
	case errors.Is(err, assist.ErrGenerationFailed):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
