package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"coursecms/internal/domain"
	"coursecms/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

type PasswordVerifier interface {
	Verify(password string) bool
	IssueToken() (string, error)
}

type AuthHandler struct {
	gate PasswordVerifier
	log  *logger.Logger
}

func NewAuthHandler(gate PasswordVerifier, log *logger.Logger) *AuthHandler {
	return &AuthHandler{gate: gate, log: log}
}

// Password stays raw so a non-string value can be told apart from a
// missing one.
type loginReq struct {
	Password json.RawMessage `json:"password"`
}

// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	req := bind[loginReq](c)
	if domain.Falsy(req.Password) {
		respondError(c, h.log, domain.ErrPasswordRequired, "Login failed")
		return
	}
	var password string
	if err := json.Unmarshal(req.Password, &password); err != nil || !h.gate.Verify(password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	res := gin.H{"success": true, "message": "Login successful"}
	token, err := h.gate.IssueToken()
	if err != nil {
		h.log.Error("issue admin token", "error", err)
	} else if token != "" {
		res["token"] = token
	}
	c.JSON(http.StatusOK, res)
}

// bind decodes the JSON body into T. A missing or malformed body yields
// the zero value, the same as an empty object. A field of an unexpected
// type is left at its zero value and the rest of the body is kept.
func bind[T any](c *gin.Context) T {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req
		}
		var zero T
		return zero
	}
	return req
}

// respondError maps domain errors to status codes. Anything unexpected is
// logged and answered with the operation's fixed message.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrPasswordRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
	case errors.Is(err, domain.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
	case errors.Is(err, domain.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	case errors.Is(err, domain.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found or no video available"})
	default:
		log.Error(fallback, "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
