package handlers

import (
	"net/http"
	"strings"

	"github.com/credstack/credstack/internal/auth"
	"github.com/credstack/credstack/internal/models"
	"github.com/gin-gonic/gin"
)

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "authUser"

// AuthHandler manages registration and login endpoints.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// credentialsRequest defines the request body for register and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account and returns a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var body credentialsRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	username := strings.TrimSpace(body.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing username"})
		return
	}
	if body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing password"})
		return
	}

	session, errRegister := h.svc.Register(c.Request.Context(), username, body.Password)
	if errRegister != nil {
		c.JSON(statusForError(errRegister), gin.H{"error": errRegister.Error()})
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(session))
}

// Login authenticates an account and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body credentialsRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	session, errAuth := h.svc.Authenticate(c.Request.Context(), body.Username, body.Password)
	if errAuth != nil {
		c.JSON(statusForError(errAuth), gin.H{"error": errAuth.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// Me echoes the user resolved by the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
	})
}

// sessionResponse shapes a session reply.
func sessionResponse(session *auth.Session) gin.H {
	return gin.H{
		"token": session.Token,
		"user": gin.H{
			"id":       session.User.ID,
			"username": session.User.Username,
		},
	}
}

// CurrentUser returns the middleware-resolved user, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// OwnerID returns the record owner for the request: the authenticated user's
// ID, or 0 in single-user mode.
func OwnerID(c *gin.Context) uint64 {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}
