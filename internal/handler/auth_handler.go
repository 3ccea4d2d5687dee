package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"dochouse/internal/middleware"
	"dochouse/internal/model"
	"dochouse/internal/repository"
	"dochouse/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication and account administration requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		PhotoURL string `json:"photo_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.PhotoURL)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error during registration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		log.Printf("Error during login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout is stateless: tokens are not revocable server-side, the
// endpoint only exists for client symmetry. It still rejects calls
// that present no token at all.
func (h *AuthHandler) Logout(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No token presented"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AuthStatus re-fetches the current record for the verified identity
func (h *AuthHandler) AuthStatus(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No verified identity"})
		return
	}

	user, err := h.service.AuthStatus(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error fetching auth status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch auth status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// MakeAdmin elevates the targeted user to the admin role
func (h *AuthHandler) MakeAdmin(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	updated, err := h.service.SetRole(c.Request.Context(), userID, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error setting admin role: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Role updated",
		"updated": updated,
	})
}

// CheckAdmin reports whether the caller is an admin. Self-check only:
// the path email must match the verified identity's email.
func (h *AuthHandler) CheckAdmin(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No verified identity"})
		return
	}

	email := c.Param("email")
	if email != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only check your own admin status"})
		return
	}

	isAdmin, err := h.service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error checking admin status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check admin status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// DeleteUser removes a user account
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if _, err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// RegisterAuthRoutes registers session and account administration routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, userRepo repository.UserRepository) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}

	RegisterProtected(rg, authMW, userRepo, []RouteEntry{
		{Method: http.MethodGet, Path: "/auth/status", Role: "", Handler: h.AuthStatus},
		{Method: http.MethodPatch, Path: "/users/admin/:id", Role: model.RoleAdmin, Handler: h.MakeAdmin},
		{Method: http.MethodGet, Path: "/users/admin/:email", Role: "", Handler: h.CheckAdmin},
		{Method: http.MethodDelete, Path: "/users/:id", Role: model.RoleAdmin, Handler: h.DeleteUser},
	})
}
