package handler

import (
	"log"
	"net/http"

	"dochouse/internal/middleware"
	"dochouse/internal/model"
	"dochouse/internal/repository"
	"dochouse/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles patient review requests
type ReviewHandler struct {
	service service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.service.GetReviews(c.Request.Context())
	if err != nil {
		log.Printf("Error getting reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No verified identity"})
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), claims.Email, req)
	if err != nil {
		log.Printf("Error creating review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// RegisterReviewRoutes registers review routes
func (h *ReviewHandler) RegisterReviewRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, userRepo repository.UserRepository) {
	rg.GET("/reviews", h.GetReviews)

	RegisterProtected(rg, authMW, userRepo, []RouteEntry{
		{Method: http.MethodPost, Path: "/reviews", Role: "", Handler: h.CreateReview},
	})
}
