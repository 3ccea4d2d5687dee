package handler

import (
	"errors"
	"log"
	"net/http"

	"dochouse/internal/middleware"
	"dochouse/internal/model"
	"dochouse/internal/repository"
	"dochouse/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment booking requests
type AppointmentHandler struct {
	service service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No verified identity"})
		return
	}

	appointments, err := h.service.GetAppointments(c.Request.Context(), claims.Email, c.Query("email"))
	if err != nil {
		log.Printf("Error getting appointments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No verified identity"})
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appointment, err := h.service.BookAppointment(c.Request.Context(), claims.Email, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error booking appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No verified identity"})
		return
	}

	err := h.service.CancelAppointment(c.Request.Context(), c.Param("id"), claims.Email)
	if err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error cancelling appointment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// RegisterAppointmentRoutes registers appointment routes
func (h *AppointmentHandler) RegisterAppointmentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, userRepo repository.UserRepository) {
	RegisterProtected(rg, authMW, userRepo, []RouteEntry{
		{Method: http.MethodGet, Path: "/appointments", Role: "", Handler: h.GetAppointments},
		{Method: http.MethodPost, Path: "/appointments", Role: "", Handler: h.BookAppointment},
		{Method: http.MethodDelete, Path: "/appointments/:id", Role: "", Handler: h.CancelAppointment},
	})
}
