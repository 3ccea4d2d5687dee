package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"dochouse/internal/model"
	"dochouse/internal/repository"
	"dochouse/internal/service"

	"github.com/gin-gonic/gin"
)

// DoctorHandler handles doctor listing requests
type DoctorHandler struct {
	service service.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler
func NewDoctorHandler(s service.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: s}
}

func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.service.GetDoctors(c.Request.Context())
	if err != nil {
		log.Printf("Error getting doctors: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	doctor, err := h.service.GetDoctorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting doctor by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve doctor"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	doctor, err := h.service.CreateDoctor(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating doctor: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID"})
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting doctor: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// RegisterDoctorRoutes registers doctor listing routes
func (h *DoctorHandler) RegisterDoctorRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, userRepo repository.UserRepository) {
	rg.GET("/doctors", h.GetDoctors)
	rg.GET("/doctors/:id", h.GetDoctorByID)

	RegisterProtected(rg, authMW, userRepo, []RouteEntry{
		{Method: http.MethodPost, Path: "/doctors", Role: model.RoleAdmin, Handler: h.CreateDoctor},
		{Method: http.MethodDelete, Path: "/doctors/:id", Role: model.RoleAdmin, Handler: h.DeleteDoctor},
	})
}
