package controllers

import (
	"net/http"

	"medimeal/models"
	"medimeal/services"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Svc  *services.StaffService
	Auth *services.AuthService
}

func NewStaffController(svc *services.StaffService, auth *services.AuthService) *StaffController {
	return &StaffController{Svc: svc, Auth: auth}
}

func (h *StaffController) List(c *gin.Context) {
	staff, err := h.Svc.List(c.Request.Context(), models.Role(c.Query("role")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// Create lets a manager register staff accounts directly.
func (h *StaffController) Create(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Auth.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *StaffController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.StaffUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.Svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *StaffController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deactivated"})
}
