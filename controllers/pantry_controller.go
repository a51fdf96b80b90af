package controllers

import (
	"net/http"

	"medimeal/services"

	"github.com/gin-gonic/gin"
)

type PantryController struct {
	Svc *services.PantryService
}

func NewPantryController(svc *services.PantryService) *PantryController {
	return &PantryController{Svc: svc}
}

func (h *PantryController) Create(c *gin.Context) {
	var input services.PantryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pantry, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pantry)
}

func (h *PantryController) List(c *gin.Context) {
	pantries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pantries)
}

func (h *PantryController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.PantryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pantry, err := h.Svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pantry)
}

type pantryStaffInput struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (h *PantryController) AddStaff(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input pantryStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.AddStaff(c.Request.Context(), id, input.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff added to pantry"})
}
