package controllers

import (
	"net/http"

	"medimeal/middlewares"
	"medimeal/models"
	"medimeal/services"

	"github.com/gin-gonic/gin"
)

type DietChartController struct {
	Svc *services.DietChartService
}

func NewDietChartController(svc *services.DietChartService) *DietChartController {
	return &DietChartController{Svc: svc}
}

func (h *DietChartController) Create(c *gin.Context) {
	var input services.ChartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middlewares.CurrentUser(c)
	chart, err := h.Svc.Create(c.Request.Context(), input, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chart)
}

func (h *DietChartController) List(c *gin.Context) {
	var patientID uint
	if v := c.Query("patient_id"); v != "" {
		id, ok := idFromQuery(c, v)
		if !ok {
			return
		}
		patientID = id
	}
	charts, err := h.Svc.List(c.Request.Context(), patientID, models.ChartStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, charts)
}

func (h *DietChartController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	chart, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *DietChartController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.ChartUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chart, err := h.Svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *DietChartController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Cancel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "diet chart cancelled"})
}

func (h *DietChartController) UpdateMeal(c *gin.Context) {
	chartID, ok := idParam(c, "id")
	if !ok {
		return
	}
	mealID, ok := idParam(c, "mealId")
	if !ok {
		return
	}
	var input services.MealUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := h.Svc.UpdateMeal(c.Request.Context(), chartID, mealID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}
