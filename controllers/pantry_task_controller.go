package controllers

import (
	"net/http"

	"medimeal/middlewares"
	"medimeal/models"
	"medimeal/services"

	"github.com/gin-gonic/gin"
)

// PantryTaskController serves both the /pantry/tasks and the legacy
// /pantry-tasks surfaces. All status changes dispatch into the one task
// service; there is no second state vocabulary.
type PantryTaskController struct {
	Svc *services.TaskService
}

func NewPantryTaskController(svc *services.TaskService) *PantryTaskController {
	return &PantryTaskController{Svc: svc}
}

func (h *PantryTaskController) List(c *gin.Context) {
	f := services.TaskFilter{Status: models.TaskStatus(c.Query("status"))}
	if f.Status != "" && !f.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status '" + string(f.Status) + "'"})
		return
	}
	tasks, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *PantryTaskController) MyTasks(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tasks, err := h.Svc.MyTasks(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

type statusUpdateInput struct {
	Status           models.TaskStatus `json:"status" binding:"required"`
	DeliveryPersonID *uint             `json:"delivery_person_id"`
	Notes            string            `json:"notes"`
}

func (h *PantryTaskController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middlewares.CurrentUser(c)
	task, err := h.Svc.Transition(c.Request.Context(), id, input.Status, user, services.TransitionInput{
		DeliveryPersonID: input.DeliveryPersonID,
		Notes:            input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type assignInput struct {
	UserID uint `json:"user_id" binding:"required"`
}

// Assign sets the preparer for a task.
func (h *PantryTaskController) Assign(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input assignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := h.Svc.AssignPreparer(c.Request.Context(), id, input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type assignDeliveryInput struct {
	DeliveryPersonID uint `json:"delivery_person_id" binding:"required"`
}

// AssignDelivery is the ready → assigned_delivery edge.
func (h *PantryTaskController) AssignDelivery(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input assignDeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := middlewares.CurrentUser(c)
	task, err := h.Svc.Transition(c.Request.Context(), id, models.TaskStatusAssignedDelivery, user, services.TransitionInput{
		DeliveryPersonID: &input.DeliveryPersonID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
