package controllers

import (
	"net/http"

	"medimeal/middlewares"
	"medimeal/services"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Svc *services.TaskService
}

func NewDeliveryController(svc *services.TaskService) *DeliveryController {
	return &DeliveryController{Svc: svc}
}

// Tasks lists what the caller can act on: unclaimed ready tasks plus their own
// assigned and in-transit work.
func (h *DeliveryController) Tasks(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	tasks, err := h.Svc.DeliveryTasks(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// UpdateStatus covers self-pickup (ready → in_transit) and completion
// (→ delivered); the service enforces the deliverer identity on completion.
func (h *DeliveryController) UpdateStatus(c *gin.Context) {
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
		Notes: input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
