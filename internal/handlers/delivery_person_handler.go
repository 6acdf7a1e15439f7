package handlers

import (
	"net/http"

	"github.com/bosesayankolkata/dairyexpress/internal/middleware"
	"github.com/bosesayankolkata/dairyexpress/internal/services"

	"github.com/gin-gonic/gin"
)

// DeliveryPersonHandler serves the delivery person's own profile, assigned
// deliveries and stats. Every route is scoped to the authenticated person.
type DeliveryPersonHandler struct {
	accounts services.AccountService
	delivery services.DeliveryService
}

func NewDeliveryPersonHandler(accounts services.AccountService, delivery services.DeliveryService) *DeliveryPersonHandler {
	return &DeliveryPersonHandler{accounts: accounts, delivery: delivery}
}

func (h *DeliveryPersonHandler) GetProfile(c *gin.Context) {
	person, err := h.accounts.GetDeliveryPerson(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *DeliveryPersonHandler) GetDeliveries(c *gin.Context) {
	deliveries, err := h.delivery.GetDeliveriesForPerson(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

func (h *DeliveryPersonHandler) UpdateDeliveryStatus(c *gin.Context) {
	var update services.StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	personID := c.GetString(middleware.ContextUserID)
	if err := h.delivery.UpdateStatus(c.Param("id"), personID, &update); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery status updated successfully"})
}

func (h *DeliveryPersonHandler) GetStats(c *gin.Context) {
	stats, err := h.delivery.Stats(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
