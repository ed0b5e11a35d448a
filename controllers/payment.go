// controllers/payment.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentpro-backend/config"
	"rentpro-backend/models"
	"rentpro-backend/utils"
)

// GetPaymentPenalty computes the accrued overdue penalty for one payment
// from the configured penalty periods.
// GET /api/payments/:id/penalty
func GetPaymentPenalty(c *gin.Context) {
	paymentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment ID format")
		return
	}

	var payment models.Payment
	if err := config.DB.Where("id = ?", paymentUUID).First(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	var periods []models.PenaltyPeriod
	if err := config.DB.Order("from_day").Find(&periods).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve penalty periods")
		return
	}

	ranges := make([]utils.PenaltyRange, 0, len(periods))
	for _, p := range periods {
		ranges = append(ranges, utils.PenaltyRange{
			FromDay:           p.FromDay,
			ToDay:             p.ToDay,
			RatePerDayPercent: p.RatePerDayPercent,
		})
	}

	daysOverdue := utils.DaysBetween(payment.PaymentDue, time.Now())
	if payment.Status != models.PaymentStatusUnpaid || daysOverdue < 0 {
		daysOverdue = 0
	}
	penalty := utils.CalculatePenalty(payment.PaymentAmount, daysOverdue, ranges)

	c.JSON(http.StatusOK, gin.H{
		"paymentId":   payment.ID,
		"amount":      payment.PaymentAmount,
		"dueDate":     payment.PaymentDue,
		"daysOverdue": daysOverdue,
		"penalty":     penalty,
		"total":       payment.PaymentAmount + penalty,
	})
}
