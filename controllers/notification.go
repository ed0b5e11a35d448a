// controllers/notification.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentpro-backend/config"
	"rentpro-backend/models"
	"rentpro-backend/services"
	"rentpro-backend/utils"
)

// NotificationController exposes the engine's administrative control
// surface: manual triggers, scheduler status and job statistics.
type NotificationController struct {
	Engine *services.Engine
}

// TriggerScan runs one deadline scanner immediately.
// POST /api/notifications/scan/:kind
func (nc *NotificationController) TriggerScan(c *gin.Context) {
	kind := models.ObligationKind(c.Param("kind"))
	if !kind.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown obligation kind: "+c.Param("kind"))
		return
	}

	if err := nc.Engine.TriggerScan(kind); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scan completed", "kind": kind})
}

// TriggerExecution runs the job executor immediately.
// POST /api/notifications/execute
func (nc *NotificationController) TriggerExecution(c *gin.Context) {
	nc.Engine.TriggerExecution()
	c.JSON(http.StatusOK, gin.H{"message": "Execution completed"})
}

// SchedulerStatus reports every scheduled entry.
// GET /api/notifications/schedulers
func (nc *NotificationController) SchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schedulers": nc.Engine.Scheduler.Status()})
}

// ReloadSchedulers re-applies cron specs from settings.
// POST /api/notifications/schedulers/reload
func (nc *NotificationController) ReloadSchedulers(c *gin.Context) {
	if err := nc.Engine.Scheduler.Reload(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Reload failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedulers": nc.Engine.Scheduler.Status()})
}

// Statistics returns job counts by status.
// GET /api/notifications/statistics
func (nc *NotificationController) Statistics(c *gin.Context) {
	counts, err := nc.Engine.Jobs.CountByStatus()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"countsByStatus": counts})
}

// ListJobs returns notification jobs, optionally filtered by status.
// GET /api/notifications/jobs?status=pending&limit=50
func (nc *NotificationController) ListJobs(c *gin.Context) {
	query := config.DB.Model(&models.NotificationJob{}).Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if jobType := c.Query("jobType"); jobType != "" {
		query = query.Where("job_type = ?", jobType)
	}

	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 500 {
		limit = l
	}

	var jobs []models.NotificationJob
	if err := query.Limit(limit).Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// ListHistory returns the sent SMS audit trail, newest first.
// GET /api/notifications/history?limit=50
func (nc *NotificationController) ListHistory(c *gin.Context) {
	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 500 {
		limit = l
	}

	var records []models.SmsHistory
	if err := config.DB.Order("sent_at desc").Limit(limit).Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records, "count": len(records)})
}
