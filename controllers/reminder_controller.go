package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"
	"github.com/sultumov/AllergyTrackerr/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{Reminders: reminders}
}

// GET /medications
func (rc *ReminderController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, gin.H{"medications": rc.Reminders.List(uid)})
}

// POST /medications
func (rc *ReminderController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var med models.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if med.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	created, err := rc.Reminders.Add(uid, med)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /medications/:id
func (rc *ReminderController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	var med models.Medication
	if err := c.ShouldBindJSON(&med); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	med.ID = id

	if err := rc.Reminders.Update(uid, med); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

// DELETE /medications/:id
func (rc *ReminderController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medication id"})
		return
	}

	if err := rc.Reminders.Delete(uid, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication deleted"})
}

// GET /medications/upcoming
func (rc *ReminderController) Upcoming(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, gin.H{"doses": rc.Reminders.Upcoming(uid, time.Now())})
}
