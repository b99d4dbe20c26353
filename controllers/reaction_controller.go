package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sultumov/AllergyTrackerr/models"
	"github.com/sultumov/AllergyTrackerr/services"

	"github.com/gin-gonic/gin"
)

type ReactionController struct {
	Reactions *services.ReactionService
}

func NewReactionController(reactions *services.ReactionService) *ReactionController {
	return &ReactionController{Reactions: reactions}
}

// GET /reactions
func (rc *ReactionController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	c.JSON(http.StatusOK, gin.H{"reactions": rc.Reactions.List(uid)})
}

// POST /reactions
func (rc *ReactionController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var reaction models.AllergyReaction
	if err := c.ShouldBindJSON(&reaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(reaction.Symptoms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one symptom is required"})
		return
	}

	created, err := rc.Reactions.Add(uid, reaction)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /reactions/:id
func (rc *ReactionController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reaction id"})
		return
	}

	if err := rc.Reactions.Delete(uid, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reaction deleted"})
}

// GET /reactions/statistics?period=week|month|all
func (rc *ReactionController) Statistics(c *gin.Context) {
	uid := c.GetUint("userID")

	period := services.StatisticsPeriod(c.DefaultQuery("period", string(services.PeriodMonth)))
	switch period {
	case services.PeriodWeek, services.PeriodMonth, services.PeriodAll:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be week, month or all"})
		return
	}

	c.JSON(http.StatusOK, rc.Reactions.Statistics(uid, period, time.Now()))
}
