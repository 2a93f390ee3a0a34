package main

import (
	"net/http"

	"eglise/models"

	"github.com/gin-gonic/gin"
)

func listSchedulesHandler(c *gin.Context) {
	var schedules []models.WorshipSchedule
	if err := db.Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func createScheduleHandler(c *gin.Context) {
	var req struct {
		DayOfWeek string `json:"dayOfWeek" binding:"required"`
		Time      string `json:"time" binding:"required"`
		Label     string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	schedule := models.WorshipSchedule{DayOfWeek: req.DayOfWeek, Time: req.Time, Label: req.Label}
	if err := db.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func deleteScheduleHandler(c *gin.Context) {
	if err := db.Delete(&models.WorshipSchedule{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
