package main

import (
	"net/http"

	"eglise/models"

	"github.com/gin-gonic/gin"
)

func publicStatsHandler(c *gin.Context) {
	var totalMembers, totalEvents int64
	db.Model(&models.Member{}).Count(&totalMembers)
	db.Model(&models.Event{}).Count(&totalEvents)
	c.JSON(http.StatusOK, gin.H{
		"totalMembers": totalMembers,
		"totalEvents":  totalEvents,
	})
}

// latestEventsHandler returns the 3 newest events for the landing page.
func latestEventsHandler(c *gin.Context) {
	var events []models.Event
	if err := db.Order("date desc").Limit(3).Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func publicEventsHandler(c *gin.Context) {
	var events []models.Event
	if err := db.Order("date desc").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func publicEventHandler(c *gin.Context) {
	var event models.Event
	if err := db.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "événement non trouvé"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func publicSchedulesHandler(c *gin.Context) {
	listSchedulesHandler(c)
}

func churchInfoHandler(c *gin.Context) {
	getChurchConfigHandler(c)
}
