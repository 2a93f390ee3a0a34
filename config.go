package main

import (
	"net/http"

	"eglise/models"

	"github.com/gin-gonic/gin"
)

// getChurchConfigHandler returns the single persisted row, or the default
// record when nothing has been saved yet. The default is never persisted
// on read.
func getChurchConfigHandler(c *gin.Context) {
	var config models.ChurchConfig
	if err := db.First(&config).Error; err != nil {
		c.JSON(http.StatusOK, models.DefaultChurchConfig())
		return
	}
	c.JSON(http.StatusOK, config)
}

// updateChurchConfigHandler upserts into the single row: the incoming
// payload takes the id of the existing row if there is one, so at most one
// row ever persists.
func updateChurchConfigHandler(c *gin.Context) {
	var req models.ChurchConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	var existing models.ChurchConfig
	if err := db.First(&existing).Error; err == nil {
		req.ID = existing.ID
	} else {
		req.ID = 0
	}
	if err := db.Save(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "save failed"})
		return
	}
	c.JSON(http.StatusOK, req)
}
