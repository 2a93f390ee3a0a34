package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"eglise/models"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

func listEventsHandler(c *gin.Context) {
	var events []models.Event
	if err := db.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func getEventHandler(c *gin.Context) {
	var event models.Event
	if err := db.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "événement non trouvé"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func createEventHandler(c *gin.Context) {
	var req models.EventUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	var event models.Event
	event.ApplyUpdate(req)
	event.AddedBy = currentEmail(c)
	if err := db.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "create failed"})
		return
	}
	createNotification(
		"Nouvel événement",
		fmt.Sprintf("L'événement \"%s\" a été programmé le %s.", event.Title, event.Date.Format("2006-01-02")),
		models.NotifEvent,
	)
	c.JSON(http.StatusCreated, event)
}

func updateEventHandler(c *gin.Context) {
	var event models.Event
	if err := db.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "événement non trouvé"})
		return
	}
	var req models.EventUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	event.ApplyUpdate(req)
	if err := db.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func deleteEventHandler(c *gin.Context) {
	var event models.Event
	if err := db.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "événement non trouvé"})
		return
	}
	if err := db.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// maxImageWidth caps stored event photos; larger uploads are downscaled.
const maxImageWidth = 1600

// uploadEventImageHandler accepts one multipart photo, re-encodes it as
// JPEG under UPLOAD_BASE/events/<id>/ and appends the public path to the
// event's image list.
func uploadEventImageHandler(c *gin.Context) {
	var event models.Event
	if err := db.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "événement non trouvé"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file missing"})
		return
	}
	if file.Size > 10*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file too large (max 10MB)"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "open failed"})
		return
	}
	defer src.Close()
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "not a valid image"})
		return
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	folder := filepath.Join(uploadBaseDir(), "events", c.Param("id"))
	if err := os.MkdirAll(folder, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "mkdir failed"})
		return
	}
	name := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename)) + ".jpg"
	fullPath := filepath.Join(folder, name)
	if err := imaging.Save(img, fullPath, imaging.JPEGQuality(85)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "save failed"})
		return
	}

	publicPath := "public/events/" + c.Param("id") + "/" + name
	event.Images = append(event.Images, publicPath)
	event.PhotoCount = len(event.Images)
	if err := db.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": publicPath, "photoCount": event.PhotoCount})
}
