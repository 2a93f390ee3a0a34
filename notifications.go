package main

import (
	"net/http"

	"eglise/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// notifyFlag maps a notification category to the matching opt-in flag.
// An unknown category matches nobody.
func notifyFlag(u models.User, category string) bool {
	switch category {
	case models.NotifMember:
		return u.NotifyNewMembers
	case models.NotifFinance:
		return u.NotifyTransactions
	case models.NotifEvent:
		return u.NotifyEvents
	}
	return false
}

// createNotification fans one logical event out to every opted-in user.
// Inserts are independent: a failure on one recipient is logged and the
// loop continues, so partial delivery is possible.
func createNotification(title, message, category string) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Errorf("notification fan-out: loading users failed: %v", err)
		return
	}
	for _, u := range users {
		if !notifyFlag(u, category) {
			continue
		}
		n := models.Notification{UserID: u.ID, Title: title, Message: message, Type: category}
		if err := db.Create(&n).Error; err != nil {
			log.WithField("user", u.Email).Errorf("notification insert failed: %v", err)
		}
	}
}

func listNotificationsHandler(c *gin.Context) {
	user, ok := userByEmailParam(c)
	if !ok {
		return
	}
	var notifications []models.Notification
	if err := db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// markAsReadHandler flips the read flag. A missing id is a silent no-op.
func markAsReadHandler(c *gin.Context) {
	var n models.Notification
	if err := db.First(&n, c.Param("id")).Error; err == nil {
		n.Read = true
		db.Save(&n)
	}
	c.JSON(http.StatusOK, gin.H{})
}

func markAllAsReadHandler(c *gin.Context) {
	user, ok := userByEmailParam(c)
	if !ok {
		return
	}
	if err := db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func unreadCountHandler(c *gin.Context) {
	user, ok := userByEmailParam(c)
	if !ok {
		return
	}
	var count int64
	if err := db.Model(&models.Notification{}).Where("user_id = ? AND read = ?", user.ID, false).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, count)
}

// userByEmailParam resolves the ?email= query parameter to an account and
// writes the error response itself when the lookup fails.
func userByEmailParam(c *gin.Context) (models.User, bool) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email est requis"})
		return models.User{}, false
	}
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Utilisateur non trouvé: " + email})
		return models.User{}, false
	}
	return user, true
}
