package main

import (
	"fmt"
	"net/http"

	"eglise/models"

	"github.com/gin-gonic/gin"
)

func listMembersHandler(c *gin.Context) {
	var members []models.Member
	if err := db.Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, members)
}

func getMemberHandler(c *gin.Context) {
	var member models.Member
	if err := db.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "membre non trouvé"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func createMemberHandler(c *gin.Context) {
	var member models.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if member.FirstName == "" || member.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "firstName et lastName sont requis"})
		return
	}
	member.ID = 0
	member.AddedBy = currentEmail(c)
	if err := db.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "create failed"})
		return
	}
	createNotification(
		"Nouveau membre",
		fmt.Sprintf("%s %s a été ajouté au registre des membres.", member.FirstName, member.LastName),
		models.NotifMember,
	)
	c.JSON(http.StatusCreated, member)
}

func updateMemberHandler(c *gin.Context) {
	var member models.Member
	if err := db.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "membre non trouvé"})
		return
	}
	var upd models.MemberUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	member.ApplyUpdate(upd)
	if err := db.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}
	c.JSON(http.StatusOK, member)
}

func deleteMemberHandler(c *gin.Context) {
	var member models.Member
	if err := db.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "membre non trouvé"})
		return
	}
	if err := db.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func bulkDeleteMembersHandler(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := db.Delete(&models.Member{}, req.IDs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Erreur lors de la suppression groupée"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
