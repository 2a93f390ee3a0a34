package main

import (
	"net/http"
	"strings"
	"time"

	"eglise/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func meHandler(c *gin.Context) {
	user, ok := userByEmailParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// updateProfileHandler changes fullName/email. When the email changes the
// old token's embedded identity is stale, so a fresh one is issued and
// returned alongside the profile.
func updateProfileHandler(c *gin.Context) {
	var req struct {
		CurrentEmail string `json:"currentEmail" binding:"required"`
		Email        string `json:"email" binding:"required"`
		FullName     string `json:"fullName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	log.WithFields(log.Fields{"currentEmail": req.CurrentEmail, "newEmail": req.Email}).Info("profile update request")

	var user models.User
	if err := db.Where("email = ?", req.CurrentEmail).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Utilisateur non trouvé: " + req.CurrentEmail})
		return
	}
	user.FullName = req.FullName
	user.Email = req.Email
	if err := db.Save(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cet email est déjà utilisé."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}

	resp := gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"role":     user.Role,
	}
	if !strings.EqualFold(req.CurrentEmail, req.Email) {
		token, err := generateToken(user.Email, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Une erreur interne est survenue."})
			return
		}
		resp["token"] = token
	}
	c.JSON(http.StatusOK, resp)
}

func changePasswordHandler(c *gin.Context) {
	var req struct {
		Email           string `json:"email" binding:"required"`
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	log.WithField("email", req.Email).Info("password change attempt")

	user, err := Authenticate(req.Email, req.CurrentPassword)
	if err != nil {
		// distinguish unknown account from wrong current password
		var exists int64
		db.Model(&models.User{}).Where("email = ?", strings.TrimSpace(req.Email)).Count(&exists)
		if exists == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Utilisateur non trouvé: " + req.Email})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mot de passe actuel incorrect"})
		return
	}
	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := db.Model(&user).Update("password", hashed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe changé avec succès"})
}

func createSuperMemberHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		FullName string `json:"fullName" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	hashed, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user := models.User{
		Email:              req.Email,
		FullName:           req.FullName,
		Password:           hashed,
		Role:               models.RoleSuperMember,
		NotifyNewMembers:   true,
		NotifyTransactions: true,
		NotifyEvents:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Un compte existe déjà avec cet email."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func listSuperMembersHandler(c *gin.Context) {
	var users []models.User
	if err := db.Where("role = ?", models.RoleSuperMember).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "query failed"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// deleteUserHandler removes an account. Admin accounts can never be
// deleted, not even by another admin.
func deleteUserHandler(c *gin.Context) {
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Utilisateur non trouvé"})
		return
	}
	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Impossible de supprimer un compte administrateur."})
		return
	}
	if err := db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// exportDataHandler dumps the whole dataset for backup purposes.
func exportDataHandler(c *gin.Context) {
	var (
		members      []models.Member
		transactions []models.Transaction
		events       []models.Event
		configs      []models.ChurchConfig
		schedules    []models.WorshipSchedule
	)
	for _, dest := range []interface{}{&members, &transactions, &events, &configs, &schedules} {
		if err := db.Find(dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "export failed"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"members":          members,
		"transactions":     transactions,
		"events":           events,
		"churchConfig":     configs,
		"worshipSchedules": schedules,
		"exportDate":       time.Now().Format(time.RFC3339),
		"version":          "1.0",
	})
}
