package main

import (
	"net/http"

	"eglise/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/login", loginHandler)

	// unauthenticated read-only mirrors for the landing page
	public := api.Group("/public")
	public.GET("/stats", publicStatsHandler)
	public.GET("/events/latest", latestEventsHandler)
	public.GET("/events", publicEventsHandler)
	public.GET("/events/:id", publicEventHandler)
	public.GET("/schedules", publicSchedulesHandler)
	public.GET("/church-info", churchInfoHandler)

	auth := api.Group("")
	auth.Use(jwtAuthMiddleware())

	auth.GET("/members", listMembersHandler)
	auth.GET("/members/:id", getMemberHandler)
	auth.POST("/members", createMemberHandler)
	auth.PUT("/members/:id", updateMemberHandler)
	auth.DELETE("/members/:id", adminOnly(), deleteMemberHandler)
	auth.POST("/members/bulk-delete", adminOnly(), bulkDeleteMembersHandler)

	auth.GET("/transactions", listTransactionsHandler)
	auth.POST("/transactions", createTransactionHandler)
	auth.GET("/transactions/stats", treasuryStatsHandler)
	auth.GET("/transactions/monthly-stats", monthlyStatsHandler)

	auth.GET("/events", listEventsHandler)
	auth.GET("/events/:id", getEventHandler)
	auth.POST("/events", createEventHandler)
	auth.PUT("/events/:id", updateEventHandler)
	auth.DELETE("/events/:id", adminOnly(), deleteEventHandler)
	auth.POST("/events/:id/images", uploadEventImageHandler)

	auth.GET("/schedules", listSchedulesHandler)
	auth.POST("/schedules", createScheduleHandler)
	auth.DELETE("/schedules/:id", deleteScheduleHandler)

	auth.GET("/church-config", getChurchConfigHandler)
	auth.POST("/church-config", updateChurchConfigHandler)

	auth.GET("/notifications", listNotificationsHandler)
	auth.PUT("/notifications/:id/read", markAsReadHandler)
	auth.PUT("/notifications/read-all", markAllAsReadHandler)
	auth.GET("/notifications/unread-count", unreadCountHandler)

	auth.GET("/users/me", meHandler)
	auth.PUT("/users/profile", updateProfileHandler)
	auth.POST("/users/change-password", changePasswordHandler)
	auth.POST("/users/create-super-member", adminOnly(), createSuperMemberHandler)
	auth.GET("/users/super-members", adminOnly(), listSuperMembersHandler)
	auth.DELETE("/users/:id", adminOnly(), deleteUserHandler)
	auth.GET("/users/export-data", adminOnly(), exportDataHandler)
}

// jwtAuthMiddleware verifies the Bearer token and passes the embedded
// identity to handlers through the request context. Handlers never consult
// ambient state for the current user.
func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		email, role, err := parseToken(authHeader[7:])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}
		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	}
}

// adminOnly rejects requests whose verified token does not carry the ADMIN role.
func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Accès réservé aux administrateurs."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentEmail returns the identity set by jwtAuthMiddleware.
func currentEmail(c *gin.Context) string {
	return c.GetString("email")
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	log.WithField("email", req.Email).Info("login attempt")

	user, err := Authenticate(req.Email, req.Password)
	if err != nil {
		log.WithField("email", req.Email).Warn("authentication failed")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Identifiants invalides ou utilisateur non trouvé."})
		return
	}
	token, err := generateToken(user.Email, user.Role)
	if err != nil {
		log.WithField("email", req.Email).Errorf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Une erreur interne est survenue."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"type":     "Bearer",
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"role":     user.Role,
	})
}
