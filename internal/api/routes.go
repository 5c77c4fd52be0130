package api

import (
	"net/http"
	"time"

	"stormfins/club-app/internal/domain"
	"stormfins/club-app/internal/storage"
	"stormfins/club-app/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP facade over the store. The consumer is a
// browser app, so CORS is open.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	jwtExpiration time.Duration,
	st *store.Store,
	files storage.FileStorage,
) {
	authHandler := NewAuthHandler(st, jwtSecret, jwtExpiration)
	teamHandler := NewTeamHandler(st)
	scheduleHandler := NewScheduleHandler(st)
	awardHandler := NewAwardHandler(st)
	chatHandler := NewChatHandler(st)
	mediaHandler := NewMediaHandler(files)

	router.Use(cors.Default())

	authMiddleware := AuthMiddleware(jwtSecret)
	// captainOnly checks the token's role claim. The store keeps its own
	// single process-wide session, which a later login can change; handlers
	// whose store mutation would silently no-op on that mismatch re-check
	// the session via requireCaptainSession.
	captainOnly := RoleMiddleware(domain.RoleCaptain)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/captains", authHandler.RegisterCaptain)
			authGroup.POST("/activate", authHandler.ActivateSwimmer)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", authHandler.Logout)

		// Full snapshot for clients that render from one state object.
		protected.GET("/state", func(c *gin.Context) {
			c.JSON(http.StatusOK, st.Snapshot())
		})

		protected.GET("/users", teamHandler.ListUsers)
		protected.PUT("/users/:id/avatar", teamHandler.UpdateAvatar)
		protected.POST("/users", captainOnly, teamHandler.AddSwimmer)
		protected.DELETE("/users/:id", captainOnly, teamHandler.DeleteUser)
		protected.POST("/users/:id/bonus", captainOnly, teamHandler.AwardBonusPoints)

		protected.GET("/schedule", scheduleHandler.ListSchedule)
		protected.POST("/schedule", captainOnly, scheduleHandler.CreateEvent)
		protected.DELETE("/schedule/:id", captainOnly, scheduleHandler.DeleteEvent)

		protected.GET("/plans", scheduleHandler.ListPlans)
		protected.POST("/plans", captainOnly, scheduleHandler.CreatePlan)

		protected.GET("/awards", awardHandler.Catalog)
		protected.GET("/awards/granted", awardHandler.ListGranted)
		protected.POST("/awards/grant", captainOnly, awardHandler.Grant)

		protected.GET("/challenges", awardHandler.ListChallenges)
		protected.POST("/challenges", captainOnly, awardHandler.CreateChallenge)
		protected.POST("/challenges/:id/complete", awardHandler.CompleteChallenge)

		protected.GET("/chat/conversations", chatHandler.ListConversations)
		protected.GET("/chat/conversations/:userId", chatHandler.GetConversation)
		protected.POST("/chat/messages", chatHandler.SendMessage)
		protected.GET("/chat/unread", chatHandler.UnreadCounts)

		protected.GET("/alert", teamHandler.GetAlert)
		protected.POST("/alert", captainOnly, teamHandler.SendAlert)
		protected.DELETE("/alert", teamHandler.DismissAlert)

		protected.POST("/media/avatar-upload", mediaHandler.CreateAvatarUploadURL)
	}
}
