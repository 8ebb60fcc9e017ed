package routes

import (
	authapi "focusdash-app/internal/api/auth"
	"focusdash-app/internal/api/billing"
	notesapi "focusdash-app/internal/api/notes"
	playlistsapi "focusdash-app/internal/api/playlists"
	stripewebhooks "focusdash-app/internal/api/stripewebhook"
	subscriptionapi "focusdash-app/internal/api/subscription"
	tasksapi "focusdash-app/internal/api/tasks"
	usersapi "focusdash-app/internal/api/users"
	"focusdash-app/internal/app/http/middleware"
	"focusdash-app/internal/infra/payments"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, pc payments.Client) {
	// The webhook body must reach the handler untouched so the signature
	// still verifies, hence no sanitization here.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	billingHandler := billing.NewHandler(pc)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.POST("/create-checkout-session", billingHandler.CreateCheckoutSession)
	public.GET("/subscription/status", subscriptionapi.GetStatus)

	public.GET("/playlists", playlistsapi.ListPlaylists)
	public.POST("/playlists", playlistsapi.CreatePlaylist)
	public.DELETE("/playlists/:id", playlistsapi.DeletePlaylist)

	public.GET("/tasks", tasksapi.ListTasks)
	public.POST("/tasks", tasksapi.CreateTask)
	public.PUT("/tasks/:id", tasksapi.UpdateTask)
	public.DELETE("/tasks/:id", tasksapi.DeleteTask)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)

	// Premium surfaces
	premium := auth.Group("/")
	premium.Use(middleware.RequirePremium())
	premium.GET("/notes", notesapi.ListNotes)
	premium.POST("/notes", notesapi.CreateNote)
	premium.PUT("/notes/:id", notesapi.UpdateNote)
	premium.DELETE("/notes/:id", notesapi.DeleteNote)
}
