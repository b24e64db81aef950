package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"luyona.backend/internal/interfaces/http/handlers"
	"luyona.backend/internal/interfaces/http/middleware"
)

const serviceVersion = "1.0.0"

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	profileHandler  *handlers.ProfileHandler
	adminHandler    *handlers.AdminHandler
	uploadHandler   *handlers.UploadHandler
	authMiddleware  gin.HandlerFunc
	adminMiddleware gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "luyona-backend",
			"version": serviceVersion,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", d.authHandler.Register)
		auth.POST("/login", d.authHandler.Login)
		auth.DELETE("/account", d.authMiddleware, d.authHandler.DeleteAccount)
	}

	// Profile routes (protected)
	user := r.Group("/user")
	user.Use(d.authMiddleware)
	{
		user.GET("/profile", d.profileHandler.GetProfile)
		user.POST("/profile", middleware.IdempotencyMiddleware(), d.profileHandler.SaveProfile)
		user.PUT("/profile", d.profileHandler.UpdateProfile)
	}

	// Upload routes (protected)
	upload := r.Group("/upload")
	upload.Use(d.authMiddleware)
	{
		upload.POST("/profile-picture", d.uploadHandler.UploadProfilePicture)
		upload.POST("/lifestyle-image", d.uploadHandler.UploadLifestyleImage)
	}

	// Admin routes
	admin := r.Group("/admin")
	{
		admin.POST("/login", d.authHandler.AdminLogin)

		protected := admin.Group("")
		protected.Use(d.authMiddleware, d.adminMiddleware)
		{
			protected.GET("/users", d.adminHandler.ListUsers)
			protected.GET("/users/:id", d.adminHandler.GetUserDetail)
			protected.PUT("/users/:id/approval", d.adminHandler.UpdateApproval)
			protected.GET("/waitlist", d.adminHandler.Waitlist)
			protected.GET("/dashboard", d.adminHandler.Dashboard)
		}
	}
}
