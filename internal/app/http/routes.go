package routes

import (
	appraisalsapi "inventory-app/internal/api/appraisals"
	artistsapi "inventory-app/internal/api/artists"
	artworksapi "inventory-app/internal/api/artworks"
	authapi "inventory-app/internal/api/auth"
	collectionsapi "inventory-app/internal/api/collections"
	usersapi "inventory-app/internal/api/users"
	"inventory-app/internal/app/http/middleware"

	"inventory-app/config"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Upload directory is served without authentication, like the
	// original deployment did.
	r.Static("/static/uploads", config.UPLOAD_DIR)

	public := r.Group("/api/auth")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/google", authapi.GoogleStart)
	public.GET("/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/api")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/artists", artistsapi.ListArtists)
	auth.GET("/artists/:id", artistsapi.GetArtist)
	auth.POST("/artists", artistsapi.CreateArtist)

	auth.GET("/artworks", artworksapi.GetArtworks)
	auth.GET("/artworks/user", artworksapi.GetUserArtworks)
	auth.GET("/artworks/:id", artworksapi.GetArtwork)
	auth.POST("/artworks", artworksapi.CreateArtwork)
	auth.POST("/artworks/update-valuation/:id", artworksapi.UpdateValuation)
	auth.POST("/artworks/upload-images", artworksapi.UploadImages)

	auth.GET("/collections", collectionsapi.GetCollections)
	auth.GET("/collections/user", collectionsapi.GetUserCollections)
	auth.GET("/collections/:id", collectionsapi.GetCollection)
	auth.POST("/collections", collectionsapi.CreateCollection)

	auth.GET("/appraisals", appraisalsapi.GetAppraisals)
	auth.POST("/appraisals", appraisalsapi.CreateAppraisal)

	auth.GET("/user/profile", usersapi.GetProfile)
	auth.PUT("/user/profile", usersapi.UpdateProfile)
}
