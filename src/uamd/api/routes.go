package api

import "github.com/gin-gonic/gin"

// RegisterRoutes configures all API routes on the given router
func (a *API) RegisterRoutes(router *gin.Engine) {
	// Root endpoint - HTML greeting
	router.GET("/", a.Base.HandleRoot)

	// Public auth routes
	router.POST("/register", a.handleRegister)
	router.POST("/login", a.handleLogin)
	router.POST("/logout", a.handleLogout)

	// Admin routes - token plus ADMIN role
	admin := router.Group("/admin")
	admin.Use(a.authRequired(), a.adminRequired())
	{
		admin.POST("/create", a.handleAdminCreate)
		admin.PUT("/update/:id", a.handleAdminUpdate)
		admin.DELETE("/delete/:id", a.handleAdminDelete)
		admin.GET("/read", a.handleAdminReadAll)
		admin.GET("/read/:id", a.handleAdminReadOne)
	}

	// Profile - any authenticated user
	profile := router.Group("/profile")
	profile.Use(a.authRequired())
	{
		profile.GET("", a.handleProfile)
	}

	// Discovery endpoints
	v1 := router.Group("/v1")
	{
		v1.GET("/health", a.Base.HandleHealth)
		v1.GET("/version", a.Base.HandleVersion)
	}
}
