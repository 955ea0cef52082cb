package handlers

import (
	"recipebox/internal/logger"
	"recipebox/internal/service"
	"recipebox/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, session state and logging.
type Handler struct {
	services *service.Service
	sess     session.Manager
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sess session.Manager, log *logger.Logger) *Handler {
	return &Handler{services: services, sess: sess, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The session store is injected so main can swap cookie/memstore/redis
// backends; corsOrigins lists the origins allowed to send credentials.
func (h *Handler) InitRoutes(store sessions.Store, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())

	// CORS runs before the session gate so OPTIONS pre-flight requests are
	// answered without an authenticated session.
	router.Use(cors.New(corsConfig(corsOrigins)))
	router.Use(sessions.Sessions(session.CookieName, store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public endpoints: signup and login establish a session, check_session
	// performs its own authorization check.
	router.POST("/signup", h.signup)
	router.POST("/login", h.login)
	router.GET("/check_session", h.checkSession)

	// Everything else sits behind the session gate.
	authed := router.Group("", h.requireSession)
	{
		authed.DELETE("/logout", h.logout)
		authed.GET("/recipes", h.recipeIndex)
		authed.POST("/recipes", h.createRecipe)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cfg
}
