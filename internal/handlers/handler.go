package handlers

import (
	"net/http"

	_ "greeter/docs"
	"greeter/internal/logger"
	"greeter/internal/service"
	"greeter/internal/views"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tunes the router for the environment it runs in.
type Options struct {
	// Debug exposes panic details in 500 responses.
	Debug bool
	// SSL enables HTTPS redirects and HSTS.
	SSL bool
}

// Handler wires HTTP layer to services, views and logging.
type Handler struct {
	services *service.Service
	views    *views.Renderer
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, renderer *views.Renderer, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, views: renderer, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The route table is fixed once this returns.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	// no route ends in a slash; "/form/" and friends are plain 404s
	router.RedirectTrailingSlash = false
	router.Use(
		h.requestIDMiddleware,
		h.accessLogMiddleware,
		h.recoveryMiddleware(),
		secure.New(h.secureConfig()),
	)
	router.NoRoute(h.notFound)
	router.NoMethod(h.methodNotAllowed)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Match(readMethods, "/health", h.health)

	h.registerGreetingRoutes(router)
	h.registerPageRoutes(router)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) secureConfig() secure.Config {
	cfg := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if h.opts.SSL {
		cfg.SSLRedirect = true
		cfg.STSSeconds = 31536000
		cfg.STSIncludeSubdomains = true
	}
	return cfg
}

// readMethods are registered together: every GET route also answers HEAD.
var readMethods = []string{http.MethodGet, http.MethodHead}

func (h *Handler) registerGreetingRoutes(r *gin.Engine) {
	r.Match(readMethods, "/", h.home)
	r.Match(readMethods, "/hello/:"+paramUsername, h.helloUser)
	r.Match(readMethods, "/hello-user-id/:"+paramUserID, h.requireUintParam(paramUserID), h.helloUserID)
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.Match(readMethods, "/welcome/:"+paramName, h.welcome)

	form := r.Group("/form")
	{
		form.Match(readMethods, "", h.formPage)
		form.POST("", h.submitForm)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.Match(readMethods, "/users", h.listUsers)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
