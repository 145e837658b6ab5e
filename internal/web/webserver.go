// Package web provides the HTTP server and web interface for go-panlasa
package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/panlasa/go-panlasa/internal/config"
	"github.com/panlasa/go-panlasa/internal/models"
	"github.com/panlasa/go-panlasa/internal/recipes"
)

// WebServer represents the web server
type WebServer struct {
	Router    *gin.Engine
	Config    *config.WebConfig
	Recipes   *recipes.Store
	StartTime time.Time // Track server start time for uptime calculations
}

// TemplateData represents common template data
type TemplateData struct {
	Title       string
	CurrentTime string
	Port        int
	RecipeCount int
	AppVersion  string
}

// HomePageData represents data for the home page
type HomePageData struct {
	TemplateData
	Recipes []*models.Recipe
}

// RecipePageData represents data for the recipe detail page
type RecipePageData struct {
	TemplateData
	Recipe *models.Recipe
}

// NewServer creates a new web server instance
func NewServer(store *recipes.Store, webconfig *config.WebConfig) *WebServer {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Trust only common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	router.Use(secure.New(secureConfig))

	server := &WebServer{
		Router:  router,
		Config:  webconfig,
		Recipes: store,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Static files first (highest priority)
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))
	s.Router.GET("/favicon.ico", EmbeddedFileHandler("static/favicon.ico"))
	s.Router.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
	})
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Page routes
	s.Router.GET("/", s.homePage)
	s.Router.GET("/recipe/:id", s.recipePage)
	s.Router.GET("/add-recipe", s.addRecipePage)
	s.Router.GET("/about", s.aboutPage)
	s.Router.GET("/contact", s.contactPage)
}

// Start begins listening on the configured port
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.ListenPort)
	s.StartTime = time.Now() // Set the start time for uptime calculations
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("Starting HTTP server on %s", addr)
	return s.Router.Run(addr)
}
