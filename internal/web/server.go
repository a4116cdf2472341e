package web

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/client"
)

// Server is the web UI server for the sentiment analyzer
type Server struct {
	router *gin.Engine
	api    *client.APIClient
	logger *zap.Logger
}

// NewServer creates a new web UI server talking to the given API client
func NewServer(api *client.APIClient, logger *zap.Logger) (*Server, error) {
	router := gin.New()
	router.Use(gin.Recovery())

	// Security headers for the browser-facing surface
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	tmpl, err := loadTemplates(template.FuncMap{
		"sentimentClass": sentimentClass,
		"sentimentEmoji": sentimentEmoji,
	})
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	static, err := staticHandler()
	if err != nil {
		return nil, err
	}
	router.GET("/static/*filepath", gin.WrapH(static))

	s := &Server{
		router: router,
		api:    api,
		logger: logger,
	}

	router.GET("/", s.indexPage)
	router.POST("/analyze", s.analyzePage)
	router.GET("/health", s.health)

	return s, nil
}

// Handler returns the HTTP handler of the web server
func (s *Server) Handler() http.Handler {
	return s.router
}

// health reports the web server's own liveness and API reachability.
// The launcher polls this endpoint during startup.
func (s *Server) health(c *gin.Context) {
	status := gin.H{"status": "healthy", "api": "ok"}

	if _, err := s.api.Health(c.Request.Context()); err != nil {
		status["api"] = "unreachable"
	}

	c.JSON(http.StatusOK, status)
}
