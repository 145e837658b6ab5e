// Package web provides the HTTP server and web interface for go-panlasa
package web

import (
	"github.com/gin-gonic/gin"
)

// aboutPage handles "/about"
func (s *WebServer) aboutPage(c *gin.Context) {
	data := s.getBaseTemplateData("About")
	s.renderTemplate(c, "about.html", data)
}
