// Package web provides the HTTP server and web interface for go-panlasa
package web

import (
	"github.com/gin-gonic/gin"
)

// contactPage handles "/contact"
func (s *WebServer) contactPage(c *gin.Context) {
	data := s.getBaseTemplateData("Contact")
	s.renderTemplate(c, "contact.html", data)
}
