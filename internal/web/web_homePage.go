// Package web provides the HTTP server and web interface for go-panlasa
package web

import (
	"github.com/gin-gonic/gin"
)

// homePage handles "/", listing every recipe in the collection
func (s *WebServer) homePage(c *gin.Context) {
	data := HomePageData{
		TemplateData: s.getBaseTemplateData("Home"),
		Recipes:      s.Recipes.All(),
	}
	s.renderTemplate(c, "home.html", data)
}
