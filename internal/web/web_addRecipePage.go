// Package web provides the HTTP server and web interface for go-panlasa
package web

import (
	"github.com/gin-gonic/gin"
)

// addRecipePage handles "/add-recipe", rendering the add-recipe form.
// The form is display-only: no route accepts a submission and the
// collection is never mutated.
func (s *WebServer) addRecipePage(c *gin.Context) {
	data := s.getBaseTemplateData("Add Recipe")
	s.renderTemplate(c, "add_recipe.html", data)
}
