// Package web provides the HTTP server and web interface for go-panlasa
package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// recipePage handles "/recipe/:id", showing a single recipe.
//
// An unknown or non-numeric id yields the plain-text not-found response;
// it is the only error path a visitor can reach.
func (s *WebServer) recipePage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Recipe not found")
		return
	}

	recipe, err := s.Recipes.GetByID(id)
	if err != nil {
		c.String(http.StatusNotFound, "Recipe not found")
		return
	}

	data := RecipePageData{
		TemplateData: s.getBaseTemplateData(recipe.Name),
		Recipe:       recipe,
	}
	s.renderTemplate(c, "recipe_detail.html", data)
}
