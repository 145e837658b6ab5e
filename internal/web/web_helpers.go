// Package web provides the HTTP server and web interface for go-panlasa
package web

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/panlasa/go-panlasa/internal/config"
)

// templateFuncs returns the function map for page templates. sprig supplies
// the general-purpose helpers; "title" is replaced with a Unicode-aware
// caser. A Caser is stateful, so each call builds a fresh one.
func templateFuncs() template.FuncMap {
	funcs := sprig.FuncMap()
	caser := cases.Title(language.English)
	funcs["title"] = caser.String
	return funcs
}

// getBaseTemplateData creates a TemplateData struct with common page information
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:       title,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		Port:        s.Config.ListenPort,
		RecipeCount: s.Recipes.Count(),
		AppVersion:  config.AppVersion,
	}
}

// renderTemplate renders a page template against the base layout.
// Templates are parsed individually per request to avoid name conflicts
// between pages that define the same blocks.
func (s *WebServer) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	tmpl := template.Must(template.New("base.html").Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/base.html", "templates/"+templateName))
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", templateName, err)
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
	}
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData("Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	log.Printf("[WEB]: Error %d: %s - %s", statusCode, message, errstring)

	tmpl, err := template.New("base.html").Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/base.html", "templates/error.html")
	if err != nil {
		c.String(statusCode, "Error: %s - %s", message, errstring)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(statusCode)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", errorData); err != nil {
		log.Printf("Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s - %s", message, errstring)
	}
}
