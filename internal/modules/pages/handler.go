package pages

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Page is one public route rendered from a template. The same table feeds
// the router and the sitemap, so the two cannot drift apart.
type Page struct {
	Path     string
	Template string
	Title    string
	Sitemap  bool
}

var publicPages = []Page{
	{Path: "/", Template: "home.html", Title: "Solar power for your home", Sitemap: true},
	{Path: "/about", Template: "about.html", Title: "About us", Sitemap: true},
	{Path: "/services", Template: "services.html", Title: "Services", Sitemap: true},
	{Path: "/projects", Template: "projects.html", Title: "Projects", Sitemap: true},
	{Path: "/contact", Template: "contact.html", Title: "Contact", Sitemap: true},
	{Path: "/privacy", Template: "privacy.html", Title: "Privacy policy", Sitemap: true},
	{Path: "/terms", Template: "terms.html", Title: "Terms of service", Sitemap: true},
	{Path: "/calculator", Template: "calculator.html", Title: "Solar cost calculator"},
}

type Handler struct {
	baseURL string
}

func NewHandler(baseURL string) *Handler {
	return &Handler{baseURL: strings.TrimRight(baseURL, "/")}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	for _, p := range publicPages {
		r.GET(p.Path, h.renderPage(p))
	}
	r.GET("/healthz", h.Health)
	r.GET("/robots.txt", h.Robots)
	r.GET("/sitemap.xml", h.Sitemap)
}

func (h *Handler) renderPage(p Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, p.Template, gin.H{"Title": p.Title})
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Robots(c *gin.Context) {
	lines := []string{
		"User-agent: *",
		"Disallow:",
		"Sitemap: " + h.baseURL + "/sitemap.xml",
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(strings.Join(lines, "\n")))
}

func (h *Handler) Sitemap(c *gin.Context) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range publicPages {
		if !p.Sitemap {
			continue
		}
		b.WriteString("<url><loc>" + h.baseURL + p.Path + "</loc></url>\n")
	}
	b.WriteString("</urlset>")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(b.String()))
}
