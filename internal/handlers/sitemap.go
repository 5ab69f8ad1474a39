package handlers

import (
	"encoding/xml"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/internal/catalog"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticPages = []sitemapURL{
	{Loc: "/", ChangeFreq: "weekly", Priority: "1.0"},
	{Loc: "/products", ChangeFreq: "weekly", Priority: "0.9"},
	{Loc: "/about", ChangeFreq: "monthly", Priority: "0.5"},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: "0.5"},
}

// GET /sitemap.xml — static pages plus one entry per product, addressed by
// slug when present and by id otherwise.
func Sitemap(svc *catalog.Service, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /sitemap.xml"
		defer handlePanic(c, route)

		set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		for _, page := range staticPages {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        publicBaseURL + page.Loc,
				ChangeFreq: page.ChangeFreq,
				Priority:   page.Priority,
			})
		}

		for _, p := range svc.ListAll() {
			key := p.Slug
			if key == "" {
				key = strconv.Itoa(p.ID)
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        publicBaseURL + "/products/" + key,
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}

		body, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Something went wrong!")
			return
		}

		c.Data(http.StatusOK, "application/xml", append([]byte(xml.Header), body...))
	}
}
