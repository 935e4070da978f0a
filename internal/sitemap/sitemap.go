// Package sitemap builds the storefront's XML sitemap from the fixed set of
// static routes plus one entry per catalog product.
package sitemap

import (
	"encoding/xml"
	"time"

	"github.com/hearthglow/storefront/internal/models"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type staticRoute struct {
	path       string
	changeFreq string
	priority   string
}

var staticRoutes = []staticRoute{
	{"/", "daily", "1.0"},
	{"/products", "daily", "0.8"},
	{"/about", "weekly", "0.8"},
	{"/contact", "weekly", "0.8"},
	{"/faq", "weekly", "0.8"},
	{"/track-order", "weekly", "0.8"},
	{"/privacy-policy", "weekly", "0.8"},
	{"/terms", "weekly", "0.8"},
}

// Build combines the static routes with one entry per product. Product
// entries use the product's update timestamp as lastmod.
func Build(siteURL string, products []models.Product) *URLSet {
	urls := make([]URL, 0, len(staticRoutes)+len(products))
	for _, r := range staticRoutes {
		urls = append(urls, URL{
			Loc:        siteURL + r.path,
			ChangeFreq: r.changeFreq,
			Priority:   r.priority,
		})
	}
	for _, p := range products {
		urls = append(urls, URL{
			Loc:        siteURL + "/products/" + p.Slug,
			LastMod:    p.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}
	return &URLSet{Xmlns: xmlns, URLs: urls}
}

// Marshal renders the url set with the XML declaration prepended.
func Marshal(set *URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
