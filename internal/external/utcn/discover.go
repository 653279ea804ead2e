package utcn

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Plan is a curriculum plan document published on the faculty site.
type Plan struct {
	Title string
	URL   string
}

// DiscoverPlans scrapes the faculty index page for published curriculum
// plan documents. Useful to see which plans exist before fetching one.
func (c *Client) DiscoverPlans(ctx context.Context) ([]Plan, error) {
	indexURL := c.baseURL + c.indexPath

	body, err := c.fetchDocument(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetch plan index: %w", err)
	}

	plans := parsePlanIndex(string(body), indexURL)

	c.logger.WithField("count", len(plans)).Debug("Discovered curriculum plans")
	return plans, nil
}

// parsePlanIndex extracts curriculum plan links from the index page HTML.
// Relative hrefs are resolved against the page URL.
func parsePlanIndex(html string, pageURL string) []Plan {
	var plans []Plan

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return plans
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return plans
	}

	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(i int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		if !strings.Contains(href, "planuri_invatamant") ||
			!strings.HasSuffix(strings.ToLower(href), ".pdf") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		absolute := base.ResolveReference(ref).String()

		if seen[absolute] {
			return
		}
		seen[absolute] = true

		title := strings.Join(strings.Fields(link.Text()), " ")
		if title == "" {
			title = path.Base(ref.Path)
		}

		plans = append(plans, Plan{Title: title, URL: absolute})
	})

	return plans
}
