package onboarding

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	scrapeTimeout   = 10 * time.Second
	scrapeUserAgent = "Mozilla/5.0"
	maxScrapeBody   = 3 << 20
)

// Scraper collects the link map of a business website as raw text for the
// gateway to summarize.
type Scraper struct {
	client *http.Client
}

// NewScraper creates a scraper with a bounded request timeout.
func NewScraper() *Scraper {
	return &Scraper{client: &http.Client{Timeout: scrapeTimeout}}
}

// Collect fetches the domain's landing page and renders every anchor as a
// "Page: <title> - URL: <href>" line, prefixed with the site identity.
func (s *Scraper) Collect(ctx context.Context, domain string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, domain, nil)
	if err != nil {
		return "", fmt.Errorf("onboarding: building scrape request: %w", err)
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("onboarding: fetching %s: %w", domain, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("onboarding: fetching %s: %s", domain, resp.Status)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxScrapeBody))
	if err != nil {
		return "", fmt.Errorf("onboarding: parsing %s: %w", domain, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Website: %s\n", domain)
	collectLinks(doc, &sb)
	return sb.String(), nil
}

func collectLinks(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && n.Data == "a" {
		var href string
		for _, attr := range n.Attr {
			if attr.Key == "href" {
				href = attr.Val
				break
			}
		}
		if href != "" {
			title := strings.TrimSpace(nodeText(n))
			if title == "" {
				title = "No title"
			}
			fmt.Fprintf(sb, "Page: %s - URL: %s\n", title, href)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLinks(c, sb)
	}
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
