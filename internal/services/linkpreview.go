package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var ErrNoTitle = errors.New("page has no title")

// linkPreviewTimeout bounds the one outbound network call this service
// makes. Redirects are followed within the same budget.
const linkPreviewTimeout = 2 * time.Second

// MetaTags holds the page metadata used for link previews.
type MetaTags struct {
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// LinkPreviewService fetches page metadata for link previews. It is a
// standalone utility with no ties to project access control.
type LinkPreviewService struct {
	client *http.Client
}

// NewLinkPreviewService creates a new LinkPreviewService.
func NewLinkPreviewService() *LinkPreviewService {
	return &LinkPreviewService{
		client: &http.Client{Timeout: linkPreviewTimeout},
	}
}

// FetchMetaTags downloads the page and extracts its title and favicon.
// Relative favicon paths are resolved against the page URL.
func (s *LinkPreviewService) FetchMetaTags(ctx context.Context, pageURL string) (*MetaTags, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	title, favicon := extractMetaTags(doc)
	if title == "" {
		return nil, ErrNoTitle
	}

	if favicon != "" && strings.HasPrefix(favicon, "/") {
		if base, err := url.Parse(pageURL); err == nil {
			if ref, err := url.Parse(favicon); err == nil {
				favicon = base.ResolveReference(ref).String()
			}
		}
	}

	return &MetaTags{Title: title, Image: favicon}, nil
}

func extractMetaTags(doc *html.Node) (title, favicon string) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "link":
				if favicon == "" && isIconLink(n) {
					favicon = attrValue(n, "href")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title, favicon
}

func isIconLink(n *html.Node) bool {
	rel := attrValue(n, "rel")
	for _, part := range strings.Fields(strings.ToLower(rel)) {
		if part == "icon" {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
