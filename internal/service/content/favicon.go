package content

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// FindFavicon returns the href of the first <link> whose rel mentions "icon",
// resolved against pageURL. It reports false when the page declares none.
func FindFavicon(page, pageURL string) (string, bool) {
	tokenizer := html.NewTokenizer(strings.NewReader(page))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data == "body" {
				return "", false
			}
			if token.Data != "link" {
				continue
			}
			var rel, href string
			for _, attr := range token.Attr {
				switch strings.ToLower(attr.Key) {
				case "rel":
					rel = strings.ToLower(attr.Val)
				case "href":
					href = strings.TrimSpace(attr.Val)
				}
			}
			if href == "" || !strings.Contains(rel, "icon") {
				continue
			}
			return resolveReference(href, pageURL), true
		}
	}
}

// DefaultFaviconURL is the conventional /favicon.ico location for a site.
func DefaultFaviconURL(siteURL string) (string, bool) {
	parsed, err := url.Parse(siteURL)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	return parsed.Scheme + "://" + parsed.Host + "/favicon.ico", true
}

func resolveReference(href, base string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Host == "" {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}
