package content

import "regexp"

var (
	activeElementPattern = regexp.MustCompile(
		`(?is)<script\b[^>]*/>|<script\b[^>]*>.*?</script\s*>|<iframe\b[^>]*/>|<iframe\b[^>]*>.*?</iframe\s*>`,
	)

	// Quoted attribute values may contain '>'.
	openTagPattern       = regexp.MustCompile(`<[a-zA-Z](?:[^<>"']|"[^"]*"|'[^']*')*>`)
	eventAttrPattern     = regexp.MustCompile(`(?i)\s+on[a-z0-9_-]*\s*=\s*(?:"[^"]*"|'[^']*'|[^\s"'>]+)`)
	scriptURLAttrPattern = regexp.MustCompile(`(?i)\s+[a-z0-9_:-]+\s*=\s*(?:"\s*javascript:[^"]*"|'\s*javascript:[^']*'|javascript:[^\s"'>]*)`)
)

// Sanitize removes script and iframe elements, event handler attributes and
// attributes carrying javascript: URLs. It is a denylist and is not a
// security boundary for hostile markup.
func Sanitize(html string) string {
	html = activeElementPattern.ReplaceAllString(html, "")
	return openTagPattern.ReplaceAllStringFunc(html, func(tag string) string {
		tag = eventAttrPattern.ReplaceAllString(tag, "")
		return scriptURLAttrPattern.ReplaceAllString(tag, "")
	})
}
