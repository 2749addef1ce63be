// Package markup holds pure text transforms for post content:
// hashtag extraction and display-time auto-linking.
package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hashtagRe = regexp.MustCompile(`#\w+`)
	// single alternation so a hashtag inside an already matched URL is
	// never rematched
	linkRe = regexp.MustCompile(`https?://\S+|#\w+`)
)

// ExtractHashtags returns every hashtag token in content, in order of
// appearance. Duplicates are kept as separate entries.
func ExtractHashtags(content string) []string {
	return hashtagRe.FindAllString(content, -1)
}

// FormatContent rewrites hashtag tokens and absolute URLs into anchor
// references. Everything else passes through verbatim; the left-to-right
// non-overlapping scan guarantees a URL fragment is not also converted as
// a hashtag.
func FormatContent(content string) string {
	return linkRe.ReplaceAllStringFunc(content, func(match string) string {
		if strings.HasPrefix(match, "#") {
			return fmt.Sprintf(`<a href="/tags/%s">%s</a>`, match[1:], match)
		}
		return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, match, match)
	})
}
