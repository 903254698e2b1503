// Package skill turns the raw skill-text markup of a card into clean display
// lines and the set of ability features those lines mention.
package skill

import (
	"html"
	"regexp"
	"strings"

	"github.com/peterkuimelis/wixoss/internal/feature"
)

var (
	breakPattern = regexp.MustCompile(`<br[^>]*>`)
	iconPattern  = regexp.MustCompile(`<img[^>]*alt="([^"]*)"[^>]*>`)
)

// Skills is the ordered list of normalized rule-text lines of a card.
type Skills []string

func (s Skills) String() string {
	return strings.Join(s, "\n")
}

// Result is the outcome of normalizing one skill source.
type Result struct {
	Skills   Skills
	Features feature.Set
}

// Parse normalizes source and collects its features. Source order of the
// lines is preserved and lines left empty by the rewrites are dropped.
func Parse(source string) Result {
	var res Result
	for _, raw := range SplitLines(source) {
		line, tags := Tag(html.UnescapeString(ReplaceIcons(raw)))
		res.Features = res.Features.Union(tags)
		if line == "" {
			continue
		}
		res.Skills = append(res.Skills, line)
	}
	return res
}

// SplitLines replaces every break marker with a newline and returns the
// trimmed lines.
func SplitLines(source string) []string {
	lines := strings.Split(breakPattern.ReplaceAllString(source, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// ReplaceIcons swaps each inline icon for its alt text. Text without icons
// is returned unchanged.
func ReplaceIcons(text string) string {
	return iconPattern.ReplaceAllStringFunc(text, func(tag string) string {
		alt := iconPattern.FindStringSubmatch(tag)[1]
		// Doubled icons render with a stray "2" before the closing bracket.
		return strings.ReplaceAll(alt, "2》", "》")
	})
}

// Tag runs the rule table over one line and returns the rewritten line with
// the features it asserted.
func Tag(line string) (string, feature.Set) {
	var tags feature.Set
	for _, r := range rules {
		if !r.Pattern.MatchString(line) {
			continue
		}
		tags = tags.Union(r.Tags)
		if r.Rewrite {
			line = r.Pattern.ReplaceAllLiteralString(line, r.Replacement)
		}
	}
	return strings.TrimSpace(line), tags
}
