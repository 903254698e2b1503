// Package extract pulls the header metadata, the positional field table and
// the skill markup out of a card detail fragment.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Sentinels for metadata the fragment does not carry. They are valid values
// meaning "unknown", not errors.
const (
	UnknownNo     = "unknown"
	UnknownName   = "unknown"
	UnknownRarity = "unknown rarity"
	UnknownArtist = "unknown artist"
)

// Selectors of the card detail markup.
const (
	selNo     = ".cardNum"
	selName   = ".cardName"
	selRarity = ".cardRarity"
	selArtist = ".cardImg p span"
	selFields = ".cardData dd"
	selSkill  = ".cardSkill"
)

// Header identifies a card.
type Header struct {
	No            string `json:"no" yaml:"no"`
	Name          string `json:"name" yaml:"name"`
	Pronunciation string `json:"pronunciation" yaml:"pronunciation"`
	Artist        string `json:"artist" yaml:"artist"`
	Rarity        string `json:"rarity" yaml:"rarity"`
}

// Fields is the ordered list of raw description values. Position is the
// contract: index N means the same attribute within a card family.
type Fields []string

// Fragment is everything the variant parsers need from one card.
type Fragment struct {
	Header Header
	Fields Fields
	// Skill is the raw markup of every skill block, joined by a break.
	Skill string
}

// Parse reads a card fragment from r.
func Parse(r io.Reader) (Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Fragment{}, fmt.Errorf("parse card html: %w", err)
	}
	return FromDocument(doc.Selection), nil
}

// ParseString reads a card fragment from source.
func ParseString(source string) (Fragment, error) {
	return Parse(strings.NewReader(source))
}

// FromDocument extracts a fragment from an already parsed document.
func FromDocument(doc *goquery.Selection) Fragment {
	var frag Fragment

	frag.Header.No = textOr(doc.Find(selNo), UnknownNo)
	frag.Header.Rarity = textOr(doc.Find(selRarity), UnknownRarity)
	frag.Header.Artist = textOr(doc.Find(selArtist), UnknownArtist)

	if name := doc.Find(selName).First(); name.Length() > 0 {
		frag.Header.Name, frag.Header.Pronunciation = SplitName(name, strings.TrimSpace(name.Text()), "")
	} else {
		frag.Header.Name, frag.Header.Pronunciation = UnknownName, UnknownName
	}

	doc.Find(selFields).Each(func(_ int, dd *goquery.Selection) {
		frag.Fields = append(frag.Fields, innerHTML(dd))
	})

	var blocks []string
	doc.Find(selSkill).Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, innerHTML(s))
	})
	frag.Skill = strings.Join(blocks, "<br>")

	return frag
}

// SplitName separates the card name from its bracketed pronunciation. The name
// is all text preceding the first line break, inline markup included; the pronunciation is the
// first span with its "＜" "＞" anchors removed. Without a break both
// defaults are returned.
func SplitName(title *goquery.Selection, defaultName, defaultPronunciation string) (string, string) {
	br := title.Find("br").First()
	if br.Length() == 0 {
		return defaultName, defaultPronunciation
	}

	name := defaultName
	if before := strings.TrimSpace(textBefore(br.Nodes[0])); before != "" {
		name = before
	}

	pronunciation := defaultPronunciation
	if span := title.Find("span").First(); span.Length() > 0 {
		p := strings.TrimSpace(span.Text())
		p = strings.TrimPrefix(p, "＜")
		p = strings.TrimSuffix(p, "＞")
		pronunciation = p
	}
	return name, pronunciation
}

// SplitNameString is SplitName over a raw title fragment.
func SplitNameString(source, defaultName, defaultPronunciation string) (string, string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return defaultName, defaultPronunciation
	}
	return SplitName(doc.Selection, defaultName, defaultPronunciation)
}

// textBefore returns the text of every sibling in front of n.
func textBefore(n *html.Node) string {
	var parts []string
	for prev := n.PrevSibling; prev != nil; prev = prev.PrevSibling {
		parts = append(parts, nodeText(prev))
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String()
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

func textOr(sel *goquery.Selection, fallback string) string {
	if sel.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(sel.First().Text())
}

func innerHTML(sel *goquery.Selection) string {
	s, err := sel.Html()
	if err != nil {
		// Rendering a parsed node only fails on a broken writer.
		return sel.Text()
	}
	return s
}
