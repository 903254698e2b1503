package card

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// fixture describes a synthetic card detail fragment.
type fixture struct {
	no     string
	name   string
	fields []string
	skills []string
}

// html renders the fixture in the markup of the official card pages.
func (f fixture) html() string {
	var b strings.Builder
	b.WriteString(`<div class="cardDetail">`)
	fmt.Fprintf(&b, `<p class="cardNum">%s</p>`, f.no)
	fmt.Fprintf(&b, `<p class="cardName">%s<br class="sp"><span>＜よみ＞</span></p>`, f.name)
	b.WriteString(`<div class="cardRarity">R</div>`)
	b.WriteString(`<div class="cardImg"><p>Illust <span>作者</span></p></div>`)
	b.WriteString(`<div class="cardData"><dl>`)
	for _, v := range f.fields {
		fmt.Fprintf(&b, "<dt>x</dt><dd>%s</dd>", v)
	}
	b.WriteString(`</dl>`)
	for _, s := range f.skills {
		fmt.Fprintf(&b, `<div class="cardSkill">%s</div>`, s)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// twelveFields returns a full field table for kind with every attribute
// position filled by "fN".
func twelveFields(kind Kind) []string {
	fs := make([]string, 12)
	for i := range fs {
		fs[i] = fmt.Sprintf("f%d", i)
	}
	fs[fieldKind] = kind.Label()
	fs[fieldColor] = "白"
	fs[fieldFormat] = ""
	fs[fieldStory] = "-"
	return fs
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}
