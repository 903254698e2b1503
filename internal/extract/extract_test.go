package extract

import (
	"strings"
	"testing"
)

const signiFragment = `
<div class="cardDetail">
  <p class="cardNum">WXDi-P01-035</p>
  <p class="cardName">コードアート　Ｔ・ＶＩＣＥ<br class="sp"><span>＜コードアートティーヴァイス＞</span></p>
  <div class="cardRarity">SR</div>
  <div class="cardImg"><img src="x.jpg"><p>Illust <span>hitoto*</span></p></div>
  <div class="cardData"><dl>
    <dt>カード種類</dt><dd>シグニ</dd>
    <dt>カードタイプ</dt><dd>精械：電機</dd>
    <dt>色</dt><dd>青</dd>
    <dt>レベル</dt><dd>3</dd>
  </dl>
  <div class="cardSkill">一行目<br>二行目</div>
  <div class="cardSkill">三行目</div>
  </div>
</div>`

func TestParseHeader(t *testing.T) {
	frag, err := ParseString(signiFragment)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Header{
		No:            "WXDi-P01-035",
		Name:          "コードアート　Ｔ・ＶＩＣＥ",
		Pronunciation: "コードアートティーヴァイス",
		Artist:        "hitoto*",
		Rarity:        "SR",
	}
	if frag.Header != want {
		t.Errorf("header = %+v\nwant    %+v", frag.Header, want)
	}
}

func TestParseFieldsInOrder(t *testing.T) {
	frag, err := ParseString(signiFragment)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []string{"シグニ", "精械：電機", "青", "3"}
	if len(frag.Fields) != len(want) {
		t.Fatalf("fields = %q, want %q", frag.Fields, want)
	}
	for i := range want {
		if frag.Fields[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, frag.Fields[i], want[i])
		}
	}
}

func TestParseJoinsSkillBlocks(t *testing.T) {
	frag, err := ParseString(signiFragment)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, part := range []string{"一行目", "二行目", "三行目"} {
		if !strings.Contains(frag.Skill, part) {
			t.Errorf("skill %q missing %q", frag.Skill, part)
		}
	}
	if strings.Index(frag.Skill, "二行目") > strings.Index(frag.Skill, "三行目") {
		t.Error("skill blocks out of document order")
	}
}

// TestMissingElementsUseSentinels: an empty fragment degrades, never fails.
func TestMissingElementsUseSentinels(t *testing.T) {
	frag, err := ParseString(`<div class="cardDetail"></div>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	h := frag.Header
	if h.No != UnknownNo {
		t.Errorf("no = %q, want %q", h.No, UnknownNo)
	}
	if h.Name != UnknownName || h.Pronunciation != UnknownName {
		t.Errorf("name = %q / %q", h.Name, h.Pronunciation)
	}
	if h.Rarity != UnknownRarity {
		t.Errorf("rarity = %q", h.Rarity)
	}
	if h.Artist != UnknownArtist {
		t.Errorf("artist = %q", h.Artist)
	}
	if len(frag.Fields) != 0 || frag.Skill != "" {
		t.Errorf("expected no fields or skill, got %q %q", frag.Fields, frag.Skill)
	}
}

func TestSplitNameAnchorsStripped(t *testing.T) {
	name, pron := SplitNameString(`TEMPO UP<br><span>＜テンポアップ＞</span>`, "", "")
	if name != "TEMPO UP" {
		t.Errorf("name = %q", name)
	}
	if pron != "テンポアップ" {
		t.Errorf("pronunciation = %q", pron)
	}
}

func TestSplitNameWithoutBreakKeepsDefaults(t *testing.T) {
	name, pron := SplitNameString(`ただの名前<span>＜よみ＞</span>`, "fallback", "none")
	if name != "fallback" || pron != "none" {
		t.Errorf("got %q / %q, want defaults", name, pron)
	}
}

func TestNameWithoutBreakFallsBackToText(t *testing.T) {
	frag, err := ParseString(`<p class="cardName">アークゲイン</p>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if frag.Header.Name != "アークゲイン" || frag.Header.Pronunciation != "" {
		t.Errorf("name = %q / %q", frag.Header.Name, frag.Header.Pronunciation)
	}
}

// TestSplitNameInlineMarkup: a name wrapped in inline markup is still the
// text before the break and never picks up the pronunciation.
func TestSplitNameInlineMarkup(t *testing.T) {
	frag, err := ParseString(`<p class="cardName"><b>名前</b><br><span>＜なまえ＞</span></p>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if frag.Header.Name != "名前" || frag.Header.Pronunciation != "なまえ" {
		t.Errorf("name = %q / %q", frag.Header.Name, frag.Header.Pronunciation)
	}

	name, _ := SplitNameString(`<b>蒼</b>の<i>月</i> <br><span>＜あおのつき＞</span>`, "", "")
	if name != "蒼の月" {
		t.Errorf("mixed name = %q", name)
	}
}
