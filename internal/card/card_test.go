package card

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/peterkuimelis/wixoss/internal/extract"
	"github.com/peterkuimelis/wixoss/internal/feature"
)

// TestSigniAttributes: level, limit and power come from their positions and
// no story marker means no story.
func TestSigniAttributes(t *testing.T) {
	fs := twelveFields(KindSigni)
	fs[3] = "3"
	fs[6] = "2"
	fs[7] = "5000"

	rec, err := ParseString(KindSigni, fixture{no: "WXDi-P01-001", name: "テスト", fields: fs}.html())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	signi, ok := rec.Variant.(Signi)
	if !ok {
		t.Fatalf("variant = %T, want Signi", rec.Variant)
	}
	if signi.Level.String() != "3" || signi.Limit.String() != "2" || signi.Power.String() != "5000" {
		t.Errorf("level/limit/power = %q/%q/%q", signi.Level, signi.Limit, signi.Power)
	}
	if rec.Story.Valid() {
		t.Errorf("story = %q, want absent", rec.Story)
	}
}

// TestSpellSample parses a fragment saved from the card database.
func TestSpellSample(t *testing.T) {
	rec, err := ParseAutoString(readTestdata(t, "spell_tempo_up.html"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if rec.Kind() != KindSpell {
		t.Fatalf("kind = %v, want spell", rec.Kind())
	}
	if rec.No != "WXDi-P14-061" || rec.Name != "TEMPO　UP" || rec.Pronunciation != "テンポアップ" {
		t.Errorf("header = %+v", rec.Header)
	}
	if rec.Artist != "茶ちえ" || rec.Rarity != "C" {
		t.Errorf("artist/rarity = %q/%q", rec.Artist, rec.Rarity)
	}
	if rec.Color != "青" {
		t.Errorf("color = %q", rec.Color)
	}
	if rec.Format != FormatDivaSelection {
		t.Errorf("format = %v, want diva selection", rec.Format)
	}
	if rec.Story.Valid() {
		t.Errorf("story = %q, want absent", rec.Story)
	}

	spell := rec.Variant.(Spell)
	if spell.Cost.String() != "《青》×１" {
		t.Errorf("cost = %q", spell.Cost)
	}
	if spell.Restriction.String() != "-" {
		t.Errorf("restriction = %q", spell.Restriction)
	}

	if len(rec.Skills) != 2 {
		t.Fatalf("skills = %q, want 2 lines", rec.Skills)
	}
	if !strings.Contains(rec.Skills[0], "*AWAKE*") || strings.Contains(rec.Skills[0], "（シグニは覚醒") {
		t.Errorf("awake reminder not replaced: %q", rec.Skills[0])
	}
	if !strings.HasPrefix(rec.Skills[1], "ライフバースト") {
		t.Errorf("burst icon not replaced: %q", rec.Skills[1])
	}

	want := feature.NewSet(
		feature.OnAttack,
		feature.Guard,
		feature.DiscardOpponent,
		feature.Awake,
		feature.LifeBurst,
		feature.Down,
	)
	if rec.Features != want {
		t.Errorf("features = %v\nwant       %v", rec.Features.Names(), want.Names())
	}
}

// TestShortFieldListIsRecoverable: a truncated table is an error for the
// card, not a panic.
func TestShortFieldListIsRecoverable(t *testing.T) {
	frag := extract.Fragment{Fields: extract.Fields{"シグニ", "精像：天使", "白"}}

	_, err := FromFragment(KindSigni, frag)
	if !errors.Is(err, ErrFieldCountMismatch) {
		t.Fatalf("err = %v, want field count mismatch", err)
	}

	var fce *FieldCountError
	if !errors.As(err, &fce) {
		t.Fatalf("err is %T, want *FieldCountError", err)
	}
	if fce.Kind != KindSigni || fce.Got != 3 || fce.Want != 12 {
		t.Errorf("error = %+v", fce)
	}
}

func TestDetectKindUnknownLabel(t *testing.T) {
	_, err := DetectKind(extract.Fields{"キー"})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want unknown kind", err)
	}

	_, err = DetectKind(nil)
	if !errors.Is(err, ErrFieldCountMismatch) {
		t.Errorf("empty table: err = %v, want field count mismatch", err)
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"signi", KindSigni},
		{"ルリグ(アシスト)", KindLrigAssist},
		{"ルリグ（アシスト）", KindLrigAssist},
		{" ピース(リレー) ", KindPieceRelay},
		{"resona-craft", KindResonaCraft},
		{"アーツ(クラフト)", KindArtsCraft},
	}
	for _, tc := range cases {
		got, ok := ParseKind(tc.in)
		if !ok || got != tc.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tc.in, got, ok, tc.want)
		}
	}
	if _, ok := ParseKind("token"); ok {
		t.Error("token should not parse")
	}
}

// TestEveryKindReadsItsLayout builds a full table for each kind and checks
// that only the attributes of that kind end up in the projection.
func TestEveryKindReadsItsLayout(t *testing.T) {
	type want struct {
		class, level, cost, limit, power, user string
		timing                                 int
	}
	cases := map[Kind]want{
		KindLrig:        {level: "f3", cost: "f4", limit: "f6", user: "f1"},
		KindLrigAssist:  {level: "f3", cost: "f4", limit: "f6", user: "f1", timing: 1},
		KindArts:        {cost: "f5", user: "f1", timing: 1},
		KindArtsCraft:   {cost: "f5", user: "f1", timing: 1},
		KindSigni:       {class: "f1", level: "f3", limit: "f6", power: "f7", user: "f8"},
		KindResona:      {class: "f1", level: "f3", cost: "f5", power: "f7", user: "f8", timing: 1},
		KindResonaCraft: {class: "f1", level: "f3", cost: "f5", power: "f7", user: "f8", timing: 1},
		KindSpell:       {cost: "f5", user: "f8"},
		KindPiece:       {cost: "f5", user: "f8", timing: 1},
		KindPieceRelay:  {cost: "f5", user: "f8", timing: 1},
	}

	for _, kind := range Kinds() {
		w, ok := cases[kind]
		if !ok {
			t.Fatalf("no case for %v", kind)
		}
		t.Run(kind.Slug(), func(t *testing.T) {
			src := fixture{no: "X-001", name: "名", fields: twelveFields(kind)}.html()
			c, err := ParseCard(src)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if c.Kind != kind {
				t.Fatalf("kind = %v", c.Kind)
			}
			got := want{
				class: c.Class.String(),
				level: c.Level.String(),
				cost:  c.Cost.String(),
				limit: c.Limit.String(),
				power: c.Power.String(),
				user:  c.User.String(),
			}
			got.timing = len(c.Timing)
			if got != w {
				t.Errorf("attributes = %+v\nwant         %+v", got, w)
			}
			if c.Color != "白" || c.Format != FormatAllStar {
				t.Errorf("shared = %q %v", c.Color, c.Format)
			}
			if c.Timing == nil {
				t.Error("timing should be empty, not nil")
			}
		})
	}
}

func TestCostFlattensBreaks(t *testing.T) {
	fs := twelveFields(KindArts)
	fs[5] = "《白》×１<br>\n《無》×２"
	fs[9] = "メインフェイズ<br/>アタックフェイズ<br /> "

	rec, err := ParseString(KindArts, fixture{no: "X-002", name: "名", fields: fs}.html())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	arts := rec.Variant.(Arts)
	if arts.Cost.String() != "《白》×１《無》×２" {
		t.Errorf("cost = %q", arts.Cost)
	}
	if len(arts.Timing) != 2 || arts.Timing[0] != "メインフェイズ" || arts.Timing[1] != "アタックフェイズ" {
		t.Errorf("timing = %q", arts.Timing)
	}
}

func TestStoryAndFormatMarkers(t *testing.T) {
	fs := twelveFields(KindSigni)
	fs[fieldFormat] = `<img alt="《キーアイコン》">`
	fs[fieldStory] = ` <img class="cardData_story_img" src="dissona.png"> `

	rec, err := ParseString(KindSigni, fixture{no: "X-003", name: "名", fields: fs}.html())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.Format != FormatKeySelection {
		t.Errorf("format = %v, want key selection", rec.Format)
	}
	if got, ok := rec.Story.Get(); !ok || got != "ディソナ" {
		t.Errorf("story = %q, %v", got, ok)
	}
}

// TestProjectionAbsentFields: a spell has no class, level, limit or power
// and those encode as null.
func TestProjectionAbsentFields(t *testing.T) {
	c, err := ParseCard(readTestdata(t, "spell_tempo_up.html"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, k := range []string{"class", "level", "limit", "power", "story"} {
		if m[k] != nil {
			t.Errorf("%s = %v, want null", k, m[k])
		}
	}
	if m["kind"] != "spell" || m["format"] != "diva selection" {
		t.Errorf("kind/format = %v/%v", m["kind"], m["format"])
	}
	if tm, ok := m["timing"].([]any); !ok || len(tm) != 0 {
		t.Errorf("timing = %v, want []", m["timing"])
	}
	if uint64(m["feature_flags"].(float64)) != c.Features.Flags() {
		t.Errorf("feature_flags = %v", m["feature_flags"])
	}
}

func TestOptionalStringJSON(t *testing.T) {
	for _, in := range []OptionalString{Some("x"), None(), Some("")} {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var out OptionalString
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if out != in {
			t.Errorf("%s decoded to %q, want %q", data, out, in)
		}
	}
	if Some("") != None() {
		t.Error("empty and absent must be the same state")
	}
}

// TestProjectCopiesSlices: the projection does not alias the record.
func TestProjectCopiesSlices(t *testing.T) {
	rec := Record{
		Base:    Base{Skills: []string{"a"}},
		Variant: Piece{Timing: []string{"メインフェイズ"}},
	}
	c := Project(rec)
	c.Timing[0] = "changed"
	c.Skills[0] = "changed"
	if rec.Variant.(Piece).Timing[0] != "メインフェイズ" || rec.Skills[0] != "a" {
		t.Error("projection aliases record slices")
	}
}

// TestScalarFieldsAreDisplayText: entities are decoded and breaks inside a
// scalar become newlines.
func TestScalarFieldsAreDisplayText(t *testing.T) {
	fs := twelveFields(KindSigni)
	fs[1] = "精械&amp;電機"
	fs[8] = "タマ<br>ウリス"

	rec, err := ParseString(KindSigni, fixture{no: "X-004", name: "名", fields: fs}.html())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	signi := rec.Variant.(Signi)
	if signi.Class.String() != "精械&電機" {
		t.Errorf("class = %q", signi.Class)
	}
	if signi.Restriction.String() != "タマ\nウリス" {
		t.Errorf("restriction = %q", signi.Restriction)
	}
}

func TestParseAs(t *testing.T) {
	src := fixture{no: "X-005", name: "名", fields: twelveFields(KindSigni)}.html()

	rec, err := ParseAs(KindUnknown, src)
	if err != nil || rec.Kind() != KindSigni {
		t.Errorf("detected = %v, %v", rec.Kind(), err)
	}
	rec, err = ParseAs(KindSpell, src)
	if err != nil || rec.Kind() != KindSpell {
		t.Errorf("forced = %v, %v", rec.Kind(), err)
	}
}
