package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/wixoss/internal/card"
	"github.com/peterkuimelis/wixoss/internal/config"
	"github.com/peterkuimelis/wixoss/internal/feature"
	"github.com/peterkuimelis/wixoss/internal/skill"
)

func sampleCard() card.Card {
	return card.Card{
		No:       "WXDi-P14-061",
		Name:     "TEMPO　UP",
		Kind:     card.KindSpell,
		Color:    "青",
		Cost:     card.Some("《青》×１"),
		Timing:   []string{},
		Format:   card.FormatDivaSelection,
		Rarity:   "C",
		Artist:   "茶ちえ",
		Skills:   skill.Skills{"ライフバースト：対戦相手のシグニを２体まで対象とし、それらをダウンする。"},
		Features: feature.NewSet(feature.LifeBurst, feature.Down),
	}
}

func TestCardText(t *testing.T) {
	var buf bytes.Buffer
	if err := New(config.OutputText, config.ColorNever).Card(&buf, sampleCard()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"WXDi-P14-061", "スペル", "《青》×１", "diva selection", "ダウン", "  | ライフバースト"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Absent attributes are not printed.
	if strings.Contains(out, "Power:") || strings.Contains(out, "Level:") {
		t.Errorf("absent attributes rendered:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color escapes with color disabled")
	}
}

func TestCardJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := New(config.OutputJSON, config.ColorNever).Card(&buf, sampleCard()); err != nil {
		t.Fatalf("render: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, buf.String())
	}
	if m["cost"] != "《青》×１" || m["power"] != nil {
		t.Errorf("cost/power = %v/%v", m["cost"], m["power"])
	}
	tags, _ := m["features"].([]any)
	if len(tags) != 2 {
		t.Errorf("features = %v", m["features"])
	}
}

func TestCardYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := New(config.OutputYAML, config.ColorNever).Card(&buf, sampleCard()); err != nil {
		t.Fatalf("render: %v", err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if m["kind"] != "spell" || m["format"] != "diva selection" {
		t.Errorf("kind/format = %v/%v", m["kind"], m["format"])
	}
	if v, ok := m["level"]; !ok || v != nil {
		t.Errorf("level = %v (present %v), want null", v, ok)
	}
}

func TestIndexTextOrderedByBit(t *testing.T) {
	var buf bytes.Buffer
	if err := New(config.OutputText, config.ColorNever).Index(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(feature.All()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(feature.All()))
	}
	if !strings.HasPrefix(lines[0], "DoubleCrush") || !strings.HasSuffix(lines[0], " 1") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestFlagsText(t *testing.T) {
	var buf bytes.Buffer
	s := feature.NewSet(feature.DoubleCrush, feature.DiscardOpponent)
	if err := New(config.OutputText, config.ColorNever).Flags(&buf, s); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "dec: 5") || !strings.Contains(out, "bin: 101") {
		t.Errorf("output = %q", out)
	}
}

func TestCardsJSONEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := New(config.OutputJSON, config.ColorNever).Cards(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("output = %q", buf.String())
	}
}
