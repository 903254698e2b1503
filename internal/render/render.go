// Package render writes cards and the feature index as labelled text, JSON
// or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/wixoss/internal/card"
	"github.com/peterkuimelis/wixoss/internal/config"
	"github.com/peterkuimelis/wixoss/internal/feature"
)

// Renderer writes values in one output format.
type Renderer struct {
	Format string // config.OutputText, OutputJSON or OutputYAML

	label *color.Color
	value *color.Color
	tag   *color.Color
	dim   *color.Color
}

// New returns a renderer for format. colorMode follows config.Color*;
// "auto" leaves the terminal detection of fatih/color in charge.
func New(format, colorMode string) *Renderer {
	r := &Renderer{
		Format: strings.ToLower(format),
		label:  color.New(color.FgCyan),
		value:  color.New(color.FgHiWhite),
		tag:    color.New(color.FgYellow),
		dim:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.label, r.value, r.tag, r.dim} {
		switch colorMode {
		case config.ColorAlways:
			c.EnableColor()
		case config.ColorNever:
			c.DisableColor()
		}
	}
	return r
}

// Card writes one card.
func (r *Renderer) Card(w io.Writer, c card.Card) error {
	switch r.Format {
	case config.OutputJSON:
		return writeJSON(w, c)
	case config.OutputYAML:
		return writeYAML(w, c)
	default:
		return r.cardText(w, c)
	}
}

// Cards writes a list of cards. Text output separates them with a blank line.
func (r *Renderer) Cards(w io.Writer, cs []card.Card) error {
	switch r.Format {
	case config.OutputJSON:
		if cs == nil {
			cs = []card.Card{}
		}
		return writeJSON(w, cs)
	case config.OutputYAML:
		return writeYAML(w, cs)
	}
	for i, c := range cs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.cardText(w, c); err != nil {
			return err
		}
	}
	return nil
}

// Index writes the feature index: name, label and bit value per feature.
func (r *Renderer) Index(w io.Writer) error {
	idx := feature.Index()
	switch r.Format {
	case config.OutputJSON:
		return writeJSON(w, idx)
	case config.OutputYAML:
		return writeYAML(w, idx)
	}

	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return idx[names[i]].B < idx[names[j]].B })

	for _, name := range names {
		e := idx[name]
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			r.label.Sprintf("%-16s", name), r.value.Sprint(e.Label), r.dim.Sprintf("%d", e.B)); err != nil {
			return err
		}
	}
	return nil
}

// Flags writes the union mask of a set in decimal and binary.
func (r *Renderer) Flags(w io.Writer, s feature.Set) error {
	out := struct {
		Features feature.Set `json:"features" yaml:"features"`
		Flags    uint64      `json:"flags" yaml:"flags"`
	}{s, s.Flags()}

	switch r.Format {
	case config.OutputJSON:
		return writeJSON(w, out)
	case config.OutputYAML:
		return writeYAML(w, out)
	}
	_, err := fmt.Fprintf(w, "%s %d\n%s %b\n%s %s\n",
		r.label.Sprint("dec:"), s.Flags(),
		r.label.Sprint("bin:"), s.Flags(),
		r.label.Sprint("tags:"), strings.Join(s.Names(), " "))
	return err
}

// --- Text ---

func (r *Renderer) cardText(w io.Writer, c card.Card) error {
	var b strings.Builder

	line := func(name, v string) {
		b.WriteString(r.label.Sprintf("%-8s", name))
		b.WriteString(r.value.Sprint(v))
		b.WriteByte('\n')
	}
	opt := func(name string, v card.OptionalString) {
		if s, ok := v.Get(); ok {
			line(name, s)
		}
	}

	line("No:", c.No)
	line("Name:", c.Name)
	if c.Pronunciation != "" {
		line("Read:", c.Pronunciation)
	}
	line("Kind:", c.Kind.Label())
	line("Color:", c.Color)
	opt("Class:", c.Class)
	opt("Level:", c.Level)
	opt("Cost:", c.Cost)
	opt("Limit:", c.Limit)
	opt("Power:", c.Power)
	opt("User:", c.User)
	if len(c.Timing) > 0 {
		line("Timing:", strings.Join(c.Timing, " / "))
	}
	opt("Story:", c.Story)
	line("Format:", c.Format.String())
	line("Rarity:", c.Rarity)
	line("Artist:", c.Artist)

	if !c.Features.Empty() {
		tags := make([]string, 0, c.Features.Len())
		for _, f := range c.Features.Features() {
			tags = append(tags, r.tag.Sprint(f.Label()))
		}
		b.WriteString(r.label.Sprintf("%-8s", "Tags:"))
		b.WriteString(strings.Join(tags, " "))
		b.WriteByte('\n')
	}

	for _, s := range c.Skills {
		b.WriteString(r.dim.Sprint("  | "))
		b.WriteString(s)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// --- Structured ---

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
