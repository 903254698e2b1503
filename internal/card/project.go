package card

import (
	"github.com/peterkuimelis/wixoss/internal/feature"
	"github.com/peterkuimelis/wixoss/internal/skill"
)

// Card is the uniform view of a record of any kind. Attributes the kind
// does not carry are absent, and Timing is empty rather than nil.
type Card struct {
	No            string         `json:"no" yaml:"no"`
	Name          string         `json:"name" yaml:"name"`
	Pronunciation string         `json:"pronunciation" yaml:"pronunciation"`
	Artist        string         `json:"artist" yaml:"artist"`
	Kind          Kind           `json:"kind" yaml:"kind"`
	Class         OptionalString `json:"class" yaml:"class"`
	Color         string         `json:"color" yaml:"color"`
	Level         OptionalString `json:"level" yaml:"level"`
	Cost          OptionalString `json:"cost" yaml:"cost"`
	Limit         OptionalString `json:"limit" yaml:"limit"`
	Power         OptionalString `json:"power" yaml:"power"`
	User          OptionalString `json:"user" yaml:"user"`
	Timing        []string       `json:"timing" yaml:"timing"`
	Story         OptionalString `json:"story" yaml:"story"`
	Format        Format         `json:"format" yaml:"format"`
	Rarity        string         `json:"rarity" yaml:"rarity"`
	Skills        skill.Skills   `json:"skills" yaml:"skills"`
	Features      feature.Set    `json:"features" yaml:"features"`
	FeatureFlags  uint64         `json:"feature_flags" yaml:"feature_flags"`
}

// Project flattens a record into a Card.
func Project(r Record) Card {
	var a attributes
	if r.Variant != nil {
		a = r.Variant.attributes()
	}

	timing := make([]string, len(a.timing))
	copy(timing, a.timing)
	skills := make(skill.Skills, len(r.Skills))
	copy(skills, r.Skills)

	return Card{
		No:            r.No,
		Name:          r.Name,
		Pronunciation: r.Pronunciation,
		Artist:        r.Artist,
		Kind:          r.Kind(),
		Class:         a.class,
		Color:         r.Color,
		Level:         a.level,
		Cost:          a.cost,
		Limit:         a.limit,
		Power:         a.power,
		User:          a.user,
		Timing:        timing,
		Story:         r.Story,
		Format:        r.Format,
		Rarity:        r.Rarity,
		Skills:        skills,
		Features:      r.Features,
		FeatureFlags:  r.Features.Flags(),
	}
}

// ParseCard is ParseAuto followed by Project.
func ParseCard(source string) (Card, error) {
	r, err := ParseAutoString(source)
	if err != nil {
		return Card{}, err
	}
	return Project(r), nil
}
