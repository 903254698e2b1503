package card

import (
	"github.com/peterkuimelis/wixoss/internal/extract"
	"github.com/peterkuimelis/wixoss/internal/feature"
	"github.com/peterkuimelis/wixoss/internal/skill"
)

// Base holds the attributes every kind shares.
type Base struct {
	extract.Header
	Color    string
	Format   Format
	Story    OptionalString
	Skills   skill.Skills
	Features feature.Set
}

// Record is one parsed card: the shared base plus the payload of its kind.
// The feature set is fixed when the record is built.
type Record struct {
	Base
	Variant Variant
}

// Kind returns the kind of the payload.
func (r Record) Kind() Kind {
	if r.Variant == nil {
		return KindUnknown
	}
	return r.Variant.Kind()
}

// Variant is the kind-specific payload of a Record. Each implementation only
// carries the attributes that exist on its kind.
type Variant interface {
	Kind() Kind
	attributes() attributes
}

// attributes is the union of every variant attribute, used by Project.
type attributes struct {
	class  OptionalString
	level  OptionalString
	cost   OptionalString
	limit  OptionalString
	power  OptionalString
	user   OptionalString
	timing []string
}

// --- Lrig family ---

type Lrig struct {
	LrigType OptionalString
	Level    OptionalString
	GrowCost OptionalString
	Limit    OptionalString
}

func (Lrig) Kind() Kind { return KindLrig }

func (v Lrig) attributes() attributes {
	return attributes{user: v.LrigType, level: v.Level, cost: v.GrowCost, limit: v.Limit}
}

type LrigAssist struct {
	LrigType OptionalString
	Level    OptionalString
	GrowCost OptionalString
	Limit    OptionalString
	Timing   []string
}

func (LrigAssist) Kind() Kind { return KindLrigAssist }

func (v LrigAssist) attributes() attributes {
	return attributes{user: v.LrigType, level: v.Level, cost: v.GrowCost, limit: v.Limit, timing: v.Timing}
}

// --- Arts family ---

type Arts struct {
	LrigType OptionalString
	Cost     OptionalString
	Timing   []string
}

func (Arts) Kind() Kind { return KindArts }

func (v Arts) attributes() attributes {
	return attributes{user: v.LrigType, cost: v.Cost, timing: v.Timing}
}

type ArtsCraft struct {
	LrigType OptionalString
	Cost     OptionalString
	Timing   []string
}

func (ArtsCraft) Kind() Kind { return KindArtsCraft }

func (v ArtsCraft) attributes() attributes {
	return attributes{user: v.LrigType, cost: v.Cost, timing: v.Timing}
}

// --- Signi family ---

type Signi struct {
	Class       OptionalString
	Level       OptionalString
	Limit       OptionalString
	Power       OptionalString
	Restriction OptionalString
}

func (Signi) Kind() Kind { return KindSigni }

func (v Signi) attributes() attributes {
	return attributes{class: v.Class, level: v.Level, limit: v.Limit, power: v.Power, user: v.Restriction}
}

type Resona struct {
	Class       OptionalString
	Level       OptionalString
	Cost        OptionalString
	Power       OptionalString
	Restriction OptionalString
	Timing      []string
}

func (Resona) Kind() Kind { return KindResona }

func (v Resona) attributes() attributes {
	return attributes{class: v.Class, level: v.Level, cost: v.Cost, power: v.Power, user: v.Restriction, timing: v.Timing}
}

type ResonaCraft struct {
	Class       OptionalString
	Level       OptionalString
	Cost        OptionalString
	Power       OptionalString
	Restriction OptionalString
	Timing      []string
}

func (ResonaCraft) Kind() Kind { return KindResonaCraft }

func (v ResonaCraft) attributes() attributes {
	return attributes{class: v.Class, level: v.Level, cost: v.Cost, power: v.Power, user: v.Restriction, timing: v.Timing}
}

// --- Spell and piece family ---

type Spell struct {
	Cost        OptionalString
	Restriction OptionalString
}

func (Spell) Kind() Kind { return KindSpell }

func (v Spell) attributes() attributes {
	return attributes{cost: v.Cost, user: v.Restriction}
}

type Piece struct {
	Cost        OptionalString
	Restriction OptionalString
	Timing      []string
}

func (Piece) Kind() Kind { return KindPiece }

func (v Piece) attributes() attributes {
	return attributes{cost: v.Cost, user: v.Restriction, timing: v.Timing}
}

type PieceRelay struct {
	Cost        OptionalString
	Restriction OptionalString
	Timing      []string
}

func (PieceRelay) Kind() Kind { return KindPieceRelay }

func (v PieceRelay) attributes() attributes {
	return attributes{cost: v.Cost, user: v.Restriction, timing: v.Timing}
}
