package card

import (
	"encoding/json"
	"strings"
)

// --- Enums ---

// Kind is one of the structurally distinct card families.
type Kind int

const (
	KindUnknown Kind = iota
	KindLrig
	KindLrigAssist
	KindArts
	KindArtsCraft
	KindSigni
	KindResona
	KindResonaCraft
	KindSpell
	KindPiece
	KindPieceRelay
)

var kinds = []Kind{
	KindLrig,
	KindLrigAssist,
	KindArts,
	KindArtsCraft,
	KindSigni,
	KindResona,
	KindResonaCraft,
	KindSpell,
	KindPiece,
	KindPieceRelay,
}

// Kinds returns every parseable kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Label returns the kind name as printed in the card-type field.
func (k Kind) Label() string {
	switch k {
	case KindLrig:
		return "ルリグ"
	case KindLrigAssist:
		return "ルリグ(アシスト)"
	case KindArts:
		return "アーツ"
	case KindArtsCraft:
		return "アーツ(クラフト)"
	case KindSigni:
		return "シグニ"
	case KindResona:
		return "レゾナ"
	case KindResonaCraft:
		return "レゾナ(クラフト)"
	case KindSpell:
		return "スペル"
	case KindPiece:
		return "ピース"
	case KindPieceRelay:
		return "ピース(リレー)"
	default:
		return "不明"
	}
}

// Slug returns the ASCII identifier used on command lines and in JSON.
func (k Kind) Slug() string {
	switch k {
	case KindLrig:
		return "lrig"
	case KindLrigAssist:
		return "lrig-assist"
	case KindArts:
		return "arts"
	case KindArtsCraft:
		return "arts-craft"
	case KindSigni:
		return "signi"
	case KindResona:
		return "resona"
	case KindResonaCraft:
		return "resona-craft"
	case KindSpell:
		return "spell"
	case KindPiece:
		return "piece"
	case KindPieceRelay:
		return "piece-relay"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	return k.Label()
}

// MarshalText encodes the kind as its slug.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Slug()), nil
}

// ParseKind accepts either a slug ("lrig-assist") or a printed label
// ("ルリグ(アシスト)"). Full-width parentheses in labels are accepted too.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("（", "(", "）", ")").Replace(s)
	for _, k := range kinds {
		if s == k.Slug() || s == k.Label() {
			return k, true
		}
	}
	return KindUnknown, false
}

// Format is the deck-construction format a card is legal in.
type Format int

const (
	FormatAllStar Format = iota
	FormatKeySelection
	FormatDivaSelection
)

func (f Format) String() string {
	switch f {
	case FormatKeySelection:
		return "key selection"
	case FormatDivaSelection:
		return "diva selection"
	default:
		return "all star"
	}
}

// MarshalText encodes the format by its display name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// --- Optional values ---

// OptionalString is a scalar that may be absent. The empty string and
// absence are the same state.
type OptionalString struct {
	value string
}

// Some returns s as an optional value; "" yields the absent value.
func Some(s string) OptionalString {
	return OptionalString{value: s}
}

// None returns the absent value.
func None() OptionalString {
	return OptionalString{}
}

// Get returns the value and whether it is present.
func (o OptionalString) Get() (string, bool) {
	return o.value, o.value != ""
}

// Valid reports whether a value is present.
func (o OptionalString) Valid() bool {
	return o.value != ""
}

// String renders an absent value as "".
func (o OptionalString) String() string {
	return o.value
}

// MarshalJSON encodes an absent value as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON accepts a string or null.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	var v *string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*o = None()
		return nil
	}
	*o = Some(*v)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (o OptionalString) MarshalYAML() (any, error) {
	if !o.Valid() {
		return nil, nil
	}
	return o.value, nil
}
