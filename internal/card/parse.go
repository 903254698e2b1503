package card

import (
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/peterkuimelis/wixoss/internal/extract"
	"github.com/peterkuimelis/wixoss/internal/skill"
)

// Positions in the field table shared by every kind.
const (
	fieldKind   = 0
	fieldColor  = 2
	fieldFormat = 10
	fieldStory  = 11
)

var (
	// ErrFieldCountMismatch is matched by every *FieldCountError.
	ErrFieldCountMismatch = errors.New("field count mismatch")
	// ErrUnknownKind is returned when the card-type field names no known kind.
	ErrUnknownKind = errors.New("unknown card kind")
)

// FieldCountError reports a field table too short for the kind's layout.
type FieldCountError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("%s: %s needs %d fields, got %d", ErrFieldCountMismatch, e.Kind.Slug(), e.Want, e.Got)
}

// Is makes errors.Is(err, ErrFieldCountMismatch) hold.
func (e *FieldCountError) Is(target error) bool {
	return target == ErrFieldCountMismatch
}

// fields wraps the positional list once its length has been checked.
type fields extract.Fields

// opt returns field i as display text: entities decoded, breaks as newlines.
func (f fields) opt(i int) OptionalString {
	return Some(displayText(breakPattern.ReplaceAllString(strings.ReplaceAll(f[i], "\n", ""), "\n")))
}

// flat returns field i with its line breaks removed.
func (f fields) flat(i int) OptionalString {
	return Some(displayText(flattenBreak(f[i])))
}

// list returns field i split into one entry per line.
func (f fields) list(i int) []string {
	out := splitByBreak(f[i])
	for j, p := range out {
		out[j] = displayText(p)
	}
	return out
}

func displayText(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

// layout maps a kind to its positional attributes.
type layout struct {
	// maxIndex is the highest field index build reads.
	maxIndex int
	build    func(f fields) Variant
}

var layouts = map[Kind]layout{
	KindLrig: {fieldStory, func(f fields) Variant {
		return Lrig{LrigType: f.opt(1), Level: f.opt(3), GrowCost: f.flat(4), Limit: f.opt(6)}
	}},
	KindLrigAssist: {fieldStory, func(f fields) Variant {
		return LrigAssist{LrigType: f.opt(1), Level: f.opt(3), GrowCost: f.flat(4), Limit: f.opt(6), Timing: f.list(9)}
	}},
	KindArts: {fieldStory, func(f fields) Variant {
		return Arts{LrigType: f.opt(1), Cost: f.flat(5), Timing: f.list(9)}
	}},
	KindArtsCraft: {fieldStory, func(f fields) Variant {
		return ArtsCraft{LrigType: f.opt(1), Cost: f.flat(5), Timing: f.list(9)}
	}},
	KindSigni: {fieldStory, func(f fields) Variant {
		return Signi{Class: f.opt(1), Level: f.opt(3), Limit: f.opt(6), Power: f.opt(7), Restriction: f.opt(8)}
	}},
	KindResona: {fieldStory, func(f fields) Variant {
		return Resona{Class: f.opt(1), Level: f.opt(3), Cost: f.flat(5), Power: f.opt(7), Restriction: f.opt(8), Timing: f.list(9)}
	}},
	KindResonaCraft: {fieldStory, func(f fields) Variant {
		return ResonaCraft{Class: f.opt(1), Level: f.opt(3), Cost: f.flat(5), Power: f.opt(7), Restriction: f.opt(8), Timing: f.list(9)}
	}},
	KindSpell: {fieldStory, func(f fields) Variant {
		return Spell{Cost: f.flat(5), Restriction: f.opt(8)}
	}},
	KindPiece: {fieldStory, func(f fields) Variant {
		return Piece{Cost: f.flat(5), Restriction: f.opt(8), Timing: f.list(9)}
	}},
	KindPieceRelay: {fieldStory, func(f fields) Variant {
		return PieceRelay{Cost: f.flat(5), Restriction: f.opt(8), Timing: f.list(9)}
	}},
}

// FromFragment builds a record of the given kind from extracted parts.
func FromFragment(kind Kind, frag extract.Fragment) (Record, error) {
	l, ok := layouts[kind]
	if !ok {
		return Record{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if len(frag.Fields) <= l.maxIndex {
		return Record{}, &FieldCountError{Kind: kind, Want: l.maxIndex + 1, Got: len(frag.Fields)}
	}

	f := fields(frag.Fields)
	sk := skill.Parse(frag.Skill)

	return Record{
		Base: Base{
			Header:   frag.Header,
			Color:    strings.TrimSpace(f[fieldColor]),
			Format:   parseFormat(f[fieldFormat]),
			Story:    parseStory(f[fieldStory]),
			Skills:   sk.Skills,
			Features: sk.Features,
		},
		Variant: l.build(f),
	}, nil
}

// DetectKind reads the kind from the card-type field.
func DetectKind(fs extract.Fields) (Kind, error) {
	if len(fs) <= fieldKind {
		return KindUnknown, &FieldCountError{Kind: KindUnknown, Want: fieldKind + 1, Got: len(fs)}
	}
	label := strings.TrimSpace(fs[fieldKind])
	k, ok := ParseKind(label)
	if !ok {
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, label)
	}
	return k, nil
}

// Parse reads one card fragment of a known kind.
func Parse(kind Kind, r io.Reader) (Record, error) {
	frag, err := extract.Parse(r)
	if err != nil {
		return Record{}, err
	}
	return FromFragment(kind, frag)
}

// ParseString is Parse over an in-memory fragment.
func ParseString(kind Kind, source string) (Record, error) {
	return Parse(kind, strings.NewReader(source))
}

// ParseAuto reads one card fragment, taking the kind from its field table.
func ParseAuto(r io.Reader) (Record, error) {
	frag, err := extract.Parse(r)
	if err != nil {
		return Record{}, err
	}
	kind, err := DetectKind(frag.Fields)
	if err != nil {
		return Record{}, fmt.Errorf("card %s: %w", frag.Header.No, err)
	}
	return FromFragment(kind, frag)
}

// ParseAutoString is ParseAuto over an in-memory fragment.
func ParseAutoString(source string) (Record, error) {
	return ParseAuto(strings.NewReader(source))
}

// ParseAs reads one fragment as kind, or detects the kind when it is
// KindUnknown.
func ParseAs(kind Kind, source string) (Record, error) {
	if kind == KindUnknown {
		return ParseAutoString(source)
	}
	return ParseString(kind, source)
}

// --- Field transforms ---

var (
	breakPattern = regexp.MustCompile(`<br[^>]*>`)
	storyMarker  = `class="cardData_story_img"`
)

// flattenBreak joins a visually wrapped value back into one run.
func flattenBreak(s string) string {
	return breakPattern.ReplaceAllString(strings.ReplaceAll(s, "\n", ""), "")
}

// splitByBreak returns one entry per break-delimited phrase.
func splitByBreak(s string) []string {
	parts := breakPattern.Split(strings.ReplaceAll(s, "\n", ""), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseStory yields the story label when the story image marker is present.
func parseStory(s string) OptionalString {
	if strings.Contains(strings.TrimSpace(s), storyMarker) {
		return Some("ディソナ")
	}
	return None()
}

func parseFormat(s string) Format {
	switch {
	case strings.Contains(s, "ディーヴァアイコン"):
		return FormatDivaSelection
	case strings.Contains(s, "キーアイコン"):
		return FormatKeySelection
	default:
		return FormatAllStar
	}
}
