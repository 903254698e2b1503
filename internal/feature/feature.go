// Package feature defines the closed vocabulary of card ability tags and
// their stable bit encoding.
package feature

import "fmt"

// Feature is one ability keyword or trigger detected in a card's rule text.
type Feature int

const (
	DoubleCrush Feature = iota
	TripleCrush
	DiscardOpponent
	RandomDiscard
	Draw
	Assassin
	Freeze
	Drop
	OnDrop
	OnRefresh
	Lancer
	SLancer
	Penetrate
	NonAttackable
	Down
	Up
	Charge
	EnerAttack
	Trash
	PowerUp
	PowerDown
	Bounce
	DeckBounce
	Salvage
	LifeBurst
	Shadow
	Invulnerable
	OnSpell
	OnArts
	OnPiece
	OnBanish
	Guard
	OnGuard
	AttackNoEffect
	OnAttack
	OnAttackStart
	OnTouch
	Awake
	Exceed
	OnExceed
	AddLife
	OnBurst
	LifeTrash
	OnLifeCrush
	Position
	Vanilla
	Untouchable
	TopCheck
	BottomCheck
	Damage
	Craft
	Acce
	Barrier
	Charm
	Banish
	LrigTrash
	LifeCrush

	numFeatures
)

// definition is one row of the vocabulary table.
type definition struct {
	feature Feature
	name    string
	label   string
	bit     uint
}

// vocabulary is the authoritative tag table. Bit indices are part of the
// serialized format: never renumber an existing row, only append.
var vocabulary = [numFeatures]definition{
	{DoubleCrush, "DoubleCrush", "ダブルクラッシュ", 0},
	{TripleCrush, "TripleCrush", "トリプルクラッシュ", 1},
	{DiscardOpponent, "DiscardOpponent", "手札破壊", 2},
	{RandomDiscard, "RandomDiscard", "ランダム手札破壊", 3},
	{Draw, "Draw", "ドロー", 4},
	{Assassin, "Assassin", "アサシン", 5},
	{Freeze, "Freeze", "凍結", 6},
	{Drop, "Drop", "デッキドロップ", 7},
	{OnDrop, "OnDrop", "デッキドロップ時", 8},
	{OnRefresh, "OnRefresh", "リフレッシュ時", 9},
	{Lancer, "Lancer", "ランサー", 10},
	{SLancer, "SLancer", "Sランサー", 11},
	{Penetrate, "Penetrate", "ガード不可", 12},
	{NonAttackable, "NonAttackable", "アタック不可", 13},
	{Down, "Down", "ダウン", 14},
	{Up, "Up", "アップ", 15},
	{Charge, "Charge", "エナチャージ", 16},
	{EnerAttack, "EnerAttack", "エナ破壊", 17},
	{Trash, "Trash", "トラッシュ", 18},
	{PowerUp, "PowerUp", "パワーアップ", 19},
	{PowerDown, "PowerDown", "パワーダウン", 20},
	{Bounce, "Bounce", "バウンス", 21},
	{DeckBounce, "DeckBounce", "デッキバウンス", 22},
	{Salvage, "Salvage", "回収", 23},
	{LifeBurst, "LifeBurst", "ライフバースト", 24},
	{Shadow, "Shadow", "シャドウ", 25},
	{Invulnerable, "Invulnerable", "バニッシュされない", 26},
	{OnSpell, "OnSpell", "スペル使用時", 27},
	{OnArts, "OnArts", "アーツ使用時", 28},
	{OnPiece, "OnPiece", "ピース使用時", 29},
	{OnBanish, "OnBanish", "バニッシュした時", 30},
	{Guard, "Guard", "ガード", 31},
	{OnGuard, "OnGuard", "ガードした時", 32},
	{AttackNoEffect, "AttackNoEffect", "アタック無効", 33},
	{OnAttack, "OnAttack", "アタックした時", 34},
	{OnAttackStart, "OnAttackStart", "アタック開始時", 35},
	{OnTouch, "OnTouch", "対象になった時", 36},
	{Awake, "Awake", "覚醒", 37},
	{Exceed, "Exceed", "エクシード", 38},
	{OnExceed, "OnExceed", "エクシードした時", 39},
	{AddLife, "AddLife", "ライフクロス追加", 40},
	{OnBurst, "OnBurst", "ライフバースト発動時", 41},
	{LifeTrash, "LifeTrash", "ライフクロストラッシュ送り", 42},
	{OnLifeCrush, "OnLifeCrush", "クラッシュされた時", 43},
	{Position, "Position", "シグニゾーン移動", 44},
	{Vanilla, "Vanilla", "能力を持たない", 45},
	{Untouchable, "Untouchable", "効果を受けない", 46},
	{TopCheck, "TopCheck", "トップ確認", 47},
	{BottomCheck, "BottomCheck", "ボトム確認", 48},
	{Damage, "Damage", "ダメージ", 49},
	{Craft, "Craft", "クラフト", 50},
	{Acce, "Acce", "アクセ", 51},
	{Barrier, "Barrier", "バリア", 52},
	{Charm, "Charm", "チャーム", 53},
	{Banish, "Banish", "バニッシュ", 54},
	{LrigTrash, "LrigTrash", "ルリグトラッシュ", 55},
	{LifeCrush, "LifeCrush", "ライフクラッシュ", 56},
}

var byName = make(map[string]Feature, numFeatures)

func init() {
	seenBits := make(map[uint]Feature, numFeatures)
	for i, d := range vocabulary {
		if d.feature != Feature(i) {
			panic(fmt.Sprintf("feature: table row %d holds %q out of order", i, d.name))
		}
		if d.bit >= 64 {
			panic(fmt.Sprintf("feature: %s bit index %d does not fit in 64 bits", d.name, d.bit))
		}
		if prev, ok := seenBits[d.bit]; ok {
			panic(fmt.Sprintf("feature: %s and %s share bit index %d", prev, d.name, d.bit))
		}
		if _, ok := byName[d.name]; ok {
			panic(fmt.Sprintf("feature: duplicate name %q", d.name))
		}
		seenBits[d.bit] = d.feature
		byName[d.name] = d.feature
	}
}

// All returns every feature in table order.
func All() []Feature {
	out := make([]Feature, numFeatures)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// Lookup resolves a symbolic name such as "DoubleCrush".
func Lookup(name string) (Feature, bool) {
	f, ok := byName[name]
	return f, ok
}

func (f Feature) valid() bool {
	return f >= 0 && f < numFeatures
}

// Name returns the symbolic identifier used in serialized indexes.
func (f Feature) Name() string {
	if !f.valid() {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return vocabulary[f].name
}

// Label returns the Japanese display label.
func (f Feature) Label() string {
	if !f.valid() {
		return ""
	}
	return vocabulary[f].label
}

// BitIndex returns the stable bit position of f, or 64 for a value outside
// the vocabulary.
func (f Feature) BitIndex() uint {
	if !f.valid() {
		return 64
	}
	return vocabulary[f].bit
}

// Bit returns the single-bit flag value of f.
func (f Feature) Bit() uint64 {
	if !f.valid() {
		return 0
	}
	return 1 << vocabulary[f].bit
}

func (f Feature) String() string {
	return f.Label()
}
