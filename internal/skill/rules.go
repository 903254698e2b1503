package skill

import (
	"regexp"

	"github.com/peterkuimelis/wixoss/internal/feature"
)

// Stage groups rules that must run before every rule of a later stage.
type Stage int

const (
	// StageBrackets strips the 『』 quotes attached to granted abilities.
	StageBrackets Stage = iota
	// StageReminders removes parenthetical reminder text, or collapses it to
	// a short marker, asserting the keyword it explains. Reminder text repeats
	// other keywords ("クラッシュする", "バニッシュ") so it has to be gone
	// before keyword detection looks at the line.
	StageReminders
	// StageMarkers rewrites icon names into canonical display words.
	StageMarkers
	// StageKeywords only detects; it never changes the line.
	StageKeywords
)

func (s Stage) String() string {
	switch s {
	case StageBrackets:
		return "brackets"
	case StageReminders:
		return "reminders"
	case StageMarkers:
		return "markers"
	case StageKeywords:
		return "keywords"
	default:
		return "unknown"
	}
}

// Rule is one row of the rewrite/tag table.
type Rule struct {
	Stage       Stage
	Pattern     *regexp.Regexp
	Rewrite     bool
	Replacement string
	Tags        feature.Set
}

func strip(stage Stage, pattern, replacement string, tags ...feature.Feature) Rule {
	return Rule{
		Stage:       stage,
		Pattern:     regexp.MustCompile(pattern),
		Rewrite:     true,
		Replacement: replacement,
		Tags:        feature.NewSet(tags...),
	}
}

func detect(pattern string, tags ...feature.Feature) Rule {
	return Rule{
		Stage:   StageKeywords,
		Pattern: regexp.MustCompile(pattern),
		Tags:    feature.NewSet(tags...),
	}
}

// rules is applied top to bottom on every line. Each rule sees the output of
// the rules above it.
var rules = []Rule{
	strip(StageBrackets, `『`, ""),
	strip(StageBrackets, `』`, ""),

	strip(StageReminders, `（対戦相手のライフクロスが１枚以上ある場合、ライフクロス１枚をクラッシュし、０枚の場合、あなたはゲームに勝利する）`, "", feature.Damage),
	strip(StageReminders, `（【ランサー】を持つシグニがバトルでシグニをバニッシュしたとき、対戦相手のライフクロスを１枚クラッシュする）`, "", feature.Lancer),
	strip(StageReminders, `（このクラフトは効果以外によっては場に出せない）`, "", feature.Craft),
	strip(StageReminders, `（【アクセ】はシグニ１体に１枚までしか付けられない。このクラフトが付いているシグニが場を離れるとこのクラフトはゲームから除外される）`, "", feature.Acce),
	strip(StageReminders, `（あなたのルリグの下からカードを合計４枚ルリグトラッシュに置く）`, "*EXCEED*", feature.Exceed),
	strip(StageReminders, `（【チーム】または【ドリームチーム】を持つピースはルリグデッキに合計１枚までしか入れられない）`, "*DREAM TEAM*"),
	strip(StageReminders, `（あなたの場にいるルリグ３体がこの条件を満たす）`, "*TEAM*"),
	strip(StageReminders, `（シグニは覚醒すると場にあるかぎり覚醒状態になる）`, "*AWAKE*", feature.Awake),
	strip(StageReminders, `（凍結されたシグニは次の自分のアップフェイズにアップしない）`, "*FROZEN*", feature.Freeze),
	strip(StageReminders, `（フェゾーネマジックは５種類ある）`, "*FESONE MAGIC*"),
	strip(StageReminders, `（【出】能力の：の左側はコストである。コストを支払わず発動しないことを選んでもよい）`, "*CIP COST*"),

	strip(StageMarkers, `ガードアイコン`, "ガード", feature.Guard),

	detect(`アクセ`, feature.Acce),
	detect(`捨てさせる。`, feature.DiscardOpponent),
	detect(`見ないで選び、捨てさせる。`, feature.RandomDiscard),
	detect(`ダウンする。`, feature.Down),
	detect(`アップする`, feature.Up),
	detect(`エナチャージ`, feature.Charge),
	detect(`残りを好きな順番でデッキの一番下に置く`, feature.BottomCheck),
	detect(`トラッシュに置`, feature.Trash),
	detect(`シグニバリア`, feature.Barrier),
	detect(`ルリグバリア`, feature.Barrier),
	detect(`がアタックしたとき`, feature.OnAttack),
	detect(`アサシン`, feature.Assassin),
	detect(`シャドウ`, feature.Shadow),
	detect(`チャーム`, feature.Charm),
	detect(`ダブルクラッシュ`, feature.DoubleCrush),
	detect(`トリプルクラッシュ`, feature.TripleCrush),
	detect(`Sランサー`, feature.SLancer),
	detect(`バニッシュ`, feature.Banish),
	detect(`凍結する`, feature.Freeze),
	detect(`手札に戻す`, feature.Bounce),
	detect(`手札に加え`, feature.Salvage),
	detect(`ライフクロス[（０-９）]+枚をトラッシュに置`, feature.LifeTrash),
	detect(`エナゾーンからカード[（０-９）]+枚を.+トラッシュに置`, feature.EnerAttack),
	detect(`ルリグトラッシュに置`, feature.LrigTrash),
	detect(`アタックフェイズ開始時`, feature.OnAttackStart),
	detect(`ライフクロスに加える`, feature.AddLife),
	detect(`ランサー`, feature.Lancer),
	detect(`ライフクロスを１枚クラッシュする`, feature.LifeCrush),
	detect(`対戦相手にダメージを与える。`, feature.Damage),
	detect(`ライフバースト`, feature.LifeBurst),
	detect(`カードを[0-9０-９]+枚引`, feature.Draw),
	detect(`パワーを＋[0-9０-９]+する`, feature.PowerUp),
	detect(`パワーを－[0-9０-９]+する`, feature.PowerDown),
}

// Rules returns a copy of the rule table in application order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
