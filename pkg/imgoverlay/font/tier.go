package font

import "fmt"

// Tier はフォントサイズの名前付き階級を表します
type Tier string

// 組み込みレイアウトで使用する階級名
const (
	TierTiny   Tier = "tiny"
	TierSmall  Tier = "small"
	TierMedium Tier = "medium"
	TierLarge  Tier = "large"
	TierHuge   Tier = "huge"

	TierCaption  Tier = "caption"
	TierAccent   Tier = "accent"
	TierSubtitle Tier = "subtitle"
	TierTitle    Tier = "title"
)

// TierSet は階級名とポイントサイズの対応を表します（小さい順に保持）
type TierSet struct {
	order []Tier
	sizes map[Tier]float64
}

// NewTierSet は新しい階級セットを作成します
// tiers は小さい順に並んでいる必要があります
func NewTierSet(tiers []Tier, sizes map[Tier]float64) (*TierSet, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("tier set cannot be empty")
	}

	for _, t := range tiers {
		if _, ok := sizes[t]; !ok {
			return nil, fmt.Errorf("missing size for tier %q", t)
		}
	}

	// 順序の検証（小さい順）
	for i := 1; i < len(tiers); i++ {
		if sizes[tiers[i-1]] >= sizes[tiers[i]] {
			return nil, fmt.Errorf("tiers must be ordered by ascending size: %q >= %q", tiers[i-1], tiers[i])
		}
	}

	order := make([]Tier, len(tiers))
	copy(order, tiers)

	return &TierSet{order: order, sizes: sizes}, nil
}

// Size は階級のポイントサイズを返します
func (s *TierSet) Size(t Tier) (float64, bool) {
	size, ok := s.sizes[t]
	return size, ok
}

// Smaller は1段階だけ小さい階級を返します
// 最小の階級、または未知の階級の場合は false を返します
func (s *TierSet) Smaller(t Tier) (Tier, bool) {
	for i, tier := range s.order {
		if tier == t {
			if i == 0 {
				return "", false
			}
			return s.order[i-1], true
		}
	}
	return "", false
}

// Contains は階級がセットに含まれるかを返します
func (s *TierSet) Contains(t Tier) bool {
	_, ok := s.sizes[t]
	return ok
}

// Tiers は階級名の一覧を小さい順に返します
func (s *TierSet) Tiers() []Tier {
	tiers := make([]Tier, len(s.order))
	copy(tiers, s.order)
	return tiers
}

// RetroTiers はレトロレイアウト用の階級セットを返します
func RetroTiers() *TierSet {
	set, _ := NewTierSet(
		[]Tier{TierTiny, TierSmall, TierMedium, TierLarge, TierHuge},
		map[Tier]float64{
			TierTiny:   20,
			TierSmall:  28,
			TierMedium: 36,
			TierLarge:  54,
			TierHuge:   72,
		},
	)
	return set
}

// ArticleTiers は記事ヘッダレイアウト用の階級セットを返します
func ArticleTiers() *TierSet {
	set, _ := NewTierSet(
		[]Tier{TierCaption, TierAccent, TierSubtitle, TierTitle},
		map[Tier]float64{
			TierCaption:  16,
			TierAccent:   22,
			TierSubtitle: 28,
			TierTitle:    56,
		},
	)
	return set
}
