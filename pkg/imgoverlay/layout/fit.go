package layout

import (
	"fmt"
	"strings"

	"github.com/shinya/imgoverlay/pkg/imgoverlay/font"
)

// Metrics は階級ごとのテキスト描画幅を測る能力を表します
// 具体的なレンダリング面に依存せずフィット処理を検証できるよう、
// 測定はこのインタフェース経由で行います
type Metrics interface {
	Measure(text string, tier font.Tier) (int, error)
}

// SplitLineGap は2行分割時の2行目の縦オフセット（ピクセル）です
const SplitLineGap = 60

// Fit はテキストの最終的な階級・行分割・座標を決定します
//
// 要求された階級での描画幅が利用可能幅（キャンバス幅−両側マージン）に
// 収まる場合はその階級の1行となります。あふれる場合:
//   - splitAt が含まれていれば、最初の出現位置で2行に分割し、
//     1段階小さい階級で両行を独立に中央揃えします
//   - 分割できなければ1段階だけ小さい階級に落として測り直します
//
// 縮小は1段階のみで、それでも収まらない場合は Overflow を立てて
// そのまま返します（あふれたまま描画されます）
func Fit(text string, tier font.Tier, set *font.TierSet, cv Canvas, margin, y int, splitAt string, m Metrics) (Placement, error) {
	if !set.Contains(tier) {
		return Placement{}, fmt.Errorf("unknown font tier: %q", tier)
	}

	avail := cv.Width - 2*margin

	width, err := m.Measure(text, tier)
	if err != nil {
		return Placement{}, err
	}

	if width <= avail {
		return Placement{
			Tier:  tier,
			Lines: []Line{centered(text, width, cv, y)},
		}, nil
	}

	// 分割点があれば2行に分割し、1段階小さい階級で配置
	if splitAt != "" && strings.Contains(text, splitAt) {
		parts := strings.SplitN(text, splitAt, 2)
		lower, ok := set.Smaller(tier)
		if !ok {
			lower = tier
		}

		w1, err := m.Measure(parts[0], lower)
		if err != nil {
			return Placement{}, err
		}
		w2, err := m.Measure(parts[1], lower)
		if err != nil {
			return Placement{}, err
		}

		return Placement{
			Tier: lower,
			Lines: []Line{
				centered(parts[0], w1, cv, y),
				centered(parts[1], w2, cv, y+SplitLineGap),
			},
			Overflow: w1 > avail || w2 > avail,
		}, nil
	}

	// 1段階だけ小さい階級へ
	lower, ok := set.Smaller(tier)
	if !ok {
		// 既に最小の階級: あふれたまま配置
		return Placement{
			Tier:     tier,
			Lines:    []Line{centered(text, width, cv, y)},
			Overflow: true,
		}, nil
	}

	width, err = m.Measure(text, lower)
	if err != nil {
		return Placement{}, err
	}

	return Placement{
		Tier:     lower,
		Lines:    []Line{centered(text, width, cv, y)},
		Overflow: width > avail,
	}, nil
}

// FixedLine は固定座標に配置した1行のみの配置結果を返します
// 四隅のバッジなど、中央揃えを行わない要素に使用します
func FixedLine(text string, tier font.Tier, x, y, width int) Placement {
	return Placement{
		Tier:  tier,
		Lines: []Line{{Text: text, X: x, Y: y, Width: width}},
	}
}

// centered は水平中央揃えした行を返します
func centered(text string, width int, cv Canvas, y int) Line {
	return Line{
		Text:  text,
		X:     (cv.Width - width) / 2,
		Y:     y,
		Width: width,
	}
}
