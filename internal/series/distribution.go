package series

import (
	"math"
	"sort"
	"strconv"

	"github.com/godilite/talentbridge-stats/internal/stats"
)

// DualExceptionalTopN bounds the dual-exceptional disability breakdown. The
// disabled breakdown is intentionally not truncated.
const DualExceptionalTopN = 10

// Point is one chart-ready entry.
type Point struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
	Display    string  `json:"display"`
	Color      string  `json:"color,omitempty"`
}

// Labeler maps an upstream key to a display label.
type Labeler func(key string) string

// Percent returns value/total*100, or 0 when total is zero.
func Percent(value, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(value) / float64(total) * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// FormatPercent renders p with exactly one decimal digit and a percent sign.
// Ties round away from zero, so 1.25 reads 1.3%.
func FormatPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	return strconv.FormatFloat(math.Round(p*10)/10, 'f', 1, 64) + "%"
}

// Distribution converts a label→count mapping into points in upstream order,
// with each value's share of the mapping's own sum.
func Distribution(counts stats.Counts, label Labeler, palette []string) []Point {
	total := counts.Total()
	out := make([]Point, 0, len(counts))
	for i, c := range counts {
		l := c.Key
		if label != nil {
			l = label(c.Key)
		}
		out = append(out, newPoint(c.Key, l, c.Value, total, colorAt(palette, i)))
	}
	return out
}

// DisabilityBreakdown lists every disability type among disabled
// participants, sorted by count descending. Ties keep upstream order.
func DisabilityBreakdown(counts stats.Counts, tr Translator, palette []string) []Point {
	return breakdown(counts, tr, palette, 0)
}

// DualExceptionalBreakdown is DisabilityBreakdown truncated to the
// DualExceptionalTopN largest entries.
func DualExceptionalBreakdown(counts stats.Counts, tr Translator, palette []string) []Point {
	return breakdown(counts, tr, palette, DualExceptionalTopN)
}

func breakdown(counts stats.Counts, tr Translator, palette []string, limit int) []Point {
	points := Distribution(counts, func(key string) string {
		return DisabilityLabel(tr, key)
	}, nil)

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})

	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	for i := range points {
		points[i].Color = colorAt(palette, i)
	}
	return points
}

func newPoint(key, label string, value, total int, color string) Point {
	p := Percent(value, total)
	return Point{
		Key:        key,
		Label:      label,
		Value:      value,
		Percentage: p,
		Display:    FormatPercent(p),
		Color:      color,
	}
}

func fixedPoints(keys, labels []string, values []int, colors []string) []Point {
	total := 0
	for _, v := range values {
		total += v
	}
	out := make([]Point, len(keys))
	for i := range keys {
		out[i] = newPoint(keys[i], labels[i], values[i], total, colors[i])
	}
	return out
}
