package palette

import (
	"math"

	"github.com/davesmith10/RGBtoIndexed/internal/color"
)

// Closest returns the position and entry of the palette color nearest to c
// under the squared Euclidean distance in the space selected by m. The scan
// only replaces the current best on a strictly smaller distance, so the
// earliest entry wins ties.
func (idx *Index) Closest(c color.FRGB, m color.Metric) (int, Entry) {
	best := 0
	bestDist := math.Inf(1)

	switch m {
	case color.MetricLab:
		lab := color.RGBToLab(c)
		for i, e := range idx.entries {
			if d := color.LabDistanceSq(lab, e.Lab); d < bestDist {
				best, bestDist = i, d
			}
		}
	default:
		for i, e := range idx.entries {
			if d := color.DistanceSq(c, e.RGB.Float()); d < bestDist {
				best, bestDist = i, d
			}
		}
	}

	return best, idx.entries[best]
}
