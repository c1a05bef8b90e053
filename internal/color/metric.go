package color

import "fmt"

// Metric selects the space in which palette distances are measured.
type Metric int

const (
	MetricRGB Metric = iota
	MetricLab
)

// ParseMetric converts a metric name to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "rgb", "":
		return MetricRGB, nil
	case "lab":
		return MetricLab, nil
	default:
		return 0, fmt.Errorf("unknown color metric: %q", s)
	}
}

func (m Metric) String() string {
	switch m {
	case MetricRGB:
		return "rgb"
	case MetricLab:
		return "lab"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}
