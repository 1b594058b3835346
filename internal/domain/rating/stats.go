package rating

// Stats is the running score total of one operator. Operators without
// ratings have Count == 0 and a mean of 0.
type Stats struct {
	OperatorID string
	Sum        int64
	Count      int64
}

func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count)
}

// CompareMean returns -1, 0 or 1 as the mean of s is below, equal to or above
// the mean of other. The comparison is exact.
func (s Stats) CompareMean(other Stats) int {
	switch {
	case s.Count == 0 && other.Count == 0:
		return 0
	case s.Count == 0:
		return sign(-other.Sum)
	case other.Count == 0:
		return sign(s.Sum)
	}
	return sign(s.Sum*other.Count - other.Sum*s.Count)
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
