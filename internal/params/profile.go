package params

import "math"

// SurveyPoint is one row of a ground survey: a chainage along the
// alignment and the reduced level of the ground at that chainage.
type SurveyPoint struct {
	Chainage float64 `yaml:"chainage"`
	Level    float64 `yaml:"level"`
}

// Profile is an ordered ground survey with strictly increasing chainages.
// It is optional input: an empty profile simply means no ground line is
// drawn. Immutable once built.
type Profile struct {
	points []SurveyPoint
}

// NewProfile builds a profile from raw survey rows. Rows that would break
// the strictly-increasing chainage order, or that carry non-finite
// values, are skipped rather than failing the request; the count of
// skipped rows is returned for the caller to report.
func NewProfile(rows []SurveyPoint) (Profile, int) {
	points := make([]SurveyPoint, 0, len(rows))
	skipped := 0
	for _, r := range rows {
		if !isFinite(r.Chainage) || !isFinite(r.Level) {
			skipped++
			continue
		}
		if len(points) > 0 && r.Chainage <= points[len(points)-1].Chainage {
			skipped++
			continue
		}
		points = append(points, r)
	}
	return Profile{points: points}, skipped
}

// Points returns the retained survey rows in chainage order. The returned
// slice is a copy; the profile itself stays immutable.
func (p Profile) Points() []SurveyPoint {
	out := make([]SurveyPoint, len(p.points))
	copy(out, p.points)
	return out
}

// Len reports the number of retained survey rows.
func (p Profile) Len() int {
	return len(p.points)
}

// Empty reports whether the profile has no usable rows.
func (p Profile) Empty() bool {
	return len(p.points) == 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
