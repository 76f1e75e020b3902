package reports

import (
	"math"
	"strings"

	errs "github.com/saferoute/saferoute-api/pkg/errors"
)

func validLongitude(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -180 && v <= 180
}

func validLatitude(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -90 && v <= 90
}

// Validate checks every domain invariant of a submission and reports the first
// violated field. Comments are required because every submission passes the
// moderation gate, which compares them against the category.
func (r *CreateReportRequest) Validate() error {
	if !IsValidCategory(r.Category) {
		return errs.NewValidation("category", "must be one of theft, robbery, harassment, other")
	}
	if r.Severity < 1 || r.Severity > 5 {
		return errs.NewValidation("severity", "must be between 1 and 5")
	}
	if strings.TrimSpace(r.Comments) == "" {
		return errs.NewValidation("comments", "must not be empty")
	}
	if len(r.Comments) > MaxCommentLength {
		return errs.NewValidation("comments", "must be at most 500 characters")
	}
	if !validLongitude(r.Longitude) {
		return errs.NewValidation("longitude", "must be a finite number between -180 and 180")
	}
	if !validLatitude(r.Latitude) {
		return errs.NewValidation("latitude", "must be a finite number between -90 and 90")
	}
	return nil
}

func (q *AreaQuery) Validate() error {
	if !validLongitude(q.Longitude) {
		return errs.NewValidation("lng", "must be a finite number between -180 and 180")
	}
	if !validLatitude(q.Latitude) {
		return errs.NewValidation("lat", "must be a finite number between -90 and 90")
	}
	if math.IsNaN(q.RadiusMeters) || math.IsInf(q.RadiusMeters, 0) || q.RadiusMeters <= 0 {
		return errs.NewValidation("radius", "must be a positive number of meters")
	}
	return nil
}

func (v *VoteRequest) Validate() error {
	if v.Direction != VoteUp && v.Direction != VoteDown {
		return errs.NewValidation("direction", "must be \"up\" or \"down\"")
	}
	return nil
}
