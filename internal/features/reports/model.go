package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Incident category constants. The order of Categories() is fixed and used for
// tie-breaking in insights.
const (
	CategoryTheft      = "theft"
	CategoryRobbery    = "robbery"
	CategoryHarassment = "harassment"
	CategoryOther      = "other"
)

const MaxCommentLength = 500

// Vote direction constants
const (
	VoteUp   = "up"
	VoteDown = "down"
)

var categories = []string{CategoryTheft, CategoryRobbery, CategoryHarassment, CategoryOther}

// Categories returns the closed category set in its fixed order.
func Categories() []string {
	return categories
}

func IsValidCategory(category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// Location is a GeoJSON point. Coordinates are [longitude, latitude].
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewLocation(longitude, latitude float64) Location {
	return Location{Type: "Point", Coordinates: []float64{longitude, latitude}}
}

func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[0]
}

func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}

// VoteLedger is owned by its report. Score is derived from the two sets and is
// only ever written by the vote-cast pipeline.
type VoteLedger struct {
	Upvoters   []primitive.ObjectID `bson:"upvoters" json:"upvoters"`
	Downvoters []primitive.ObjectID `bson:"downvoters" json:"downvoters"`
	Score      int                  `bson:"score" json:"score"`
}

func emptyVoteLedger() VoteLedger {
	return VoteLedger{
		Upvoters:   []primitive.ObjectID{},
		Downvoters: []primitive.ObjectID{},
		Score:      0,
	}
}

// Report is a single geolocated incident report.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReporterID primitive.ObjectID `bson:"reporterId" json:"reporterId"`
	Category   string             `bson:"category" json:"category"`
	Location   Location           `bson:"location" json:"location"`
	Severity   int                `bson:"severity" json:"severity"`
	Comments   string             `bson:"comments" json:"comments"`
	ReportedAt time.Time          `bson:"reportedAt" json:"reportedAt"`
	Votes      VoteLedger         `bson:"votes" json:"votes"`
}

// CreateReportRequest is the submission payload. Domain validation lives in
// validator.go so errors can name the violated field.
type CreateReportRequest struct {
	Category  string  `json:"category"`
	Severity  int     `json:"severity"`
	Comments  string  `json:"comments"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// AreaQuery describes a radius safety query.
type AreaQuery struct {
	Longitude      float64
	Latitude       float64
	RadiusMeters   float64
	IncludeMetrics bool
}

// VoteRequest is the payload for casting a vote on a report.
type VoteRequest struct {
	Direction string `json:"direction"`
}

// ReportView is the trimmed projection returned from area queries.
type ReportView struct {
	ID         primitive.ObjectID `json:"id"`
	Category   string             `json:"category"`
	Severity   int                `json:"severity"`
	Comments   string             `json:"comments"`
	Location   Location           `json:"location"`
	ReportedAt time.Time          `json:"reportedAt"`
	Score      int                `json:"score"`
}

func (r *Report) View() ReportView {
	return ReportView{
		ID:         r.ID,
		Category:   r.Category,
		Severity:   r.Severity,
		Comments:   r.Comments,
		Location:   r.Location,
		ReportedAt: r.ReportedAt,
		Score:      r.Votes.Score,
	}
}

// AreaSafetyResult is the area query response: trimmed reports plus the
// assessment when metrics were requested.
type AreaSafetyResult struct {
	Reports    []ReportView        `json:"reports"`
	Total      int                 `json:"total"`
	Assessment *SecurityAssessment `json:"assessment,omitempty"`
}
