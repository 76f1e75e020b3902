package reports

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saferoute/saferoute-api/internal/pkg/logger"
	"github.com/saferoute/saferoute-api/internal/pkg/moderation"
	errs "github.com/saferoute/saferoute-api/pkg/errors"
)

// Store is the persistence surface the service needs. Implemented by
// *Repository; tests substitute an in-memory store.
type Store interface {
	Insert(ctx context.Context, report *Report) error
	FindWithinRadius(ctx context.Context, longitude, latitude, radiusMeters float64) ([]Report, error)
	FindByReporter(ctx context.Context, reporterID primitive.ObjectID) ([]Report, error)
	FindAll(ctx context.Context) ([]Report, error)
	CastVote(ctx context.Context, reportID, voterID primitive.ObjectID, direction string) (*Report, error)
}

// Service orchestrates submission, voting and area safety queries.
type Service struct {
	store     Store
	moderator moderation.Validator
}

func NewService(store Store, moderator moderation.Validator) *Service {
	return &Service{store: store, moderator: moderator}
}

// Submit validates a report, runs it through the moderation gate and stores it.
// The moderation call is fail-open: if the collaborator errors out the
// submission proceeds as if validated. A negative verdict rejects the
// submission before any store mutation.
func (s *Service) Submit(ctx context.Context, reporterID primitive.ObjectID, req *CreateReportRequest) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.moderator.Validate(ctx, req.Category, req.Comments)
	if err != nil {
		logger.Warn("moderation unavailable, accepting report: %v", err)
		ok = true
	}
	if !ok {
		return nil, errs.ErrRejectedContent
	}

	report := &Report{
		ReporterID: reporterID,
		Category:   req.Category,
		Location:   NewLocation(req.Longitude, req.Latitude),
		Severity:   req.Severity,
		Comments:   strings.TrimSpace(req.Comments),
	}

	if err := s.store.Insert(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// AreaSafety fetches every report within the query radius and, when metrics
// are requested, attaches the computed assessment.
func (s *Service) AreaSafety(ctx context.Context, query *AreaQuery) (*AreaSafetyResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := s.store.FindWithinRadius(ctx, query.Longitude, query.Latitude, query.RadiusMeters)
	if err != nil {
		return nil, err
	}

	views := make([]ReportView, 0, len(found))
	for i := range found {
		views = append(views, found[i].View())
	}

	result := &AreaSafetyResult{
		Reports: views,
		Total:   len(views),
	}

	if query.IncludeMetrics {
		assessment := Score(found, time.Now().UTC())
		result.Assessment = &assessment
	}

	return result, nil
}

// Vote casts or changes a vote on a report.
func (s *Service) Vote(ctx context.Context, reportID, voterID primitive.ObjectID, req *VoteRequest) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.store.CastVote(ctx, reportID, voterID, req.Direction)
}

// ByReporter lists all reports submitted by one account.
func (s *Service) ByReporter(ctx context.Context, reporterID primitive.ObjectID) ([]Report, error) {
	return s.store.FindByReporter(ctx, reporterID)
}

// All enumerates every stored report.
func (s *Service) All(ctx context.Context) ([]Report, error) {
	return s.store.FindAll(ctx)
}
