package reports

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errs "github.com/saferoute/saferoute-api/pkg/errors"
)

// earthRadiusMeters converts a radius in meters to the radians $centerSphere expects.
const earthRadiusMeters = 6378100.0

// Repository handles database interactions for the reports feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{{Key: "reporterId", Value: 1}, {Key: "reportedAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "reportedAt", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// Insert stores a new report with an empty vote ledger. ReportedAt is assigned
// here and immutable afterwards.
func (r *Repository) Insert(ctx context.Context, report *Report) error {
	report.ReportedAt = time.Now().UTC()
	report.Votes = emptyVoteLedger()

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

// FindWithinRadius returns every report within radiusMeters spherical distance
// of the given point. No ordering is guaranteed and no cap is applied.
func (r *Repository) FindWithinRadius(ctx context.Context, longitude, latitude, radiusMeters float64) ([]Report, error) {
	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{longitude, latitude},
					radiusMeters / earthRadiusMeters,
				},
			},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// FindByReporter returns all reports submitted by one account, newest first.
func (r *Repository) FindByReporter(ctx context.Context, reporterID primitive.ObjectID) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "reportedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"reporterId": reporterID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// FindAll enumerates every report. Administrative use only.
func (r *Repository) FindAll(ctx context.Context) ([]Report, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// FindByID looks up a single report.
func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Report, error) {
	var report Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// CastVote applies a vote in one atomic document update: the voter is removed
// from the opposing set, added to the target set, and the score is recomputed
// from the resulting set sizes. Repeating the same direction is a no-op on the
// sets, so the score cannot double-count. Returns the updated report.
func (r *Repository) CastVote(ctx context.Context, reportID, voterID primitive.ObjectID, direction string) (*Report, error) {
	target, opposing := "votes.upvoters", "votes.downvoters"
	if direction == VoteDown {
		target, opposing = opposing, target
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			target:   bson.M{"$setUnion": bson.A{"$" + target, bson.A{voterID}}},
			opposing: bson.M{"$setDifference": bson.A{"$" + opposing, bson.A{voterID}}},
		}}},
		{{Key: "$set", Value: bson.M{
			"votes.score": bson.M{"$subtract": bson.A{
				bson.M{"$size": "$votes.upvoters"},
				bson.M{"$size": "$votes.downvoters"},
			}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report Report
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": reportID}, update, opts).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}
