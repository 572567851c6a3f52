package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickalba/job-board-system/internal/core/domain"
)

const collectionApplications = "applications"

// ApplicationRepository is the audit store for submitted applications.
type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

func (r *ApplicationRepository) Insert(ctx context.Context, app *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"job_id":       app.JobID,
		"applicant_id": app.ApplicantID,
		"email":        app.Email,
		"message":      app.Message,
		"submitted_at": app.SubmittedAt,
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// EnsureIndexes indexes the (applicant, job) pair queried by the dedup
// backfill and reporting jobs.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "job_id", Value: 1}}},
		{Keys: bson.D{{Key: "applicant_id", Value: 1}, {Key: "job_id", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
