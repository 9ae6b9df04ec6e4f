package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

const opportunitiesCollection = "opportunities"

// OpportunityRepository persists opportunity records scoped to their owner.
// IDs are assigned by the service layer, not by the store.
type OpportunityRepository struct {
	coll *mongo.Collection
}

func NewOpportunityRepository(db *mongo.Database) *OpportunityRepository {
	return &OpportunityRepository{coll: db.Collection(opportunitiesCollection)}
}

func (r *OpportunityRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Opportunity, error) {
	return r.list(ctx, bson.M{"owner": owner})
}

func (r *OpportunityRepository) ListByOwnerAndStage(ctx context.Context, owner string, stage domain.Stage) ([]domain.Opportunity, error) {
	return r.list(ctx, bson.M{"owner": owner, "stage": stage})
}

func (r *OpportunityRepository) list(ctx context.Context, filter bson.M) ([]domain.Opportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "close_date", Value: 1}}))
	if err != nil {
		return nil, err
	}

	opps := []domain.Opportunity{}
	if err := cur.All(ctx, &opps); err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, owner, id string) (*domain.Opportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Opportunity
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OpportunityRepository) Insert(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OpportunityRepository) Update(ctx context.Context, o *domain.Opportunity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": o.ID, "owner": o.Owner}, o)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, owner, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the owner and stage indexes used by the dashboard
// aggregation.
func (r *OpportunityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "stage", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "close_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
