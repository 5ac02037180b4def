package mongodb

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDestinationRepository struct {
	coll *mongo.Collection
}

func newMongoDestinationRepository(db *mongo.Database) portsrepo.DestinationRepositoryFacade {
	return &MongoDestinationRepository{coll: db.Collection(destinationsCollection)}
}

var _ portsrepo.DestinationRepositoryFacade = (*MongoDestinationRepository)(nil)

func (r *MongoDestinationRepository) findDestinations(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Destination, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query destinations", err)
	}
	var docs []destinationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode destinations", err)
	}
	destinations := make([]domain.Destination, 0, len(docs))
	for _, doc := range docs {
		destinations = append(destinations, doc.toDomain())
	}
	return destinations, nil
}

func (r *MongoDestinationRepository) FindDestinationByID(ctx context.Context, destinationID string) (*domain.Destination, error) {
	var doc destinationDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": destinationID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read destination "+destinationID, err)
	}
	destination := doc.toDomain()
	return &destination, nil
}

func (r *MongoDestinationRepository) FindDestinationsByIDs(ctx context.Context, destinationIDs []string) (map[string]domain.Destination, error) {
	found := make(map[string]domain.Destination, len(destinationIDs))
	if len(destinationIDs) == 0 {
		return found, nil
	}
	destinations, err := r.findDestinations(ctx, bson.M{"_id": bson.M{"$in": destinationIDs}})
	if err != nil {
		return nil, err
	}
	for _, d := range destinations {
		found[d.DestinationID] = d
	}
	return found, nil
}

func (r *MongoDestinationRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return r.findDestinations(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
}

func (r *MongoDestinationRepository) SaveDestination(ctx context.Context, destination domain.Destination) error {
	if _, err := r.coll.InsertOne(ctx, toDestinationDocument(destination)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewAppError(http.StatusConflict, "destination ID "+destination.DestinationID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save destination "+destination.DestinationID, err)
	}
	return nil
}

func (r *MongoDestinationRepository) UpdateDestination(ctx context.Context, destination domain.Destination) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": destination.DestinationID}, toDestinationDocument(destination))
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update destination "+destination.DestinationID, err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoDestinationRepository) DeleteDestination(ctx context.Context, destinationID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": destinationID})
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete destination "+destinationID, err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
