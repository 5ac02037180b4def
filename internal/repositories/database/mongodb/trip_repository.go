package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTripRepository struct {
	coll *mongo.Collection
}

func newMongoTripRepository(db *mongo.Database) portsrepo.TripRepositoryFacade {
	return &MongoTripRepository{coll: db.Collection(tripsCollection)}
}

var _ portsrepo.TripRepositoryFacade = (*MongoTripRepository)(nil)

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})

func (r *MongoTripRepository) findTrips(ctx context.Context, filter bson.M) ([]domain.Trip, error) {
	cursor, err := r.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query trips", err)
	}
	var docs []tripDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode trips", err)
	}

	trips := make([]domain.Trip, 0, len(docs))
	for _, doc := range docs {
		trip, err := doc.toDomain()
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode trip "+doc.ID, err)
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

func (r *MongoTripRepository) decodeOne(result *mongo.SingleResult, tripID string) (*domain.Trip, error) {
	var doc tripDocument
	if err := result.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read trip "+tripID, err)
	}
	trip, err := doc.toDomain()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode trip "+tripID, err)
	}
	return &trip, nil
}

func (r *MongoTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	return r.decodeOne(r.coll.FindOne(ctx, bson.M{"_id": tripID}), tripID)
}

func (r *MongoTripRepository) ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	query := bson.M{}
	if filter.NameContains != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.NameContains), "$options": "i"}
	}
	if filter.StartFrom != nil {
		query["startDate"] = bson.M{"$gte": *filter.StartFrom}
	}
	if filter.EndUntil != nil {
		query["endDate"] = bson.M{"$lte": *filter.EndUntil}
	}
	return r.findTrips(ctx, query)
}

func (r *MongoTripRepository) ListTripsByDestination(ctx context.Context, destinationID string) ([]domain.Trip, error) {
	return r.findTrips(ctx, bson.M{"destinations": destinationID})
}

func (r *MongoTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	doc, err := toTripDocument(trip)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode trip "+trip.TripID, err)
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewAppError(http.StatusConflict, "trip ID "+trip.TripID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save trip "+trip.TripID, err)
	}
	return nil
}

func (r *MongoTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	doc, err := toTripDocument(trip)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode trip "+trip.TripID, err)
	}
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": trip.TripID}, doc)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update trip "+trip.TripID, err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": tripID})
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete trip "+tripID, err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoTripRepository) AddDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	update := bson.M{
		"$addToSet": bson.M{"destinations": destinationID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.updateOne(ctx, tripID, update)
}

func (r *MongoTripRepository) RemoveDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	update := bson.M{
		"$pull": bson.M{"destinations": destinationID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.updateOne(ctx, tripID, update)
}

func (r *MongoTripRepository) updateOne(ctx context.Context, tripID string, update bson.M) (*domain.Trip, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.decodeOne(r.coll.FindOneAndUpdate(ctx, bson.M{"_id": tripID}, update, opts), tripID)
}

func (r *MongoTripRepository) RemoveDestinationFromAllTrips(ctx context.Context, destinationID string) (int64, error) {
	result, err := r.coll.UpdateMany(ctx,
		bson.M{"destinations": destinationID},
		bson.M{
			"$pull": bson.M{"destinations": destinationID},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to unlink destination %s", destinationID), err)
	}
	return result.ModifiedCount, nil
}
