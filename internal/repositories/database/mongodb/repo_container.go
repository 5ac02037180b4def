package mongodb

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires the document stores of db.
func NewRepositoryProvider(db *mongo.Database, rates portsrepo.ExchangeRateProvider) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TripRepo:         newMongoTripRepository(db),
		DestinationRepo:  newMongoDestinationRepository(db),
		BudgetRepo:       newMongoBudgetRepository(db),
		ExchangeRateRepo: rates,
	}
}

// EnsureIndexes creates the secondary indexes the stores query by. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		budgetsCollection: {Keys: bson.D{{Key: "tripId", Value: 1}, {Key: "date", Value: 1}}},
		tripsCollection:   {Keys: bson.D{{Key: "destinations", Value: 1}}},
	}
	for collection, model := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", collection, err)
		}
	}
	return nil
}
