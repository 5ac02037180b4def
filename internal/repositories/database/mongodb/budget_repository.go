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

type MongoBudgetRepository struct {
	coll *mongo.Collection
}

func newMongoBudgetRepository(db *mongo.Database) portsrepo.BudgetRepositoryFacade {
	return &MongoBudgetRepository{coll: db.Collection(budgetsCollection)}
}

var _ portsrepo.BudgetRepositoryFacade = (*MongoBudgetRepository)(nil)

func decodeBudget(result *mongo.SingleResult, budgetID string) (*domain.BudgetEntry, error) {
	var doc budgetDocument
	if err := result.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read budget entry "+budgetID, err)
	}
	entry, err := doc.toDomain()
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode budget entry "+budgetID, err)
	}
	return &entry, nil
}

func (r *MongoBudgetRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	doc, err := toBudgetDocument(entry)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode budget entry "+entry.BudgetID, err)
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewAppError(http.StatusConflict, "budget ID "+entry.BudgetID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save budget entry "+entry.BudgetID, err)
	}
	return nil
}

func (r *MongoBudgetRepository) ListBudgetEntriesByTrip(ctx context.Context, tripID string) ([]domain.BudgetEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tripId": tripID}, opts)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query budget entries", err)
	}
	var docs []budgetDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode budget entries", err)
	}

	entries := make([]domain.BudgetEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := doc.toDomain()
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode budget entry "+doc.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *MongoBudgetRepository) FindBudgetEntryByID(ctx context.Context, budgetID string) (*domain.BudgetEntry, error) {
	return decodeBudget(r.coll.FindOne(ctx, bson.M{"_id": budgetID}), budgetID)
}

func (r *MongoBudgetRepository) DeleteBudgetEntry(ctx context.Context, budgetID string) (*domain.BudgetEntry, error) {
	return decodeBudget(r.coll.FindOneAndDelete(ctx, bson.M{"_id": budgetID}), budgetID)
}

func (r *MongoBudgetRepository) DeleteBudgetEntriesByTrip(ctx context.Context, tripID string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"tripId": tripID})
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to delete budget entries of trip "+tripID, err)
	}
	return result.DeletedCount, nil
}
