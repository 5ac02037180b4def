package mongodb

import (
	"testing"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTripDocument_DecimalBudgetSurvivesBSON(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	trip := domain.Trip{
		TripID:         "t-1",
		Name:           "Tokyo",
		Budget:         decimal.RequireFromString("1234.5678"),
		StartDate:      &start,
		DestinationIDs: []string{"d-2", "d-1"},
	}

	doc, err := toTripDocument(trip)
	require.NoError(t, err)
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded tripDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	back, err := decoded.toDomain()
	require.NoError(t, err)

	assert.True(t, trip.Budget.Equal(back.Budget), "budget %s", back.Budget)
	assert.Equal(t, []string{"d-2", "d-1"}, back.DestinationIDs)
	assert.NotNil(t, back.Participants)
	assert.True(t, start.Equal(*back.StartDate))
	assert.Nil(t, back.EndDate)
}

func TestBudgetDocument_UsesOriginalFieldNames(t *testing.T) {
	doc, err := toBudgetDocument(domain.BudgetEntry{
		BudgetID: "b-1",
		TripID:   "t-1",
		Category: domain.CategoryFood,
		Amount:   decimal.RequireFromString("0.1"),
		Date:     time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))

	assert.Equal(t, "b-1", fields["_id"])
	assert.Equal(t, "t-1", fields["tripId"])
	assert.Equal(t, "Food", fields["category"])
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "date")
	assert.NotContains(t, fields, "description")
}

func mustDecimal128(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	dec, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return dec
}

func TestBudgetDocument_ReadsLegacyNumbers(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		want   string
	}{
		{"double", 12.5, "12.5"},
		{"double with cents", 0.1, "0.1"},
		{"int32", int32(40), "40"},
		{"int64", int64(1500), "1500"},
		{"decimal128", mustDecimal128(t, "19.99"), "19.99"},
		{"null", nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{
				"_id":      "b-1",
				"tripId":   "t-1",
				"category": "Food",
				"amount":   tt.amount,
				"date":     time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)

			var doc budgetDocument
			require.NoError(t, bson.Unmarshal(raw, &doc))
			entry, err := doc.toDomain()
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(entry.Amount), "amount %s", entry.Amount)
		})
	}
}

func TestTripDocument_ReadsLegacyDoubleBudget(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"_id": "t-1", "name": "Paris", "budget": 2500.75})
	require.NoError(t, err)

	var doc tripDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	trip, err := doc.toDomain()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2500.75").Equal(trip.Budget), "budget %s", trip.Budget)
	assert.NotNil(t, trip.DestinationIDs)
}

func TestStoredAmount_WritesDecimal128(t *testing.T) {
	doc, err := toTripDocument(domain.Trip{TripID: "t-1", Budget: decimal.RequireFromString("0.1")})
	require.NoError(t, err)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))

	stored, ok := fields["budget"].(primitive.Decimal128)
	require.True(t, ok, "budget stored as %T", fields["budget"])
	assert.Equal(t, "0.1", stored.String())
}

func TestBudgetDocument_RejectsNonNumericAmount(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"_id": "b-1", "amount": "12.50"})
	require.NoError(t, err)

	var doc budgetDocument
	assert.Error(t, bson.Unmarshal(raw, &doc))
}
