package mongodb

import (
	"fmt"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Collection names match the documents written by earlier deployments.
const (
	tripsCollection        = "trips"
	destinationsCollection = "destinations"
	budgetsCollection      = "budgets"
)

type tripDocument struct {
	ID           string               `bson:"_id"`
	Name         string               `bson:"name"`
	Description  string               `bson:"description,omitempty"`
	Image        string               `bson:"image,omitempty"`
	Participants []string             `bson:"participants"`
	StartDate    *time.Time           `bson:"startDate,omitempty"`
	EndDate      *time.Time           `bson:"endDate,omitempty"`
	Destinations []string             `bson:"destinations"`
	Budget       storedAmount `bson:"budget"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

type destinationDocument struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	Description string     `bson:"description,omitempty"`
	Activities  []string   `bson:"activities"`
	StartDate   *time.Time `bson:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty"`
	Photos      []string   `bson:"photos"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

type budgetDocument struct {
	ID          string               `bson:"_id"`
	TripID      string               `bson:"tripId"`
	Category    string               `bson:"category"`
	Amount      storedAmount `bson:"amount"`
	Description string               `bson:"description,omitempty"`
	Date        time.Time            `bson:"date"`
}

// storedAmount is written as decimal128. Documents created by earlier
// deployments hold plain numbers, so doubles and integers are read too.
type storedAmount struct {
	dec primitive.Decimal128
}

func (a storedAmount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.dec)
}

func (a *storedAmount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}
	var legacy decimal.Decimal
	switch t {
	case bsontype.Decimal128:
		dec, ok := v.Decimal128OK()
		if !ok {
			return fmt.Errorf("malformed decimal128 amount")
		}
		a.dec = dec
		return nil
	case bsontype.Double:
		f, ok := v.DoubleOK()
		if !ok {
			return fmt.Errorf("malformed double amount")
		}
		legacy = decimal.NewFromFloat(f)
	case bsontype.Int32:
		i, ok := v.Int32OK()
		if !ok {
			return fmt.Errorf("malformed int32 amount")
		}
		legacy = decimal.NewFromInt32(i)
	case bsontype.Int64:
		i, ok := v.Int64OK()
		if !ok {
			return fmt.Errorf("malformed int64 amount")
		}
		legacy = decimal.NewFromInt(i)
	case bsontype.Null, bsontype.Undefined:
		legacy = decimal.Zero
	default:
		return fmt.Errorf("cannot decode %s into an amount", t)
	}
	stored, err := toStoredAmount(legacy)
	if err != nil {
		return err
	}
	*a = stored
	return nil
}

func toStoredAmount(d decimal.Decimal) (storedAmount, error) {
	dec, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return storedAmount{}, fmt.Errorf("amount %s does not fit decimal128: %w", d, err)
	}
	return storedAmount{dec: dec}, nil
}

func (a storedAmount) value() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(a.dec.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("stored amount %s is not a number: %w", a.dec, err)
	}
	return d, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func toTripDocument(t domain.Trip) (tripDocument, error) {
	budget, err := toStoredAmount(t.Budget)
	if err != nil {
		return tripDocument{}, err
	}
	return tripDocument{
		ID:           t.TripID,
		Name:         t.Name,
		Description:  t.Description,
		Image:        t.Image,
		Participants: nonNil(t.Participants),
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		Destinations: nonNil(t.DestinationIDs),
		Budget:       budget,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}, nil
}

func (d tripDocument) toDomain() (domain.Trip, error) {
	budget, err := d.Budget.value()
	if err != nil {
		return domain.Trip{}, err
	}
	return domain.Trip{
		TripID:         d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Image:          d.Image,
		Participants:   nonNil(d.Participants),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		DestinationIDs: nonNil(d.Destinations),
		Budget:         budget,
		Timestamps:     domain.Timestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
	}, nil
}

func toDestinationDocument(d domain.Destination) destinationDocument {
	return destinationDocument{
		ID:          d.DestinationID,
		Name:        d.Name,
		Description: d.Description,
		Activities:  nonNil(d.Activities),
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Photos:      nonNil(d.Photos),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d destinationDocument) toDomain() domain.Destination {
	return domain.Destination{
		DestinationID: d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Activities:    nonNil(d.Activities),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Photos:        nonNil(d.Photos),
		Timestamps:    domain.Timestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
	}
}

func toBudgetDocument(e domain.BudgetEntry) (budgetDocument, error) {
	amount, err := toStoredAmount(e.Amount)
	if err != nil {
		return budgetDocument{}, err
	}
	return budgetDocument{
		ID:          e.BudgetID,
		TripID:      e.TripID,
		Category:    string(e.Category),
		Amount:      amount,
		Description: e.Description,
		Date:        e.Date,
	}, nil
}

func (d budgetDocument) toDomain() (domain.BudgetEntry, error) {
	amount, err := d.Amount.value()
	if err != nil {
		return domain.BudgetEntry{}, err
	}
	return domain.BudgetEntry{
		BudgetID:    d.ID,
		TripID:      d.TripID,
		Category:    domain.BudgetCategory(d.Category),
		Amount:      amount,
		Description: d.Description,
		Date:        d.Date,
	}, nil
}
