package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_planner_app/internal/models"
	"github.com/SscSPs/travel_planner_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTripRepository struct {
	BaseRepository
}

// newPgxTripRepository creates a new repository for trip data.
func newPgxTripRepository(pool *pgxpool.Pool) portsrepo.TripRepositoryFacade {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

const tripColumns = `trip_id, name, description, image, participants, start_date, end_date,
	destination_ids, budget, created_at, updated_at`

var FULL_TRIP_SELECT_QUERY = `SELECT ` + tripColumns + ` FROM trips `

// getTrips runs FULL_TRIP_SELECT_QUERY with the given filter clause.
func (r *PgxTripRepository) getTrips(ctx context.Context, filterQuery string, args ...any) ([]domain.Trip, error) {
	rows, err := r.Pool.Query(ctx, FULL_TRIP_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query trips", err)
	}
	defer rows.Close()

	modelTrips, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trip])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect trip rows", err)
	}
	return mapping.ToDomainTripSlice(modelTrips), nil
}

func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	trips, err := r.getTrips(ctx, `WHERE trip_id = $1`, tripID)
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &trips[0], nil
}

func (r *PgxTripRepository) ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.NameContains != "" {
		args = append(args, filter.NameContains)
		conditions = append(conditions, fmt.Sprintf("strpos(lower(name), lower($%d)) > 0", len(args)))
	}
	if filter.StartFrom != nil {
		args = append(args, *filter.StartFrom)
		conditions = append(conditions, fmt.Sprintf("start_date >= $%d", len(args)))
	}
	if filter.EndUntil != nil {
		args = append(args, *filter.EndUntil)
		conditions = append(conditions, fmt.Sprintf("end_date <= $%d", len(args)))
	}

	query := ""
	if len(conditions) > 0 {
		query = "WHERE " + strings.Join(conditions, " AND ")
	}
	return r.getTrips(ctx, query+` ORDER BY created_at DESC, trip_id`, args...)
}

func (r *PgxTripRepository) ListTripsByDestination(ctx context.Context, destinationID string) ([]domain.Trip, error) {
	return r.getTrips(ctx, `WHERE $1 = ANY(destination_ids) ORDER BY created_at DESC, trip_id`, destinationID)
}

func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TripID, m.Name, m.Description, m.Image, m.Participants, m.StartDate, m.EndDate,
		m.DestinationIDs, m.Budget, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewAppError(http.StatusConflict, "trip ID "+m.TripID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save trip "+m.TripID, err)
	}
	return nil
}

func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	m := mapping.ToModelTrip(trip)
	query := `
		UPDATE trips SET
			name = $2, description = $3, image = $4, participants = $5,
			start_date = $6, end_date = $7, destination_ids = $8, budget = $9, updated_at = $10
		WHERE trip_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TripID, m.Name, m.Description, m.Image, m.Participants,
		m.StartDate, m.EndDate, m.DestinationIDs, m.Budget, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update trip "+m.TripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete trip "+tripID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// updateDestinations applies an array expression over $2 to destination_ids and returns the updated row.
func (r *PgxTripRepository) updateDestinations(ctx context.Context, tripID, destinationID, expr string) (*domain.Trip, error) {
	query := `UPDATE trips SET destination_ids = ` + expr + `, updated_at = $3
		WHERE trip_id = $1 RETURNING ` + tripColumns
	rows, err := r.Pool.Query(ctx, query, tripID, destinationID, time.Now().UTC())
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to update destinations of trip "+tripID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Trip])
	if err != nil {
		return nil, notFoundOr(err, "failed to read trip "+tripID)
	}
	trip := mapping.ToDomainTrip(m)
	return &trip, nil
}

func (r *PgxTripRepository) AddDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	return r.updateDestinations(ctx, tripID, destinationID,
		`CASE WHEN $2 = ANY(destination_ids) THEN destination_ids ELSE array_append(destination_ids, $2) END`)
}

func (r *PgxTripRepository) RemoveDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	return r.updateDestinations(ctx, tripID, destinationID, `array_remove(destination_ids, $2)`)
}

func (r *PgxTripRepository) RemoveDestinationFromAllTrips(ctx context.Context, destinationID string) (int64, error) {
	query := `
		UPDATE trips SET destination_ids = array_remove(destination_ids, $1), updated_at = $2
		WHERE $1 = ANY(destination_ids);
	`
	tag, err := r.Pool.Exec(ctx, query, destinationID, time.Now().UTC())
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to unlink destination "+destinationID, err)
	}
	return tag.RowsAffected(), nil
}
