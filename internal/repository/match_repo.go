package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/segunqa2/next-peptok-sub000/internal/models"
)

type MatchRepository struct {
	db DBTX
}

func NewMatchRepository(db DBTX) *MatchRepository {
	return &MatchRepository{db: db}
}

// ReplaceForRequest supersedes any prior generation for the request and
// persists the new batch in ranked order. The delete and all inserts are sent
// as one pgx batch, so a mid-batch failure leaves no partial match set.
func (r *MatchRepository) ReplaceForRequest(
	ctx context.Context,
	requestID int64,
	matches []models.Match,
) ([]models.Match, error) {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM matches WHERE request_id = $1`, requestID)

	insert := `
		INSERT INTO matches (batch_id, request_id, coach_id, score, reasons, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	for _, match := range matches {
		batch.Queue(insert,
			match.BatchID,
			match.RequestID,
			match.CoachID,
			match.Score,
			match.Reasons,
			match.Status,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	if _, err := results.Exec(); err != nil {
		return nil, err
	}

	persisted := make([]models.Match, 0, len(matches))
	for _, match := range matches {
		if err := results.QueryRow().Scan(&match.ID, &match.CreatedAt); err != nil {
			return nil, err
		}
		persisted = append(persisted, match)
	}

	return persisted, results.Close()
}

func (r *MatchRepository) ListByRequest(
	ctx context.Context,
	requestID int64,
) ([]models.Match, error) {
	query := `
		SELECT id, batch_id, request_id, coach_id, score, reasons, status, created_at
		FROM matches
		WHERE request_id = $1
		ORDER BY score DESC, id ASC
	`
	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		if err := rows.Scan(
			&match.ID,
			&match.BatchID,
			&match.RequestID,
			&match.CoachID,
			&match.Score,
			&match.Reasons,
			&match.Status,
			&match.CreatedAt,
		); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (*models.Match, error) {
	query := `
		SELECT id, batch_id, request_id, coach_id, score, reasons, status, created_at
		FROM matches
		WHERE id = $1
	`
	var match models.Match
	err := r.db.QueryRow(ctx, query, matchID).Scan(
		&match.ID,
		&match.BatchID,
		&match.RequestID,
		&match.CoachID,
		&match.Score,
		&match.Reasons,
		&match.Status,
		&match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepository) UpdateStatusIfCurrent(
	ctx context.Context,
	matchID int64,
	currentStatus string,
	nextStatus string,
) (*models.Match, error) {
	query := `
		UPDATE matches
		SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING id, batch_id, request_id, coach_id, score, reasons, status, created_at
	`
	var match models.Match
	err := r.db.QueryRow(ctx, query, matchID, currentStatus, nextStatus).Scan(
		&match.ID,
		&match.BatchID,
		&match.RequestID,
		&match.CoachID,
		&match.Score,
		&match.Reasons,
		&match.Status,
		&match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// ExpirePendingBefore marks pending matches created before the cutoff as
// expired and reports how many rows changed.
func (r *MatchRepository) ExpirePendingBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	query := `
		UPDATE matches
		SET status = 'expired'
		WHERE status = 'pending' AND created_at < $1
	`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
