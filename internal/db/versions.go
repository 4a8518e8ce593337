package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/types"
)

// CreateVersion snapshots the current document of a CV under a label.
// Returns uuid.Nil, nil when the CV does not exist for this user.
func (db *DB) CreateVersion(ctx context.Context, userID, cvID uuid.UUID, label string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cv_versions (cv_id, user_id, label, snapshot)
		 SELECT id, user_id, $3, document FROM cvs WHERE id = $1 AND user_id = $2
		 RETURNING id`,
		cvID, userID, label,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create version: %w", err)
	}
	return id, nil
}

// ListVersions returns a CV's snapshots, newest first.
func (db *DB) ListVersions(ctx context.Context, userID, cvID uuid.UUID) ([]Version, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, cv_id, label, created_at
		 FROM cv_versions
		 WHERE cv_id = $1 AND user_id = $2
		 ORDER BY created_at DESC`,
		cvID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	versions := []Version{}
	for rows.Next() {
		var v Version
		if err := rows.Scan(&v.ID, &v.CVID, &v.Label, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version row: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// GetVersionSnapshot returns the document stored in a snapshot. Returns
// nil, nil when not found.
func (db *DB) GetVersionSnapshot(ctx context.Context, userID, versionID uuid.UUID) (*types.CV, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT snapshot FROM cv_versions WHERE id = $1 AND user_id = $2`,
		versionID, userID,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get version snapshot: %w", err)
	}

	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal version snapshot: %w", err)
	}
	doc := normalize.Normalize(raw)
	return &doc, nil
}
