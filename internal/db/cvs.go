package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adaeze/cv-studio/internal/format"
	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/types"
)

// CreateCV stores a new CV document and returns the record. The document is
// normalized before storage so reads never see a malformed CV.
func (db *DB) CreateCV(ctx context.Context, userID uuid.UUID, doc types.CV) (*CVRecord, error) {
	normalized := normalize.Normalize(doc)
	content, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cv document: %w", err)
	}

	record := &CVRecord{UserID: userID, Document: normalized}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO cvs (user_id, document)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		userID, content,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create cv: %w", err)
	}
	return record, nil
}

// UpdateCV replaces the stored document. Returns nil, nil when the CV does
// not exist for this user.
func (db *DB) UpdateCV(ctx context.Context, userID, cvID uuid.UUID, doc types.CV) (*CVRecord, error) {
	normalized := normalize.Normalize(doc)
	content, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cv document: %w", err)
	}

	record := &CVRecord{ID: cvID, UserID: userID, Document: normalized}
	err = db.pool.QueryRow(ctx,
		`UPDATE cvs SET document = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3
		 RETURNING created_at, updated_at`,
		content, cvID, userID,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update cv: %w", err)
	}
	return record, nil
}

// GetCV returns one CV document. Returns nil, nil when not found.
func (db *DB) GetCV(ctx context.Context, userID, cvID uuid.UUID) (*CVRecord, error) {
	record := &CVRecord{}
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, document, created_at, updated_at
		 FROM cvs
		 WHERE id = $1 AND user_id = $2`,
		cvID, userID,
	).Scan(&record.ID, &record.UserID, &content, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cv: %w", err)
	}

	// Stored rows predating a model change still normalize cleanly.
	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cv document: %w", err)
	}
	record.Document = normalize.Normalize(raw)
	return record, nil
}

// ListCVs returns listing summaries of a user's CVs, most recently updated
// first.
func (db *DB) ListCVs(ctx context.Context, userID uuid.UUID) ([]CVSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, document, updated_at
		 FROM cvs
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	defer rows.Close()

	summaries := []CVSummary{}
	for rows.Next() {
		var (
			summary CVSummary
			content []byte
		)
		if err := rows.Scan(&summary.ID, &content, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cv row: %w", err)
		}
		var raw any
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cv document: %w", err)
		}
		doc := normalize.Normalize(raw)
		summary.Name = format.FullName(doc.PersonalInfo)
		summary.TemplateID = doc.TemplateID
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// DeleteCV removes a CV and its version snapshots. Returns false when the CV
// does not exist for this user.
func (db *DB) DeleteCV(ctx context.Context, userID, cvID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM cvs WHERE id = $1 AND user_id = $2`,
		cvID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete cv: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
