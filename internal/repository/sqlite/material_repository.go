package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studyflash/studyflash/internal/logger"
	"github.com/studyflash/studyflash/internal/models"
	"github.com/studyflash/studyflash/internal/repository"
)

type materialRepository struct {
	db *sql.DB
}

// NewMaterialRepository creates a new MaterialRepository implementation
func NewMaterialRepository(db *sql.DB) repository.MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Get(ctx context.Context, id int64) (*models.Material, error) {
	log := logger.FromContext(ctx).WithPrefix("material_repo")
	log.Debug("getting material: id=%d", id)

	var m models.Material
	err := conn(ctx, r.db).QueryRowContext(ctx, `
SELECT id, user_id, title, created_at
FROM materials
WHERE id = ?
`, id).Scan(&m.ID, &m.UserID, &m.Title, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("material not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get material: %v", err)
		return nil, err
	}
	return &m, nil
}

func (r *materialRepository) Insert(ctx context.Context, m models.Material) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("material_repo")
	log.Debug("inserting material: user_id=%d, title=%s", m.UserID, m.Title)

	res, err := conn(ctx, r.db).ExecContext(ctx, `
INSERT INTO materials (user_id, title)
VALUES (?, ?)
`, m.UserID, m.Title)
	if err != nil {
		log.Error("failed to insert material: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *materialRepository) ListByUser(ctx context.Context, userID int64) ([]models.Material, error) {
	log := logger.FromContext(ctx).WithPrefix("material_repo")
	log.Debug("listing materials: user_id=%d", userID)

	rows, err := conn(ctx, r.db).QueryContext(ctx, `
SELECT id, user_id, title, created_at
FROM materials
WHERE user_id = ?
ORDER BY created_at ASC
`, userID)
	if err != nil {
		log.Error("failed to list materials: %v", err)
		return nil, err
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.CreatedAt); err != nil {
			log.Error("failed to scan material row: %v", err)
			return nil, err
		}
		materials = append(materials, m)
	}
	log.Debug("found %d materials", len(materials))
	return materials, rows.Err()
}
