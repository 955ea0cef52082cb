package repository

import (
	"context"
	"database/sql"
	"fmt"

	"recipebox/internal/models"
)

type RecipeRepository struct {
	db *sql.DB
}

func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

var _ Recipes = (*RecipeRepository)(nil)

const (
	insertRecipeSQL = `INSERT INTO recipes (title, instructions, minutes_to_complete, user_id) VALUES (?, ?, ?, ?)`

	// Owner columns are joined in so a listing never needs a second query.
	selectRecipesWithOwnersSQL = `
SELECT r.id, r.title, r.instructions, r.minutes_to_complete, r.user_id,
       u.id, u.username, u.image_url, u.bio
FROM recipes r
JOIN users u ON u.id = r.user_id
ORDER BY r.id`
)

// Create inserts a new recipe inside its own transaction and returns its ID.
// Integrity violations (CHECK, NOT NULL, FK) surface as ErrConstraint.
func (r *RecipeRepository) Create(ctx context.Context, rec *models.Recipe) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert recipe: %w", err)
	}

	res, err := tx.ExecContext(ctx, insertRecipeSQL,
		rec.Title, rec.Instructions, rec.MinutesToComplete, rec.UserID)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert recipe %q: %w", rec.Title, classifyConstraintErr(err))
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("get last insert id for recipe %q: %w", rec.Title, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert recipe %q: %w", rec.Title, err)
	}
	return int(lastID), nil
}

// ListWithOwners returns every recipe with its owner's public fields populated.
func (r *RecipeRepository) ListWithOwners(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, selectRecipesWithOwnersSQL)
	if err != nil {
		return nil, fmt.Errorf("select recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Recipe
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Instructions, &rec.MinutesToComplete, &rec.UserID,
			&rec.User.ID, &rec.User.Username, &rec.User.ImageURL, &rec.User.Bio,
		); err != nil {
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe rows: %w", err)
	}
	return out, nil
}
