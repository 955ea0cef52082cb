package repository

import (
	"context"
	"database/sql"

	"recipebox/internal/models"
)

type Users interface {
	Create(u *models.User) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

type Recipes interface {
	Create(ctx context.Context, r *models.Recipe) (int, error)
	ListWithOwners(ctx context.Context) ([]models.Recipe, error)
}

type Repository struct {
	Users   Users
	Recipes Recipes
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(db),
		Recipes: NewRecipeRepository(db),
	}
}
