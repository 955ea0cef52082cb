package service

import (
	"context"

	"recipebox/internal/models"
	"recipebox/internal/repository"
)

// Authorization covers account creation and credential checks.
type Authorization interface {
	Register(input RegisterInput) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	UserByID(id int) (*models.User, error)
}

// Recipes exposes the recipe listing and creation operations.
type Recipes interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Create(ctx context.Context, input CreateRecipeInput, userID int) (*models.Recipe, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Recipes
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Recipes:       NewRecipeService(repos.Recipes, repos.Users),
	}
}
