package service

import (
	"context"
	"fmt"

	"recipebox/internal/models"
	"recipebox/internal/repository"
)

// RecipeService handles recipe listing and creation.
type RecipeService struct {
	recipes repository.Recipes
	users   repository.Users
}

func NewRecipeService(recipes repository.Recipes, users repository.Users) *RecipeService {
	return &RecipeService{recipes: recipes, users: users}
}

var _ Recipes = (*RecipeService)(nil)

// CreateRecipeInput carries the client-supplied recipe fields. The owner id is
// never part of it; it comes from the caller's session.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete int
}

// List returns every recipe with its owner attached.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipes.ListWithOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// Create persists a new recipe owned by userID and returns it with the owner
// populated. Integrity violations pass through as repository.ErrConstraint
// for the handler to map.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput, userID int) (*models.Recipe, error) {
	rec := &models.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            userID,
	}
	id, err := s.recipes.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	owner, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("load recipe owner id=%d: %w", userID, err)
	}
	if owner != nil {
		rec.User = *owner
	}
	return rec, nil
}
