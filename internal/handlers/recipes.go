package handlers

import (
	"errors"
	"net/http"

	"recipebox/internal/models"
	"recipebox/internal/repository"
	"recipebox/internal/service"

	"github.com/gin-gonic/gin"
)

// createRecipeRequest carries the client recipe fields. The owner is never
// taken from the body; it comes from the session.
type createRecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
}

// @Summary      List all recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {array}   models.Recipe
// @Failure      401  {object}  map[string]string
// @Router       /recipes [get]
func (h *Handler) recipeIndex(c *gin.Context) {
	ctx := c.Request.Context()

	recipes, err := h.services.List(ctx)
	if err != nil {
		h.logAndJSON(c, http.StatusInternalServerError, errorBody(errGenericFailure),
			"recipe_list_failed", err)
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// @Summary      Create a recipe owned by the signed-in user
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      createRecipeRequest  true  "Recipe payload"
// @Success      201   {object}  models.Recipe
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /recipes [post]
func (h *Handler) createRecipe(c *gin.Context) {
	ctx := c.Request.Context()

	var input createRecipeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logAndJSON(c, http.StatusUnprocessableEntity, errorsBody(errInvalidBody), "recipe_bad_body", err)
		return
	}

	userID := c.GetInt(userIDCtxKey)

	recipe, err := h.services.Recipes.Create(ctx, service.CreateRecipeInput{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
	}, userID)
	if err != nil {
		if errors.Is(err, repository.ErrConstraint) || errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusUnprocessableEntity, errorsBody(errInvalidRecipe))
			return
		}
		h.logAndJSON(c, http.StatusUnprocessableEntity, errorsBody(errGenericFailure),
			"recipe_create_failed", err, "user_id", userID)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}
