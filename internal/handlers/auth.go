package handlers

import (
	"errors"
	"net/http"

	"recipebox/internal/service"

	"github.com/gin-gonic/gin"
)

// signupRequest carries the signup payload. Fields are validated by the
// service layer so rejections come back as 422, not a bind-time 400.
type signupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// @Summary      Create an account and sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup payload"
// @Success      201   {object}  models.User
// @Failure      422   {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signup(c *gin.Context) {
	var input signupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logAndJSON(c, http.StatusUnprocessableEntity, errorsBody(errInvalidBody), "signup_bad_body", err)
		return
	}

	user, err := h.services.Register(service.RegisterInput{
		Username: input.Username,
		Password: input.Password,
		ImageURL: input.ImageURL,
		Bio:      input.Bio,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusUnprocessableEntity, errorsBody(errUsernameTaken))
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, errorsBody(vErr.Msg))
		default:
			h.logAndJSON(c, http.StatusUnprocessableEntity, errorsBody(errGenericFailure),
				"signup_failed", err, "username", input.Username)
		}
		return
	}

	if err := h.sess.SignIn(c, user.ID); err != nil {
		h.logAndJSON(c, http.StatusInternalServerError, errorBody(errGenericFailure),
			"signup_session_save_failed", err, "user_id", user.ID)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Sign in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  models.User
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnauthorized, errorBody(errInvalidCreds))
		return
	}

	user, err := h.services.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, errorBody(errInvalidCreds))
			return
		}
		h.logAndJSON(c, http.StatusInternalServerError, errorBody(errGenericFailure),
			"login_failed", err, "username", input.Username)
		return
	}

	if err := h.sess.SignIn(c, user.ID); err != nil {
		h.logAndJSON(c, http.StatusInternalServerError, errorBody(errGenericFailure),
			"login_session_save_failed", err, "user_id", user.ID)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /logout [delete]
func (h *Handler) logout(c *gin.Context) {
	if err := h.sess.SignOut(c); err != nil {
		h.logAndJSON(c, http.StatusInternalServerError, errorBody(errGenericFailure),
			"logout_session_clear_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Return the signed-in user
// @Description  Public route; performs its own session check.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /check_session [get]
func (h *Handler) checkSession(c *gin.Context) {
	userID, ok := h.sess.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody(errUnauthorized))
		return
	}

	user, err := h.services.UserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Stale session pointing at a deleted user: drop it and treat
			// the client as unauthenticated.
			_ = h.sess.SignOut(c)
			c.JSON(http.StatusUnauthorized, errorBody(errUnauthorized))
			return
		}
		h.logAndJSON(c, http.StatusInternalServerError, errorBody(errGenericFailure),
			"check_session_failed", err, "user_id", userID)
		return
	}

	c.JSON(http.StatusOK, user)
}
