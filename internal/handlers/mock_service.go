package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"recipebox/internal/models"
	"recipebox/internal/service"
	"recipebox/internal/session"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	authUser     *models.User
	authErr      error
	byIDUser     *models.User
	byIDErr      error

	lastRegister     service.RegisterInput
	lastAuthUsername string
	lastAuthPassword string
	lastByID         int
}

func (m *mockAuth) Register(input service.RegisterInput) (*models.User, error) {
	m.lastRegister = input
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Authenticate(username, password string) (*models.User, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authUser, m.authErr
}

func (m *mockAuth) UserByID(id int) (*models.User, error) {
	m.lastByID = id
	return m.byIDUser, m.byIDErr
}

type mockRecipes struct {
	listResp  []models.Recipe
	listErr   error
	createRec *models.Recipe
	createErr error

	lastCreateInput  service.CreateRecipeInput
	lastCreateUserID int
	createCalls      int
}

func (m *mockRecipes) List(ctx context.Context) ([]models.Recipe, error) {
	return m.listResp, m.listErr
}

func (m *mockRecipes) Create(ctx context.Context, input service.CreateRecipeInput, userID int) (*models.Recipe, error) {
	m.createCalls++
	m.lastCreateInput = input
	m.lastCreateUserID = userID
	return m.createRec, m.createErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, session.NewCookieManager(), nil)
	store := cookie.NewStore([]byte("test-secret"))
	return h.InitRoutes(store, []string{"http://localhost:3000"})
}

// doRequest runs a request through the router, carrying over any cookies from
// a previous response so tests can model one client across requests.
func doRequest(r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }
