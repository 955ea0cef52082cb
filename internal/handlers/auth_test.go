package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"recipebox/internal/models"
	"recipebox/internal/service"
)

func TestSignup_CreatesUserAndSession(t *testing.T) {
	auth := &mockAuth{
		registerUser: &models.User{ID: 1, Username: "ana"},
		byIDUser:     &models.User{ID: 1, Username: "ana"},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/signup",
		`{"username":"ana","password":"pw1"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status=%d, body=%s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if int(body["id"].(float64)) != 1 || body["username"] != "ana" {
		t.Fatalf("unexpected body: %v", body)
	}
	if body["image_url"] != nil || body["bio"] != nil {
		t.Fatalf("expected null image_url/bio, got %v", body)
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatalf("password_hash leaked in response: %v", body)
	}
	if auth.lastRegister.Username != "ana" || auth.lastRegister.Password != "pw1" {
		t.Fatalf("unexpected register input: %+v", auth.lastRegister)
	}

	// same client token: check_session returns the same user
	w2 := doRequest(r, http.MethodGet, "/check_session", "", w.Result().Cookies())
	if w2.Code != http.StatusOK {
		t.Fatalf("check_session status=%d, body=%s", w2.Code, w2.Body.String())
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if int(body["id"].(float64)) != 1 {
		t.Fatalf("check_session returned wrong user: %v", body)
	}
}

func TestSignup_OptionalFieldsForwarded(t *testing.T) {
	auth := &mockAuth{registerUser: &models.User{
		ID: 2, Username: "bea", ImageURL: strPtr("http://img"), Bio: strPtr("cook"),
	}}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/signup",
		`{"username":"bea","password":"pw","image_url":"http://img","bio":"cook"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastRegister.ImageURL == nil || *auth.lastRegister.ImageURL != "http://img" {
		t.Fatalf("image_url not forwarded: %+v", auth.lastRegister)
	}
	if auth.lastRegister.Bio == nil || *auth.lastRegister.Bio != "cook" {
		t.Fatalf("bio not forwarded: %+v", auth.lastRegister)
	}
}

func TestSignup_Errors(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		registerErr error
		wantCode    int
		wantErrors  string
	}{
		{
			name:        "duplicate username",
			body:        `{"username":"ana","password":"pw1"}`,
			registerErr: service.ErrUsernameTaken,
			wantCode:    http.StatusUnprocessableEntity,
			wantErrors:  "Username must be unique",
		},
		{
			name:        "validation failure surfaces message",
			body:        `{"username":"ana"}`,
			registerErr: &service.ValidationError{Msg: "password is required"},
			wantCode:    http.StatusUnprocessableEntity,
			wantErrors:  "password is required",
		},
		{
			name:        "unexpected failure is generic",
			body:        `{"username":"ana","password":"pw1"}`,
			registerErr: errors.New("disk full"),
			wantCode:    http.StatusUnprocessableEntity,
			wantErrors:  "Unable to process request",
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			wantCode:   http.StatusUnprocessableEntity,
			wantErrors: "Invalid request body",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{registerErr: tc.registerErr}
			s := &service.Service{Authorization: auth}
			r := newTestRouter(s)

			w := doRequest(r, http.MethodPost, "/signup", tc.body, nil)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			var out struct {
				Errors string `json:"errors"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Errors != tc.wantErrors {
				t.Fatalf("errors: got %q, want %q", out.Errors, tc.wantErrors)
			}

			// no session established on failure
			w2 := doRequest(r, http.MethodGet, "/check_session", "", w.Result().Cookies())
			if w2.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 after failed signup, got %d", w2.Code)
			}
		})
	}
}

func TestLogin_SuccessEstablishesSession(t *testing.T) {
	auth := &mockAuth{
		authUser: &models.User{ID: 7, Username: "ana"},
		byIDUser: &models.User{ID: 7, Username: "ana"},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/login",
		`{"username":"ana","password":"pw1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastAuthUsername != "ana" || auth.lastAuthPassword != "pw1" {
		t.Fatalf("unexpected credentials forwarded: %q/%q", auth.lastAuthUsername, auth.lastAuthPassword)
	}

	w2 := doRequest(r, http.MethodGet, "/check_session", "", w.Result().Cookies())
	if w2.Code != http.StatusOK {
		t.Fatalf("check_session after login: status=%d", w2.Code)
	}
	if auth.lastByID != 7 {
		t.Fatalf("check_session looked up user %d, want 7", auth.lastByID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuth{authErr: service.ErrInvalidCredentials}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/login",
		`{"username":"ana","password":"wrong"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "Invalid username or password" {
		t.Fatalf("error: got %q", out.Error)
	}
}

func TestLogin_FailedLoginKeepsExistingSession(t *testing.T) {
	auth := &mockAuth{
		authUser: &models.User{ID: 7, Username: "ana"},
		byIDUser: &models.User{ID: 7, Username: "ana"},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	login := doRequest(r, http.MethodPost, "/login",
		`{"username":"ana","password":"pw1"}`, nil)
	if login.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", login.Code, login.Body.String())
	}
	cookies := login.Result().Cookies()

	// a later attempt with a bad password fails...
	auth.authUser = nil
	auth.authErr = service.ErrInvalidCredentials
	failed := doRequest(r, http.MethodPost, "/login",
		`{"username":"ana","password":"wrong"}`, cookies)
	if failed.Code != http.StatusUnauthorized {
		t.Fatalf("failed login status=%d, body=%s", failed.Code, failed.Body.String())
	}
	if len(failed.Result().Cookies()) != 0 {
		t.Fatalf("failed login must not rewrite the session cookie, got %v", failed.Result().Cookies())
	}

	// ...and the original session still authenticates
	w := doRequest(r, http.MethodGet, "/check_session", "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("check_session after failed login: status=%d, body=%s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if int(body["id"].(float64)) != 7 {
		t.Fatalf("session no longer belongs to user 7: %v", body)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	auth := &mockAuth{
		authUser: &models.User{ID: 3, Username: "cid"},
		byIDUser: &models.User{ID: 3, Username: "cid"},
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	login := doRequest(r, http.MethodPost, "/login",
		`{"username":"cid","password":"pw"}`, nil)
	if login.Code != http.StatusOK {
		t.Fatalf("login status=%d", login.Code)
	}
	cookies := login.Result().Cookies()

	logout := doRequest(r, http.MethodDelete, "/logout", "", cookies)
	if logout.Code != http.StatusNoContent {
		t.Fatalf("logout status=%d, body=%s", logout.Code, logout.Body.String())
	}
	if logout.Body.Len() != 0 {
		t.Fatalf("logout body should be empty, got %q", logout.Body.String())
	}

	// session is gone: the cleared cookie comes back from the logout response
	after := doRequest(r, http.MethodGet, "/check_session", "", logout.Result().Cookies())
	if after.Code != http.StatusUnauthorized {
		t.Fatalf("check_session after logout: status=%d", after.Code)
	}
}

func TestLogout_RequiresSession(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodDelete, "/logout", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}
}

func TestCheckSession_NoSession(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/check_session", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "Unauthorized" {
		t.Fatalf("error: got %q", out.Error)
	}
}

func TestCheckSession_StaleUserTreatedAsUnauthorized(t *testing.T) {
	auth := &mockAuth{
		authUser: &models.User{ID: 9, Username: "gone"},
		byIDErr:  service.ErrUserNotFound,
	}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	login := doRequest(r, http.MethodPost, "/login",
		`{"username":"gone","password":"pw"}`, nil)
	if login.Code != http.StatusOK {
		t.Fatalf("login status=%d", login.Code)
	}

	w := doRequest(r, http.MethodGet, "/check_session", "", login.Result().Cookies())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("stale session: status=%d, body=%s", w.Code, w.Body.String())
	}
}
