package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rxautos-service/internal/middleware"
	"rxautos-service/internal/pkg/authstate"
	"rxautos-service/internal/pkg/ratelimit"
	"rxautos-service/internal/pkg/retry"
	account "rxautos-service/internal/repository/account"
	authUsecase "rxautos-service/internal/service/auth"
)

// accountFake mimics the hosted service's auth and row endpoints.
type accountFake struct {
	registeredEmails []string
	rejectLogin      bool
	signupCalls      atomic.Int64
}

func (f *accountFake) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/v1/user_profiles", func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimPrefix(r.URL.Query().Get("email"), "eq.")
		for _, known := range f.registeredEmails {
			if known == email {
				w.Write([]byte(`[{"uid":"u1"}]`))
				return
			}
		}
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		f.signupCalls.Add(1)
		w.Write([]byte(`{"id":"u-new","email":"new@example.com"}`))
	})
	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		if f.rejectLogin {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error_description":"Invalid login credentials"}`))
			return
		}
		w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","expires_in":3600,"user":{"id":"u1","email":"ana@example.com"}}`))
	})
	mux.HandleFunc("/auth/v1/recover", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"msg":"invalid token"}`))
			return
		}
		w.Write([]byte(`{"id":"u1","email":"ana@example.com"}`))
	})
	return mux
}

func newTestRouter(t *testing.T, fake *accountFake) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ts := httptest.NewServer(fake.handler())
	t.Cleanup(ts.Close)

	logger := zap.NewNop()
	client := account.NewClient(account.Config{
		BaseURL: ts.URL,
		AnonKey: "anon",
		Retry:   retry.Policy{MaxRetries: 0, Delay: time.Millisecond},
	}, logger)
	svc := authUsecase.NewAuthService(client, ratelimit.NewLoginLimiter(nil), authstate.NewWatcher(), logger)
	h := NewAuthHandler(svc, logger)
	mw := middleware.NewAuthMiddleware(svc)

	r := gin.New()
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/forgot-password", h.ForgotPassword)
	r.GET("/api/v1/auth/me", mw.Auth(), h.Me)
	r.GET("/api/v1/session", mw.OptionalAuth(), func(c *gin.Context) {
		user, ok := middleware.GetUser(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"authenticated": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "email": user.Email})
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsInvalidFieldsWithoutRemoteCall(t *testing.T) {
	fake := &accountFake{}
	r := newTestRouter(t, fake)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"","email":"not-an-email","password":"abc","confirm_password":"xyz"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nome é obrigatório")
	assert.Contains(t, w.Body.String(), "Email inválido")
	assert.Zero(t, fake.signupCalls.Load())
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	fake := &accountFake{registeredEmails: []string{"ana@example.com"}}
	r := newTestRouter(t, fake)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ana Silva","email":"ana@example.com","password":"Abc12345!","confirm_password":"Abc12345!"}`, "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), authUsecase.MsgEmailTaken)
	assert.Zero(t, fake.signupCalls.Load())
}

func TestRegisterCreatesAccount(t *testing.T) {
	fake := &accountFake{}
	r := newTestRouter(t, fake)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ana Silva","email":"new@example.com","password":"Abc12345!","confirm_password":"Abc12345!"}`, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(1), fake.signupCalls.Load())
}

func TestLoginReturnsSession(t *testing.T) {
	r := newTestRouter(t, &accountFake{})

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ana@example.com","password":"Abc12345!"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "tok-1", envelope.Data.AccessToken)
}

func TestLoginBadCredentialsReadsAsUnauthorized(t *testing.T) {
	r := newTestRouter(t, &accountFake{rejectLogin: true})

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ana@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), authUsecase.MsgBadCredentials)
}

func TestLoginValidatesFieldsFirst(t *testing.T) {
	r := newTestRouter(t, &accountFake{})

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", `{"email":"","password":""}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email é obrigatório")
	assert.Contains(t, w.Body.String(), "Senha é obrigatória")
}

func TestMeRequiresValidToken(t *testing.T) {
	r := newTestRouter(t, &accountFake{})

	w := doJSON(r, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", "", "bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", "", "tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")
}

func TestOptionalAuthResolvesUserButNeverBlocks(t *testing.T) {
	r := newTestRouter(t, &accountFake{})

	w := doJSON(r, http.MethodGet, "/api/v1/session", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	w = doJSON(r, http.MethodGet, "/api/v1/session", "", "bogus")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	w = doJSON(r, http.MethodGet, "/api/v1/session", "", "tok-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
	assert.Contains(t, w.Body.String(), "ana@example.com")
}

func TestForgotPasswordSendsRecoveryEmail(t *testing.T) {
	fake := &accountFake{}
	r := newTestRouter(t, fake)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/forgot-password", `{"email":"ana@example.com"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/auth/forgot-password", `{"email":"nope"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
