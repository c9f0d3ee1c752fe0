package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/pkg/jwt"
	"github.com/crewops/crewops-backend-go/internal/pkg/rolecache"
)

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
	lookups int
}

func (f *fakeWorkerRepo) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (worker.Worker, error) {
	f.lookups++
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) List(_ context.Context, _ worker.WorkerFilter) ([]worker.Worker, int64, error) {
	return nil, 0, nil
}

func testRouter(jwtService jwt.Service, cache *rolecache.Cache, repo worker.WorkerRepository) http.Handler {
	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))
	r.Get("/open", ok)
	r.With(RequireTimesheetManager(cache, repo)).Post("/guarded", ok)
	return r
}

func doRequest(t *testing.T, handler http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	handler := testRouter(jwtService, rolecache.New(time.Minute), repo)

	token, _, err := jwtService.GenerateAccessToken("w1", "Ana Flores", worker.CategoryLabor)
	require.NoError(t, err)

	rec := doRequest(t, handler, http.MethodGet, "/open", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	handler := testRouter(jwtService, rolecache.New(time.Minute), repo)

	rec := doRequest(t, handler, http.MethodGet, "/open", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	handler := testRouter(jwtService, rolecache.New(time.Minute), repo)

	rec := doRequest(t, handler, http.MethodGet, "/open", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A refresh token authenticates the bearer but must never pass the access
// gate.
func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	handler := testRouter(jwtService, rolecache.New(time.Minute), repo)

	token, _, err := jwtService.GenerateRefreshToken("w1")
	require.NoError(t, err)

	rec := doRequest(t, handler, http.MethodGet, "/open", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireTimesheetManager_Roles(t *testing.T) {
	tests := []struct {
		name     string
		category worker.Category
		want     int
	}{
		{"staff allowed", worker.CategoryStaff, http.StatusOK},
		{"lead labor allowed", worker.CategoryLeadLabor, http.StatusOK},
		{"labor forbidden", worker.CategoryLabor, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
			repo := &fakeWorkerRepo{workers: map[string]worker.Worker{
				"w1": {ID: "w1", Name: "Ana Flores", Category: tt.category},
			}}
			handler := testRouter(jwtService, rolecache.New(time.Minute), repo)

			token, _, err := jwtService.GenerateAccessToken("w1", "Ana Flores", tt.category)
			require.NoError(t, err)

			rec := doRequest(t, handler, http.MethodPost, "/guarded", token)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireTimesheetManager_UnknownWorker(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	handler := testRouter(jwtService, rolecache.New(time.Minute), repo)

	token, _, err := jwtService.GenerateAccessToken("ghost", "Ghost", worker.CategoryStaff)
	require.NoError(t, err)

	rec := doRequest(t, handler, http.MethodPost, "/guarded", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// The second request must be served from the role cache, not the directory.
func TestRequireTimesheetManager_CachesLookup(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{
		"w1": {ID: "w1", Name: "Ana Flores", Category: worker.CategoryStaff},
	}}
	handler := testRouter(jwtService, rolecache.New(time.Minute), repo)

	token, _, err := jwtService.GenerateAccessToken("w1", "Ana Flores", worker.CategoryStaff)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rec := doRequest(t, handler, http.MethodPost, "/guarded", token)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, repo.lookups)
}
