package accounts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *memoryRepo, *Service) {
	t.Helper()
	repo := newMemoryRepo()
	svc := NewService(repo)
	handler := NewHandler(nil, svc)
	router := chi.NewRouter()
	router.Route("/users", func(r chi.Router) {
		handler.MountRoutes(r)
	})
	return router, repo, svc
}

func TestCreateUserEndpoint(t *testing.T) {
	router, _, svc := newTestRouter(t)

	body := `{"username":"alice","first_name":"Alice","last_name":"Lee","email":"alice@test.local","password":"pw123456"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	require.NotEmpty(t, payload["id"])

	user, err := svc.GetByID(context.Background(), payload["id"])
	require.NoError(t, err)
	require.False(t, user.Verified)
}

func TestCreateUserDuplicateConflict(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := `{"username":"alice","first_name":"Alice","email":"alice@test.local","password":"pw123456"}`
	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusConflict, second.Code)
}

func TestCreateUserValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// Password below the minimum length.
	body := `{"username":"alice","first_name":"Alice","email":"alice@test.local","password":"short"}`
	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetUserNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/users/no-such-id", nil))
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestUpdateProfileEndpointResetsVerified(t *testing.T) {
	router, _, svc := newTestRouter(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, NewUser{Username: "alice", FirstName: "Alice", Email: "alice@test.local", Password: "pw123456"})
	require.NoError(t, err)
	require.NoError(t, svc.BulkVerify(ctx, []string{"alice"}))

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/"+id, strings.NewReader(`{"first_name":"Alicia"}`))
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusNoContent, res.Code)

	user, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Alicia", user.FirstName)
	require.False(t, user.Verified)
}

func TestDeleteEndpointReportsAffectedRows(t *testing.T) {
	router, _, svc := newTestRouter(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, NewUser{Username: "alice", FirstName: "Alice", Email: "alice@test.local", Password: "pw123456"})
	require.NoError(t, err)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodDelete, "/users/by-username/alice", nil))
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"deleted":1}`, res.Body.String())

	res = httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodDelete, "/users/by-username/alice", nil))
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"deleted":0}`, res.Body.String())
}

func TestBulkVerifyEndpoint(t *testing.T) {
	router, _, svc := newTestRouter(t)
	ctx := context.Background()

	id, err := svc.Register(ctx, NewUser{Username: "alice", FirstName: "Alice", Email: "alice@test.local", Password: "pw123456"})
	require.NoError(t, err)

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/verify", strings.NewReader(`{"usernames":["alice","bob"]}`))
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusNoContent, res.Code)

	user, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, user.Verified)
}
