package projects_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixster-server/internal/domain/project"
	"fixster-server/internal/domain/usersettings"
	"fixster-server/internal/interfaces/httpserver/handlers/projecthandler"
	"fixster-server/internal/interfaces/httpserver/middlewares"
	"fixster-server/internal/interfaces/httpserver/routes/v1/projects"
	"fixster-server/internal/utils/platformerrors"
)

type memoryProjectRepo struct {
	mu    sync.Mutex
	items map[string]*project.Project
}

func newMemoryProjectRepo() *memoryProjectRepo {
	return &memoryProjectRepo{items: map[string]*project.Project{}}
}

func (r *memoryProjectRepo) Create(ctx context.Context, proj *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cloned := *proj
	r.items[proj.PublicID] = &cloned
	return nil
}

func (r *memoryProjectRepo) GetByPublicIDAndUserID(ctx context.Context, publicID, userID string) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	proj, ok := r.items[publicID]
	if !ok || proj.UserID != userID || proj.DeletedAt != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeNotFound, "project not found", nil, "test-01")
	}
	cloned := *proj
	return &cloned, nil
}

func (r *memoryProjectRepo) ListByUserID(ctx context.Context, userID string) ([]*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*project.Project
	for _, proj := range r.items {
		if proj.UserID == userID && proj.DeletedAt == nil {
			cloned := *proj
			out = append(out, &cloned)
		}
	}
	return out, nil
}

func (r *memoryProjectRepo) Update(ctx context.Context, proj *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cloned := *proj
	r.items[proj.PublicID] = &cloned
	return nil
}

func (r *memoryProjectRepo) Delete(ctx context.Context, publicID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if proj, ok := r.items[publicID]; ok && proj.UserID == userID {
		now := time.Now()
		proj.DeletedAt = &now
	}
	return nil
}

func (r *memoryProjectRepo) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type memorySettingsRepo struct {
	mu    sync.Mutex
	items map[string]*usersettings.UserSettings
}

func newMemorySettingsRepo() *memorySettingsRepo {
	return &memorySettingsRepo{items: map[string]*usersettings.UserSettings{}}
}

func (r *memorySettingsRepo) GetByUserID(ctx context.Context, userID string) (*usersettings.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	settings, ok := r.items[userID]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeNotFound, "settings not found", nil, "test-02")
	}
	cloned := *settings
	return &cloned, nil
}

func (r *memorySettingsRepo) Upsert(ctx context.Context, settings *usersettings.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cloned := *settings
	r.items[settings.UserID] = &cloned
	return nil
}

func newProjectRouter() (*gin.Engine, *memorySettingsRepo) {
	gin.SetMode(gin.TestMode)

	settingsRepo := newMemorySettingsRepo()
	settingsService := usersettings.NewService(settingsRepo)
	projectService := project.NewService(newMemoryProjectRepo(), settingsService)
	handler := projecthandler.NewProjectHandler(projectService)
	route := projects.NewProjectRoute(handler)

	router := gin.New()
	router.Use(middlewares.AuthMiddleware(nil, zerolog.Nop()))
	route.RegisterRoutes(router.Group("/v1"))
	return router, settingsRepo
}

func doRequest(t *testing.T, router *gin.Engine, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestProjectRoutesRequireAuth(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodGet, "/v1/projects", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAndGetProject(t *testing.T) {
	router, _ := newProjectRouter()
	start := time.Now().Add(-time.Second)

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1",
		`{"name":"My App","description":"demo","code":"const x = 1;"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode(t, rec)
	assert.Equal(t, "project", created["object"])
	assert.Equal(t, "My App", created["name"])
	assert.Equal(t, "In Progress", created["status"])
	projectID, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, projectID)

	// Timestamps go out as millisecond epoch, same unit as message timestamps.
	createdAt, ok := created["created_at"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, int64(createdAt), start.UnixMilli())
	updatedAt, ok := created["updated_at"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, int64(updatedAt), start.UnixMilli())

	rec = doRequest(t, router, http.MethodGet, "/v1/projects/"+projectID, "user_1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "My App", decode(t, rec)["name"])
}

func TestGetProjectScopedByOwner(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1", `{"name":"Private"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	projectID := decode(t, rec)["id"].(string)

	rec = doRequest(t, router, http.MethodGet, "/v1/projects/"+projectID, "user_2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProjectRejectsBlankName(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1", `{"name":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProjectPartial(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1",
		`{"name":"My App","code":"v1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	projectID := decode(t, rec)["id"].(string)

	rec = doRequest(t, router, http.MethodPatch, "/v1/projects/"+projectID, "user_1",
		`{"code":"v2","status":"Completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode(t, rec)
	assert.Equal(t, "My App", updated["name"])
	assert.Equal(t, "v2", updated["code"])
	assert.Equal(t, "Completed", updated["status"])
}

func TestUpdateProjectInvalidStatus(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1", `{"name":"My App"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	projectID := decode(t, rec)["id"].(string)

	rec = doRequest(t, router, http.MethodPatch, "/v1/projects/"+projectID, "user_1",
		`{"status":"Paused"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppendMessage(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1", `{"name":"My App"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	projectID := decode(t, rec)["id"].(string)

	rec = doRequest(t, router, http.MethodPost, "/v1/projects/"+projectID+"/messages", "user_1",
		`{"text":"hello","sender":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	history, ok := body["chat_history"].([]any)
	require.True(t, ok)
	require.Len(t, history, 1)

	msg := history[0].(map[string]any)
	assert.Equal(t, "hello", msg["text"])
	assert.Equal(t, "user", msg["sender"])
	assert.NotEmpty(t, msg["id"])
	assert.NotZero(t, msg["timestamp"])
}

func TestAppendMessageInvalidSender(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1", `{"name":"My App"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	projectID := decode(t, rec)["id"].(string)

	rec = doRequest(t, router, http.MethodPost, "/v1/projects/"+projectID+"/messages", "user_1",
		`{"text":"hello","sender":"system"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProjectClearsActivePointer(t *testing.T) {
	router, settingsRepo := newProjectRouter()

	rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1", `{"name":"My App"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	projectID := decode(t, rec)["id"].(string)

	settingsRepo.items["user_1"] = &usersettings.UserSettings{
		UserID:          "user_1",
		ActiveProjectID: &projectID,
		Preferences:     map[string]any{},
	}

	rec = doRequest(t, router, http.MethodDelete, "/v1/projects/"+projectID, "user_1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["deleted"])

	settings, err := settingsRepo.GetByUserID(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Nil(t, settings.ActiveProjectID)

	rec = doRequest(t, router, http.MethodGet, "/v1/projects/"+projectID, "user_1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProjectIdempotent(t *testing.T) {
	router, _ := newProjectRouter()

	rec := doRequest(t, router, http.MethodDelete, "/v1/projects/proj_missing", "user_1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListProjects(t *testing.T) {
	router, _ := newProjectRouter()

	for _, name := range []string{"One", "Two"} {
		rec := doRequest(t, router, http.MethodPost, "/v1/projects", "user_1", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/v1/projects", "user_1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "list", body["object"])
	assert.EqualValues(t, 2, body["total"])
	assert.Len(t, body["data"], 2)
}
