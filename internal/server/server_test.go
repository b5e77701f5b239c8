package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskforce/internal/logging"
	"github.com/yukikurage/taskforce/internal/repository"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/store/storetest"
	"github.com/yukikurage/taskforce/internal/views"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := storetest.New()
	members := services.NewMemberService(repository.NewMemberRepository(fake))
	backlog := services.NewBacklogService(repository.NewExpectedTaskRepository(fake))
	tasks := services.NewTaskService(repository.NewTaskRepository(fake))

	engine, err := New(Deps{
		Logger:           logging.Discard(),
		Client:           fake,
		Members:          members,
		Backlog:          backlog,
		Tasks:            tasks,
		Registry:         views.NewRegistry(views.Deps{Members: members, Backlog: backlog, Tasks: tasks}),
		SessionStore:     cookie.NewStore([]byte("secret")),
		CORSAllowOrigins: []string{"*"},
	})
	require.NoError(t, err)
	return engine
}

func TestRoutesAreMounted(t *testing.T) {
	engine := newEngine(t)

	for _, path := range []string{"/health", "/api/members", "/api/expected-tasks", "/api/tasks", "/members", "/backlog", "/status"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestAPIPreflightAllowsCrossOrigin(t *testing.T) {
	engine := newEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/trigger-ai", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRouteIsJSONNotFound(t *testing.T) {
	engine := newEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Resource not found", body["message"])
}
