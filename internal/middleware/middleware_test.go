package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/taskforce/internal/repository"
	"github.com/yukikurage/taskforce/internal/services"
	"github.com/yukikurage/taskforce/internal/store/storetest"
	"github.com/yukikurage/taskforce/internal/views"
)

type MiddlewareTestSuite struct {
	suite.Suite
	registry *views.Registry
	router   *gin.Engine
}

func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	fake := storetest.New()
	suite.registry = views.NewRegistry(views.Deps{
		Members: services.NewMemberService(repository.NewMemberRepository(fake)),
		Backlog: services.NewBacklogService(repository.NewExpectedTaskRepository(fake)),
		Tasks:   services.NewTaskService(repository.NewTaskRepository(fake)),
	})

	suite.router = gin.New()
	suite.router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	suite.router.Use(RequireWorkspace(suite.registry))
	suite.router.GET("/whoami", func(c *gin.Context) {
		ws, ok := GetWorkspace(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, ws.ID)
	})
}

func (suite *MiddlewareTestSuite) get(cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MiddlewareTestSuite) TestSameSessionKeepsWorkspace() {
	first := suite.get(nil)
	suite.Equal(http.StatusOK, first.Code)
	suite.NotEmpty(first.Body.String())

	cookies := first.Result().Cookies()
	suite.Require().NotEmpty(cookies)

	second := suite.get(cookies)
	suite.Equal(first.Body.String(), second.Body.String())
	suite.Equal(1, suite.registry.Len())
}

func (suite *MiddlewareTestSuite) TestNewSessionGetsNewWorkspace() {
	a := suite.get(nil)
	b := suite.get(nil)
	suite.NotEqual(a.Body.String(), b.Body.String())
	suite.Equal(2, suite.registry.Len())
}

func (suite *MiddlewareTestSuite) TestCORSAllowsAnyOrigin() {
	router := gin.New()
	router.Use(CORS([]string{"*"}))
	router.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
