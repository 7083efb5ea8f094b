// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/infra/dependency"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	redis         *mock.Redis
	timeMock      *mock.Time
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	saved         map[string]string
}

type response struct {
	status int
	body   any
	raw    string
}

var (
	serverInit sync.Once
	testServer *httptest.Server
	testDB     *mock.Db
	testRedis  *mock.Redis
	testClock  = mock.NewTime()
)

// InitializeTestSuite opens the shared in-memory stores before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		testDB = mock.NewDb(
			mock.Table{Name: "users", Model: &model.UserModel{}},
			mock.Table{Name: "refresh_tokens", Model: &model.RefreshTokenModel{}},
			mock.Table{Name: "email_queue", Model: &model.EmailQueueModel{}},
			mock.Table{Name: "documents", Model: &model.DocumentModel{}},
		)
		testRedis = mock.NewRedis()
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
		if testRedis != nil {
			testRedis.Close()
		}
	})
}

// InitializeScenario registers every step and resets state between scenarios.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: testClock,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^a premium user exists with email "([^"]*)"$`, test.aPremiumUserExistsWithEmail)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the analytics cache should hold (\d+) reports?$`, test.theAnalyticsCacheShouldHoldReports)
}

func (t *testContext) before() error {
	t.db = testDB
	t.redis = testRedis
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.saved = make(map[string]string)
	t.timeMock.Reset()

	if t.redis != nil {
		t.redis.Clear()
	}
	if t.db != nil {
		return t.db.ClearDB()
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Redis:  config.RedisConfig{AnalyticsTTL: time.Minute},
		JWT: config.JWTConfig{
			Secret:             testJWTSecret,
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
		Security:  config.SecurityConfig{BcryptCost: 4},
		RateLimit: config.RateLimitConfig{AuthAttempts: 20, AuthWindow: time.Minute},
		App:       config.AppConfig{Timezone: "UTC", FrontendURL: "http://localhost:5173"},
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := testConfig()
		conns := dependency.Connections{
			AccountDB: testDB.DbConn,
			LocalDB:   testDB.DbConn,
			Redis:     testRedis.Client,
		}
		checks := map[string]controller.HealthChecker{
			"database": func() bool { return testDB != nil && testDB.DbConn != nil },
		}

		injector := dependency.NewInjector(cfg, conns, testClock, checks)
		testServer = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
	t.uri = testServer.URL
}
