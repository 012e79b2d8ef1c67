//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hackfest/teams/internal/auth"
	"github.com/hackfest/teams/internal/config"
	"github.com/hackfest/teams/internal/database/migrate"
	eventModel "github.com/hackfest/teams/internal/event/model"
	eventRouter "github.com/hackfest/teams/internal/event/router"
	membershipRouter "github.com/hackfest/teams/internal/membership/router"
	"github.com/hackfest/teams/internal/middleware"
	registrationRouter "github.com/hackfest/teams/internal/registration/router"
	teamRouter "github.com/hackfest/teams/internal/team/router"
)

// E2ETestSuite runs the HTTP surface against a real PostgreSQL instance so
// the store-level race barriers are exercised by genuinely concurrent
// transactions.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	authCfg     auth.Config
}

// SetupSuite runs once before all tests.
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// Apply the real migrations, not a test-local schema.
	os.Setenv("MIGRATIONS_PATH", "../../migrations")
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	s.authCfg = auth.Config{Secret: "e2e-test-secret", TTL: time.Hour}
	s.server = httptest.NewServer(s.buildRouter())
}

// TearDownSuite runs once after all tests.
func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
	os.Unsetenv("MIGRATIONS_PATH")
}

// SetupTest wipes all tables between tests.
func (s *E2ETestSuite) SetupTest() {
	for _, table := range []string{"event_registrations", "memberships", "events", "teams"} {
		require.NoError(s.T(), s.db.Exec("DELETE FROM "+table).Error)
	}
}

func (s *E2ETestSuite) buildRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()
	teamCfg := config.TeamConfig{MinSize: 2, MaxSize: 4, CodeLength: 6, CodeAttempts: 5}

	r := gin.New()
	eventRouter.RegisterRoutes(r, s.db, log)

	authed := r.Group("/")
	authed.Use(middleware.Auth(s.authCfg, log))
	teamRouter.RegisterRoutes(authed, s.db, teamCfg, log)
	membershipRouter.RegisterRoutes(authed, s.db, teamCfg, log)
	registrationRouter.RegisterRoutes(authed, s.db, log)
	return r
}

// do performs an authenticated JSON request against the test server.
func (s *E2ETestSuite) do(userID, method, path string, payload interface{}) (int, []byte) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(s.T(), err)
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, s.server.URL+path, body)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	if userID != "" {
		token, err := auth.IssueToken(s.authCfg, userID)
		require.NoError(s.T(), err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, raw
}

// createTeam creates a team and returns its id and join code.
func (s *E2ETestSuite) createTeam(leaderID, name string) (string, string) {
	code, body := s.do(leaderID, "POST", "/teams", map[string]string{"name": name})
	require.Equal(s.T(), http.StatusCreated, code, string(body))

	var resp struct {
		Team struct {
			ID   string `json:"id"`
			Code string `json:"code"`
		} `json:"team"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &resp))
	return resp.Team.ID, resp.Team.Code
}

func (s *E2ETestSuite) seedEvent(id string, minSize, maxSize int, requiredFields ...string) {
	require.NoError(s.T(), s.db.Create(&eventModel.Event{
		ID:             id,
		Name:           "event " + id,
		MinTeamSize:    minSize,
		MaxTeamSize:    maxSize,
		RequiredFields: requiredFields,
		CreatedAt:      time.Now(),
	}).Error)
}

func TestE2ETestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e tests in short mode")
	}
	suite.Run(t, new(E2ETestSuite))
}
