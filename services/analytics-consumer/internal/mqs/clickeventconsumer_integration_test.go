//go:build integration

package mqs

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"link-analytics/database"
	"link-analytics/services/analytics-api/model"
	"link-analytics/services/analytics-consumer/internal/config"
	"link-analytics/services/analytics-consumer/internal/svc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	_ "github.com/lib/pq"
)

// ConsumerSuite runs the ingestion path end to end against real Postgres,
// with only the dead-letter producer substituted.
type ConsumerSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	rawDB       *sql.DB
	clickModel  model.ClickEventsModel
}

func (s *ConsumerSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("analytics"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.pgContainer = pgContainer

	pgConnStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	conn := sqlx.NewSqlConn("postgres", pgConnStr)
	s.rawDB, err = conn.RawDB()
	require.NoError(s.T(), err)

	require.NoError(s.T(), database.RunMigrations(s.rawDB))
	s.clickModel = model.NewClickEventsModel(conn)
}

func (s *ConsumerSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *ConsumerSuite) SetupTest() {
	_, err := s.rawDB.ExecContext(s.ctx, "TRUNCATE click_events")
	require.NoError(s.T(), err)
}

func (s *ConsumerSuite) newConsumer() (*ClickEventConsumer, *mockPusher) {
	pusher := &mockPusher{}
	svcCtx := &svc.ServiceContext{
		Config:           config.Config{InsertTimeoutMs: 5000},
		ClickEventsModel: s.clickModel,
		DeadLetter:       pusher,
	}
	return NewClickEventConsumer(s.ctx, svcCtx), pusher
}

func (s *ConsumerSuite) TestEndToEnd() {
	consumer, pusher := s.newConsumer()

	payload := `{"short_code":"abc12345","timestamp":1700000000,"user_agent":"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36","ip_address":"1.2.3.4","referer":"https://example.com"}`
	require.NoError(s.T(), consumer.Consume(s.ctx, "", payload))

	records, err := s.clickModel.FindByShortCode(s.ctx, "abc12345")
	require.NoError(s.T(), err)
	require.Len(s.T(), records, 1)
	assert.NotEmpty(s.T(), records[0].Id)
	assert.Equal(s.T(), "1.2.3.4", records[0].IpAddress.String)
	assert.JSONEq(s.T(), `{"referer":"https://example.com"}`, records[0].Extra)
	assert.Empty(s.T(), pusher.pushed)
}

func (s *ConsumerSuite) TestRedeliveryIsIdempotent() {
	consumer, _ := s.newConsumer()

	// Producer-assigned id: both deliveries target the same (short_code, id).
	payload := `{"id":"abc12345-1700000000000-aaaaaaaaa","short_code":"abc12345","timestamp":1700000000,"user_agent":"Mozilla/5.0"}`
	require.NoError(s.T(), consumer.Consume(s.ctx, "", payload))
	require.NoError(s.T(), consumer.Consume(s.ctx, "", payload), "redelivery must ack, not error")

	count, err := s.clickModel.CountByShortCode(s.ctx, "abc12345")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), count)
}

func (s *ConsumerSuite) TestMalformedMessageDeadLettered() {
	consumer, pusher := s.newConsumer()

	require.NoError(s.T(), consumer.Consume(s.ctx, "", "{not json"))

	require.Len(s.T(), pusher.pushed, 1)
	count, err := s.clickModel.CountByShortCode(s.ctx, "abc12345")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count, "malformed messages must never reach the store")
}

func TestConsumerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(ConsumerSuite))
}
