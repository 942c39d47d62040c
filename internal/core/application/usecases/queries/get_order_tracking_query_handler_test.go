package queries_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderTrackingQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderTrackingQueryHandler
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderTrackingQueryHandler(db)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_ReturnsSnapshotOfPersistedState() {
	id := suite.saveOrder("Laura", order.Outside)

	query, err := queries.NewGetOrderTrackingQuery(id)
	suite.Require().NoError(err)

	event, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(services.TrackingEventKind, event.Kind)
	suite.Equal("outside", event.Status)
	suite.Equal("Afuera", event.StatusLabel)
	suite.Require().Len(event.Progress, 4)
	suite.True(event.Progress[0].Reached)
	suite.True(event.Progress[1].Reached)
	suite.True(event.Progress[2].Reached)
	suite.False(event.Progress[3].Reached)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderTrackingQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_UnknownStatus_UsesRecoverySemantics() {
	id := suite.saveOrder("Laura", order.Status("archived"))

	query, err := queries.NewGetOrderTrackingQuery(id)
	suite.Require().NoError(err)

	event, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("archived", event.Status)
	suite.Equal("archived", event.StatusLabel)
	// progress is computed as if the order were at the first stage
	suite.True(event.Progress[0].Reached)
	suite.False(event.Progress[1].Reached)
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderTrackingQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderTrackingQuery constructor")
}

func (suite *GetOrderTrackingQueryHandlerTestSuite) saveOrder(
	customerName string,
	status order.Status,
) kernel.UUID {
	id := kernel.NewUUID()
	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(id, customerName, status, now, now)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return id
}

func TestGetOrderTrackingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderTrackingQueryHandlerTestSuite))
}
