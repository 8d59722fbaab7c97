package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/application/services"
	"github.com/DanielPopoola/proofing-gallery/internal/application/services/testhelpers"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/persistence/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QueryServiceTestSuite struct {
	suite.Suite
	testDB       *testhelpers.TestDatabase
	orderRepo    *postgres.OrderRepository
	queryService *services.OrderQueryService
}

func TestQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}

func (suite *QueryServiceTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.orderRepo = postgres.NewOrderRepository(suite.testDB.DB)
	suite.queryService = services.NewOrderQueryService(
		suite.orderRepo,
		postgres.NewGalleryRepository(suite.testDB.DB, "PLN"),
	)
}

func (suite *QueryServiceTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *QueryServiceTestSuite) TearDownTest() {
	suite.testDB.CleanTables(suite.T())
}

func (suite *QueryServiceTestSuite) Test_GetBySessionID() {
	ctx := context.Background()
	t := suite.T()

	f := testhelpers.SeedGallery(t, suite.testDB.DB, testhelpers.DefaultGalleryOptions())
	order := testhelpers.CreatePendingOrder(t, suite.testDB.DB, f, 1500)

	found, err := suite.queryService.GetBySessionID(ctx, order.SessionID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = suite.queryService.GetBySessionID(ctx, "GAL-unknown")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeOrderNotFound))
}

func (suite *QueryServiceTestSuite) Test_ListForGallery_OwnerOnly() {
	ctx := context.Background()
	t := suite.T()

	f := testhelpers.SeedGallery(t, suite.testDB.DB, testhelpers.DefaultGalleryOptions())
	paid := testhelpers.CreatePendingOrder(t, suite.testDB.DB, f, 1500)
	_, err := suite.orderRepo.MarkPaid(ctx, paid.ID, 42, time.Now().UTC())
	require.NoError(t, err)
	testhelpers.CreatePendingOrder(t, suite.testDB.DB, f, 3000)

	orders, err := suite.queryService.ListForGallery(ctx, f.PhotographerID, f.GalleryID, application.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	onlyPaid, err := suite.queryService.ListForGallery(ctx, f.PhotographerID, f.GalleryID, application.OrderFilter{
		Status: domain.OrderPaid,
	})
	require.NoError(t, err)
	require.Len(t, onlyPaid, 1)
	assert.Equal(t, paid.ID, onlyPaid[0].ID)

	_, err = suite.queryService.ListForGallery(ctx, uuid.NewString(), f.GalleryID, application.OrderFilter{})
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
}
