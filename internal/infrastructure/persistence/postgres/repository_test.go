package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/application/services/testhelpers"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/persistence/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	testDB     *testhelpers.TestDatabase
	galleries  *postgres.GalleryRepository
	selections *postgres.SelectionRepository
	orders     *postgres.OrderRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.galleries = postgres.NewGalleryRepository(suite.testDB.DB, "PLN")
	suite.selections = postgres.NewSelectionRepository(suite.testDB.DB)
	suite.orders = postgres.NewOrderRepository(suite.testDB.DB)
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	suite.testDB.Cleanup(suite.T())
}

func (suite *RepositoryTestSuite) TearDownTest() {
	suite.testDB.CleanTables(suite.T())
}

func (suite *RepositoryTestSuite) seed(opts testhelpers.GalleryOptions) (testhelpers.Fixture, *domain.Gallery) {
	t := suite.T()
	f := testhelpers.SeedGallery(t, suite.testDB.DB, opts)
	gallery, err := suite.galleries.FindByID(context.Background(), f.GalleryID)
	require.NoError(t, err)
	return f, gallery
}

func (suite *RepositoryTestSuite) toggle(gallery *domain.Gallery, f testhelpers.Fixture, photo int) domain.SelectionResult {
	t := suite.T()
	result, err := suite.selections.Toggle(context.Background(), gallery, f.PhotoIDs[photo], f.ClientID)
	require.NoError(t, err)
	return result
}

// ============================================================================
// GALLERY TESTS
// ============================================================================

func (suite *RepositoryTestSuite) Test_Gallery_FindByAccessCode() {
	ctx := context.Background()
	t := suite.T()

	f, _ := suite.seed(testhelpers.DefaultGalleryOptions())

	gallery, err := suite.galleries.FindByAccessCode(ctx, f.AccessCode)

	require.NoError(t, err)
	assert.Equal(t, f.GalleryID, gallery.ID)
	assert.Equal(t, domain.GalleryActive, gallery.Status)
	assert.Equal(t, 2, gallery.PackagePhotosCount)
	assert.Equal(t, int64(1500), gallery.AdditionalPhotoPrice.Amount)
	assert.Equal(t, "PLN", gallery.AdditionalPhotoPrice.Currency)
}

func (suite *RepositoryTestSuite) Test_Gallery_UnknownIDs_AreNotFound() {
	ctx := context.Background()
	t := suite.T()

	f, _ := suite.seed(testhelpers.DefaultGalleryOptions())

	_, err := suite.galleries.FindByAccessCode(ctx, "no-such-code")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))

	_, err = suite.galleries.FindByID(ctx, "not-a-uuid")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))

	_, err = suite.galleries.FindPhoto(ctx, uuid.NewString(), f.PhotoIDs[0])
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
}

func (suite *RepositoryTestSuite) Test_Gallery_ListPhotos_InUploadOrder() {
	ctx := context.Background()
	t := suite.T()

	f, _ := suite.seed(testhelpers.DefaultGalleryOptions())

	photos, err := suite.galleries.ListPhotos(ctx, f.GalleryID)

	require.NoError(t, err)
	require.Len(t, photos, 5)
	for i, photo := range photos {
		assert.Equal(t, f.PhotoIDs[i], photo.ID)
		assert.Equal(t, i, photo.UploadOrder)
	}
}

// ============================================================================
// SELECTION TESTS
// ============================================================================

func (suite *RepositoryTestSuite) Test_Toggle_FillsPackageThenAdditional() {
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	first := suite.toggle(gallery, f, 0)
	second := suite.toggle(gallery, f, 1)
	third := suite.toggle(gallery, f, 2)

	assert.True(t, first.Selected)
	assert.True(t, first.IsPackage())
	assert.True(t, second.IsPackage())
	assert.True(t, third.Selected)
	assert.False(t, third.IsPackage())
	assert.True(t, third.Selection.IsAdditionalPurchase)

	selections, err := suite.selections.ListForClient(context.Background(), f.GalleryID, f.ClientID)
	require.NoError(t, err)

	totals := domain.ComputeTotals(selections, gallery.AdditionalPhotoPrice)
	assert.Equal(t, 2, totals.PackageCount)
	assert.Equal(t, 1, totals.AdditionalCount)
	assert.Equal(t, "15.00", totals.TotalCost.Decimal())
}

func (suite *RepositoryTestSuite) Test_Toggle_FreedPackageSlotIsReused() {
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	suite.toggle(gallery, f, 0)
	suite.toggle(gallery, f, 1)
	suite.toggle(gallery, f, 2)

	removed := suite.toggle(gallery, f, 0)
	assert.False(t, removed.Selected)
	assert.Nil(t, removed.Selection)

	next := suite.toggle(gallery, f, 3)
	assert.True(t, next.IsPackage())

	selections, err := suite.selections.ListForClient(context.Background(), f.GalleryID, f.ClientID)
	require.NoError(t, err)

	totals := domain.ComputeTotals(selections, gallery.AdditionalPhotoPrice)
	assert.Equal(t, 2, totals.PackageCount)
	assert.Equal(t, 1, totals.AdditionalCount)
}

func (suite *RepositoryTestSuite) Test_Toggle_TwiceLeavesNoSelection() {
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	assert.True(t, suite.toggle(gallery, f, 0).Selected)
	assert.False(t, suite.toggle(gallery, f, 0).Selected)

	selections, err := suite.selections.ListForClient(context.Background(), f.GalleryID, f.ClientID)
	require.NoError(t, err)
	assert.Empty(t, selections)
}

// ============================================================================
// CONCURRENCY TESTS
// ============================================================================

func (suite *RepositoryTestSuite) Test_Toggle_ConcurrentSamePhoto_NeverDuplicates() {
	ctx := context.Background()
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := suite.selections.Toggle(ctx, gallery, f.PhotoIDs[0], f.ClientID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	selections, err := suite.selections.ListForClient(ctx, f.GalleryID, f.ClientID)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(selections), 1)
}

func (suite *RepositoryTestSuite) Test_Toggle_ConcurrentDistinctPhotos_RespectPackageSize() {
	ctx := context.Background()
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	var wg sync.WaitGroup
	errs := make(chan error, len(f.PhotoIDs))

	for _, photoID := range f.PhotoIDs {
		wg.Add(1)
		go func(photoID string) {
			defer wg.Done()
			if _, err := suite.selections.Toggle(ctx, gallery, photoID, f.ClientID); err != nil {
				errs <- err
			}
		}(photoID)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	selections, err := suite.selections.ListForClient(ctx, f.GalleryID, f.ClientID)
	require.NoError(t, err)
	require.Len(t, selections, 5)

	totals := domain.ComputeTotals(selections, gallery.AdditionalPhotoPrice)
	assert.Equal(t, 2, totals.PackageCount)
	assert.Equal(t, 3, totals.AdditionalCount)
	assert.Equal(t, "45.00", totals.TotalCost.Decimal())
}

// ============================================================================
// ORDER TESTS
// ============================================================================

func (suite *RepositoryTestSuite) newOrder(gallery *domain.Gallery, cents int64) *domain.Order {
	t := suite.T()
	totals := domain.Totals{AdditionalCount: 1, TotalCost: domain.Money{Amount: cents, Currency: "PLN"}}
	order, err := domain.NewOrder(uuid.NewString(), gallery, totals, "GAL-"+uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, suite.orders.Create(context.Background(), order))
	return order
}

func (suite *RepositoryTestSuite) Test_Order_CreateAndFindBySession() {
	ctx := context.Background()
	t := suite.T()
	_, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	order := suite.newOrder(gallery, 4500)
	require.NoError(t, suite.orders.AttachToken(ctx, order.ID, "TOKEN-1"))

	found, err := suite.orders.FindBySessionID(ctx, order.SessionID)

	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, domain.OrderPending, found.Status)
	assert.Equal(t, int64(4500), found.Total.Amount)
	assert.Equal(t, 1, found.AdditionalCount)
	require.NotNil(t, found.GatewayToken)
	assert.Equal(t, "TOKEN-1", *found.GatewayToken)

	_, err = suite.orders.FindBySessionID(ctx, "GAL-missing")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeOrderNotFound))
}

func (suite *RepositoryTestSuite) Test_Order_OnePendingPerGallery() {
	ctx := context.Background()
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	first := suite.newOrder(gallery, 1500)

	totals := domain.Totals{AdditionalCount: 1, TotalCost: domain.Money{Amount: 1500, Currency: "PLN"}}
	second, err := domain.NewOrder(uuid.NewString(), gallery, totals, "GAL-"+uuid.NewString())
	require.NoError(t, err)

	err = suite.orders.Create(ctx, second)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeCheckoutInProgress))

	_, err = suite.orders.MarkFailed(ctx, first.ID, "abandoned")
	require.NoError(t, err)
	require.NoError(t, suite.orders.Create(ctx, second))

	orders, err := suite.orders.ListForClient(ctx, f.GalleryID, f.ClientID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func (suite *RepositoryTestSuite) Test_Order_MarkPaid_TransitionsOnce() {
	ctx := context.Background()
	t := suite.T()
	_, gallery := suite.seed(testhelpers.DefaultGalleryOptions())
	order := suite.newOrder(gallery, 1500)

	const workers = 5
	var wg sync.WaitGroup
	var mu sync.Mutex
	transitions := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := suite.orders.MarkPaid(ctx, order.ID, 987654, time.Now().UTC())
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				transitions++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, transitions)

	failed, err := suite.orders.MarkFailed(ctx, order.ID, "late failure")
	require.NoError(t, err)
	assert.False(t, failed)

	stored, err := suite.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, stored.Status)
	require.NotNil(t, stored.GatewayOrderID)
	assert.Equal(t, int64(987654), *stored.GatewayOrderID)
	assert.NotNil(t, stored.PaidAt)
}

func (suite *RepositoryTestSuite) Test_Order_FindStalePending() {
	ctx := context.Background()
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())
	other, otherGallery := suite.seed(testhelpers.DefaultGalleryOptions())

	totals := domain.Totals{AdditionalCount: 1, TotalCost: domain.Money{Amount: 1500, Currency: "PLN"}}
	old, err := domain.NewOrder(uuid.NewString(), gallery, totals, "GAL-old")
	require.NoError(t, err)
	old.CreatedAt = time.Now().Add(-time.Hour).UTC()
	old.UpdatedAt = old.CreatedAt
	require.NoError(t, suite.orders.Create(ctx, old))

	otherOld, err := domain.NewOrder(uuid.NewString(), otherGallery, totals, "GAL-other-old")
	require.NoError(t, err)
	otherOld.CreatedAt = time.Now().Add(-time.Hour).UTC()
	otherOld.UpdatedAt = otherOld.CreatedAt
	require.NoError(t, suite.orders.Create(ctx, otherOld))

	_, fresh := suite.seed(testhelpers.DefaultGalleryOptions())
	suite.newOrder(fresh, 1500)

	cutoff := time.Now().Add(-30 * time.Minute)

	stale, err := suite.orders.FindStalePending(ctx, "", cutoff, 10)
	require.NoError(t, err)
	assert.Len(t, stale, 2)

	mine, err := suite.orders.FindStalePending(ctx, f.PhotographerID, cutoff, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, old.ID, mine[0].ID)

	theirs, err := suite.orders.FindStalePending(ctx, other.PhotographerID, cutoff, 10)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, otherOld.ID, theirs[0].ID)
}

func (suite *RepositoryTestSuite) Test_Order_List_FiltersByStatus() {
	ctx := context.Background()
	t := suite.T()
	f, gallery := suite.seed(testhelpers.DefaultGalleryOptions())

	paid := suite.newOrder(gallery, 1500)
	_, err := suite.orders.MarkPaid(ctx, paid.ID, 1, time.Now().UTC())
	require.NoError(t, err)
	suite.newOrder(gallery, 3000)

	all, err := suite.orders.List(ctx, application.OrderFilter{GalleryID: f.GalleryID})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyPaid, err := suite.orders.List(ctx, application.OrderFilter{
		GalleryID:      f.GalleryID,
		PhotographerID: f.PhotographerID,
		Status:         domain.OrderPaid,
	})
	require.NoError(t, err)
	require.Len(t, onlyPaid, 1)
	assert.Equal(t, paid.ID, onlyPaid[0].ID)

	page, err := suite.orders.List(ctx, application.OrderFilter{GalleryID: f.GalleryID, Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
