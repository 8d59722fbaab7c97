package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/application/services"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/proofing-gallery/internal/worker"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "test-secret"

type fakeAccess struct {
	gallery  *domain.Gallery
	overview *services.GalleryOverview
	err      error
}

func (f *fakeAccess) Resolve(_ context.Context, code string) (*domain.Gallery, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gallery, nil
}

func (f *fakeAccess) Overview(_ context.Context, code string) (*services.GalleryOverview, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.overview, nil
}

type fakeSelections struct {
	toggled []string
	result  domain.SelectionResult
	summary *services.SelectionSummary
}

func (f *fakeSelections) Toggle(_ context.Context, photoID, galleryID, clientID string) (domain.SelectionResult, error) {
	f.toggled = append(f.toggled, photoID+"|"+galleryID+"|"+clientID)
	return f.result, nil
}

func (f *fakeSelections) Summary(context.Context, *domain.Gallery) (*services.SelectionSummary, error) {
	return f.summary, nil
}

type fakeCheckout struct {
	result *services.CheckoutResult
	err    error
}

func (f *fakeCheckout) InitiateCheckout(context.Context, string) (*services.CheckoutResult, error) {
	return f.result, f.err
}

type fakeCallbacks struct {
	received []application.Notification
	err      error
}

func (f *fakeCallbacks) HandleCallback(_ context.Context, n application.Notification) error {
	f.received = append(f.received, n)
	return f.err
}

type fakeOrders struct {
	order        *domain.Order
	listedFor    string
	listedFilter application.OrderFilter
}

func (f *fakeOrders) GetBySessionID(_ context.Context, sessionID string) (*domain.Order, error) {
	if f.order == nil || f.order.SessionID != sessionID {
		return nil, domain.NewOrderNotFoundError(sessionID)
	}
	return f.order, nil
}

func (f *fakeOrders) ListForGallery(_ context.Context, photographerID, galleryID string, filter application.OrderFilter) ([]*domain.Order, error) {
	f.listedFor = photographerID + "|" + galleryID
	f.listedFilter = filter
	if f.order == nil {
		return nil, nil
	}
	return []*domain.Order{f.order}, nil
}

type fakeSweeper struct {
	summary worker.Summary
	ranFor  []string
}

func (f *fakeSweeper) RunFor(_ context.Context, photographerID string) (worker.Summary, error) {
	f.ranFor = append(f.ranFor, photographerID)
	return f.summary, nil
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping(context.Context) error { return f.err }

type fixture struct {
	access     *fakeAccess
	selections *fakeSelections
	checkout   *fakeCheckout
	callbacks  *fakeCallbacks
	orders     *fakeOrders
	sweeper    *fakeSweeper
	db         *fakePinger
	server     http.Handler
}

func identity(next http.Handler) http.Handler { return next }

func newFixture(t *testing.T) *fixture {
	return newFixtureWithEdge(t, identity)
}

func newFixtureWithEdge(t *testing.T, edge func(http.Handler) http.Handler) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	price := domain.Money{Amount: 1500, Currency: "PLN"}
	gallery := &domain.Gallery{
		ID:                   "gallery-1",
		PhotographerID:       "photographer-1",
		ClientID:             "client-1",
		Title:                "Wedding",
		AccessCode:           "code-1",
		Status:               domain.GalleryActive,
		PackagePhotosCount:   2,
		AdditionalPhotoPrice: price,
	}
	selections := []domain.Selection{
		{PhotoID: "photo-1", SelectedForPackage: true},
		{PhotoID: "photo-2", SelectedForPackage: true},
		{PhotoID: "photo-3", IsAdditionalPurchase: true},
	}
	summary := &services.SelectionSummary{
		Selections:  selections,
		Totals:      domain.ComputeTotals(selections, price),
		PackageSize: 2,
		Price:       price,
	}

	f := &fixture{
		access: &fakeAccess{
			gallery: gallery,
			overview: &services.GalleryOverview{
				Gallery: gallery,
				Photos: []domain.Photo{
					{ID: "photo-1", Filename: "a.jpg"},
					{ID: "photo-3", Filename: "c.jpg"},
					{ID: "photo-4", Filename: "d.jpg"},
				},
				Summary: summary,
			},
		},
		selections: &fakeSelections{summary: summary},
		checkout:   &fakeCheckout{},
		callbacks:  &fakeCallbacks{},
		orders:     &fakeOrders{},
		sweeper:    &fakeSweeper{},
		db:         &fakePinger{},
	}

	h := handlers.NewHandlers(f.access, f.selections, f.checkout, f.callbacks, f.orders, f.sweeper, f.db, logger)
	server, err := h.Routes(middleware.Auth([]byte(jwtSecret), "", logger), edge)
	require.NoError(t, err)
	f.server = server
	return f
}

func (f *fixture) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func bearer(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestGetGallery_ReturnsOverview(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/access/code-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "gallery-1", data["gallery"].(map[string]any)["id"])
	assert.Equal(t, "15.00", data["gallery"].(map[string]any)["additional_photo_price"])

	photos := data["photos"].([]any)
	require.Len(t, photos, 3)
	assert.Equal(t, true, photos[0].(map[string]any)["selected_for_package"])
	assert.Equal(t, true, photos[1].(map[string]any)["selected"])
	assert.Equal(t, false, photos[1].(map[string]any)["selected_for_package"])
	assert.Equal(t, false, photos[2].(map[string]any)["selected"])

	summary := data["summary"].(map[string]any)
	assert.Equal(t, "15.00", summary["total_cost"])
	assert.EqualValues(t, 1, summary["additional_count"])
	assert.EqualValues(t, 0, summary["package_remaining"])
}

func TestGetGallery_Unavailable(t *testing.T) {
	f := newFixture(t)
	f.access.err = domain.NewGalleryExpiredError("gallery-1")

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/access/code-1", nil))

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, domain.ErrCodeGalleryUnavailable, body["error"].(map[string]any)["code"])
}

func TestToggleSelection_UsesGalleryClient(t *testing.T) {
	f := newFixture(t)
	f.selections.result = domain.SelectionResult{
		Selected:  true,
		Selection: &domain.Selection{PhotoID: "photo-9", IsAdditionalPurchase: true},
	}

	rec, body := f.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/access/code-1/photos/photo-9/toggle", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"photo-9|gallery-1|client-1"}, f.selections.toggled)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["selected"])
	assert.Equal(t, true, data["is_additional_purchase"])
}

func TestGetSelections(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/access/code-1/selections", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Len(t, data["selections"], 3)
	assert.EqualValues(t, 2, data["package_count"])
}

func TestCheckout_Created(t *testing.T) {
	f := newFixture(t)
	f.checkout.result = &services.CheckoutResult{
		OrderID:     "order-1",
		SessionID:   "GAL-gallery-1-x",
		RedirectURL: "https://sandbox.przelewy24.pl/trnRequest/T1",
		Total:       domain.Money{Amount: 3000, Currency: "PLN"},
	}

	rec, body := f.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/access/code-1/checkout", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "https://sandbox.przelewy24.pl/trnRequest/T1", data["redirect_url"])
	assert.Equal(t, "30.00", data["amount"])
}

func TestCheckout_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"nothing to pay", domain.NewNoChargeableItemsError(), http.StatusUnprocessableEntity, domain.ErrCodeNoChargeableItems},
		{"gateway failure", application.NewPaymentInitError(errors.New("p24 register: Incorrect CRC value")), http.StatusBadGateway, application.ErrCodePaymentInit},
		{"storage", application.NewStorageError(errors.New("conn refused")), http.StatusServiceUnavailable, application.ErrCodeStorage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.checkout.err = tc.err

			rec, body := f.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/access/code-1/checkout", nil))

			assert.Equal(t, tc.status, rec.Code)
			errBody := body["error"].(map[string]any)
			assert.Equal(t, tc.code, errBody["code"])
			assert.NotContains(t, errBody["message"], "conn refused")
			assert.NotContains(t, errBody["message"], "Incorrect CRC value")
		})
	}
}

func TestGetOrderStatus(t *testing.T) {
	f := newFixture(t)
	f.orders.order = &domain.Order{
		ID:        "order-1",
		SessionID: "GAL-1-abc",
		Status:    domain.OrderPaid,
		Total:     domain.Money{Amount: 1500, Currency: "PLN"},
	}

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/orders/GAL-1-abc/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paid", body["data"].(map[string]any)["status"])

	rec, _ = f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/orders/GAL-unknown/status", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

const notificationJSON = `{"merchantId":11111,"posId":11111,"sessionId":"GAL-1-abc","amount":1500,` +
	`"originAmount":1500,"currency":"PLN","orderId":987654,"methodId":25,"statement":"p24-A1-B2","sign":"abc"}`

func jsonNotification(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, handlers.CallbackPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPaymentStatus_JSONAcknowledged(t *testing.T) {
	f := newFixture(t)
	req := jsonNotification(notificationJSON)

	rec, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", body["status"])
	require.Len(t, f.callbacks.received, 1)
	assert.Equal(t, int64(987654), f.callbacks.received[0].OrderID)
	assert.Equal(t, "p24-A1-B2", f.callbacks.received[0].Statement)
}

func TestPaymentStatus_FormBody(t *testing.T) {
	f := newFixture(t)
	form := url.Values{
		"merchantId": {"11111"},
		"posId":      {"11111"},
		"sessionId":  {"GAL-1-abc"},
		"amount":     {"1500"},
		"currency":   {"PLN"},
		"orderId":    {"987654"},
		"methodId":   {"25"},
		"sign":       {"abc"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/p24/status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, _ := f.do(t, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, f.callbacks.received, 1)
	assert.Equal(t, int64(1500), f.callbacks.received[0].Amount)
	assert.Equal(t, 11111, f.callbacks.received[0].PosID)
}

func TestPaymentStatus_Rejections(t *testing.T) {
	t.Run("invalid signature", func(t *testing.T) {
		f := newFixture(t)
		f.callbacks.err = domain.NewInvalidSignatureError("GAL-1-abc")
		req := jsonNotification(notificationJSON)

		rec, body := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"status": "ERROR"}, body)
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		f := newFixture(t)
		req := jsonNotification(`{"sessionId":"GAL-1-abc"}`)

		rec, body := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ERROR", body["status"])
		assert.Empty(t, f.callbacks.received)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)
		req := jsonNotification(`{`)

		rec, _ := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage outage asks for redelivery", func(t *testing.T) {
		f := newFixture(t)
		f.callbacks.err = application.NewStorageError(errors.New("db down"))
		req := jsonNotification(notificationJSON)

		rec, body := f.do(t, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "ERROR", body["status"])
	})
}

func TestPhotographerRoutes_RequireBearerToken(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/photographer/galleries/gallery-1/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, application.ErrCodeUnauthorized, body["error"].(map[string]any)["code"])

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photographer/reconcile", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec, _ = f.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPhotographerRoutes_RejectForeignSignature(t *testing.T) {
	f := newFixture(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "photographer-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/photographer/galleries/gallery-1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec, _ := f.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListGalleryOrders(t *testing.T) {
	f := newFixture(t)
	f.orders.order = &domain.Order{
		ID:        "order-1",
		GalleryID: "gallery-1",
		SessionID: "GAL-1-abc",
		Status:    domain.OrderPaid,
		Total:     domain.Money{Amount: 1500, Currency: "PLN"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/photographer/galleries/gallery-1/orders?status=paid&limit=10&offset=5", nil)
	req.Header.Set("Authorization", bearer(t, "photographer-1"))
	rec, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "photographer-1|gallery-1", f.orders.listedFor)
	assert.Equal(t, application.OrderFilter{Status: domain.OrderPaid, Limit: 10, Offset: 5}, f.orders.listedFilter)
	assert.Len(t, body["data"], 1)
}

func TestListGalleryOrders_BadFilter(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/photographer/galleries/gallery-1/orders?status=refunded", nil)
	req.Header.Set("Authorization", bearer(t, "photographer-1"))
	rec, _ := f.do(t, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.orders.listedFor)
}

func TestReconcile_ReturnsSummary(t *testing.T) {
	f := newFixture(t)
	f.sweeper.summary = worker.Summary{Checked: 3, Paid: 1, Failed: 1, Pending: 1}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/photographer/reconcile", nil)
	req.Header.Set("Authorization", bearer(t, "photographer-1"))
	rec, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, body["data"].(map[string]any)["checked"])
	assert.Equal(t, []string{"photographer-1"}, f.sweeper.ranFor)
}

func TestListGalleryOrders_PagingOutOfRange(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/photographer/galleries/gallery-1/orders?limit=0", nil)
	req.Header.Set("Authorization", bearer(t, "photographer-1"))
	rec, body := f.do(t, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, application.ErrCodeInvalidInput, body["error"].(map[string]any)["code"])
	assert.Empty(t, f.orders.listedFor)
}

func TestPaymentStatus_NotRateLimited(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := middleware.NewRateLimiter(60, 1)
	f := newFixtureWithEdge(t, limiter.Middleware(logger))

	for i := 0; i < 5; i++ {
		rec, body := f.do(t, jsonNotification(notificationJSON))
		require.Equal(t, http.StatusOK, rec.Code, "notification %d", i)
		assert.Equal(t, "OK", body["status"])
	}
	assert.Len(t, f.callbacks.received, 5)

	rec, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/access/code-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/access/code-1", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, application.ErrCodeRateLimited, body["error"].(map[string]any)["code"])
}

func TestDocsServed(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["paths"], handlers.CallbackPath)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec, _ := f.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	f.db.err = errors.New("down")
	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", body["status"])
}
