package handlers

import (
	"context"

	"github.com/DanielPopoola/proofing-gallery/internal/api"
	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest/middleware"
)

func (h *Handlers) ListGalleryOrders(
	ctx context.Context,
	request api.ListGalleryOrdersRequestObject,
) (api.ListGalleryOrdersResponseObject, error) {
	photographerID, ok := middleware.PhotographerID(ctx)
	if !ok {
		status, body := rest.Failure(application.NewUnauthorizedError("Missing or invalid bearer token"), h.logger)
		return api.ListGalleryOrdersdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	orders, err := h.orders.ListForGallery(ctx, photographerID, request.GalleryID, orderFilter(request.Params))
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.ListGalleryOrdersdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return api.ListGalleryOrders200JSONResponse{
		Success: true,
		Data:    rest.ToAPIOrders(orders),
	}, nil
}

// ReconcileStaleOrders sweeps the caller's stale pending orders on demand.
func (h *Handlers) ReconcileStaleOrders(
	ctx context.Context,
	_ api.ReconcileStaleOrdersRequestObject,
) (api.ReconcileStaleOrdersResponseObject, error) {
	photographerID, _ := middleware.PhotographerID(ctx)

	summary, err := h.sweeper.RunFor(ctx, photographerID)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.ReconcileStaleOrdersdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return api.ReconcileStaleOrders200JSONResponse{
		Success: true,
		Data:    rest.ToAPISweepSummary(summary),
	}, nil
}

func orderFilter(p api.ListGalleryOrdersParams) application.OrderFilter {
	var filter application.OrderFilter
	if p.Status != nil {
		filter.Status = domain.OrderStatus(*p.Status)
	}
	if p.Limit != nil {
		filter.Limit = *p.Limit
	}
	if p.Offset != nil {
		filter.Offset = *p.Offset
	}
	return filter
}
