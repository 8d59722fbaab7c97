package handlers

import (
	"context"

	"github.com/DanielPopoola/proofing-gallery/internal/api"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest"
)

func (h *Handlers) GetGallery(
	ctx context.Context,
	request api.GetGalleryRequestObject,
) (api.GetGalleryResponseObject, error) {
	overview, err := h.access.Overview(ctx, request.Code)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.GetGallerydefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return api.GetGallery200JSONResponse{
		Success: true,
		Data:    rest.ToAPIOverview(overview),
	}, nil
}

func (h *Handlers) ToggleSelection(
	ctx context.Context,
	request api.ToggleSelectionRequestObject,
) (api.ToggleSelectionResponseObject, error) {
	gallery, err := h.access.Resolve(ctx, request.Code)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.ToggleSelectiondefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	result, err := h.selections.Toggle(ctx, request.PhotoID, gallery.ID, gallery.ClientID)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.ToggleSelectiondefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return api.ToggleSelection200JSONResponse{
		Success: true,
		Data:    rest.ToAPIToggle(request.PhotoID, result),
	}, nil
}

func (h *Handlers) GetSelections(
	ctx context.Context,
	request api.GetSelectionsRequestObject,
) (api.GetSelectionsResponseObject, error) {
	gallery, err := h.access.Resolve(ctx, request.Code)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.GetSelectionsdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	summary, err := h.selections.Summary(ctx, gallery)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.GetSelectionsdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return api.GetSelections200JSONResponse{
		Success: true,
		Data:    rest.ToAPISummary(summary),
	}, nil
}

func (h *Handlers) Checkout(
	ctx context.Context,
	request api.CheckoutRequestObject,
) (api.CheckoutResponseObject, error) {
	gallery, err := h.access.Resolve(ctx, request.Code)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.CheckoutdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	result, err := h.checkout.InitiateCheckout(ctx, gallery.ID)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.CheckoutdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return api.Checkout201JSONResponse{
		Success: true,
		Data:    rest.ToAPICheckout(result),
	}, nil
}

func (h *Handlers) GetOrderStatus(
	ctx context.Context,
	request api.GetOrderStatusRequestObject,
) (api.GetOrderStatusResponseObject, error) {
	order, err := h.orders.GetBySessionID(ctx, request.SessionID)
	if err != nil {
		status, body := rest.Failure(err, h.logger)
		return api.GetOrderStatusdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return api.GetOrderStatus200JSONResponse{
		Success: true,
		Data:    rest.ToAPIOrderStatus(order),
	}, nil
}
