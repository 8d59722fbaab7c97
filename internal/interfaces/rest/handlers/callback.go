package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/proofing-gallery/internal/api"
	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/interfaces/rest"
)

// PaymentStatus receives the gateway's status notification. The body never
// carries internal detail; the gateway only acts on the status code.
func (h *Handlers) PaymentStatus(
	ctx context.Context,
	request api.PaymentStatusRequestObject,
) (api.PaymentStatusResponseObject, error) {
	body := request.JSONBody
	if body == nil {
		body = request.FormdataBody
	}
	if body == nil {
		return h.rejectNotification(ctx, "", application.NewInvalidInputError(errors.New("empty notification"))), nil
	}

	n := rest.ToNotification(body)
	if err := h.validate.Struct(n); err != nil {
		return h.rejectNotification(ctx, n.SessionID, application.NewInvalidInputError(err)), nil
	}

	if err := h.callbacks.HandleCallback(ctx, n); err != nil {
		return h.rejectNotification(ctx, n.SessionID, err), nil
	}

	return api.PaymentStatus200JSONResponse{Status: "OK"}, nil
}

func (h *Handlers) rejectNotification(ctx context.Context, sessionID string, err error) api.PaymentStatusResponseObject {
	statusCode := application.ToHTTPStatus(err)
	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, "payment notification not accepted",
		"status", statusCode,
		"code", application.ToErrorCode(err),
		"session_id", sessionID,
		"error", err)

	return api.PaymentStatusdefaultJSONResponse{
		Body:       api.Ack{Status: "ERROR"},
		StatusCode: statusCode,
	}
}
