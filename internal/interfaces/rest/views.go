package rest

import (
	"github.com/DanielPopoola/proofing-gallery/internal/api"
	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/application/services"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/DanielPopoola/proofing-gallery/internal/worker"
)

func ToAPIGallery(g *domain.Gallery) api.Gallery {
	gallery := api.Gallery{
		Id:                   g.ID,
		Title:                g.Title,
		Status:               api.GalleryStatus(g.Status),
		PackagePhotosCount:   g.PackagePhotosCount,
		AdditionalPhotoPrice: g.AdditionalPhotoPrice.Decimal(),
		Currency:             g.AdditionalPhotoPrice.Currency,
		ExpiresAt:            g.ExpiresAt,
	}
	if g.Description != "" {
		gallery.Description = &g.Description
	}
	return gallery
}

func ToAPISummary(s *services.SelectionSummary) api.SelectionSummary {
	selections := make([]api.Selection, 0, len(s.Selections))
	for _, sel := range s.Selections {
		selections = append(selections, api.Selection{
			PhotoId:              sel.PhotoID,
			SelectedForPackage:   sel.SelectedForPackage,
			IsAdditionalPurchase: sel.IsAdditionalPurchase,
			CreatedAt:            sel.CreatedAt,
		})
	}

	return api.SelectionSummary{
		Selections:              selections,
		PackageSize:             s.PackageSize,
		PackageCount:            s.Totals.PackageCount,
		PackageRemaining:        max(s.PackageSize-s.Totals.PackageCount, 0),
		AdditionalCount:         s.Totals.AdditionalCount,
		PricePerAdditionalPhoto: s.Price.Decimal(),
		TotalCost:               s.Totals.TotalCost.Decimal(),
		Currency:                s.Price.Currency,
	}
}

func ToAPIOverview(o *services.GalleryOverview) api.GalleryOverview {
	chosen := make(map[string]domain.Selection, len(o.Summary.Selections))
	for _, sel := range o.Summary.Selections {
		chosen[sel.PhotoID] = sel
	}

	photos := make([]api.Photo, 0, len(o.Photos))
	for _, p := range o.Photos {
		sel, selected := chosen[p.ID]
		photos = append(photos, api.Photo{
			Id:                 p.ID,
			Filename:           p.Filename,
			ThumbnailUrl:       p.ThumbnailURL,
			WatermarkUrl:       p.WatermarkURL,
			Width:              p.Width,
			Height:             p.Height,
			Selected:           selected,
			SelectedForPackage: selected && sel.SelectedForPackage,
		})
	}

	return api.GalleryOverview{
		Gallery: ToAPIGallery(o.Gallery),
		Photos:  photos,
		Summary: ToAPISummary(o.Summary),
	}
}

func ToAPIToggle(photoID string, r domain.SelectionResult) api.ToggleResult {
	v := api.ToggleResult{PhotoId: photoID, Selected: r.Selected}
	if r.Selection != nil {
		v.SelectedForPackage = r.Selection.SelectedForPackage
		v.IsAdditionalPurchase = r.Selection.IsAdditionalPurchase
	}
	return v
}

func ToAPICheckout(r *services.CheckoutResult) api.CheckoutSession {
	return api.CheckoutSession{
		OrderId:         r.OrderID,
		SessionId:       r.SessionID,
		RedirectUrl:     r.RedirectURL,
		Amount:          r.Total.Decimal(),
		Currency:        r.Total.Currency,
		AdditionalCount: r.AdditionalCount,
	}
}

func ToAPIOrder(o *domain.Order) api.Order {
	return api.Order{
		Id:              o.ID,
		GalleryId:       o.GalleryID,
		SessionId:       o.SessionID,
		Status:          api.OrderStatus(o.Status),
		Amount:          o.Total.Decimal(),
		Currency:        o.Total.Currency,
		AdditionalCount: o.AdditionalCount,
		GatewayOrderId:  o.GatewayOrderID,
		FailureReason:   o.FailureReason,
		CreatedAt:       o.CreatedAt,
		PaidAt:          o.PaidAt,
	}
}

func ToAPIOrders(orders []*domain.Order) []api.Order {
	out := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToAPIOrder(o))
	}
	return out
}

// ToAPIOrderStatus is what the client polls after returning from the gateway.
func ToAPIOrderStatus(o *domain.Order) api.OrderStatusResult {
	return api.OrderStatusResult{
		SessionId: o.SessionID,
		Status:    api.OrderStatus(o.Status),
		Amount:    o.Total.Decimal(),
		Currency:  o.Total.Currency,
		PaidAt:    o.PaidAt,
	}
}

func ToAPISweepSummary(s worker.Summary) api.SweepSummary {
	return api.SweepSummary{
		Checked: s.Checked,
		Paid:    s.Paid,
		Failed:  s.Failed,
		Pending: s.Pending,
	}
}

// ToNotification maps a gateway callback body onto the application's
// notification. Optional fields default to zero.
func ToNotification(b *api.P24Notification) application.Notification {
	n := application.Notification{
		MerchantID: b.MerchantId,
		PosID:      b.PosId,
		SessionID:  b.SessionId,
		Amount:     b.Amount,
		Currency:   b.Currency,
		OrderID:    b.OrderId,
		Sign:       b.Sign,
	}
	if b.OriginAmount != nil {
		n.OriginAmount = *b.OriginAmount
	}
	if b.MethodId != nil {
		n.MethodID = *b.MethodId
	}
	if b.Statement != nil {
		n.Statement = *b.Statement
	}
	return n
}
