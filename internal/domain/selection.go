package domain

import "time"

// Selection records that a client picked a photo. Exactly one of
// SelectedForPackage and IsAdditionalPurchase is true.
type Selection struct {
	ID                   string
	PhotoID              string
	GalleryID            string
	ClientID             string
	SelectedForPackage   bool
	IsAdditionalPurchase bool
	CreatedAt            time.Time
}

// SelectionResult is the state of a (photo, client) pair after a toggle.
// Selection is nil when Selected is false.
type SelectionResult struct {
	Selected  bool
	Selection *Selection
}

func (r SelectionResult) IsPackage() bool {
	return r.Selected && r.Selection != nil && r.Selection.SelectedForPackage
}
