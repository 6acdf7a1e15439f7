package conversation

import (
	"context"
	"errors"

	"github.com/bosesayankolkata/dairyexpress/internal/models"
)

// ErrNotFound is returned by Catalog lookups that match nothing.
var ErrNotFound = errors.New("not found")

// Catalog is the read-only view of the product and pincode data the dialogue
// offers to customers. Implementations must filter out inactive nodes and
// return lists in a stable order, since menu numbering maps 1-based indices
// onto these results across the list-then-select pair of messages.
type Catalog interface {
	ActiveCategories(ctx context.Context) ([]models.Category, error)
	ActiveProductTypes(ctx context.Context, categoryID string) ([]models.ProductType, error)
	ActiveCharacteristics(ctx context.Context, productTypeID string) ([]models.Characteristic, error)
	ActiveSizes(ctx context.Context, characteristicID string) ([]models.Size, error)
	ServiceablePincode(ctx context.Context, pincode string) (*models.PinCode, error)
}

// Orders materializes a confirmed conversation into business records: the
// customer is upserted by WhatsApp number and a single-item order is created.
// This is the only side effect the engine performs outside conversation state.
type Orders interface {
	PlaceOrder(ctx context.Context, phoneNumber string, sel Selections) (*models.Order, error)
}
