package services

import (
	"context"
	"errors"

	"github.com/sultumov/AllergyTrackerr/models"
)

// ErrProductNotFound means the source answered and explicitly has no entry
// for the barcode. Anything else a Lookup returns is a transport, status, or
// decoding failure.
var ErrProductNotFound = errors.New("product not found")

// ProductSource is one remote product database. Sources are tried in the
// order the resolver decides; each lookup either yields a normalized
// Product, ErrProductNotFound, or a transient error.
type ProductSource interface {
	Name() string
	Lookup(ctx context.Context, barcode string) (*models.Product, error)
}
