package catalog

import (
	"context"
	"errors"
	"log"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// ListOrdered lists a collection sorted by orderBy. When the backend has no
// index for that field the query is retried exactly once without ordering.
// Every other failure surfaces as domain.ErrPersistence.
func ListOrdered(ctx context.Context, docs port.DocumentStore, collection, orderBy string) ([]domain.StoredDocument, error) {
	out, err := docs.List(ctx, collection, orderBy)
	if err == nil {
		return out, nil
	}
	if orderBy == "" || !errors.Is(err, domain.ErrIndexUnavailable) {
		return nil, persistenceError(err)
	}

	log.Printf("catalog.ListOrdered: %s has no index on %q, listing unordered", collection, orderBy)
	out, err = docs.List(ctx, collection, "")
	if err != nil {
		return nil, persistenceError(err)
	}
	return out, nil
}
