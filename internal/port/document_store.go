package port

import (
	"context"

	"cmcreport/internal/domain"
)

// SaveOptions controls how Save treats an existing document.
type SaveOptions struct {
	// Merge keeps fields that are not present in the new write.
	Merge bool
}

// ChangeFunc receives the full snapshot of a collection after every change.
type ChangeFunc func(docs []domain.StoredDocument)

// DocumentStore is the persistence backend for guides, categories and
// formulas. Writes are last-writer-wins.
type DocumentStore interface {
	// List returns every document of a collection. A non-empty orderBy that
	// the backend cannot sort on fails with domain.ErrIndexUnavailable.
	List(ctx context.Context, collection, orderBy string) ([]domain.StoredDocument, error)
	Get(ctx context.Context, collection, id string) (*domain.StoredDocument, error)
	Save(ctx context.Context, collection, id string, fields map[string]any, opts SaveOptions) error
	Delete(ctx context.Context, collection, id string) error
	// Subscribe delivers an initial snapshot and then one per change until
	// the returned function is called or ctx is done.
	Subscribe(ctx context.Context, collection string, onChange ChangeFunc) (func(), error)
}
