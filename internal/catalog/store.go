// Package catalog holds guides, incident categories and calculator formulas,
// kept in sync with the document store through subscriptions.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// Default field values for new documents.
const (
	DefaultGuideCategory = "incidencias"
	DefaultUpdatedBy     = "admin"
	UntitledCategory     = "Untitled Category"
	UntitledFormula      = "Untitled Formula"
)

// Store is the process-wide catalog. Remote snapshots replace the previous
// remote state wholesale and are layered over the built-in defaults.
type Store struct {
	docs port.DocumentStore
	now  func() time.Time

	mu         sync.RWMutex
	guides     map[string]domain.Guide // keyed by title
	categories []domain.Category
	formulas   []domain.Formula
	unsubs     []func()
}

// NewStore creates a catalog backed by docs. Call Start to begin syncing.
func NewStore(docs port.DocumentStore) *Store {
	return &Store{
		docs:   docs,
		now:    func() time.Time { return time.Now().UTC() },
		guides: map[string]domain.Guide{},
	}
}

// Start subscribes to the guide, category and formula collections. A failed
// subscription falls back to a one-off list so the catalog still serves the
// last stored state; the returned error reports what could not be loaded.
func (s *Store) Start(ctx context.Context) error {
	subs := []struct {
		collection string
		apply      func([]domain.StoredDocument)
	}{
		{domain.CollectionGuides, s.applyGuides},
		{domain.CollectionCategories, s.applyCategories},
		{domain.CollectionFormulas, s.applyFormulas},
	}

	var errs []error
	for _, sub := range subs {
		unsub, err := s.docs.Subscribe(ctx, sub.collection, sub.apply)
		if err == nil {
			s.mu.Lock()
			s.unsubs = append(s.unsubs, unsub)
			s.mu.Unlock()
			continue
		}
		log.Printf("catalog.Start: subscribing to %s failed, loading once: %v", sub.collection, err)
		docs, listErr := ListOrdered(ctx, s.docs, sub.collection, "")
		if listErr != nil {
			errs = append(errs, listErr)
			continue
		}
		sub.apply(docs)
	}
	return errors.Join(errs...)
}

// Synced reports whether every collection has a live subscription. A catalog
// started from one-off lists keeps serving but misses remote edits.
func (s *Store) Synced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.unsubs) == 3
}

// Close cancels every subscription.
func (s *Store) Close() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, u := range unsubs {
		u()
	}
}

func (s *Store) applyGuides(docs []domain.StoredDocument) {
	guides := make(map[string]domain.Guide, len(docs))
	for _, d := range docs {
		g := guideFromDocument(d)
		key := g.Title
		if key == "" {
			key = g.Slug
		}
		if key != "" {
			guides[key] = g
		}
	}
	s.mu.Lock()
	s.guides = guides
	s.mu.Unlock()
}

func (s *Store) applyCategories(docs []domain.StoredDocument) {
	cats := make([]domain.Category, 0, len(docs))
	for _, d := range docs {
		cats = append(cats, categoryFromDocument(d))
	}
	sortCategories(cats)
	s.mu.Lock()
	s.categories = cats
	s.mu.Unlock()
}

func (s *Store) applyFormulas(docs []domain.StoredDocument) {
	formulas := make([]domain.Formula, 0, len(docs))
	for _, d := range docs {
		formulas = append(formulas, formulaFromDocument(d))
	}
	sort.SliceStable(formulas, func(i, j int) bool { return formulas[i].Name < formulas[j].Name })
	s.mu.Lock()
	s.formulas = formulas
	s.mu.Unlock()
}

// guideMapLocked merges stored guides over the defaults.
func (s *Store) guideMapLocked() map[string]string {
	m := make(map[string]string, len(DefaultGuides)+len(s.guides))
	for k, v := range DefaultGuides {
		m[k] = v
	}
	for k, g := range s.guides {
		m[k] = g.Content
	}
	return m
}

// Guide resolves the guide text for an incident name: exact stored or
// default match, then the longest guide key contained in the name
// (case-insensitive), then the generic default.
func (s *Store) Guide(name string) string {
	s.mu.RLock()
	m := s.guideMapLocked()
	s.mu.RUnlock()

	if name == "" {
		return DefaultGuides[DefaultGuideKey]
	}
	if g, ok := m[name]; ok {
		return g
	}
	upper := strings.ToUpper(name)
	best := ""
	for k := range m {
		if k == "" || k == DefaultGuideKey {
			continue
		}
		if strings.Contains(upper, strings.ToUpper(k)) && (len(k) > len(best) || (len(k) == len(best) && k < best)) {
			best = k
		}
	}
	if best != "" {
		return m[best]
	}
	return DefaultGuides[DefaultGuideKey]
}

// Guides returns every guide title with its current content.
func (s *Store) Guides() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guideMapLocked()
}

// SaveGuide stores the guide under its fixed slug and applies it locally
// without waiting for the subscription echo.
func (s *Store) SaveGuide(ctx context.Context, name, content, updatedBy string) (*domain.Guide, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: guide name is required", domain.ErrInvalidRequest)
	}
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}
	g := domain.Guide{
		Slug:        GuideSlug(name),
		Title:       name,
		Content:     content,
		Category:    DefaultGuideCategory,
		Audiences:   []string{},
		IsPublished: true,
		UpdatedAt:   s.now(),
		UpdatedBy:   updatedBy,
	}
	if err := s.docs.Save(ctx, domain.CollectionGuides, g.Slug, guideFields(g), port.SaveOptions{Merge: true}); err != nil {
		log.Printf("catalog.SaveGuide: %s: %v", g.Slug, err)
		return nil, persistenceError(err)
	}

	s.mu.Lock()
	s.guides[name] = g
	s.mu.Unlock()
	return &g, nil
}

// Categories returns stored categories ordered by Order, or the defaults
// when none are stored.
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.categories
	if len(src) == 0 {
		src = DefaultCategories
	}
	out := make([]domain.Category, len(src))
	copy(out, src)
	return out
}

// Category finds a category by ID, slug or case-insensitive name.
func (s *Store) Category(key string) (*domain.Category, error) {
	for _, c := range s.Categories() {
		if c.ID == key || c.Slug == key || strings.EqualFold(c.Name, key) {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SaveCategory creates the category when ID is empty, otherwise merges the
// update into the stored document.
func (s *Store) SaveCategory(ctx context.Context, c domain.Category, updatedBy string) (*domain.Category, error) {
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}
	merge := c.ID != ""
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if strings.TrimSpace(c.Name) == "" {
		c.Name = UntitledCategory
	}
	if err := s.docs.Save(ctx, domain.CollectionCategories, c.ID, categoryFields(c, updatedBy, s.now()), port.SaveOptions{Merge: merge}); err != nil {
		log.Printf("catalog.SaveCategory: %s: %v", c.ID, err)
		return nil, persistenceError(err)
	}

	s.mu.Lock()
	s.categories = upsert(s.categories, c, func(x domain.Category) string { return x.ID })
	sortCategories(s.categories)
	s.mu.Unlock()
	return &c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.docs.Delete(ctx, domain.CollectionCategories, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		log.Printf("catalog.DeleteCategory: %s: %v", id, err)
		return persistenceError(err)
	}
	s.mu.Lock()
	s.categories = remove(s.categories, func(x domain.Category) bool { return x.ID == id })
	s.mu.Unlock()
	return nil
}

// Formulas returns the stored formulas ordered by name.
func (s *Store) Formulas() []domain.Formula {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Formula, len(s.formulas))
	copy(out, s.formulas)
	return out
}

// SaveFormula creates the formula when ID is empty, otherwise merges the
// update into the stored document.
func (s *Store) SaveFormula(ctx context.Context, f domain.Formula, updatedBy string) (*domain.Formula, error) {
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}
	merge := f.ID != ""
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if strings.TrimSpace(f.Name) == "" {
		f.Name = UntitledFormula
	}
	if err := s.docs.Save(ctx, domain.CollectionFormulas, f.ID, formulaFields(f, updatedBy, s.now()), port.SaveOptions{Merge: merge}); err != nil {
		log.Printf("catalog.SaveFormula: %s: %v", f.ID, err)
		return nil, persistenceError(err)
	}

	s.mu.Lock()
	s.formulas = upsert(s.formulas, f, func(x domain.Formula) string { return x.ID })
	sort.SliceStable(s.formulas, func(i, j int) bool { return s.formulas[i].Name < s.formulas[j].Name })
	s.mu.Unlock()
	return &f, nil
}

func (s *Store) DeleteFormula(ctx context.Context, id string) error {
	if err := s.docs.Delete(ctx, domain.CollectionFormulas, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		log.Printf("catalog.DeleteFormula: %s: %v", id, err)
		return persistenceError(err)
	}
	s.mu.Lock()
	s.formulas = remove(s.formulas, func(x domain.Formula) bool { return x.ID == id })
	s.mu.Unlock()
	return nil
}

func sortCategories(cats []domain.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Order != cats[j].Order {
			return cats[i].Order < cats[j].Order
		}
		return cats[i].Name < cats[j].Name
	})
}

func upsert[T any](list []T, item T, key func(T) string) []T {
	for i := range list {
		if key(list[i]) == key(item) {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

func remove[T any](list []T, match func(T) bool) []T {
	out := list[:0]
	for _, x := range list {
		if !match(x) {
			out = append(out, x)
		}
	}
	return out
}

func persistenceError(err error) error {
	if errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}
