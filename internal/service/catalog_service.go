package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cmcreport/internal/domain"
)

// Catalog is the catalog store the service delegates to.
type Catalog interface {
	Guide(name string) string
	Guides() map[string]string
	SaveGuide(ctx context.Context, name, content, updatedBy string) (*domain.Guide, error)
	Categories() []domain.Category
	Category(key string) (*domain.Category, error)
	SaveCategory(ctx context.Context, c domain.Category, updatedBy string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	Formulas() []domain.Formula
	SaveFormula(ctx context.Context, f domain.Formula, updatedBy string) (*domain.Formula, error)
	DeleteFormula(ctx context.Context, id string) error
}

// CatalogService exposes guides, incident categories and formulas.
// Writes are expected to be admin-gated by the caller.
type CatalogService interface {
	ListGuides(ctx context.Context) map[string]string
	GetGuide(ctx context.Context, name string) string
	SaveGuide(ctx context.Context, name, content, updatedBy string) (*domain.Guide, error)
	ListCategories(ctx context.Context, activeOnly bool) []domain.Category
	GetCategory(ctx context.Context, key string) (*domain.Category, error)
	SaveCategory(ctx context.Context, c domain.Category, updatedBy string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListFormulas(ctx context.Context, activeOnly bool) []domain.Formula
	SaveFormula(ctx context.Context, f domain.Formula, updatedBy string) (*domain.Formula, error)
	DeleteFormula(ctx context.Context, id string) error
}

type catalogService struct {
	catalog Catalog
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(catalog Catalog) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListGuides(_ context.Context) map[string]string {
	return s.catalog.Guides()
}

func (s *catalogService) GetGuide(_ context.Context, name string) string {
	return s.catalog.Guide(strings.TrimSpace(name))
}

func (s *catalogService) SaveGuide(ctx context.Context, name, content, updatedBy string) (*domain.Guide, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: guide content is required", domain.ErrInvalidRequest)
	}
	g, err := s.catalog.SaveGuide(ctx, name, content, updatedBy)
	if err != nil {
		return nil, err
	}
	log.Printf("catalogService.SaveGuide: %s updated by %s", g.Slug, g.UpdatedBy)
	return g, nil
}

func (s *catalogService) ListCategories(_ context.Context, activeOnly bool) []domain.Category {
	cats := s.catalog.Categories()
	if !activeOnly {
		return cats
	}
	out := cats[:0]
	for _, c := range cats {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func (s *catalogService) GetCategory(_ context.Context, key string) (*domain.Category, error) {
	return s.catalog.Category(key)
}

func (s *catalogService) SaveCategory(ctx context.Context, c domain.Category, updatedBy string) (*domain.Category, error) {
	for i, item := range c.Items {
		c.Items[i] = strings.TrimSpace(item)
	}
	saved, err := s.catalog.SaveCategory(ctx, c, updatedBy)
	if err != nil {
		return nil, err
	}
	log.Printf("catalogService.SaveCategory: %s (%s) saved", saved.ID, saved.Name)
	return saved, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.catalog.DeleteCategory(ctx, id); err != nil {
		return err
	}
	log.Printf("catalogService.DeleteCategory: %s deleted", id)
	return nil
}

func (s *catalogService) ListFormulas(_ context.Context, activeOnly bool) []domain.Formula {
	formulas := s.catalog.Formulas()
	if !activeOnly {
		return formulas
	}
	out := formulas[:0]
	for _, f := range formulas {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out
}

func (s *catalogService) SaveFormula(ctx context.Context, f domain.Formula, updatedBy string) (*domain.Formula, error) {
	if strings.TrimSpace(f.Expression) == "" {
		return nil, fmt.Errorf("%w: formula expression is required", domain.ErrInvalidRequest)
	}
	saved, err := s.catalog.SaveFormula(ctx, f, updatedBy)
	if err != nil {
		return nil, err
	}
	log.Printf("catalogService.SaveFormula: %s (%s) saved", saved.ID, saved.Name)
	return saved, nil
}

func (s *catalogService) DeleteFormula(ctx context.Context, id string) error {
	if err := s.catalog.DeleteFormula(ctx, id); err != nil {
		return err
	}
	log.Printf("catalogService.DeleteFormula: %s deleted", id)
	return nil
}
