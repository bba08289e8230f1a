package catalog

import (
	"time"

	"cmcreport/internal/domain"
)

func str(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func boolean(fields map[string]any, key string, def bool) bool {
	if b, ok := fields[key].(bool); ok {
		return b
	}
	return def
}

func integer(fields map[string]any, key string) int {
	switch n := fields[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

func stringList(fields map[string]any, key string) []string {
	switch v := fields[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func guideFromDocument(d domain.StoredDocument) domain.Guide {
	g := domain.Guide{
		Slug:        str(d.Fields, "slug"),
		Title:       str(d.Fields, "title"),
		Content:     str(d.Fields, "content"),
		Category:    str(d.Fields, "category"),
		Audiences:   stringList(d.Fields, "audiences"),
		IsPublished: boolean(d.Fields, "isPublished", true),
		UpdatedBy:   str(d.Fields, "updatedBy"),
		UpdatedAt:   d.UpdatedAt,
	}
	if g.Slug == "" {
		g.Slug = d.ID
	}
	return g
}

func guideFields(g domain.Guide) map[string]any {
	audiences := g.Audiences
	if audiences == nil {
		audiences = []string{}
	}
	return map[string]any{
		"title":       g.Title,
		"content":     g.Content,
		"slug":        g.Slug,
		"isPublished": g.IsPublished,
		"category":    g.Category,
		"audiences":   audiences,
		"updatedAt":   g.UpdatedAt.Format(time.RFC3339),
		"updatedBy":   g.UpdatedBy,
	}
}

func categoryFromDocument(d domain.StoredDocument) domain.Category {
	return domain.Category{
		ID:       d.ID,
		Name:     str(d.Fields, "name"),
		Slug:     str(d.Fields, "slug"),
		Group:    str(d.Fields, "group"),
		IsActive: boolean(d.Fields, "isActive", true),
		Order:    integer(d.Fields, "order"),
		Items:    stringList(d.Fields, "items"),
		Warning:  str(d.Fields, "warning"),
	}
}

func categoryFields(c domain.Category, updatedBy string, now time.Time) map[string]any {
	items := c.Items
	if items == nil {
		items = []string{}
	}
	return map[string]any{
		"name":      c.Name,
		"slug":      c.Slug,
		"group":     c.Group,
		"isActive":  c.IsActive,
		"order":     c.Order,
		"items":     items,
		"warning":   c.Warning,
		"updatedAt": now.Format(time.RFC3339),
		"updatedBy": updatedBy,
	}
}

func formulaFromDocument(d domain.StoredDocument) domain.Formula {
	return domain.Formula{
		ID:          d.ID,
		Name:        str(d.Fields, "name"),
		Expression:  str(d.Fields, "expression"),
		Description: str(d.Fields, "description"),
		IsActive:    boolean(d.Fields, "isActive", true),
	}
}

func formulaFields(f domain.Formula, updatedBy string, now time.Time) map[string]any {
	return map[string]any{
		"name":        f.Name,
		"expression":  f.Expression,
		"description": f.Description,
		"isActive":    f.IsActive,
		"updatedAt":   now.Format(time.RFC3339),
		"updatedBy":   updatedBy,
	}
}
