package store

import (
	"sort"
	"strings"

	"github.com/emsinv/ems-inventory/internal/model"
)

// CreateCategory adds a category. Codes are unique; the icon falls back
// to the generic box when not supplied.
func (s *Store) CreateCategory(in model.NewCategory) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := strings.TrimSpace(in.Code)
	for _, c := range s.categories {
		if c.Code == code {
			return model.Category{}, ErrCategoryCodeExists
		}
	}
	icon := model.DefaultCategoryIcon
	if in.IconName != nil && strings.TrimSpace(*in.IconName) != "" {
		icon = strings.TrimSpace(*in.IconName)
	}
	c := model.Category{
		ID:          s.nextCategoryID,
		Name:        strings.TrimSpace(in.Name),
		Code:        code,
		Description: in.Description,
		IconName:    icon,
	}
	s.nextCategoryID++
	s.categories[c.ID] = c
	return c, nil
}

// GetCategory looks a category up by id.
func (s *Store) GetCategory(id int) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

// ListCategories returns all categories ordered by id.
func (s *Store) ListCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listCategoriesLocked()
}

func (s *Store) listCategoriesLocked() []model.Category {
	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
