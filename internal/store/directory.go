package store

import (
	"strings"
	"sync"

	"github.com/educonnect/educonnect-api/internal/models"
)

// Directory is the read-mostly school registry. Schools come from seed
// data; the core never grows this collection.
type Directory struct {
	mu      sync.RWMutex
	schools []models.SchoolProfile
}

// NewDirectory seeds a directory.
func NewDirectory(initial []models.SchoolProfile) *Directory {
	schools := make([]models.SchoolProfile, len(initial))
	copy(schools, initial)
	return &Directory{schools: schools}
}

// Find returns the school with the given id.
func (d *Directory) Find(id string) (models.SchoolProfile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.schools {
		if s.ID == id {
			return s, true
		}
	}
	return models.SchoolProfile{}, false
}

// List applies search text and category filtering with pagination.
// Search matches name or location case-insensitively; category "All" or
// empty matches everything, otherwise a school matches when its type
// contains the category label.
func (d *Directory) List(filter models.SchoolFilter) ([]models.SchoolProfile, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	category := strings.TrimSpace(filter.Category)

	matched := make([]models.SchoolProfile, 0, len(d.schools))
	for _, s := range d.schools {
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Location), search) {
			continue
		}
		if category != "" && category != "All" && !strings.Contains(s.Type, category) {
			continue
		}
		matched = append(matched, s)
	}

	total := len(matched)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	start := (page - 1) * size
	if start >= total {
		return []models.SchoolProfile{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	return matched[start:end], total
}
