// Package store holds the shared marketplace collections. Everything is
// in memory, seeded at startup, and shared across sessions: logging out
// never clears the job board or the admission ledger.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/educonnect/educonnect-api/internal/models"
)

// Board is the job listing collection. Listings are prepend-only with
// unique ids; published listings are never mutated.
type Board struct {
	mu       sync.RWMutex
	listings []models.JobListing
}

// NewBoard seeds a board with initial listings.
func NewBoard(initial []models.JobListing) *Board {
	listings := make([]models.JobListing, len(initial))
	copy(listings, initial)
	return &Board{listings: listings}
}

// Snapshot returns a copy of the current listings, newest first.
func (b *Board) Snapshot() []models.JobListing {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.JobListing, len(b.listings))
	copy(out, b.listings)
	return out
}

// Publish prepends a new listing with a freshly generated id and returns
// the stored record.
func (b *Board) Publish(listing models.JobListing) models.JobListing {
	listing.ID = "j-" + uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.listings = append([]models.JobListing{listing}, b.listings...)
	return listing
}

// BySchool returns listings belonging to the given school id.
func (b *Board) BySchool(schoolID string) []models.JobListing {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.JobListing, 0)
	for _, l := range b.listings {
		if l.SchoolID == schoolID {
			out = append(out, l)
		}
	}
	return out
}

// Len reports the number of listings.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listings)
}
