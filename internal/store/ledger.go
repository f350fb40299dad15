package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/educonnect/educonnect-api/internal/models"
)

// Ledger is the student application collection. Applications are
// prepend-only; after submission the status field is the only thing that
// changes, and only through Decide.
type Ledger struct {
	mu           sync.RWMutex
	applications []models.StudentApplication
	now          func() time.Time
}

// NewLedger builds an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

// Snapshot returns a copy of the applications, newest first.
func (l *Ledger) Snapshot() []models.StudentApplication {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.StudentApplication, len(l.applications))
	copy(out, l.applications)
	return out
}

// Submit prepends a new PENDING application with a generated id and a
// display-formatted submission date.
func (l *Ledger) Submit(app models.StudentApplication) models.StudentApplication {
	app.ID = "app-" + uuid.NewString()
	app.Status = models.StatusPending
	app.SubmittedAt = l.now().Format("1/2/2006")

	l.mu.Lock()
	defer l.mu.Unlock()
	l.applications = append([]models.StudentApplication{app}, l.applications...)
	return app
}

// Decide sets the final status of an application. Returns the updated
// record, or false when the id is unknown.
func (l *Ledger) Decide(id string, status models.ApplicationStatus) (models.StudentApplication, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.applications {
		if l.applications[i].ID == id {
			updated := l.applications[i]
			updated.Status = status
			l.applications[i] = updated
			return updated, true
		}
	}
	return models.StudentApplication{}, false
}

// Len reports the number of applications.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.applications)
}
