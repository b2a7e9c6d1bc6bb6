package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// Session owns the UI state of one storefront visitor: current filter
// criteria, the product-grid display state, the modal, and the per-card
// one-shot reveal flags. All mutation goes through the session mutex, which
// stands in for the single-threaded event loop of a browser host.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	catalog   Catalog
	log       *logrus.Entry
	debouncer *Debouncer

	filters      catalog.Criteria
	state        DisplayState
	modalOpen    bool
	modalProduct *models.Product
	revealed     map[string]bool

	createdAt time.Time
	lastSeen  time.Time
}

// NewSession builds a session with default criteria (category "all", no
// search text, no rating floor) and an untouched grid. Search mutations are
// debounced by the given interval; a non-positive interval makes them
// synchronous.
func NewSession(cat Catalog, debounce time.Duration) *Session {
	id := uuid.Must(uuid.NewV7())
	now := time.Now()
	return &Session{
		ID:        id,
		catalog:   cat,
		log:       logrus.WithFields(logrus.Fields{"component": "view", "session": id.String()}),
		debouncer: NewDebouncer(debounce),
		filters:   catalog.Criteria{Category: "all"},
		state:     DisplayState{Kind: StateLoading},
		revealed:  make(map[string]bool),
		createdAt: now,
		lastSeen:  now,
	}
}

// Touch refreshes the session's idle clock.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// LastSeen reports the last interaction time.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close cancels any pending debounced query.
func (s *Session) Close() {
	s.debouncer.Stop()
}

// ─────────────────────────────────────────────────────────────
// Filter mutations
// ─────────────────────────────────────────────────────────────

// SetCategoryFilter updates the active category and re-queries immediately.
// Exactly one category is active at a time; the previous one is replaced,
// never stacked.
func (s *Session) SetCategoryFilter(ctx context.Context, category string) DisplayState {
	s.mu.Lock()
	if category == "" {
		category = "all"
	}
	s.filters.Category = category
	s.mu.Unlock()
	return s.runQuery(ctx)
}

// SetSearchText updates the search text and schedules a debounced query.
// Bursts of calls inside the quiescent interval collapse into one query
// carrying the final text; the grid shows Loading until it fires.
func (s *Session) SetSearchText(text string) DisplayState {
	s.mu.Lock()
	s.filters.Search = text
	s.state = DisplayState{Kind: StateLoading}
	s.mu.Unlock()

	s.debouncer.Trigger(func() {
		// The originating request is long gone by the time the timer
		// fires, so the query runs on a fresh context.
		s.runQuery(context.Background())
	})
	return s.State()
}

// SetMinRating updates the rating floor and re-queries immediately.
func (s *Session) SetMinRating(ctx context.Context, min float64) DisplayState {
	s.mu.Lock()
	if min < 0 {
		min = 0
	}
	s.filters.MinRating = min
	s.mu.Unlock()
	return s.runQuery(ctx)
}

// Retry re-issues the current criteria, typically from the error state.
func (s *Session) Retry(ctx context.Context) DisplayState {
	return s.runQuery(ctx)
}

// runQuery moves the grid through Loading and settles it on results, empty,
// or error. The criteria are snapshotted under the lock so a query always
// reflects one coherent mutation.
func (s *Session) runQuery(ctx context.Context) DisplayState {
	s.mu.Lock()
	s.state = DisplayState{Kind: StateLoading}
	criteria := s.filters
	s.mu.Unlock()

	products, err := s.catalog.Filter(ctx, criteria)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err != nil:
		s.log.WithError(err).Error("Product query failed")
		s.state = DisplayState{Kind: StateError, Message: "Failed to load products"}
	case len(products) == 0:
		s.state = DisplayState{Kind: StateEmptyResults}
	default:
		s.state = DisplayState{Kind: StateShowingResults, Products: products}
	}
	return s.state
}

// ─────────────────────────────────────────────────────────────
// Modal
// ─────────────────────────────────────────────────────────────

// OpenModal looks the product up and opens the review modal on a hit. An
// unknown id is logged and ignored; the grid and modal state are left
// untouched.
func (s *Session) OpenModal(ctx context.Context, productID string) bool {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			s.log.WithField("product_id", productID).Warn("Modal requested for unknown product")
		} else {
			s.log.WithError(err).Error("Modal product lookup failed")
		}
		return false
	}

	s.mu.Lock()
	s.modalOpen = true
	s.modalProduct = &product
	s.mu.Unlock()
	return true
}

// CloseModal closes the modal. Closing an already-closed modal is a no-op.
func (s *Session) CloseModal() {
	s.mu.Lock()
	s.modalOpen = false
	s.modalProduct = nil
	s.mu.Unlock()
}

// IsModalOpen reports the modal flag.
func (s *Session) IsModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modalOpen
}

// ModalProduct returns the product currently shown in the modal.
func (s *Session) ModalProduct() (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modalOpen || s.modalProduct == nil {
		return models.Product{}, false
	}
	return *s.modalProduct, true
}

// ─────────────────────────────────────────────────────────────
// Snapshots and reveal flags
// ─────────────────────────────────────────────────────────────

// State returns the current grid display state.
func (s *Session) State() DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Filters returns the current criteria.
func (s *Session) Filters() catalog.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// MarkRevealed records that a card has played its reveal animation. The
// flag is one-shot: once set, re-rendering the card never animates again.
func (s *Session) MarkRevealed(productID string) {
	s.mu.Lock()
	s.revealed[productID] = true
	s.mu.Unlock()
}

// Revealed reports whether a card has already played its reveal animation.
func (s *Session) Revealed(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed[productID]
}
