package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// fakeCatalog is an injectable Catalog that can fail on demand and records
// every Filter call.
type fakeCatalog struct {
	mu       sync.Mutex
	products []models.Product
	err      error
	calls    int
	last     catalog.Criteria
}

func (f *fakeCatalog) Filter(_ context.Context, cr catalog.Criteria) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = cr
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]models.Product, 0)
	query := strings.ToLower(cr.Search)
	for _, p := range f.products {
		if query == "" || strings.Contains(strings.ToLower(p.Title), query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
}

func (f *fakeCatalog) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeCatalog) filterCalls() (int, catalog.Criteria) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.last
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Title: "SmartPhone X", Rating: 4.7},
		{ID: "p2", Title: "AeroBook Pro", Rating: 4.5},
	}
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession(&fakeCatalog{}, 0)
	defer s.Close()

	assert.Equal(t, catalog.Criteria{Category: "all"}, s.Filters())
	assert.Equal(t, StateLoading, s.State().Kind)
	assert.False(t, s.IsModalOpen())
}

func TestSetCategoryFilterRunsQueryImmediately(t *testing.T) {
	cat := &fakeCatalog{products: testProducts()}
	s := NewSession(cat, 0)
	defer s.Close()

	state := s.SetCategoryFilter(context.Background(), "Phones")
	assert.Equal(t, StateShowingResults, state.Kind)
	assert.Len(t, state.Products, 2)

	calls, last := cat.filterCalls()
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Phones", last.Category)

	// Empty category falls back to "all"; the previous one is replaced.
	s.SetCategoryFilter(context.Background(), "")
	assert.Equal(t, "all", s.Filters().Category)
}

func TestQueryStateTransitions(t *testing.T) {
	cat := &fakeCatalog{products: testProducts()}
	s := NewSession(cat, 0)
	defer s.Close()

	// Non-empty result.
	assert.Equal(t, StateShowingResults, s.Retry(context.Background()).Kind)

	// Empty result.
	s.SetSearchText("no-such-device")
	assert.Equal(t, StateEmptyResults, s.State().Kind)

	// Failure surfaces as the error state with a retry path.
	cat.setErr(errors.New("backing query exploded"))
	state := s.Retry(context.Background())
	assert.Equal(t, StateError, state.Kind)
	assert.NotEmpty(t, state.Message)

	// Retry re-issues the same query and recovers.
	cat.setErr(nil)
	s.SetSearchText("")
	assert.Equal(t, StateShowingResults, s.State().Kind)
}

func TestDebounceCollapsesKeystrokes(t *testing.T) {
	cat := &fakeCatalog{products: testProducts()}
	s := NewSession(cat, 40*time.Millisecond)
	defer s.Close()

	for _, text := range []string{"s", "sm", "sma", "smar", "smart"} {
		s.SetSearchText(text)
		assert.Equal(t, StateLoading, s.State().Kind, "grid shows loading until the debounced query fires")
	}

	require.Eventually(t, func() bool {
		calls, _ := cat.filterCalls()
		return calls == 1
	}, time.Second, 5*time.Millisecond, "five keystrokes inside the window must fire exactly one query")

	_, last := cat.filterCalls()
	assert.Equal(t, "smart", last.Search, "the query carries the final keystroke's value")

	// No stragglers fire afterwards.
	time.Sleep(80 * time.Millisecond)
	calls, _ := cat.filterCalls()
	assert.Equal(t, 1, calls)
}

func TestModalStateMachine(t *testing.T) {
	cat := &fakeCatalog{products: testProducts()}
	s := NewSession(cat, 0)
	defer s.Close()

	ctx := context.Background()

	require.True(t, s.OpenModal(ctx, "p1"))
	assert.True(t, s.IsModalOpen())
	p, ok := s.ModalProduct()
	require.True(t, ok)
	assert.Equal(t, "SmartPhone X", p.Title)

	s.CloseModal()
	assert.False(t, s.IsModalOpen())
	_, ok = s.ModalProduct()
	assert.False(t, ok)

	// Double close is a no-op.
	assert.NotPanics(t, s.CloseModal)
	assert.False(t, s.IsModalOpen())
}

func TestOpenModalUnknownIDIsSilentNoOp(t *testing.T) {
	cat := &fakeCatalog{products: testProducts()}
	s := NewSession(cat, 0)
	defer s.Close()

	before := s.State()
	assert.False(t, s.OpenModal(context.Background(), "missing"))
	assert.False(t, s.IsModalOpen())
	assert.Equal(t, before, s.State(), "a lookup miss must not disturb the grid")
}

func TestRevealFlagsAreOneShot(t *testing.T) {
	s := NewSession(&fakeCatalog{}, 0)
	defer s.Close()

	assert.False(t, s.Revealed("p1"))
	s.MarkRevealed("p1")
	assert.True(t, s.Revealed("p1"))
	s.MarkRevealed("p1")
	assert.True(t, s.Revealed("p1"))
}
