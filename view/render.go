package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// revealStaggerMS is the per-card delay step of the one-shot reveal
// animation, matching the staggered fade-in of the storefront grid.
const revealStaggerMS = 100

// Renderer turns query results and session state into HTML fragments the
// client swaps into the page. It holds no mutable state and is safe for
// concurrent use.
type Renderer struct {
	cards   *template.Template
	modal   *template.Template
	loading *template.Template
	empty   *template.Template
	failed  *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		cards:   template.Must(template.New("cards").Parse(cardsTemplate)),
		modal:   template.Must(template.New("modal").Parse(modalTemplate)),
		loading: template.Must(template.New("loading").Parse(loadingTemplate)),
		empty:   template.Must(template.New("empty").Parse(emptyTemplate)),
		failed:  template.Must(template.New("failed").Parse(errorTemplate)),
	}
}

type cardView struct {
	models.Product
	Stars   string
	Reveal  bool
	DelayMS int
}

// RenderState renders whatever the session's grid currently shows. Cards
// not yet revealed in this session get the reveal animation class exactly
// once; the session records them as revealed as a side effect.
func (r *Renderer) RenderState(s *Session) (string, error) {
	state := s.State()
	switch state.Kind {
	case StateLoading:
		return r.render(r.loading, nil)
	case StateEmptyResults:
		return r.render(r.empty, nil)
	case StateError:
		return r.render(r.failed, state)
	default:
		return r.RenderCards(state.Products, s)
	}
}

// RenderCards renders one card per product in input order. A nil session
// renders every card without the reveal animation.
func (r *Renderer) RenderCards(products []models.Product, s *Session) (string, error) {
	views := make([]cardView, 0, len(products))
	stagger := 0
	for _, p := range products {
		v := cardView{Product: p, Stars: starRating(p.Rating)}
		if s != nil && !s.Revealed(p.ID) {
			v.Reveal = true
			v.DelayMS = stagger * revealStaggerMS
			stagger++
			s.MarkRevealed(p.ID)
		}
		views = append(views, v)
	}
	return r.render(r.cards, views)
}

// RenderModal renders the full review detail for the modal body.
func (r *Renderer) RenderModal(p models.Product) (string, error) {
	return r.render(r.modal, cardView{Product: p, Stars: starRating(p.Rating)})
}

func (r *Renderer) render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return b.String(), nil
}

// starRating renders a five-slot star string, e.g. "★★★★☆" for 4.3.
func starRating(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
