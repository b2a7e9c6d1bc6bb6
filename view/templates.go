package view

// HTML fragment templates for the storefront grid and modal. Class names
// line up with the storefront stylesheet; the backend only decides what is
// shown, never how it looks.

const cardsTemplate = `<div class="product-grid">
{{- range . }}
  <article class="product-card{{ if .Reveal }} reveal{{ end }}" data-product-id="{{ .ID }}"{{ if .Reveal }} style="animation-delay:{{ .DelayMS }}ms"{{ end }}>
    <div class="product-image">{{ .Image }}</div>
    {{- if .Featured }}
    <span class="badge badge-featured">Featured</span>
    {{- end }}
    {{- if .HasDiscount }}
    <span class="badge badge-discount">-{{ .Discount }}</span>
    {{- end }}
    <h3 class="product-title">{{ .Title }}</h3>
    <p class="product-description">{{ .ShortDescription }}</p>
    <div class="product-rating" aria-label="Rated {{ .Rating }} out of 5">{{ .Stars }} <span class="rating-value">{{ .Rating }}</span></div>
    <div class="product-pricing">
      <span class="price">{{ .Price }}</span>
      {{- if .OriginalPrice }}
      <span class="original-price">{{ .OriginalPrice }}</span>
      {{- end }}
    </div>
    <button class="btn btn-review" data-open-modal="{{ .ID }}">Read review</button>
  </article>
{{- end }}
</div>
`

const modalTemplate = `<div class="modal-overlay" data-close-modal>
  <div class="modal" role="dialog" aria-modal="true" aria-label="{{ .Title }} review">
    <button class="modal-close" data-close-modal aria-label="Close">&times;</button>
    <div class="modal-header">
      <span class="modal-image">{{ .Image }}</span>
      <h2>{{ .Title }}</h2>
      <div class="product-rating">{{ .Stars }} <span class="rating-value">{{ .Rating }}</span></div>
    </div>
    <p class="review-summary">{{ .Review.Summary }}</p>
    <div class="review-columns">
      <div class="review-pros">
        <h4>Pros</h4>
        <ul>
        {{- range .Review.Pros }}
          <li>{{ . }}</li>
        {{- end }}
        </ul>
      </div>
      <div class="review-cons">
        <h4>Cons</h4>
        <ul>
        {{- range .Review.Cons }}
          <li>{{ . }}</li>
        {{- end }}
        </ul>
      </div>
    </div>
    <p class="review-verdict">{{ .Review.Verdict }}</p>
    <a class="btn btn-affiliate" href="{{ .AffiliateLink }}" rel="nofollow sponsored" target="_blank">Check price ({{ .Price }})</a>
  </div>
</div>
`

const loadingTemplate = `<div class="grid-state grid-loading" role="status">
  <div class="spinner"></div>
  <p>Loading products…</p>
</div>
`

const emptyTemplate = `<div class="grid-state grid-empty">
  <p>No products match your filters.</p>
</div>
`

const errorTemplate = `<div class="grid-state grid-error" role="alert">
  <p>{{ .Message }}</p>
  <button class="btn btn-retry" data-retry>Try again</button>
</div>
`
