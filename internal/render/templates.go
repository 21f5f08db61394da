package render

// widgetTemplates holds every fragment template the renderer executes.
// Markup vocabulary: rb-* classes, with is-open / is-selected / is-expanded /
// has-overflow / is-active state classes toggled by the interaction layer.
const widgetTemplates = `
{{define "filters"}}<form class="rb-resources__filters" method="get" action="{{.ArchiveURL}}">
  <label class="rb-resources__label">
    <span>Search</span>
    <input type="search" name="s" value="{{.State.Search}}" placeholder="Search resources">
  </label>
  <div class="rb-resources__label">
    <span>Content Type</span>
    <div class="rb-custom-select" data-name="resource-type">
      <button type="button" class="rb-custom-select__trigger">
        <span class="rb-custom-select__value">{{.CategoryLabel}}</span>
      </button>
      <ul class="rb-custom-select__dropdown">
        <li class="rb-custom-select__option{{if eq .State.Category "all"}} is-selected{{end}}" data-value="all">All</li>
        {{range .Categories}}<li class="rb-custom-select__option{{if eq $.State.Category .Slug}} is-selected{{end}}" data-value="{{.Slug}}">{{.Name}}</li>
        {{end}}
      </ul>
      <select name="resource-type" class="rb-custom-select__hidden">
        <option value="all"{{if eq .State.Category "all"}} selected{{end}}>All</option>
        {{range .Categories}}<option value="{{.Slug}}"{{if eq $.State.Category .Slug}} selected{{end}}>{{.Name}}</option>
        {{end}}
      </select>
    </div>
  </div>
  <div class="rb-resources__label">
    <span>Sort By</span>
    <div class="rb-custom-select" data-name="sort">
      <button type="button" class="rb-custom-select__trigger">
        <span class="rb-custom-select__value">{{.SortLabel}}</span>
      </button>
      <ul class="rb-custom-select__dropdown">
        {{range .Sorts}}<li class="rb-custom-select__option{{if eq $.State.Sort .Mode}} is-selected{{end}}" data-value="{{.Mode}}">{{.Label}}</li>
        {{end}}
      </ul>
      <select name="sort" class="rb-custom-select__hidden">
        {{range .Sorts}}<option value="{{.Mode}}"{{if eq $.State.Sort .Mode}} selected{{end}}>{{.Label}}</option>
        {{end}}
      </select>
    </div>
  </div>
  <button type="submit" class="rb-resources__submit">Apply</button>
</form>{{end}}

{{define "card"}}{{if eq .Kind "free"}}<a class="rb-card rb-card--free" href="{{.Link}}" target="_blank" rel="noopener">
  {{if .Thumbnail}}<img class="rb-card__image" src="{{.Thumbnail}}" alt="{{.Title}}">{{end}}
  <h3 class="rb-card__title">{{.Title}}</h3>
  <div class="rb-card__excerpt-wrapper">
    <p class="rb-card__excerpt">{{.ExcerptHTML}}</p>
    <button class="rb-card__read-more" type="button">Read more</button>
  </div>
</a>{{else if eq .Kind "book"}}<a class="rb-card rb-card--book" href="{{.Link}}" target="_blank" rel="noopener">
  <div class="rb-card__media"{{if .Thumbnail}} style="background-image:url({{.Thumbnail}});"{{end}}>
    {{if .Thumbnail}}<img class="rb-card__media-img" src="{{.Thumbnail}}" alt="{{.Title}}">{{end}}
  </div>
  <h3 class="rb-card__title">{{.Title}}</h3>
</a>{{else if eq .Kind "video"}}<div class="rb-card rb-card--video" data-video-url="{{.VideoURL}}">
  <div class="rb-card__video-wrapper">
    <div class="rb-card__overlay-img">
      <img class="rb-card__image" src="{{.Thumbnail}}" alt="{{.Title}}">
      <span class="rb-card__title rb-card__title--overlay">{{.Title}}</span>
    </div>
    <button class="rb-card__play" type="button" aria-label="Play video"><span></span></button>
    <h3 class="rb-card__title">{{.Title}}</h3>
    <div class="rb-card__excerpt-wrapper">
      <p class="rb-card__excerpt">{{.ExcerptHTML}}</p>
      <button class="rb-card__read-more" type="button">Read more</button>
    </div>
  </div>
</div>{{else}}<a class="rb-card" href="{{.Link}}">
  <h3 class="rb-card__title">{{.Title}}</h3>
</a>{{end}}{{end}}

{{define "grouped"}}{{range .Groups}}<section class="rb-resources__group">
  <header class="rb-resources__group-header">
    <h2>{{.Heading}}</h2>
  </header>
  <div class="rb-resources__grid">
    {{if .Cards}}{{range .Cards}}{{template "card" .}}
    {{end}}{{else}}<p class="rb-resources__empty">No resources found.</p>{{end}}
  </div>
  <div class="rb-resources__view-more">
    <a class="rb-resources__button" href="{{.ViewMoreURL}}">View more</a>
  </div>
</section>
{{end}}{{end}}

{{define "single"}}<section class="rb-resources__group">
  <header class="rb-resources__group-header">
    <h2>{{.Heading}}</h2>
  </header>
  <div class="rb-resources__grid rb-resources__grid--single">
    {{if .Entries}}{{range .Entries}}{{template "card" .Card}}
    {{if .Separator}}<hr class="rb-resources__separator">
    {{end}}{{end}}{{else}}<p class="rb-resources__empty">No resources found.</p>{{end}}
  </div>
  {{if .Pages}}<div class="rb-resources__pagination">
    {{if .PrevURL}}<a class="rb-resources__page rb-resources__page--prev" href="{{.PrevURL}}">Previous</a>
    {{end}}{{range .Pages}}{{if .Current}}<span class="rb-resources__page is-current">{{.Number}}</span>
    {{else}}<a class="rb-resources__page" href="{{.URL}}">{{.Number}}</a>
    {{end}}{{end}}{{if .NextURL}}<a class="rb-resources__page rb-resources__page--next" href="{{.NextURL}}">Next</a>
    {{end}}</div>
  {{end}}</section>{{end}}

{{define "widget"}}<div class="rb-resources" data-archive-url="{{.ArchiveURL}}">
  {{template "filters" .Filters}}
  {{.Body}}
</div>{{end}}

{{define "header"}}<div class="rb-resources__header">
  {{if .H1}}<h1 class="rb-resources__title">{{.H1}}</h1>
  {{end}}{{if .Description}}<p class="rb-resources__description">{{.Description}}</p>
  {{end}}</div>{{end}}

{{define "invalid"}}<p class="rb-resources__invalid">Invalid resource type.</p>{{end}}

{{define "no-categories"}}<p class="rb-resources__empty">No resource types found.</p>{{end}}
`
