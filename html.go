package pagenav

import (
	"fmt"
	"html/template"
	"strings"
)

// Class names of the generated markup.
const (
	ClassPager   = "pager"
	ClassCurrent = "current"
)

var _navTemplate = template.Must(template.New("pager").Parse(
	`<div class="{{.Class}}">` +
		`{{range .Entries}}` +
		`{{if .IsLink}}<a href="{{.URL}}">{{.Label}}</a>` +
		`{{else if .IsCurrent}}<span class="{{$.Current}}">{{.Label}}</span>` +
		`{{else}}<span>{{.Label}}</span>{{end}}` +
		`{{end}}` +
		`</div>`,
))

// RenderHTML formats entries as markup:
//
//	<div class="pager"><a href="URL">LABEL</a><span class="current">N</span><span>...</span></div>
//
// Labels and URLs are HTML-escaped.
func RenderHTML(entries []Entry) (template.HTML, error) {
	var sb strings.Builder

	err := _navTemplate.Execute(&sb, struct {
		Class   string
		Current string
		Entries []Entry
	}{
		Class:   ClassPager,
		Current: ClassCurrent,
		Entries: entries,
	})
	if err != nil {
		return "", fmt.Errorf("cannot render pager markup: %w", err)
	}

	return template.HTML(sb.String()), nil
}

// HTML renders the navigation bar as markup. See Render and RenderHTML.
func (p Pager) HTML(baseURL string) (template.HTML, error) {
	entries, err := p.Render(baseURL)
	if err != nil {
		return "", err
	}

	return RenderHTML(entries)
}
