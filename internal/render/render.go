// Package render produces the on-screen HTML rendering of a CV for each
// template in the fixed set. Rendering is a pure transform: the same CV and
// template id always produce the same document, and malformed data degrades
// to placeholders instead of errors.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/adaeze/cv-studio/internal/content"
	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/themes"
	"github.com/adaeze/cv-studio/internal/types"
)

//go:embed templates
var templateFS embed.FS

// pageData is the execution context for every screen template.
type pageData struct {
	Doc       content.Document
	Theme     themes.Theme
	BodyClass string
}

var funcs = template.FuncMap{
	// Theme palette and font values are trusted registry data, not user
	// input; css lets them through the style context unescaped.
	"css": func(s string) template.CSS { return template.CSS(s) },
}

var screenTemplates = mustParseAll()

func mustParseAll() map[types.TemplateID]*template.Template {
	parsed := make(map[types.TemplateID]*template.Template, len(types.TemplateIDs()))
	for _, id := range types.TemplateIDs() {
		tmpl, err := template.New(string(id)).Funcs(funcs).ParseFS(templateFS,
			"templates/shared.tmpl",
			fmt.Sprintf("templates/%s.tmpl", id),
		)
		if err != nil {
			panic(fmt.Sprintf("screen template %s: %v", id, err))
		}
		parsed[id] = tmpl
	}
	return parsed
}

// Screen renders the CV as a standalone HTML document for the given template
// id. The CV is expected to be normalized; an id outside the fixed set is a
// programming error and returns an error rather than a document.
func Screen(cv types.CV, id types.TemplateID) (string, error) {
	theme, err := themes.Get(id)
	if err != nil {
		return "", err
	}

	data := pageData{
		Doc:       content.Build(cv, theme),
		Theme:     theme,
		BodyClass: bodyClass(cv, theme),
	}

	var out strings.Builder
	if err := screenTemplates[id].ExecuteTemplate(&out, "document", data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", id, err)
	}
	return out.String(), nil
}

// Preview renders the template preview for a CV: empty collections are
// backfilled from the demo underlay so the preview is never visibly blank.
func Preview(cv types.CV, id types.TemplateID) (string, error) {
	filled := normalize.BuildPreviewCV(cv, id)
	return Screen(filled, filled.TemplateID)
}

// bodyClass folds display preferences and theme flags into CSS class hooks.
func bodyClass(cv types.CV, theme themes.Theme) string {
	classes := []string{"density-comfortable", "fs-md"}
	if p := cv.Presentation; p != nil {
		classes[0] = "density-" + string(p.Density)
		classes[1] = "fs-" + string(p.FontScale)
		if v := strings.TrimSpace(p.AccentVariant); v != "" {
			classes = append(classes, "accent-"+v)
		}
	}
	if theme.UpperTitles {
		classes = append(classes, "upper-titles")
	}
	if theme.TopRibbon {
		classes = append(classes, "top-ribbon")
	}
	return strings.Join(classes, " ")
}
