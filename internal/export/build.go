package export

import (
	"fmt"

	"github.com/adaeze/cv-studio/internal/content"
	"github.com/adaeze/cv-studio/internal/themes"
	"github.com/adaeze/cv-studio/internal/types"
)

// builder assembles the page-flow tree for one template. The seven builders
// parallel the seven screen templates; all content decisions come from the
// shared content model so the families cannot diverge.
type builder func(doc content.Document, theme themes.Theme) Document

var builders = map[types.TemplateID]builder{
	types.TemplateModern:       buildModern,
	types.TemplateProfessional: buildProfessional,
	types.TemplateCreative:     buildCreative,
	types.TemplateNigerian:     buildNigerian,
	types.TemplateMinimal:      buildMinimal,
	types.TemplateExecutive:    buildExecutive,
	types.TemplateTech:         buildTech,
}

// Build produces the export document tree for a normalized CV. An id outside
// the fixed template set is a programming error.
func Build(cv types.CV, id types.TemplateID) (Document, error) {
	theme, err := themes.Get(id)
	if err != nil {
		return Document{}, err
	}
	build, ok := builders[id]
	if !ok {
		return Document{}, fmt.Errorf("no export builder for template %q", id)
	}
	return build(content.Build(cv, theme), theme), nil
}

func buildModern(doc content.Document, theme themes.Theme) Document {
	out := Document{TemplateID: theme.ID, Theme: theme, Page: a4(theme)}
	out.Header = header(doc, theme, headerOpts{accentBar: true, nameColor: theme.Palette.Accent})
	out.Main, out.Side, out.SideRatio = columns(doc, theme)
	return out
}

func buildProfessional(doc content.Document, theme themes.Theme) Document {
	out := Document{TemplateID: theme.ID, Theme: theme, Page: a4(theme)}
	out.Page.MarginTop, out.Page.MarginBottom = 18, 18
	out.Header = header(doc, theme, headerOpts{center: true, rule: true})
	out.Main, out.Side, out.SideRatio = columns(doc, theme)
	return out
}

func buildCreative(doc content.Document, theme themes.Theme) Document {
	out := Document{TemplateID: theme.ID, Theme: theme, Page: a4(theme)}
	out.Page.MarginTop = 12
	out.Header = header(doc, theme, headerOpts{banner: true, bannerColor: theme.Palette.Accent})
	out.Main, out.Side, out.SideRatio = columns(doc, theme)
	return out
}

func buildNigerian(doc content.Document, theme themes.Theme) Document {
	out := Document{TemplateID: theme.ID, Theme: theme, Page: a4(theme)}
	out.Header = header(doc, theme, headerOpts{center: true, rule: true, nameColor: theme.Palette.Accent})
	out.Main, out.Side, out.SideRatio = columns(doc, theme)
	return out
}

func buildMinimal(doc content.Document, theme themes.Theme) Document {
	out := Document{TemplateID: theme.ID, Theme: theme, Page: a4(theme)}
	out.Page.MarginLeft, out.Page.MarginRight = 22, 22
	out.Header = header(doc, theme, headerOpts{})
	out.Main, out.Side, out.SideRatio = columns(doc, theme)
	return out
}

func buildExecutive(doc content.Document, theme themes.Theme) Document {
	out := Document{TemplateID: theme.ID, Theme: theme, Page: a4(theme)}
	out.Header = header(doc, theme, headerOpts{banner: true, bannerColor: theme.Palette.Text})
	out.Main, out.Side, out.SideRatio = columns(doc, theme)
	return out
}

func buildTech(doc content.Document, theme themes.Theme) Document {
	out := Document{TemplateID: theme.ID, Theme: theme, Page: a4(theme)}
	out.Page.BaseSize = 9.5
	out.Header = header(doc, theme, headerOpts{banner: true, bannerColor: theme.Palette.Text, nameColor: theme.Palette.Accent})
	out.Main, out.Side, out.SideRatio = columns(doc, theme)
	return out
}

// headerOpts selects the header treatment for one builder.
type headerOpts struct {
	center      bool
	rule        bool   // divider under the header
	accentBar   bool   // left accent bar, modern style
	banner      bool   // full-width colored band
	bannerColor string // banner background
	nameColor   string // overrides the default name color
}

func header(doc content.Document, theme themes.Theme, opts headerOpts) Node {
	align := ""
	if opts.center {
		align = "center"
	}
	nameColor := theme.Palette.Text
	if opts.nameColor != "" {
		nameColor = opts.nameColor
	}
	textColor := theme.Palette.Muted
	if opts.banner {
		textColor = "#e5e7eb"
		if opts.nameColor == "" {
			nameColor = "#ffffff"
		}
	}

	children := []Node{{
		Kind:  NodeText,
		Text:  doc.Name,
		Style: Style{Bold: true, Size: 20, Color: nameColor, Align: align, SpaceAfter: 1.5},
	}}
	if doc.Tagline != "" {
		children = append(children, Node{
			Kind:  NodeText,
			Text:  doc.Tagline,
			Style: Style{Upper: theme.UpperTitles, Size: 8, Color: textColor, Align: align, SpaceAfter: 1},
		})
	}
	if line := contactLine(doc); line != "" {
		children = append(children, Node{
			Kind:  NodeText,
			Text:  line,
			Style: Style{Size: 9, Color: textColor, Align: align},
		})
	}
	if opts.rule {
		children = append(children, Node{Kind: NodeDivider, Style: Style{Color: theme.Palette.Accent}})
	}

	style := Style{SpaceAfter: 6, NoBreak: true}
	if opts.banner {
		style.Background = opts.bannerColor
	}
	if opts.accentBar {
		style.AccentLeft = theme.Palette.Accent
	}
	return Node{Kind: NodeStack, Style: style, Children: children}
}

// contactLine joins contacts and link labels the same way the screen header
// does, blank entries already filtered by the content model.
func contactLine(doc content.Document) string {
	parts := []string{}
	for _, c := range doc.Contacts {
		parts = append(parts, c.Value)
	}
	for _, l := range doc.Links {
		parts = append(parts, l.Label)
	}
	line := ""
	for i, p := range parts {
		if i > 0 {
			line += "  |  "
		}
		line += p
	}
	return line
}

// columns routes section stacks into the main and sidebar flows. Divider
// rules appear between sidebar sub-sections only when both neighbors are
// non-empty, which after empty-section pruning means between every
// consecutive pair.
func columns(doc content.Document, theme themes.Theme) (main, side []Node, ratio float64) {
	main = []Node{}
	for _, s := range doc.MainSections() {
		main = append(main, sectionStack(s, theme))
	}
	if theme.Layout != themes.LayoutSplit {
		return main, nil, 0
	}
	side = []Node{}
	for i, s := range doc.SideSections() {
		if i > 0 {
			side = append(side, Node{Kind: NodeDivider, Style: Style{Color: theme.Palette.Border, SpaceAfter: 3}})
		}
		side = append(side, sectionStack(s, theme))
	}
	return main, side, 0.33
}

func sectionStack(s content.Section, theme themes.Theme) Node {
	stack := Node{
		Kind:    NodeStack,
		Section: s.Key,
		Style:   Style{SpaceAfter: 5},
		Children: []Node{{
			Kind:  NodeText,
			Text:  s.Label,
			Style: Style{Bold: true, Size: 12, Color: theme.Palette.Accent, Upper: theme.UpperTitles, SpaceAfter: 2},
		}},
	}
	add := func(n Node) { stack.Children = append(stack.Children, n) }

	for _, p := range s.Paragraphs {
		add(Node{Kind: NodeText, Text: p, Style: Style{SpaceAfter: 1.5}})
	}
	for _, e := range s.Entries {
		add(entryStack(e, theme))
	}
	for _, g := range s.SkillGroups {
		add(skillGroupStack(g, s.SkillsMode, theme))
	}
	for _, c := range s.Certs {
		add(certStack(c, theme))
	}
	for _, l := range s.Languages {
		line := l.Name
		if l.Level != "" {
			line += " - " + l.Level
		}
		add(Node{Kind: NodeText, Text: line, Style: Style{SpaceAfter: 1}})
	}
	for _, r := range s.Referees {
		add(refereeStack(r, theme))
	}
	return stack
}

func entryStack(e content.Entry, theme themes.Theme) Node {
	head := Node{Kind: NodeRow, Children: []Node{
		{Kind: NodeText, Text: e.Title, Style: Style{Bold: true, Size: 10.5}},
	}}
	if e.Meta != "" {
		head.Children = append(head.Children, Node{
			Kind: NodeText, Text: e.Meta, Style: Style{Size: 8.5, Color: theme.Palette.Muted, Align: "right"},
		})
	}
	entry := Node{Kind: NodeStack, Style: Style{SpaceAfter: 3, NoBreak: true}, Children: []Node{head}}

	sub := e.Subtitle
	if e.Location != "" {
		if sub != "" {
			sub += " · "
		}
		sub += e.Location
	}
	if sub != "" {
		entry.Children = append(entry.Children, Node{
			Kind: NodeText, Text: sub, Style: Style{Italic: true, Size: 9, Color: theme.Palette.Muted, SpaceAfter: 1},
		})
	}
	for _, line := range e.Lines {
		entry.Children = append(entry.Children, Node{Kind: NodeBullet, Text: line, Style: Style{SpaceAfter: 0.8}})
	}
	return entry
}

func skillGroupStack(g content.SkillGroup, mode themes.SkillsMode, theme themes.Theme) Node {
	group := Node{Kind: NodeStack, Style: Style{SpaceAfter: 2.5}, Children: []Node{{
		Kind: NodeText, Text: g.Label, Style: Style{Size: 8, Color: theme.Palette.Muted, Upper: true, SpaceAfter: 1.2},
	}}}
	switch mode {
	case themes.SkillsBadges:
		row := Node{Kind: NodeRow}
		for _, item := range g.Items {
			row.Children = append(row.Children, Node{
				Kind: NodeBadge, Text: item.Name,
				Style: Style{Size: 8.5, Color: theme.Palette.Accent, Background: theme.Palette.AccentSoft},
			})
		}
		group.Children = append(group.Children, row)
	case themes.SkillsBars:
		for _, item := range g.Items {
			group.Children = append(group.Children,
				Node{Kind: NodeText, Text: item.Name, Style: Style{Size: 9, SpaceAfter: 0.5}},
				Node{Kind: NodeBar, Percent: item.Percent, Style: Style{
					Color: theme.Palette.Accent, Background: theme.Palette.AccentSoft, SpaceAfter: 1.8,
				}},
			)
		}
	default: // SkillsList
		for _, item := range g.Items {
			line := item.Name
			if item.Level != "" {
				line += " (" + item.Level + ")"
			}
			group.Children = append(group.Children, Node{Kind: NodeBullet, Text: line, Style: Style{SpaceAfter: 0.8}})
		}
	}
	return group
}

func certStack(c content.CertLine, theme themes.Theme) Node {
	cert := Node{Kind: NodeStack, Style: Style{SpaceAfter: 2, NoBreak: true}, Children: []Node{
		{Kind: NodeText, Text: c.Name, Style: Style{Bold: true, Size: 9.5}},
	}}
	if c.Issuer != "" {
		cert.Children = append(cert.Children, Node{
			Kind: NodeText, Text: c.Issuer, Style: Style{Size: 9, Color: theme.Palette.Muted},
		})
	}
	meta := c.Meta
	if c.Credential != "" {
		if meta != "" {
			meta += " · "
		}
		meta += c.Credential
	}
	if meta != "" {
		cert.Children = append(cert.Children, Node{
			Kind: NodeText, Text: meta, Style: Style{Size: 8.5, Color: theme.Palette.Muted},
		})
	}
	return cert
}

func refereeStack(r content.RefLine, theme themes.Theme) Node {
	ref := Node{Kind: NodeStack, Style: Style{SpaceAfter: 2.5, NoBreak: true}, Children: []Node{
		{Kind: NodeText, Text: r.Name, Style: Style{Bold: true, Size: 9.5}},
	}}
	for _, line := range []string{r.Role, r.Contact, r.Relationship} {
		if line == "" {
			continue
		}
		ref.Children = append(ref.Children, Node{
			Kind: NodeText, Text: line, Style: Style{Size: 9, Color: theme.Palette.Muted},
		})
	}
	return ref
}
