// Package export produces the paginated-document rendering of a CV. Each
// template builds a page-flow tree (explicit page size, margins, flow boxes,
// text runs) that mirrors its screen counterpart's content decisions exactly;
// only the layout mechanics differ. The tree serializes to print-paginated
// HTML, which a headless browser converts to PDF.
package export

import (
	"github.com/adaeze/cv-studio/internal/themes"
	"github.com/adaeze/cv-studio/internal/types"
)

// NodeKind discriminates flow-tree nodes.
type NodeKind string

// Node kinds.
const (
	NodeStack   NodeKind = "stack"   // vertical flow box
	NodeRow     NodeKind = "row"     // horizontal box, children share the line
	NodeText    NodeKind = "text"    // text run
	NodeBullet  NodeKind = "bullet"  // bulleted text run
	NodeBadge   NodeKind = "badge"   // pill-shaped text run
	NodeBar     NodeKind = "bar"     // skill progress bar
	NodeDivider NodeKind = "divider" // horizontal rule
)

// Style carries the resolved visual parameters of one node. Sizes are points,
// spacing is millimeters; colors are CSS color values taken from the theme
// palette.
type Style struct {
	Bold       bool
	Italic     bool
	Upper      bool
	Size       float64
	Color      string
	Background string
	Align      string // "", "center" or "right"
	AccentLeft string // left accent bar color, stacks only
	SpaceAfter float64
	NoBreak    bool // keep this box on one page
}

// Node is one box or run in the page flow.
type Node struct {
	Kind     NodeKind
	Text     string
	Percent  int // bar fill, NodeBar only
	Style    Style
	Section  types.SectionKey // set on section stacks for parity checks
	Children []Node
}

// PageSpec fixes the physical page: size name, margins in millimeters and the
// base typography.
type PageSpec struct {
	Size         string // "A4"
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	FontFamily   string
	BaseSize     float64 // pt
	TextColor    string
	Background   string
}

// Document is the complete page-flow tree for one CV + template. Content
// flows across as many fixed-size pages as it needs. Side is nil under
// single-column layouts; under split layouts it is an independently flowing
// sidebar region.
type Document struct {
	TemplateID types.TemplateID
	Theme      themes.Theme
	Page       PageSpec
	Header     Node
	Main       []Node
	Side       []Node
	// SideRatio is the sidebar's share of the content width (0 when single).
	SideRatio float64
}

// SectionKeys returns the section keys of every section stack in reading
// order (main column first, then sidebar). Used to verify content parity with
// the screen renderer.
func (d Document) SectionKeys() []types.SectionKey {
	keys := []types.SectionKey{}
	for _, n := range append(append([]Node{}, d.Main...), d.Side...) {
		if n.Section != "" {
			keys = append(keys, n.Section)
		}
	}
	return keys
}

// Walk visits every node in the tree depth-first.
func (d Document) Walk(visit func(Node)) {
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			visit(n)
			walk(n.Children)
		}
	}
	walk([]Node{d.Header})
	walk(d.Main)
	walk(d.Side)
}

// a4 returns the default A4 page spec for a theme, before per-template
// margin adjustments.
func a4(theme themes.Theme) PageSpec {
	return PageSpec{
		Size:         "A4",
		MarginTop:    16,
		MarginRight:  16,
		MarginBottom: 16,
		MarginLeft:   16,
		FontFamily:   theme.Fonts.Body,
		BaseSize:     10,
		TextColor:    theme.Palette.Text,
		Background:   "#ffffff",
	}
}
