package export

import (
	"fmt"
	"html"
	"strings"
)

// SerializeHTML renders the page-flow tree as a self-contained print
// document. The @page rule carries the physical page size and margins, so a
// print-capable browser paginates the flow; every visual parameter comes from
// node styles, never from the serializer. Output is deterministic for a
// given tree.
func SerializeHTML(doc Document) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	writePageCSS(&b, doc.Page)
	b.WriteString("</style>\n</head>\n<body>\n")

	writeNode(&b, doc.Header)

	if len(doc.Side) > 0 {
		sidePct := doc.SideRatio * 100
		fmt.Fprintf(&b, "<table class=\"cols\"><tr><td class=\"col-main\" style=\"width:%.0f%%\">\n", 100-sidePct)
		for _, n := range doc.Main {
			writeNode(&b, n)
		}
		fmt.Fprintf(&b, "</td><td class=\"col-side\" style=\"width:%.0f%%\">\n", sidePct)
		for _, n := range doc.Side {
			writeNode(&b, n)
		}
		b.WriteString("</td></tr></table>\n")
	} else {
		for _, n := range doc.Main {
			writeNode(&b, n)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writePageCSS(b *strings.Builder, page PageSpec) {
	fmt.Fprintf(b, "@page { size: %s; margin: %.1fmm %.1fmm %.1fmm %.1fmm; }\n",
		page.Size, page.MarginTop, page.MarginRight, page.MarginBottom, page.MarginLeft)
	fmt.Fprintf(b, "html, body { margin: 0; padding: 0; background: %s; }\n", page.Background)
	fmt.Fprintf(b, "body { font-family: %s; font-size: %.1fpt; color: %s; line-height: 1.45; }\n",
		page.FontFamily, page.BaseSize, page.TextColor)
	b.WriteString(`p { margin: 0; }
.nobreak { break-inside: avoid; page-break-inside: avoid; }
.row { display: flex; justify-content: space-between; align-items: baseline; gap: 4mm; }
.bullet { display: flex; gap: 1.8mm; }
.bullet .dot { flex: none; }
.badge { display: inline-block; padding: 0.6mm 2.4mm; border-radius: 3mm; margin: 0 1.2mm 1.2mm 0; }
.badges { display: block; }
.bar { height: 1.6mm; border-radius: 1mm; overflow: hidden; }
.bar .fill { height: 100%; }
.divider { border: 0; border-top: 0.3mm solid; margin: 0; }
table.cols { width: 100%; border-collapse: collapse; table-layout: fixed; }
table.cols td { vertical-align: top; padding: 0; }
td.col-side { padding-left: 6mm; }
`)
}

func writeNode(b *strings.Builder, n Node) {
	switch n.Kind {
	case NodeStack:
		section := ""
		if n.Section != "" {
			section = fmt.Sprintf(" data-section=%q", n.Section)
		}
		fmt.Fprintf(b, "<div%s%s>\n", section, styleAttr(n.Style, stackCSS(n.Style), stackClasses(n.Style)))
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</div>\n")
	case NodeRow:
		class := "row"
		if allBadges(n.Children) {
			class = "badges"
		}
		fmt.Fprintf(b, "<div%s>\n", styleAttr(n.Style, stackCSS(n.Style), class))
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</div>\n")
	case NodeText:
		fmt.Fprintf(b, "<p%s>%s</p>\n", styleAttr(n.Style, textCSS(n.Style), ""), html.EscapeString(n.Text))
	case NodeBullet:
		fmt.Fprintf(b, "<div%s><span class=\"dot\">&#8226;</span><p%s>%s</p></div>\n",
			styleAttr(Style{SpaceAfter: n.Style.SpaceAfter}, "", "bullet"),
			styleAttr(n.Style, textCSS(n.Style), ""), html.EscapeString(n.Text))
	case NodeBadge:
		fmt.Fprintf(b, "<span%s>%s</span>\n", styleAttr(n.Style, textCSS(n.Style)+backgroundCSS(n.Style), "badge"), html.EscapeString(n.Text))
	case NodeBar:
		fmt.Fprintf(b, "<div%s><div class=\"fill\" style=\"width:%d%%;background:%s\"></div></div>\n",
			styleAttr(n.Style, backgroundCSS(n.Style), "bar"), n.Percent, n.Style.Color)
	case NodeDivider:
		fmt.Fprintf(b, "<hr%s>\n", styleAttr(n.Style, "border-top-color:"+n.Style.Color+";", "divider"))
	}
}

// stackCSS covers box-level style: background bands, accent bars, alignment
// inherited by children.
func stackCSS(s Style) string {
	var css strings.Builder
	if s.Background != "" {
		fmt.Fprintf(&css, "background:%s;padding:5mm 6mm;", s.Background)
	}
	if s.AccentLeft != "" {
		fmt.Fprintf(&css, "border-left:1.2mm solid %s;padding-left:4mm;", s.AccentLeft)
	}
	if s.Align != "" {
		fmt.Fprintf(&css, "text-align:%s;", s.Align)
	}
	return css.String()
}

func stackClasses(s Style) string {
	if s.NoBreak {
		return "nobreak"
	}
	return ""
}

func textCSS(s Style) string {
	var css strings.Builder
	if s.Bold {
		css.WriteString("font-weight:700;")
	}
	if s.Italic {
		css.WriteString("font-style:italic;")
	}
	if s.Upper {
		css.WriteString("text-transform:uppercase;letter-spacing:0.04em;")
	}
	if s.Size > 0 {
		fmt.Fprintf(&css, "font-size:%.1fpt;", s.Size)
	}
	if s.Color != "" {
		fmt.Fprintf(&css, "color:%s;", s.Color)
	}
	if s.Align != "" {
		fmt.Fprintf(&css, "text-align:%s;", s.Align)
	}
	return css.String()
}

func backgroundCSS(s Style) string {
	if s.Background == "" {
		return ""
	}
	return "background:" + s.Background + ";"
}

// styleAttr assembles the class and style attributes for one element.
// SpaceAfter is shared by every node kind so it lives here.
func styleAttr(s Style, css, class string) string {
	if s.SpaceAfter > 0 {
		css += fmt.Sprintf("margin-bottom:%.1fmm;", s.SpaceAfter)
	}
	var attr strings.Builder
	if class != "" {
		fmt.Fprintf(&attr, " class=\"%s\"", class)
	}
	if css != "" {
		fmt.Fprintf(&attr, " style=\"%s\"", css)
	}
	return attr.String()
}

func allBadges(nodes []Node) bool {
	for _, n := range nodes {
		if n.Kind != NodeBadge {
			return false
		}
	}
	return len(nodes) > 0
}
