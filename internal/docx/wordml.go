package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// wordNS is the WordprocessingML main namespace.
const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// isW reports whether e is the WordprocessingML element with the given local name.
func isW(e *etree.Element, local string) bool {
	return e.Tag == local && e.NamespaceURI() == wordNS
}

// qualify builds a tag in the same prefix as an existing element.
func qualify(space, local string) string {
	if space == "" {
		return local
	}
	return space + ":" + local
}

func childrenW(e *etree.Element, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if isW(c, local) {
			out = append(out, c)
		}
	}
	return out
}

// collectParagraphs returns the body paragraphs followed by the paragraphs of
// every table cell, recursing into tables nested in cells.
func collectParagraphs(body *etree.Element) []*etree.Element {
	var paras, tables []*etree.Element
	for _, c := range body.ChildElements() {
		switch {
		case isW(c, "p"):
			paras = append(paras, c)
		case isW(c, "tbl"):
			tables = append(tables, c)
		}
	}
	for _, tbl := range tables {
		paras = append(paras, tableParagraphs(tbl)...)
	}
	return paras
}

func tableParagraphs(tbl *etree.Element) []*etree.Element {
	var paras []*etree.Element
	for _, row := range childrenW(tbl, "tr") {
		for _, cell := range childrenW(row, "tc") {
			for _, c := range cell.ChildElements() {
				switch {
				case isW(c, "p"):
					paras = append(paras, c)
				case isW(c, "tbl"):
					paras = append(paras, tableParagraphs(c)...)
				}
			}
		}
	}
	return paras
}

func paragraphRuns(p *etree.Element) []*etree.Element {
	return childrenW(p, "r")
}

func runText(r *etree.Element) string {
	var b strings.Builder
	for _, c := range r.ChildElements() {
		switch {
		case isW(c, "t"):
			b.WriteString(c.Text())
		case isW(c, "tab"):
			b.WriteByte('\t')
		case isW(c, "br"), isW(c, "cr"):
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func paragraphText(p *etree.Element) string {
	var b strings.Builder
	for _, r := range paragraphRuns(p) {
		b.WriteString(runText(r))
	}
	return b.String()
}

// clearRun drops every piece of run content, keeping the run properties.
func clearRun(r *etree.Element) {
	tokens := append([]etree.Token(nil), r.Child...)
	for _, tok := range tokens {
		if el, ok := tok.(*etree.Element); ok && isW(el, "rPr") {
			continue
		}
		r.RemoveChild(tok)
	}
}

// setRunText writes text into r, mapping tabs and newlines back to w:tab and w:br.
func setRunText(r *etree.Element, text string) {
	var seg strings.Builder
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		t := r.CreateElement(qualify(r.Space, "t"))
		t.CreateAttr("xml:space", "preserve")
		t.SetText(seg.String())
		seg.Reset()
	}
	for _, ch := range text {
		switch ch {
		case '\t':
			flush()
			r.CreateElement(qualify(r.Space, "tab"))
		case '\n':
			flush()
			r.CreateElement(qualify(r.Space, "br"))
		default:
			seg.WriteRune(ch)
		}
	}
	flush()
}

// setParagraphText collapses the paragraph's runs into the first one.
func setParagraphText(p *etree.Element, text string) {
	runs := paragraphRuns(p)
	for _, r := range runs {
		clearRun(r)
	}
	if len(runs) == 0 {
		r := p.CreateElement(qualify(p.Space, "r"))
		setRunText(r, text)
		return
	}
	setRunText(runs[0], text)
}
