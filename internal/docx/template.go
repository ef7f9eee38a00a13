// Package docx loads a Word agreement template and fills literal placeholders
// in its body and table paragraphs.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/beevik/etree"

	"ndagen/internal/domain"
)

const documentPart = "word/document.xml"

// MissingPlaceholdersError lists the required placeholders a template lacks.
type MissingPlaceholdersError struct {
	Source  string
	Missing []string
}

func (e *MissingPlaceholdersError) Error() string {
	return fmt.Sprintf("template %s is missing placeholders: %s", e.Source, strings.Join(e.Missing, ", "))
}

func (e *MissingPlaceholdersError) Unwrap() error {
	return domain.ErrTemplateInvalid
}

// Template is an immutable, validated agreement template. It is safe for
// concurrent use; every Fill works on its own copy of the document tree.
type Template struct {
	source     string
	raw        []byte
	paragraphs []string
}

// Load reads the template at path and checks that every required placeholder
// appears in its paragraph text.
func Load(path string, required ...string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, path)
		}
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return Parse(data, path, required...)
}

// Parse builds a Template from raw .docx bytes. source is only used in messages.
func Parse(data []byte, source string, required ...string) (*Template, error) {
	paras, err := ExtractParagraphs(data)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", source, err)
	}

	t := &Template{
		source:     source,
		raw:        append([]byte(nil), data...),
		paragraphs: paras,
	}
	if missing := t.Missing(required...); len(missing) > 0 {
		return nil, &MissingPlaceholdersError{Source: source, Missing: missing}
	}
	return t, nil
}

// Source returns where the template was loaded from.
func (t *Template) Source() string { return t.source }

// Size returns the template size in bytes.
func (t *Template) Size() int64 { return int64(len(t.raw)) }

// Bytes returns a copy of the raw template package.
func (t *Template) Bytes() []byte { return append([]byte(nil), t.raw...) }

// Paragraphs returns the text of every body and table paragraph.
func (t *Template) Paragraphs() []string {
	return append([]string(nil), t.paragraphs...)
}

// Text returns the paragraph texts joined by newlines.
func (t *Template) Text() string {
	return strings.Join(t.paragraphs, "\n")
}

// Missing returns the placeholders that do not occur in the template text.
func (t *Template) Missing(placeholders ...string) []string {
	text := t.Text()
	var missing []string
	for _, p := range placeholders {
		if !strings.Contains(text, p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Locate returns the indexes of the paragraphs that contain target.
func (t *Template) Locate(target string) []int {
	var idx []int
	for i, p := range t.paragraphs {
		if strings.Contains(p, target) {
			idx = append(idx, i)
		}
	}
	return idx
}

// ExtractParagraphs returns the text of every body and table paragraph of a
// .docx package, body paragraphs first.
func ExtractParagraphs(data []byte) ([]string, error) {
	doc, err := readDocument(data)
	if err != nil {
		return nil, err
	}
	body, err := documentBody(doc)
	if err != nil {
		return nil, err
	}

	paras := collectParagraphs(body)
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		out = append(out, paragraphText(p))
	}
	return out, nil
}

func readDocument(data []byte) (*etree.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening docx package: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", documentPart, err)
		}
		defer func() { _ = rc.Close() }()

		xmlBytes, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", documentPart, err)
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(xmlBytes); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("docx package has no %s", documentPart)
}

func documentBody(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil || !isW(root, "document") {
		return nil, errors.New("document part has no w:document root")
	}
	for _, c := range root.ChildElements() {
		if isW(c, "body") {
			return c, nil
		}
	}
	return nil, errors.New("document part has no w:body")
}
