package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Fill returns a new .docx package in which every occurrence of each key of
// replacements is replaced by its value.
//
// Matching is done on whole-paragraph text so placeholders split across runs
// still match. A changed paragraph is collapsed into its first run: that run
// keeps its properties, the remaining runs are emptied. Keys are applied in
// sorted order; a value that contains another key may be replaced again.
func (t *Template) Fill(replacements map[string]string) (*bytes.Buffer, error) {
	doc, err := readDocument(t.raw)
	if err != nil {
		return nil, err
	}
	body, err := documentBody(doc)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, p := range collectParagraphs(body) {
		original := paragraphText(p)
		text := original
		for _, old := range keys {
			if strings.Contains(text, old) {
				text = strings.ReplaceAll(text, old, replacements[old])
			}
		}
		if text != original {
			setParagraphText(p, text)
		}
	}

	xmlBytes, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing %s: %w", documentPart, err)
	}
	return repack(t.raw, xmlBytes)
}

// repack copies every part of the source package, swapping in a new main
// document part.
func repack(src, document []byte) (*bytes.Buffer, error) {
	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, fmt.Errorf("opening docx package: %w", err)
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, f := range zr.File {
		if f.Name != documentPart {
			if err := zw.Copy(f); err != nil {
				return nil, fmt.Errorf("copying %s: %w", f.Name, err)
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", f.Name, err)
		}
		if _, err := w.Write(document); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing docx package: %w", err)
	}
	return buf, nil
}
