// Package filename turns company names into safe download file names.
package filename

import (
	"fmt"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// TimestampLayout is the timestamp suffix format of generated files.
const TimestampLayout = "20060102_150405"

// Extension is appended to every generated file name.
const Extension = ".docx"

func allowed(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		return true
	case r == '_', r == '-', r == '(', r == ')', r == '（', r == '）':
		return true
	}
	return false
}

// Sanitize keeps letters, digits, whitespace, ASCII and full-width
// parentheses, hyphens and underscores, collapses whitespace runs into sep,
// trims the result and truncates it to maxLength runes. A non-positive
// maxLength yields an empty string.
func Sanitize(text string, maxLength int, sep string) string {
	if maxLength <= 0 {
		return ""
	}

	// fromSep marks runes written for collapsed whitespace, so trimming after
	// truncation never eats characters that were part of the name.
	var out []rune
	var fromSep []bool
	pendingSpace := false
	for _, r := range norm.NFC.String(text) {
		if !allowed(r) {
			continue
		}
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && len(out) > 0 {
			for _, sr := range sep {
				out = append(out, sr)
				fromSep = append(fromSep, true)
			}
		}
		pendingSpace = false
		out = append(out, r)
		fromSep = append(fromSep, false)
	}

	if len(out) > maxLength {
		out = out[:maxLength]
	}
	end := len(out)
	for end > 0 && fromSep[end-1] {
		end--
	}
	return string(out[:end])
}

// Build returns "<prefix>_<sanitized company>_<timestamp>.docx".
func Build(prefix, company, sep string, maxLength int, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s%s", prefix, Sanitize(company, maxLength, sep), at.Format(TimestampLayout), Extension)
}
