package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// DisplayCap bounds text shown to the user.
	DisplayCap = 5000
	// PromptCap bounds text embedded in prompt context. The two caps are
	// independent and must not be conflated.
	PromptCap = 15000
)

// Text is a bounded text blob extracted from a document. Text never exceeds
// PromptCap; Truncated records that the cap was applied.
type Text struct {
	Text        string
	OriginalLen int
	Truncated   bool
}

// ExtractionError indicates text extraction failed or produced nothing.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %v", e.Filename, e.Err)
	}
	return fmt.Sprintf("extract %s: no extractable text", e.Filename)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Display returns the text truncated to DisplayCap with an ellipsis marker,
// independent of the prompt-context bound.
func (t Text) Display() string {
	r := []rune(t.Text)
	if len(r) <= DisplayCap {
		return t.Text
	}
	return string(r[:DisplayCap]) + "..."
}

// ExtractPDF pulls text out of a PDF page by page. Pages yielding no text
// are skipped; an empty concatenation is an ExtractionError, never an
// empty-but-successful Text.
func ExtractPDF(name string, data []byte) (Text, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Text{}, &ExtractionError{Filename: name, Err: err}
	}
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			return Text{}, &ExtractionError{Filename: name, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		if strings.TrimSpace(txt) == "" {
			continue
		}
		pages = append(pages, strings.TrimSpace(txt))
	}
	return fromPages(name, pages)
}

// fromPages joins extracted pages with newlines and applies the prompt cap.
func fromPages(name string, pages []string) (Text, error) {
	joined := strings.Join(pages, "\n")
	if strings.TrimSpace(joined) == "" {
		return Text{}, &ExtractionError{Filename: name}
	}
	t := Text{OriginalLen: len([]rune(joined))}
	if t.OriginalLen > PromptCap {
		t.Text = string([]rune(joined)[:PromptCap])
		t.Truncated = true
	} else {
		t.Text = joined
	}
	return t, nil
}
