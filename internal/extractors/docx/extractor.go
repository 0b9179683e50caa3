package docx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	docxlib "github.com/fumiama/go-docx"

	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles Word documents. DOCX has no fixed page boundaries
// before layout, so the document's paragraphs are joined into a single
// page 1 record, the same treatment plain text files get.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".docx"}
}

// Extract parses the document and joins its paragraph text.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.PageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docxlib.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parsing docx: %w", err)
	}

	var buf strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docxlib.Paragraph)
		if !ok {
			continue
		}
		if text := paragraphText(para); text != "" {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(text)
		}
	}

	text := domain.CleanText(buf.String())
	return []domain.PageRecord{{
		DocumentName: filepath.Base(path),
		DocumentPath: path,
		PageNumber:   1,
		Text:         text,
		Section:      domain.InferSection(text),
	}}, nil
}

func paragraphText(para *docxlib.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docxlib.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docxlib.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
