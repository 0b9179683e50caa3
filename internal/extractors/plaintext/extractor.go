package plaintext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents. A text file has no physical
// pages, so its whole content becomes a single page 1 record.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".txt", ".text"}
}

// Extract reads the whole file as one page.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.PageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}

	text := domain.CleanText(string(raw))
	return []domain.PageRecord{{
		DocumentName: filepath.Base(path),
		DocumentPath: path,
		PageNumber:   1,
		Text:         text,
		Section:      domain.InferSection(text),
	}}, nil
}
