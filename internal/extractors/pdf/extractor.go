package pdf

import (
	"context"
	"fmt"
	"path/filepath"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/policyq/policyq-cli/internal/core/domain"
	"github.com/policyq/policyq-cli/internal/core/ports/driven"
	"github.com/policyq/policyq-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor reads PDF documents page by page.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".pdf"}
}

// Extract returns one PageRecord per physical page of the PDF at path.
// A page whose text extraction fails produces an empty-text record so
// the record count always equals the document's page count. Failing to
// open the document at all is an error; the ingestor then skips it.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.PageRecord, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	numPages := reader.NumPage()
	pages := make([]domain.PageRecord, 0, numPages)

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var text string
		page := reader.Page(i)
		if !page.V.IsNull() {
			plain, err := page.GetPlainText(nil)
			if err != nil {
				logger.Warn("%s page %d: text extraction failed: %v", name, i, err)
			} else {
				text = domain.CleanText(plain)
			}
		}

		pages = append(pages, domain.PageRecord{
			DocumentName: name,
			DocumentPath: path,
			PageNumber:   i,
			Text:         text,
			Section:      domain.InferSection(text),
		})
	}

	logger.Debug("%s: %d pages", name, len(pages))
	return pages, nil
}
