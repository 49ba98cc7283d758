package ingest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/savvyai/guardian/schema"
)

// LoadDir reads every supported file under dir (non-recursive) into
// documents. Supported: .txt, .md, .markdown, .pdf. Unsupported files are
// skipped; unreadable supported files are an error.
func LoadDir(dir string) ([]schema.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge dir: %w", err)
	}

	var docs []schema.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		var doc *schema.Document
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md", ".markdown":
			doc, err = loadText(path)
		case ".pdf":
			doc, err = loadPDF(path)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

func loadText(path string) (*schema.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := strings.TrimSpace(string(content))
	if text == "" {
		return nil, nil
	}

	doc := schema.NewDocument(text)
	doc.Metadata["source"] = filepath.Base(path)
	return doc, nil
}

func loadPDF(path string) (*schema.Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than dropping the whole file.
			continue
		}
		if _, err := io.WriteString(&buf, text); err != nil {
			return nil, err
		}
		buf.WriteString("\n")
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return nil, nil
	}

	doc := schema.NewDocument(text)
	doc.Metadata["source"] = filepath.Base(path)
	return doc, nil
}
