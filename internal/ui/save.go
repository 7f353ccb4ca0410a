package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"PaintBoard/internal/export"
	"PaintBoard/internal/logging"

	"fyne.io/fyne/v2"
)

// WriteExport renders the committed strokes into w. A name ending in .pdf
// produces a PDF document, anything else a PNG image.
func (b *BoardWidget) WriteExport(w io.Writer, name string) (string, error) {
	width, height := b.ExportSize()
	strokes := b.model.Strokes()

	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		if err := export.PDF(w, strokes, width, height, b.background); err != nil {
			return "", err
		}
		return "pdf", nil
	}

	data, err := export.PNG(strokes, width, height, b.background)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("write png: %w", err)
	}
	return "png", nil
}

// SaveToFile is the callback of the save dialog.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		logging.Warnf("[EXPORT] Save dialog failed: %v", err)
		b.SetStatus("Error saving file")
		return
	}
	if writer == nil {
		return // cancelled
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logging.Warnf("[EXPORT] Error closing writer: %v", err)
		}
	}()

	name := writer.URI().Name()
	logging.Infof("[EXPORT] Saving %d strokes to %s", len(b.model.Strokes()), writer.URI())

	format, err := b.WriteExport(writer, name)
	if err != nil {
		logging.Warnf("[EXPORT] Export failed: %v", err)
		b.SetStatus("Error writing file")
		return
	}
	b.SetStatus(fmt.Sprintf("Saved %s as %s", name, strings.ToUpper(format)))
}
