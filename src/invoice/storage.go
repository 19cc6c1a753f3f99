package invoice

import (
	"fmt"
	"os"
	"path"

	"umrahdesk/src/config"
)

// writeInvoiceFile persists the rendered document under the invoice
// directory served by the download route.
func writeInvoiceFile(filename string, pdfBytes []byte) error {
	dir := config.InvoiceDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error preparing invoice directory: %w", err)
	}
	filepath := path.Join(dir, filename)
	if err := os.WriteFile(filepath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("error writing invoice file: %w", err)
	}
	return nil
}

// InvoicePath resolves a stored invoice file, refusing names that try to
// escape the invoice directory.
func InvoicePath(filename string) (string, error) {
	if filename == "" || filename != path.Base(filename) {
		return "", fmt.Errorf("invalid invoice file name")
	}
	filepath := path.Join(config.InvoiceDir(), filename)
	if _, err := os.Stat(filepath); err != nil {
		return "", err
	}
	return filepath, nil
}
