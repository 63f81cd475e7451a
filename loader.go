package badbets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// LoadLedger reads the ledger stored in path.
// The error wraps fs.ErrNotExist when the file does not exist.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger to path, creating the parent directories.
// The previous content is replaced only once the new one is fully written.
func SaveLedger(path string, ledger *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", path, err)
	}
	return nil
}
