package nonogram

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// FileExtension is the extension of written level files.
const FileExtension = ".nonogram"

// Path returns outputDir/<tier>/<name>.nonogram. Unclassified puzzles go
// directly into outputDir.
func Path(outputDir string, tier Tier, name string) string {
	return filepath.Join(outputDir, string(tier), name+FileExtension)
}

// WriteFile encodes n to path, creating missing parent directories.
func WriteFile(path string, n *Nonogram) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, n); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes all nonograms stored in path.
func ReadFile(path string) ([]*Nonogram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
