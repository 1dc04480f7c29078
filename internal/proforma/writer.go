package proforma

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer menyimpan artifact sebagai JSON pada path
// <root>/<branch>/<year>/<month>/<period>.json.
type Writer struct {
	root string
}

func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

func (w *Writer) Write(p *Proforma) (string, error) {
	dir := filepath.Join(
		w.root,
		p.BranchID,
		fmt.Sprintf("%04d", p.Year),
		fmt.Sprintf("%02d", p.Month),
	)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	payload, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, p.PeriodID+".json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
