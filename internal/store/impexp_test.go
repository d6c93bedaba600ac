package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExportFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportFile(dir, sampleProducts())
	if err != nil {
		t.Fatalf("ExportFile: %v", err)
	}

	wantName := fmt.Sprintf("inventory-export-%s.json", time.Now().Format("2006-01-02"))
	if filepath.Base(path) != wantName {
		t.Errorf("file name = %s, want %s", filepath.Base(path), wantName)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// pretty-printed, so indentation is present
	if !bytes.Contains(b, []byte("\n  ")) {
		t.Error("export is not pretty-printed")
	}

	got, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" || got[1].SKU != "CM-01" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestImportFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := ImportFile(path); err == nil {
		t.Fatal("expected parse error for malformed file")
	}
}

func TestImportFileMissing(t *testing.T) {
	if _, err := ImportFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportFileNilSales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nosales.json")
	if err := os.WriteFile(path, []byte(`[{"id":"x","name":"X","sku":"X-1"}]`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if got[0].Sales == nil {
		t.Error("Sales should be normalized to an empty list")
	}
}
