package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	content := `[["C_R_S","B","C_R_E"],["E","M","E"]]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	rows, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("unexpected shape: %+v", rows)
	}
	if rows[1][1] != "M" {
		t.Fatalf("cell (1,1) = %q, want M", rows[1][1])
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParse_RejectsNonArray(t *testing.T) {
	if _, err := Parse([]byte(`{"rows":[]}`)); err == nil {
		t.Fatalf("expected error for non-array json")
	}
}
