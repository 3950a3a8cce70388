package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"VARIABLE", "COLOR"}, [][]string{
		{"accent", "#66C0F4"},
		{"bg", "#1B2838"},
	})
	if err != nil {
		t.Fatalf("writeTable failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "VARIABLE") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "#66C0F4") {
		t.Errorf("missing row value: %q", lines[1])
	}

	// Columns start at the same offset once tabs are expanded.
	if strings.Index(lines[1], "#") != strings.Index(lines[2], "#") {
		t.Errorf("columns not aligned:\n%q\n%q", lines[1], lines[2])
	}
}

func TestWriteTableNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, nil, [][]string{{"a", "b"}}); err != nil {
		t.Fatalf("writeTable failed: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected a single line, got %q", buf.String())
	}
}
