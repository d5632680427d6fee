package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureStdout(t, func() {
		if err := PrintJSON(map[string]string{"status": "ok"}); err != nil {
			t.Errorf("PrintJSON failed: %v", err)
		}
	})

	if !strings.Contains(out, `"status": "ok"`) {
		t.Errorf("unexpected JSON output: %q", out)
	}
}

func TestPrintTable(t *testing.T) {
	out := captureStdout(t, func() {
		PrintTable([]string{"ID", "NAME"}, [][]string{
			{"abc", "alice"},
			{"def", "bob"},
		})
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("expected header line, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "bob") {
		t.Errorf("expected row for bob, got %q", lines[2])
	}
}

func TestPrintFormatted(t *testing.T) {
	data := map[string]string{"name": "alice"}

	jsonOut := captureStdout(t, func() {
		if err := PrintFormatted("json", data, func() {}); err != nil {
			t.Errorf("PrintFormatted json failed: %v", err)
		}
	})
	if !strings.Contains(jsonOut, `"name": "alice"`) {
		t.Errorf("expected JSON output, got %q", jsonOut)
	}

	tableCalled := false
	captureStdout(t, func() {
		if err := PrintFormatted("table", data, func() { tableCalled = true }); err != nil {
			t.Errorf("PrintFormatted table failed: %v", err)
		}
	})
	if !tableCalled {
		t.Error("expected table callback to be invoked")
	}
}
