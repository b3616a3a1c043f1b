package textload

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileUTF8(t *testing.T) {
	want := "今天天气不错，article 混排。"
	path := writeTemp(t, "a.txt", []byte(want))
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != want {
		t.Errorf("ReadFile = %q, want %q", got, want)
	}
}

func TestReadFileStripsBOM(t *testing.T) {
	want := "带BOM的文件内容"
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(want)...)
	path := writeTemp(t, "bom.txt", data)
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != want {
		t.Errorf("ReadFile = %q, want %q", got, want)
	}
}

func TestReadFileGB18030Fallback(t *testing.T) {
	want := "今天天气不错"
	encoded, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(want))
	if err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	path := writeTemp(t, "legacy.txt", encoded)
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != want {
		t.Errorf("ReadFile = %q, want %q", got, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
