package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/reassoc/gohost"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const sample = `package vec

import "example.com/fastmath"

func dot(a, b [3]float64) float64 {
	return fastmath.Relaxed(a[0]*b[0] + a[1]*b[1] + a[2]*b[2])
}
`

func TestProcessFileInPlace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.relaxgo")
	defer teardown()
	//
	filename := filepath.Join(t.TempDir(), "dot.go")
	if err := os.WriteFile(filename, []byte(sample), 0640); err != nil {
		t.Fatal(err)
	}
	n, err := processFile(filename, gohost.DefaultConfig(), true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 rewritten call, got %d", n)
	}
	out, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "Relaxed") {
		t.Errorf("expected marker to be gone, got\n%s", out)
	}
	if !strings.Contains(string(out), "fastmath.Sum(") || !strings.Contains(string(out), "fastmath.Product(") {
		t.Errorf("expected relaxed calls in output, got\n%s", out)
	}
	info, _ := os.Stat(filename)
	if info.Mode().Perm() != 0640 {
		t.Errorf("expected file mode to be kept, got %v", info.Mode().Perm())
	}
}

func TestProcessFileMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.relaxgo")
	defer teardown()
	//
	if _, err := processFile(filepath.Join(t.TempDir(), "none.go"), gohost.DefaultConfig(), true); err == nil {
		t.Errorf("expected error for missing file")
	}
}
