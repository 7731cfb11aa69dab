package worldmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestViewsPaintFullBuffer(t *testing.T) {
	m := generatedTestMap(t, 42)
	side := m.Grid().Side()

	for _, v := range Views() {
		buf := make([]byte, 4*side*side)
		v.Paint(m, buf)
		for px := 0; px < side*side; px++ {
			if buf[px*4+3] != 255 {
				t.Fatalf("view %q left pixel %d transparent", v.Name, px)
			}
		}
	}
}

func TestEmitViewsWritesFiles(t *testing.T) {
	m := generatedTestMap(t, 42)
	dir := t.TempDir()
	if err := m.EmitViews(dir, 2); err != nil {
		t.Fatalf("emit views: %v", err)
	}
	for _, v := range Views() {
		path := filepath.Join(dir, v.Name+".png")
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("view %q missing: %v", v.Name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("view %q is empty", v.Name)
		}
	}
}
