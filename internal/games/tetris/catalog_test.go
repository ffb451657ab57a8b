package tetris

import "testing"

func TestCatalogComplete(t *testing.T) {
	for k := KindI; k <= KindZ; k++ {
		for rot := range RotationCount {
			shape := ShapeOf(k, rot)
			seen := make(map[Offset]bool)
			for _, o := range shape {
				if seen[o] {
					t.Errorf("%v rotation %d has duplicate cell %v", k, rot, o)
				}
				seen[o] = true
			}
			if len(seen) != 4 {
				t.Errorf("%v rotation %d has %d distinct cells, want 4", k, rot, len(seen))
			}
		}
	}
}

func TestShapeRotationWraps(t *testing.T) {
	for k := KindI; k <= KindZ; k++ {
		if ShapeOf(k, 4) != ShapeOf(k, 0) {
			t.Errorf("%v: rotation 4 should equal rotation 0", k)
		}
		if ShapeOf(k, -1) != ShapeOf(k, 3) {
			t.Errorf("%v: rotation -1 should equal rotation 3", k)
		}
		if ShapeOf(k, 9) != ShapeOf(k, 1) {
			t.Errorf("%v: rotation 9 should equal rotation 1", k)
		}
	}
}

func TestSquareHasOneOrientation(t *testing.T) {
	base := ShapeOf(KindO, 0)
	for rot := 1; rot < RotationCount; rot++ {
		if ShapeOf(KindO, rot) != base {
			t.Errorf("O rotation %d differs from rotation 0", rot)
		}
	}
}

func TestShapesFitPreview(t *testing.T) {
	for k := KindI; k <= KindZ; k++ {
		for rot := range RotationCount {
			shape := ShapeOf(k, rot)
			minRow, minCol := shape.bounds()
			for _, o := range shape {
				if o.Row-minRow >= PreviewSize || o.Col-minCol >= PreviewSize {
					t.Errorf("%v rotation %d does not fit a %dx%d box", k, rot, PreviewSize, PreviewSize)
				}
			}
		}
	}
}

func TestUnknownKind(t *testing.T) {
	if Kind(7).Valid() || Kind(-1).Valid() {
		t.Error("out of range kinds should be invalid")
	}
	if ShapeOf(Kind(12), 0) != (Shape{}) {
		t.Error("unknown kind should yield the zero shape")
	}
	if Kind(12).String() != "?" {
		t.Errorf("unknown kind String() = %q", Kind(12).String())
	}
}
