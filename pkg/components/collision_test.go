package components

import "testing"

func TestCollisionBounds(t *testing.T) {
	col := &CollisionComponent{Width: 80, Height: 60}
	l, top, r, b := col.Bounds(550, 325)
	if l != 510 || r != 590 || top != 295 || b != 355 {
		t.Errorf("Bounds = (%v, %v, %v, %v), want (510, 295, 590, 355)", l, top, r, b)
	}

	col.OffsetX, col.OffsetY = 10, -10
	l, top, _, _ = col.Bounds(550, 325)
	if l != 520 || top != 285 {
		t.Errorf("offset bounds left/top = (%v, %v), want (520, 285)", l, top)
	}
}
