package render

import "testing"

func TestRecorderImplementsOverlay(t *testing.T) {
	var r Renderer = NewRecorder()
	o, ok := AsOverlay(r)
	if !ok {
		t.Fatal("Recorder should implement Overlay")
	}
	r.DrawSprite("light", 1, 2, 90, true, false)
	o.FillCircle(5, 5, 10, ColorRange)
	o.DrawText("hello", 0, 0, 12, ColorText)

	rec := r.(*Recorder)
	sprites := rec.Sprites("light")
	if len(sprites) != 1 {
		t.Fatalf("Expected 1 sprite op, got %d", len(sprites))
	}
	if sprites[0].Rotation != 90 || !sprites[0].FlipX {
		t.Errorf("Unexpected sprite op %+v", sprites[0])
	}
	if rec.Count(OpFillCircle) != 1 {
		t.Errorf("Expected 1 circle, got %d", rec.Count(OpFillCircle))
	}
	if !rec.HasText("hello") {
		t.Error("Expected text to be recorded")
	}

	rec.Reset()
	if len(rec.Ops) != 0 {
		t.Error("Expected empty ops after reset")
	}
}
