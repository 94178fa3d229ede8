package gui

import "testing"

func TestTransform_ResolveWidth(t *testing.T) {
	const parentW, viewportW = 400, 800

	tests := []struct {
		name   string
		tr     Transform
		expect float32
	}{
		{"fill takes parent", Transform{Width: Fill}, 400},
		{"pixel exact", Transform{Width: Pixels(123)}, 123},
		{"percent of parent", Transform{Width: Percent(25)}, 100},
		{"abs percent of viewport", Transform{Width: AbsPercent(25)}, 200},
		{
			"margin subtracted before clamp",
			Transform{Width: Fill, Margin: Pixels(40)},
			360,
		},
		{
			"max clamps after margin",
			Transform{Width: Fill, Margin: Pixels(40), MaxWidth: Pixels(300)},
			300,
		},
		{
			"min raises clamped value",
			Transform{Width: Pixels(10), MinWidth: Pixels(50)},
			50,
		},
		{
			"min wins over smaller max",
			Transform{Width: Fill, MinWidth: Pixels(200), MaxWidth: Pixels(100)},
			200,
		},
		{
			"percent margin of parent",
			Transform{Width: Fill, Margin: Percent(10)},
			360,
		},
		{
			"oversized margin clamps at implicit zero min",
			Transform{Width: Pixels(20), Margin: Pixels(50)},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.ResolveWidth(parentW, viewportW)
			if got != tt.expect {
				t.Errorf("ResolveWidth(%v, %v) = %v, want %v", float32(parentW), float32(viewportW), got, tt.expect)
			}
		})
	}
}

func TestTransform_ResolveHeight(t *testing.T) {
	const parentH, viewportH = 300, 600

	tests := []struct {
		name   string
		tr     Transform
		expect float32
	}{
		{"fill takes parent", Transform{Height: Fill}, 300},
		{"pixel exact", Transform{Height: Pixels(42)}, 42},
		{"abs fill takes viewport", Transform{Height: AbsFill}, 600},
		{
			"clamp order max then min",
			Transform{Height: Fill, MaxHeight: Pixels(250), MinHeight: Pixels(100)},
			250,
		},
		{
			"min wins over max",
			Transform{Height: Pixels(10), MinHeight: Pixels(80), MaxHeight: Pixels(40)},
			80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.ResolveHeight(parentH, viewportH)
			if got != tt.expect {
				t.Errorf("ResolveHeight(%v, %v) = %v, want %v", float32(parentH), float32(viewportH), got, tt.expect)
			}
		})
	}
}

func TestTransform_ResolvePosition(t *testing.T) {
	// Parent box centered at origin, 400x300; element 100x60.
	const pw, ph = 400, 300
	const w, h = 100, 60

	tests := []struct {
		name  string
		tr    Transform
		wantX float32
		wantY float32
	}{
		{"default centers", Transform{}, 0, 0},
		{
			"top left anchor, center align",
			Transform{Position: Anchor(PositionTopLeft)},
			-200, -150,
		},
		{
			"anchor one edge, align another",
			Transform{
				Position: Anchor(PositionLeft),
				Align:    Anchor(PositionRight),
			},
			-250, 0,
		},
		{
			"custom anchor with pixel align",
			Transform{
				Position: Custom(Pixels(30), Pixels(-20)),
				Align:    Custom(Pixels(5), Pixels(5)),
			},
			35, -15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.tr.ResolvePosition(0, 0, pw, ph, w, h)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ResolvePosition = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNodeTransform_ZeroRotation(t *testing.T) {
	tree := NewTree(800, 600)
	rec := &recordingRenderable{}
	key := tree.Add(NewElement().WithRenderable(rec))
	if err := tree.SetEntry(key); err != nil {
		t.Fatalf("SetEntry: %v", err)
	}
	if rec.transform.Rotation != 0 {
		t.Errorf("resolved rotation = %v, want 0", rec.transform.Rotation)
	}
}
