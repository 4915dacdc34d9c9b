package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/collage/assets"
	"github.com/milk9111/collage/export"
)

func TestTouchStep(t *testing.T) {
	type frame struct {
		ids    []ebiten.TouchID
		expect touchAction
	}
	cases := []struct {
		name   string
		frames []frame
		final  ebiten.TouchID
	}{
		{"tap", []frame{
			{[]ebiten.TouchID{1}, touchDown},
			{[]ebiten.TouchID{1}, touchMove},
			{nil, touchUp},
		}, 1},
		{"finger_swapped_in_one_frame", []frame{
			{[]ebiten.TouchID{1}, touchDown},
			{[]ebiten.TouchID{2}, touchRetarget},
			{[]ebiten.TouchID{2}, touchMove},
		}, 2},
		{"pinch_then_one_finger_waits", []frame{
			{[]ebiten.TouchID{1, 2}, touchPinch},
			{[]ebiten.TouchID{1, 2}, touchPinch},
			{[]ebiten.TouchID{2}, touchPinchEnd},
			{[]ebiten.TouchID{2}, touchNone},
			{nil, touchNone},
			{[]ebiten.TouchID{3}, touchDown},
		}, 3},
		{"drag_becomes_pinch", []frame{
			{[]ebiten.TouchID{1}, touchDown},
			{[]ebiten.TouchID{1, 2}, touchPinch},
			{nil, touchPinchEnd},
			{nil, touchNone},
		}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := pointerInput{touchID: -1}
			for i, f := range c.frames {
				if got := in.step(f.ids); got != f.expect {
					t.Fatalf("frame %d: expected action %d, got %d", i, f.expect, got)
				}
			}
			if in.touchID != c.final {
				t.Fatalf("expected tracked touch %d, got %d", c.final, in.touchID)
			}
		})
	}
}

func TestShortcutFormat(t *testing.T) {
	cases := []struct {
		in     string
		expect export.Format
		err    bool
	}{
		{"png", export.PNG, false},
		{"JPG", export.JPEG, false},
		{"bmp", export.PNG, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			f, err := shortcutFormat(c.in)
			if (err != nil) != c.err {
				t.Fatalf("unexpected error %v", err)
			}
			if f != c.expect {
				t.Fatalf("expected %q, got %q", c.expect, f)
			}
		})
	}
}

func TestRotationLabel(t *testing.T) {
	if rotationLabel(true) == rotationLabel(false) {
		t.Fatalf("rotation label should reflect the mode")
	}
}

func TestPickEntryRepeats(t *testing.T) {
	var picked []string
	onPicked := func(info assets.Info) { picked = append(picked, info.Name) }

	entry := assets.Info{Name: "cat.png", Path: "assets/cat.png"}
	for i := 0; i < 3; i++ {
		if !pickEntry(entry, onPicked) {
			t.Fatalf("pick %d was not forwarded", i)
		}
	}
	if len(picked) != 3 {
		t.Fatalf("expected three placements of the same asset, got %v", picked)
	}
	if pickEntry("not an asset", onPicked) || pickEntry(entry, nil) {
		t.Fatalf("unexpected pick")
	}
}
