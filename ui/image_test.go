package ui

import (
	"testing"

	"tictacpen/flow"
)

func TestImageDrawLine(t *testing.T) {
	m := NewImage()
	m.DrawLine(5, 1, 5, 17)
	for y := 1; y <= 17; y++ {
		if !m.Pixel(5, y) {
			t.Fatalf("pixel (5,%d) not set", y)
		}
	}
	if m.Pixel(5, 0) || m.Pixel(5, 18) || m.Pixel(4, 5) {
		t.Fatal("line drawn past its ends")
	}

	m.Clear()
	m.DrawLine(3, 4, 1, 2)
	for _, p := range [][2]int{{1, 2}, {2, 3}, {3, 4}} {
		if !m.Pixel(p[0], p[1]) {
			t.Fatalf("diagonal misses (%d,%d)", p[0], p[1])
		}
	}
	if m.Pixel(2, 2) || m.Pixel(1, 3) {
		t.Fatal("diagonal should not be stair-stepped")
	}
}

func TestImageClipping(t *testing.T) {
	m := NewImage()
	m.FillRect(flow.ImageWidth-2, flow.ImageHeight-2, 10, 10)
	if !m.Pixel(flow.ImageWidth-1, flow.ImageHeight-1) {
		t.Fatal("corner pixel not set")
	}
	if m.Pixel(flow.ImageWidth, flow.ImageHeight) {
		t.Fatal("pixel outside the image reported as set")
	}
	m.DrawLine(-10, 0, 200, 0)
	if !m.Pixel(0, 0) || !m.Pixel(flow.ImageWidth-1, 0) {
		t.Fatal("clipped line missing inside the image")
	}
}

func TestImageRows(t *testing.T) {
	m := NewImage()
	m.FillRect(0, 0, 1, 2)
	m.FillRect(1, 0, 1, 1)
	m.FillRect(2, 1, 1, 1)
	m.DrawString("Your turn!", 25, 2)

	rows := m.Rows()
	if len(rows) != (flow.ImageHeight+1)/2 {
		t.Fatalf("expected %d rows, got %d", (flow.ImageHeight+1)/2, len(rows))
	}
	if rows[0] != "█▀▄" {
		t.Fatalf("row 0 = %q", rows[0])
	}
	want := "                         Your turn!"
	if rows[1] != want {
		t.Fatalf("row 1 = %q, want %q", rows[1], want)
	}
	if rows[2] != "" {
		t.Fatalf("row 2 should be blank, got %q", rows[2])
	}

	m.Clear()
	if rows := m.Rows(); rows[0] != "" || rows[1] != "" {
		t.Fatal("Clear should drop pixels and text")
	}
}
