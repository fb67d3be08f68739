package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestCatalog(t *testing.T) {
	tests := []struct {
		kind  Kind
		shape Shape
		color core.Color
	}{
		{KindT, parseShape("###", ".#."), core.ColorPurple},
		{KindO, parseShape("##", "##"), core.ColorYellow},
		{KindS, parseShape("##.", ".##"), core.ColorRed},
		{KindZ, parseShape(".##", "##."), core.ColorGreen},
		{KindL, parseShape("#..", "###"), core.ColorOrange},
		{KindJ, parseShape("..#", "###"), core.ColorPink},
		{KindI, parseShape("####"), core.ColorCyan},
	}

	if got := len(Catalog()); got != len(tests) {
		t.Fatalf("len(Catalog()) = %d, want %d", got, len(tests))
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tm := TetrominoOf(tt.kind)
			if !tt.shape.Equal(tm.Shape) {
				t.Errorf("shape = %v, want %v", tm.Shape, tt.shape)
			}
			if tm.Color != tt.color {
				t.Errorf("color = %v, want %v", tm.Color, tt.color)
			}
		})
	}
}

func TestTetrominoOfReturnsCopy(t *testing.T) {
	want := parseShape("###", ".#.")

	tm := TetrominoOf(KindT)
	tm.Shape[0][0] = false

	if got := TetrominoOf(KindT).Shape; !want.Equal(got) {
		t.Errorf("catalog changed through a copy: %v", got)
	}
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name string
		in   Shape
		want Shape
	}{
		{"T", parseShape("###", ".#."), parseShape(".#", "##", ".#")},
		{"I", parseShape("####"), parseShape("#", "#", "#", "#")},
		{"L", parseShape("#..", "###"), parseShape("##", "#.", "#.")},
		{"O", parseShape("##", "##"), parseShape("##", "##")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate()
			if !tt.want.Equal(got) {
				t.Errorf("Rotate() = %v, want %v", got, tt.want)
			}
			if got.Cols() != tt.in.Rows() || got.Rows() != tt.in.Cols() {
				t.Errorf("Rotate() size = %dx%d, want %dx%d", got.Rows(), got.Cols(), tt.in.Cols(), tt.in.Rows())
			}
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, tm := range Catalog() {
		t.Run(tm.Name, func(t *testing.T) {
			s := tm.Shape
			for i := 0; i < 4; i++ {
				s = s.Rotate()
			}
			if !tm.Shape.Equal(s) {
				t.Errorf("four rotations = %v, want %v", s, tm.Shape)
			}
		})
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	s := parseShape("###", ".#.")
	before := s.Clone()
	_ = s.Rotate()
	if !before.Equal(s) {
		t.Errorf("Rotate changed its receiver: %v", s)
	}
}

func TestSpawnCentresPiece(t *testing.T) {
	tests := []struct {
		kind  Kind
		wantX int
	}{
		{KindT, 3},
		{KindO, 4},
		{KindI, 3},
	}

	for _, tt := range tests {
		p := Spawn(TetrominoOf(tt.kind), DefaultCols)
		if p.X != tt.wantX || p.Y != 0 {
			t.Errorf("Spawn(%v) at (%d,%d), want (%d,0)", tt.kind, p.X, p.Y, tt.wantX)
		}
	}
}
