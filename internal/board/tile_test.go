package board

import "testing"

func TestArchetypeBaseConnectors(t *testing.T) {
	tests := []struct {
		archetype Archetype
		want      []Direction
	}{
		{Blank, nil},
		{Single, []Direction{Top}},
		{Straight, []Direction{Right, Left}},
		{Corner, []Direction{Bottom, Left}},
		{Tee, []Direction{Top, Right, Bottom}},
		{Cross, []Direction{Top, Right, Bottom, Left}},
	}

	for _, tt := range tests {
		tile := NewTile(tt.archetype, 0, 0, Top)
		got := tile.Connectors()
		if len(got) != len(tt.want) {
			t.Errorf("%v connectors = %v, want %v", tt.archetype, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v connectors = %v, want %v", tt.archetype, got, tt.want)
				break
			}
		}
	}
}

func TestTileRotateAdvancesConnectors(t *testing.T) {
	// A single tile's one connector follows the clockwise cycle.
	tile := NewTile(Single, 0, 0, Top)
	wantFacing := []Direction{Right, Bottom, Left, Top}

	for i, want := range wantFacing {
		tile.Rotate()
		if !tile.HasConnector(want) {
			t.Errorf("after %d rotations: missing connector at %v", i+1, want)
		}
		if got := len(tile.Connectors()); got != 1 {
			t.Errorf("after %d rotations: %d connectors, want 1", i+1, got)
		}
	}
}

func TestTileRotationCyclicity(t *testing.T) {
	for _, a := range Archetypes() {
		tile := NewTile(a, 2, 3, Right)
		startOrientation := tile.Orientation()
		startConnectors := tile.Connectors()
		startCount := tile.Rotations()

		for i := 0; i < 4; i++ {
			tile.Rotate()
		}

		if tile.Orientation() != startOrientation {
			t.Errorf("%v: orientation after 4 rotations = %v, want %v",
				a, tile.Orientation(), startOrientation)
		}
		got := tile.Connectors()
		if len(got) != len(startConnectors) {
			t.Errorf("%v: connectors after 4 rotations = %v, want %v", a, got, startConnectors)
		} else {
			for i := range got {
				if got[i] != startConnectors[i] {
					t.Errorf("%v: connectors after 4 rotations = %v, want %v", a, got, startConnectors)
					break
				}
			}
		}
		if tile.Rotations() != startCount+4 {
			t.Errorf("%v: rotation count = %d, want %d", a, tile.Rotations(), startCount+4)
		}
	}
}

func TestTileRotationCountNeverWraps(t *testing.T) {
	tile := NewTile(Cross, 0, 0, Top)
	prev := tile.Rotations()
	for i := 0; i < 23; i++ {
		tile.Rotate()
		if tile.Rotations() != prev+1 {
			t.Fatalf("rotation %d: count = %d, want %d", i+1, tile.Rotations(), prev+1)
		}
		prev = tile.Rotations()
	}
	if prev != 23 {
		t.Errorf("rotation count after 23 rotations = %d, want 23", prev)
	}
}

func TestConnectorMaskRotated(t *testing.T) {
	m := Corner.baseMask() // bottom+left
	tests := []struct {
		steps Direction
		want  connectorMask
	}{
		{Top, 1<<Bottom | 1<<Left},
		{Right, 1<<Left | 1<<Top},
		{Bottom, 1<<Top | 1<<Right},
		{Left, 1<<Right | 1<<Bottom},
	}

	for _, tt := range tests {
		if got := m.rotated(tt.steps); got != tt.want {
			t.Errorf("rotated(%v) = %04b, want %04b", tt.steps, got, tt.want)
		}
	}
}
