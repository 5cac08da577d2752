package battleship

import "testing"

func TestTranspose(t *testing.T) {
	shape := ShipShape{
		{StatusLive, StatusLive, StatusSpace},
		{StatusSpace, StatusLive, StatusSpace},
		{StatusSpace, StatusSpace, StatusSpace},
	}
	expected := ShipShape{
		{StatusLive, StatusSpace, StatusSpace},
		{StatusLive, StatusLive, StatusSpace},
		{StatusSpace, StatusSpace, StatusSpace},
	}

	if transpose(shape) != expected {
		t.Fatalf("expected: %v\t got: %v", expected, transpose(shape))
	}
}

func TestReverseColsOfRows(t *testing.T) {
	shape := ShipShape{
		{StatusLive, StatusLive, StatusSpace},
		{StatusSpace, StatusLive, StatusSpace},
		{StatusSpace, StatusSpace, StatusSpace},
	}
	expected := ShipShape{
		{StatusSpace, StatusLive, StatusLive},
		{StatusSpace, StatusLive, StatusSpace},
		{StatusSpace, StatusSpace, StatusSpace},
	}

	if reverseColsOfRows(shape) != expected {
		t.Fatalf("expected: %v\t got: %v", expected, reverseColsOfRows(shape))
	}
}

func TestReverseRowsOfCols(t *testing.T) {
	shape := ShipShape{
		{StatusLive, StatusLive, StatusSpace},
		{StatusSpace, StatusLive, StatusSpace},
		{StatusSpace, StatusSpace, StatusLive},
	}
	expected := ShipShape{
		{StatusSpace, StatusSpace, StatusLive},
		{StatusSpace, StatusLive, StatusSpace},
		{StatusLive, StatusLive, StatusSpace},
	}

	if reverseRowsOfCols(shape) != expected {
		t.Fatalf("expected: %v\t got: %v", expected, reverseRowsOfCols(shape))
	}
}

func TestShipTypeShape(t *testing.T) {
	tests := []struct {
		name     string
		shipType ShipType
		rotation uint16
		expected ShipShape
	}{
		{
			name:     "H base rotation",
			shipType: ShipTypeH,
			rotation: 90,
			expected: ShipShape{
				{StatusLive, StatusSpace, StatusLive},
				{StatusLive, StatusLive, StatusLive},
				{StatusLive, StatusSpace, StatusLive},
			},
		},
		{
			name:     "H rotated 180",
			shipType: ShipTypeH,
			rotation: 180,
			expected: ShipShape{
				{StatusLive, StatusLive, StatusLive},
				{StatusSpace, StatusLive, StatusSpace},
				{StatusLive, StatusLive, StatusLive},
			},
		},
		{
			name:     "V rotated 270",
			shipType: ShipTypeV,
			rotation: 270,
			expected: ShipShape{
				{StatusSpace, StatusLive, StatusSpace},
				{StatusLive, StatusSpace, StatusLive},
				{StatusLive, StatusSpace, StatusLive},
			},
		},
		{
			name:     "V rotated 360",
			shipType: ShipTypeV,
			rotation: 360,
			expected: ShipShape{
				{StatusLive, StatusLive, StatusSpace},
				{StatusSpace, StatusSpace, StatusLive},
				{StatusLive, StatusLive, StatusSpace},
			},
		},
		{
			name:     "unknown rotation falls back to base shape",
			shipType: ShipTypeI,
			rotation: 45,
			expected: ShipShape{
				{StatusSpace, StatusLive, StatusSpace},
				{StatusSpace, StatusLive, StatusSpace},
				{StatusSpace, StatusLive, StatusSpace},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.shipType.Shape(test.rotation); got != test.expected {
				t.Fatalf("expected: %v\t got: %v", test.expected, got)
			}
		})
	}
}

func TestShipTypeLiveCellCounts(t *testing.T) {
	expected := map[ShipType]int{
		ShipTypeX: 5,
		ShipTypeV: 5,
		ShipTypeH: 7,
		ShipTypeI: 3,
	}

	for _, shipType := range InitialShips() {
		var count int
		for _, row := range shipType.Shape(90) {
			for _, cell := range row {
				if cell == StatusLive {
					count++
				}
			}
		}
		if count != expected[shipType] {
			t.Fatalf("ship type %d: expected %d live cells, got %d", shipType, expected[shipType], count)
		}
	}
}

func TestShotSetSorted(t *testing.T) {
	shots := NewShotSet(
		NewCoordinate(3, 3),
		NewCoordinate(1, 5),
		NewCoordinate(1, 1),
		NewCoordinate(3, 3),
	)

	if len(shots) != 3 {
		t.Fatalf("expected set semantics, got %d entries", len(shots))
	}
	if !shots.Has(NewCoordinate(1, 5)) {
		t.Fatal("added coordinate missing from the set")
	}
	if shots.Has(NewCoordinate(0, 0)) {
		t.Fatal("never added coordinate reported present")
	}

	sorted := shots.Sorted()
	expected := []Coordinate{{Row: 1, Col: 1}, {Row: 1, Col: 5}, {Row: 3, Col: 3}}
	for i, c := range expected {
		if sorted[i] != c {
			t.Fatalf("expected %v at index %d, got %v", c, i, sorted[i])
		}
	}
}
