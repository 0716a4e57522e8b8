package actionspace

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		step     MoveStep
		wantIdx  int
		wantPair [2]int
	}{
		{MoveStep{}, 0, [2]int{0, 0}},
		{MoveStep{Dir: DirLeft}, 10, [2]int{1, 0}},
		{MoveStep{Attack: AttackLP}, 1, [2]int{0, 1}},
		{MoveStep{Dir: DirDown, Attack: AttackLP}, 71, [2]int{7, 1}},
		{MoveStep{Dir: DirDownRight, Attack: AttackMP}, 62, [2]int{6, 2}},
		{MoveStep{Dir: DirRight, Attack: AttackHP}, 53, [2]int{5, 3}},
		{MoveStep{Dir: DirDownLeft, Attack: AttackHPK}, 89, [2]int{8, 9}},
	}
	for _, tt := range tests {
		idx, pair := Encode(tt.step)
		if idx != tt.wantIdx || pair != tt.wantPair {
			t.Errorf("Encode(%v) = (%d, %v), want (%d, %v)", tt.step, idx, pair, tt.wantIdx, tt.wantPair)
		}
	}
}

func TestNeutral(t *testing.T) {
	idx, pair := Neutral()
	if idx != 0 || pair != [2]int{0, 0} {
		t.Errorf("Neutral() = (%d, %v), want (0, [0 0])", idx, pair)
	}
}

func TestDecodeRoundtrip(t *testing.T) {
	for idx := 0; idx < Size(); idx++ {
		step, err := Decode(idx)
		if err != nil {
			t.Fatalf("Decode(%d): %v", idx, err)
		}
		back, pair := Encode(step)
		if back != idx {
			t.Errorf("Encode(Decode(%d)) = %d", idx, back)
		}
		if pair[0] != int(step.Dir) || pair[1] != int(step.Attack) {
			t.Errorf("Decode(%d) pair mismatch: %v vs %v", idx, pair, step)
		}
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, Size(), Size() + 10} {
		if _, err := Decode(idx); err == nil {
			t.Errorf("Decode(%d) succeeded, want error", idx)
		}
	}
}

func TestSize(t *testing.T) {
	if Size() != 90 {
		t.Errorf("Size() = %d, want 90", Size())
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
	}{
		{"", DirNeutral},
		{"l", DirLeft},
		{"ul", DirUpLeft},
		{"u", DirUp},
		{"ur", DirUpRight},
		{"r", DirRight},
		{"dr", DirDownRight},
		{"d", DirDown},
		{"dl", DirDownLeft},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.name)
		if !ok || got != tt.dir {
			t.Errorf("ParseDirection(%q) = (%v, %v), want %v", tt.name, got, ok, tt.dir)
		}
	}
	if _, ok := ParseDirection("down"); ok {
		t.Error("ParseDirection accepted unknown name")
	}
	if a, ok := ParseAttack("mpk"); !ok || a != AttackMPK {
		t.Errorf("ParseAttack(mpk) = (%v, %v)", a, ok)
	}
	if _, ok := ParseAttack("punch"); ok {
		t.Error("ParseAttack accepted unknown name")
	}
}

func TestStepString(t *testing.T) {
	s := MoveStep{Dir: DirDownRight, Attack: AttackLK}
	if got := s.String(); got != "dr+lk" {
		t.Errorf("String() = %q, want %q", got, "dr+lk")
	}
	if got := (MoveStep{}).String(); got != "+" {
		t.Errorf("neutral String() = %q, want %q", got, "+")
	}
}
