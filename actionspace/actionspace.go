package actionspace

import "fmt"

// Direction codes for the multi-discrete action space. The numbering
// matches the environment's direction head: 0 is neutral, the rest go
// counter-clockwise starting from left.
type Direction int

const (
	DirNeutral Direction = iota
	DirLeft
	DirUpLeft
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
)

// Attack codes for the second multi-discrete head. 0 is no button,
// 1-6 are the six punches/kicks, 7-9 are the paired punch+kick presses.
type Attack int

const (
	AttackNone Attack = iota
	AttackLP
	AttackMP
	AttackHP
	AttackLK
	AttackMK
	AttackHK
	AttackLPK
	AttackMPK
	AttackHPK
)

const (
	NumDirections = 9
	NumAttacks    = 10
)

var directionNames = [NumDirections]string{"", "l", "ul", "u", "ur", "r", "dr", "d", "dl"}
var attackNames = [NumAttacks]string{"", "lp", "mp", "hp", "lk", "mk", "hk", "lpk", "mpk", "hpk"}

// ParseDirection maps a short direction name ("l", "ul", ...) to its code.
// The empty string is the neutral direction.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return DirNeutral, false
}

// ParseAttack maps a short attack name ("lp", "hk", ...) to its code.
// The empty string means no button.
func ParseAttack(name string) (Attack, bool) {
	for i, n := range attackNames {
		if n == name {
			return Attack(i), true
		}
	}
	return AttackNone, false
}

// MoveStep is one input frame of a move: a direction plus a button,
// optionally held. Hold steps stay pending in an agent's queue for
// HoldFrames simulated frames before the queue moves past them.
type MoveStep struct {
	Dir        Direction
	Attack     Attack
	Hold       bool
	HoldFrames int
}

func (s MoveStep) String() string {
	return directionNames[s.Dir] + "+" + attackNames[s.Attack]
}

// Size returns the number of distinct encodable actions.
func Size() int {
	return NumDirections * NumAttacks
}

// Encode maps a step to its discrete index and its multi-discrete
// (direction, attack) pair. Both representations are always produced.
func Encode(s MoveStep) (int, [2]int) {
	return int(s.Dir)*NumAttacks + int(s.Attack), [2]int{int(s.Dir), int(s.Attack)}
}

// Neutral returns the do-nothing action in both representations.
func Neutral() (int, [2]int) {
	return Encode(MoveStep{})
}

// Decode is the inverse of Encode's discrete half.
func Decode(idx int) (MoveStep, error) {
	if idx < 0 || idx >= Size() {
		return MoveStep{}, fmt.Errorf("action index out of range: %d", idx)
	}
	return MoveStep{
		Dir:    Direction(idx / NumAttacks),
		Attack: Attack(idx % NumAttacks),
	}, nil
}
