package core

// Direction is the travel sign along one axis
type Direction uint8

const (
	// DirPositive is the zero value: rightward on X, upward on Y
	DirPositive Direction = iota
	DirNegative
)

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == DirPositive {
		return DirNegative
	}
	return DirPositive
}

// Sign returns +1 or -1
func (d Direction) Sign() float32 {
	if d == DirNegative {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == DirNegative {
		return "negative"
	}
	return "positive"
}
