package models

// TeamNumber is the side of the battle a card plays for.
type TeamNumber int

const (
	TeamUnassigned TeamNumber = iota
	TeamOne
	TeamTwo
)

func (t TeamNumber) String() string {
	switch t {
	case TeamOne:
		return "one"
	case TeamTwo:
		return "two"
	default:
		return "unassigned"
	}
}

// Valid reports whether t is one of the known team numbers.
func (t TeamNumber) Valid() bool {
	return t >= TeamUnassigned && t <= TeamTwo
}
