package card

// CanFollow reports whether candidate may be placed on top of the discard
// pile. A wild card on the pile matches through the color it was assigned.
func CanFollow(candidate Card, top Card) bool {
	if candidate.IsWild() {
		return true
	}
	if candidate.color == top.color {
		return true
	}
	if candidate.kind == top.kind && candidate.kind != Number {
		return true
	}
	return candidate.kind == Number && top.kind == Number && candidate.number == top.number
}
