package gear

// ChangeKind says what happened to an item.
type ChangeKind uint8

const (
	Added ChangeKind = iota
	Removed
	Equipped
	Unequipped
	Updated
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Equipped:
		return "equipped"
	case Unequipped:
		return "unequipped"
	default:
		return "updated"
	}
}

// Change is published by an inventory whenever its item tree changes.
type Change struct {
	Kind   ChangeKind
	ItemID string
}
