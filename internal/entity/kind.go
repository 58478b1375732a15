// Package entity defines the things that live in the world: carryable items,
// fixed landmarks, and the explicit state each one is in.
package entity

// Item identifies a carryable thing. None means an empty hand.
type Item uint8

const (
	None Item = iota

	// Raw materials, consumed at the workbench.
	Board
	Rope
	PickAxeHead
	Stick
	Rod
	Knife

	// Tools, crafted from two materials and consumed at a landmark.
	Bridge
	PickAxe
	LongKnife

	// Pedestal items and the key.
	Crystal
	Coin
	Apple
	Rock
	Key

	NumItems
)

var itemNames = [NumItems]string{
	None:        "none",
	Board:       "board",
	Rope:        "rope",
	PickAxeHead: "pick_axe_head",
	Stick:       "stick",
	Rod:         "rod",
	Knife:       "knife",
	Bridge:      "bridge",
	PickAxe:     "pick_axe",
	LongKnife:   "long_knife",
	Crystal:     "crystal",
	Coin:        "coin",
	Apple:       "apple",
	Rock:        "rock",
	Key:         "key",
}

func (i Item) String() string {
	if i < NumItems {
		return itemNames[i]
	}
	return "unknown"
}

// IsMaterial reports whether i can be delivered to the workbench.
func (i Item) IsMaterial() bool {
	switch i {
	case Board, Rope, PickAxeHead, Stick, Rod, Knife:
		return true
	}
	return false
}

// IsTool reports whether i is crafted at the workbench.
func (i Item) IsTool() bool {
	switch i {
	case Bridge, PickAxe, LongKnife:
		return true
	}
	return false
}

// IsOffering reports whether i can sit on a pedestal.
func (i Item) IsOffering() bool {
	switch i {
	case Apple, Crystal, Rock, Coin:
		return true
	}
	return false
}

// Recipe pairs two materials with the tool they make and the landmark the
// tool is used on.
type Recipe struct {
	A, B Item
	Tool Item
	Site Landmark
}

// Recipes lists every workbench combination.
var Recipes = [...]Recipe{
	{A: Board, B: Rope, Tool: Bridge, Site: BridgePlace},
	{A: PickAxeHead, B: Stick, Tool: PickAxe, Site: Hole},
	{A: Rod, B: Knife, Tool: LongKnife, Site: Tree},
}

// RecipeFor returns the recipe that uses material m.
func RecipeFor(m Item) (Recipe, bool) {
	for _, r := range Recipes {
		if r.A == m || r.B == m {
			return r, true
		}
	}
	return Recipe{}, false
}

// Landmark identifies a fixed interactable.
type Landmark uint8

const (
	Gate Landmark = iota
	Workbench
	PillarRight
	PillarUp
	PillarLeft
	PillarDown
	PillarCenter
	BridgePlace
	Tree
	Hole
	Pond
	Map
	Scale

	NumLandmarks
)

// NumPillars is the number of pedestals.
const NumPillars = 5

var landmarkNames = [NumLandmarks]string{
	Gate:         "gate",
	Workbench:    "workbench",
	PillarRight:  "pillar_right",
	PillarUp:     "pillar_up",
	PillarLeft:   "pillar_left",
	PillarDown:   "pillar_down",
	PillarCenter: "pillar_center",
	BridgePlace:  "bridge_place",
	Tree:         "tree",
	Hole:         "hole",
	Pond:         "pond",
	Map:          "map",
	Scale:        "scale",
}

func (l Landmark) String() string {
	if l < NumLandmarks {
		return landmarkNames[l]
	}
	return "unknown"
}

// IsPillar reports whether l is one of the five pedestals.
func (l Landmark) IsPillar() bool {
	return l >= PillarRight && l <= PillarCenter
}

// PillarIndex returns the slot of a pedestal, 0 (right) through 4 (center).
func (l Landmark) PillarIndex() int {
	return int(l - PillarRight)
}

// Pillar returns the pedestal landmark for slot i.
func Pillar(i int) Landmark {
	return PillarRight + Landmark(i)
}

// Direction is the way the player faces.
type Direction uint8

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}
