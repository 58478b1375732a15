// Package atlas is the sprite catalog: where each sprite lives in the shared
// texture atlas and how large it is drawn.
package atlas

// SpriteID names every sprite the game draws. The catalog resolves all of
// them once at load time, so a lookup by ID cannot fail afterwards.
type SpriteID uint16

const (
	// Backgrounds. Center is also the reference sprite that sizes all others.
	SpriteCenter SpriteID = iota
	SpriteLeft
	SpriteRight

	SpritePlayerRight0
	SpritePlayerRight1
	SpritePlayerUp0
	SpritePlayerUp1
	SpritePlayerLeft0
	SpritePlayerLeft1
	SpritePlayerDown0
	SpritePlayerDown1

	SpriteBoard
	SpriteRope
	SpritePickAxeHead
	SpriteStick
	SpriteRod
	SpriteKnife
	SpriteBridge
	SpritePickAxe
	SpriteLongKnife
	SpriteCrystal
	SpriteCoin
	SpriteApple
	SpriteRock
	SpriteKey

	SpriteGate
	SpriteWorkbench
	SpritePillar
	SpriteRiver
	SpriteBridgeBuilt
	SpriteBridgeEnd
	SpriteTree
	SpriteTreeCut
	SpritePond
	SpriteMap
	SpriteScale
	SpriteHole
	SpriteHoleDug

	SpriteEscaped
	SpriteMessagePanel

	SpriteGlyphA
	SpriteGlyphZ = SpriteGlyphA + 25

	NumSprites = SpriteGlyphZ + 1
)

var spriteNames = [NumSprites]string{
	SpriteCenter: "center",
	SpriteLeft:   "left",
	SpriteRight:  "right",

	SpritePlayerRight0: "player_right_0",
	SpritePlayerRight1: "player_right_1",
	SpritePlayerUp0:    "player_up_0",
	SpritePlayerUp1:    "player_up_1",
	SpritePlayerLeft0:  "player_left_0",
	SpritePlayerLeft1:  "player_left_1",
	SpritePlayerDown0:  "player_down_0",
	SpritePlayerDown1:  "player_down_1",

	SpriteBoard:       "board",
	SpriteRope:        "rope",
	SpritePickAxeHead: "pick_axe_head",
	SpriteStick:       "stick",
	SpriteRod:         "rod",
	SpriteKnife:       "knife",
	SpriteBridge:      "bridge",
	SpritePickAxe:     "pick_axe",
	SpriteLongKnife:   "long_knife",
	SpriteCrystal:     "crystal",
	SpriteCoin:        "coin",
	SpriteApple:       "apple",
	SpriteRock:        "rock",
	SpriteKey:         "key",

	SpriteGate:        "gate",
	SpriteWorkbench:   "workbench",
	SpritePillar:      "pillar",
	SpriteRiver:       "river",
	SpriteBridgeBuilt: "bridge_built",
	SpriteBridgeEnd:   "bridge_end",
	SpriteTree:        "tree",
	SpriteTreeCut:     "tree_cut",
	SpritePond:        "pond",
	SpriteMap:         "map",
	SpriteScale:       "scale",
	SpriteHole:        "hole",
	SpriteHoleDug:     "hole_dug",

	SpriteEscaped:      "escaped",
	SpriteMessagePanel: "message_panel",
}

func init() {
	for i := SpriteID(0); i < 26; i++ {
		spriteNames[SpriteGlyphA+i] = "glyph_" + string(rune('a'+i))
	}
}

// Name returns the table name the sprite is stored under.
func (id SpriteID) Name() string {
	if id < NumSprites {
		return spriteNames[id]
	}
	return ""
}

func (id SpriteID) String() string {
	if n := id.Name(); n != "" {
		return n
	}
	return "unknown"
}

// Glyph returns the sprite for an upper- or lower-case ASCII letter.
func Glyph(r rune) (SpriteID, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return SpriteGlyphA + SpriteID(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return SpriteGlyphA + SpriteID(r-'A'), true
	}
	return 0, false
}
