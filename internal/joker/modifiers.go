package joker

// Edition is a cosmetic/pricing slot on a joker. No edition changes cost or
// scoring yet; the slot exists so purchased instances can carry one.
type Edition int

const (
	EditionBase Edition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
	EditionNegative
)

// String returns the string representation of an edition
func (e Edition) String() string {
	switch e {
	case EditionBase:
		return "Base"
	case EditionFoil:
		return "Foil"
	case EditionHolographic:
		return "Holographic"
	case EditionPolychrome:
		return "Polychrome"
	case EditionNegative:
		return "Negative"
	default:
		return "?"
	}
}

// Enhancement is a per-card modifier slot. Declared for future card
// modifiers; nothing applies them during scoring yet.
type Enhancement int

const (
	NoEnhancement Enhancement = iota
	EnhancementBonus
	EnhancementMult
	EnhancementWild
	EnhancementGlass
	EnhancementSteel
	EnhancementStone
	EnhancementGold
	EnhancementLucky
)

// Seal is a per-card seal slot, same status as Enhancement.
type Seal int

const (
	NoSeal Seal = iota
	SealGold
	SealRed
	SealBlue
	SealPurple
)
