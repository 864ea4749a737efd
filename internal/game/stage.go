package game

// Stage drives which player actions are legal.
type Stage int

const (
	StagePlaying Stage = iota
	StageShop
	StageGameOver
)

// String returns the string representation of a stage
func (s Stage) String() string {
	switch s {
	case StagePlaying:
		return "Playing"
	case StageShop:
		return "Shop"
	case StageGameOver:
		return "GameOver"
	default:
		return "?"
	}
}
