package runner

// GameState is the authoritative phase of the game.
type GameState int

const (
	StateMenu GameState = iota
	StateInGame
	StateGameOver
	StatePause
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateInGame:
		return "InGame"
	case StateGameOver:
		return "GameOver"
	case StatePause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Panels describes which UI panels the display should show.
type Panels struct {
	Home        bool
	InGame      bool
	GameOver    bool
	Pause       bool
	Leaderboard bool
}

// Subscription identifies a registered state observer.
type Subscription int

// StateNotifier delivers state-change notifications to observers.
type StateNotifier interface {
	Subscribe(fn func(GameState)) Subscription
	Unsubscribe(sub Subscription)
}
