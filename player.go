// player.go
//
// Player is the tagged Human/Computer variant called for by spec §9's
// DESIGN NOTES ("dynamic dispatch between HumanPlayer and ComputerPlayer
// becomes a tagged variant; only ComputerPlayer carries the policy
// state"). The teacher has no equivalent type: its Game indexes two
// fixed racks by a 0/1 slot instead of holding player values.

package lexengine

import "fmt"

// PlayerKind distinguishes a human-driven player from a computer policy.
type PlayerKind int

const (
	HumanPlayer PlayerKind = iota
	ComputerPlayer
)

// PlayerState is a player's position within one game (spec §3 Game
// invariant: exactly one PLAYING player while a game is running, all
// others WAITING/WON/LOST). LobbyReady additionally covers the
// WAITING_FOR_PLAYERS -> PLAYER_ORDER_SELECTION lobby transition.
type PlayerState int

const (
	PlayerWaiting PlayerState = iota
	PlayerLobbyReady
	PlayerPlaying
	PlayerWon
	PlayerLost
)

func (s PlayerState) String() string {
	switch s {
	case PlayerWaiting:
		return "WAITING"
	case PlayerLobbyReady:
		return "LOBBY_READY"
	case PlayerPlaying:
		return "PLAYING"
	case PlayerWon:
		return "WON"
	case PlayerLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Player is one seat in a Game: identity, score, state and rack, plus a
// Policy when Kind is ComputerPlayer (nil for a human). IsAdmin marks the
// player who created the game (spec.md's Request Surface: create_game
// returns an "admin player_id"; §9 original_source grounds this as
// PlayerPrivileges.ADMIN, the first player to join).
type Player struct {
	ID          string
	Name        string
	Kind        PlayerKind
	State       PlayerState
	Score       int
	Rack        *Rack
	SkipCount   int
	OrderLetter rune
	Policy      Robot
	IsAdmin     bool
}

// NewHumanPlayer returns a player with an empty rack and no policy.
func NewHumanPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name, Kind: HumanPlayer, State: PlayerWaiting, Rack: NewRack()}
}

// NewComputerPlayer returns a player driven by policy.
func NewComputerPlayer(id, name string, policy Robot) *Player {
	return &Player{ID: id, Name: name, Kind: ComputerPlayer, State: PlayerWaiting, Rack: NewRack(), Policy: policy}
}

// IsComputer reports whether this player is driven by a Robot policy.
func (p *Player) IsComputer() bool { return p.Kind == ComputerPlayer }

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d) [%s] %s", p.Name, p.Score, p.Rack, p.State)
}
