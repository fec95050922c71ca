// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// ProtocolVersion is sent in JoinRequest; servers started with a version
// reject clients that differ.
const ProtocolVersion = "1"

// StateID is the animation label of an actor. It is a view derived from
// simulation state every tick and never drives logic itself.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Running
	Jump
	Attack
	Hit
	Dead
)

// StateToFileName maps StateID to the sprite sheet name and wire label.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "run",
	Jump:    "jump",
	Attack:  "attack",
	Hit:     "hit",
	Dead:    "dead",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStateID is the inverse of String. ok is false for unknown labels.
func ParseStateID(label string) (StateID, bool) {
	for id, name := range StateToFileName {
		if name == label {
			return id, true
		}
	}
	return StateNone, false
}

// OneShot reports whether the label plays once and signals completion.
func (s StateID) OneShot() bool {
	return s == Attack || s == Hit
}

// ActorID identifies an actor in events and snapshots.
type ActorID uint

const (
	NoActor ActorID = iota
	PlayerID
	EnemyID
)

// ActorKind selects per-character tuning and sprites.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindEnemy
)

func (k ActorKind) String() string {
	switch k {
	case KindPlayer:
		return "king"
	case KindEnemy:
		return "pig"
	}
	return "unknown"
}

// MatchStateID is the outcome of the current round.
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStatePlayerWon
	MatchStatePlayerLost
)

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionDebugHit
	ActionDebugKill
	ActionToggleHitboxes
	ActionRestart
	ActionCount // Must be last - used for array sizing
)
