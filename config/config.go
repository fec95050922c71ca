package config

import "image/color"

// WorldConfig describes the tile world.
type WorldConfig struct {
	TileSize  int
	MapWidth  int // tiles
	MapHeight int // tiles
}

// PhysicsConfig contains global movement physics. Units are pixels and
// seconds.
type PhysicsConfig struct {
	Gravity      float64
	JumpVelocity float64
	MaxFallSpeed float64 // Terminal downward speed, 0 disables the cap
	MaxDt        float64 // Longest step a single tick may simulate
}

// ActorConfig contains the per-character tuning shared by player and enemy.
type ActorConfig struct {
	Name      string
	MoveSpeed float64

	// Combat
	MaxHP          int
	Damage         int
	AttackCooldown float64 // seconds between attack starts, 0 for none

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	RenderOffsetX   float64
	RenderOffsetY   float64
	FrameWidth      int
	FrameHeight     int

	// Visual
	TintColor      color.RGBA
	SpriteSheetKey string
}

// EnemyAIConfig tunes the placeholder enemy policy.
type EnemyAIConfig struct {
	Enabled      bool
	ChaseRange   float64 // Horizontal distance at which the enemy starts chasing
	LoseRange    float64 // Chase ends beyond this distance (hysteresis)
	StopDistance float64 // Enemy stops closing in at this distance
	LedgeProbe   float64 // Pixels ahead of the feet checked for ground
}

// CombatConfig contains melee timing and reach.
type CombatConfig struct {
	AttackWindup float64 // seconds before the active window opens
	AttackActive float64 // length of the active window
	IFrameTime   float64 // invulnerability after being hit
	RangeX       float64 // max horizontal center distance for a hit
	RangeY       float64 // max vertical center distance for a hit
}

// AnimationConfig contains playback rates.
type AnimationConfig struct {
	FPS float64
}

// UIConfig contains HUD layout.
type UIConfig struct {
	HPBarWidth       float64
	HPBarHeight      float64
	HPBarOffsetX     float64 // mirrored when the actor faces left
	HPBarOffsetY     float64 // above the foot anchor
	HPBarEaseTime    float32 // seconds for the bar to catch up to real HP
	HPBarFill        color.RGBA
	HPBarLow         color.RGBA
	HPBarBack        color.RGBA
	HPBarLowRatio    float64
	GameOverFontSize float64
	HUDFontSize      float64
}

// DebugConfig toggles development aids.
type DebugConfig struct {
	DrawHitboxes bool
	DebugKeys    bool
	DebugDamage  int // damage dealt to the player by the debug hit key
}

// ServerConfig contains the headless server defaults.
type ServerConfig struct {
	Port     int
	TickRate int
	Name     string
}

type Config struct {
	Width  int
	Height int
	Scale  int
	Title  string
}

var C *Config
var World WorldConfig
var Physics PhysicsConfig
var Player ActorConfig
var Enemy ActorConfig
var EnemyAI EnemyAIConfig
var Combat CombatConfig
var Animation AnimationConfig
var UI UIConfig
var Debug DebugConfig
var Server ServerConfig

func init() {
	Reset()
}

// Reset restores every tuning value to its default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 480,
		Scale:  1,
		Title:  "tilebrawl",
	}

	World = WorldConfig{
		TileSize:  32,
		MapWidth:  25,
		MapHeight: 15,
	}

	Physics = PhysicsConfig{
		Gravity:      1400,
		JumpVelocity: 520,
		MaxFallSpeed: 600, // one tile per capped step at MaxDt
		MaxDt:        1.0 / 20,
	}

	Player = ActorConfig{
		Name:      "King",
		MoveSpeed: 180,

		MaxHP:          100,
		Damage:         10,
		AttackCooldown: 0,

		CollisionWidth:  18,
		CollisionHeight: 26,
		RenderOffsetX:   0,
		RenderOffsetY:   14,
		FrameWidth:      78,
		FrameHeight:     58,

		TintColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		SpriteSheetKey: "king",
	}

	Enemy = ActorConfig{
		Name:      "Pig",
		MoveSpeed: 90,

		MaxHP:          60,
		Damage:         12,
		AttackCooldown: 0.8,

		CollisionWidth:  18,
		CollisionHeight: 26,
		RenderOffsetX:   0,
		RenderOffsetY:   14,
		FrameWidth:      34,
		FrameHeight:     28,

		TintColor:      color.RGBA{R: 255, G: 200, B: 200, A: 255},
		SpriteSheetKey: "pig",
	}

	EnemyAI = EnemyAIConfig{
		Enabled:      true,
		ChaseRange:   220,
		LoseRange:    280,
		StopDistance: 36,
		LedgeProbe:   8,
	}

	Combat = CombatConfig{
		AttackWindup: 0.12,
		AttackActive: 0.12,
		IFrameTime:   0.25,
		RangeX:       55,
		RangeY:       40,
	}

	Animation = AnimationConfig{
		FPS: 10,
	}

	UI = UIConfig{
		HPBarWidth:       40,
		HPBarHeight:      6,
		HPBarOffsetX:     5,
		HPBarOffsetY:     60,
		HPBarEaseTime:    0.25,
		HPBarFill:        color.RGBA{R: 80, G: 200, B: 90, A: 255},
		HPBarLow:         color.RGBA{R: 220, G: 60, B: 50, A: 255},
		HPBarBack:        color.RGBA{R: 20, G: 20, B: 20, A: 200},
		HPBarLowRatio:    0.3,
		GameOverFontSize: 32,
		HUDFontSize:      12,
	}

	Debug = DebugConfig{
		DrawHitboxes: false,
		DebugKeys:    true,
		DebugDamage:  10,
	}

	Server = ServerConfig{
		Port:     7373,
		TickRate: 60,
		Name:     "tilebrawl",
	}
}
