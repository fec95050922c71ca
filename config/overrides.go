package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML tuning file layout. Every field is optional; only
// the values present replace the defaults.
type Overrides struct {
	Physics *struct {
		Gravity      *float64 `yaml:"gravity"`
		JumpVelocity *float64 `yaml:"jump_velocity"`
		MaxFallSpeed *float64 `yaml:"max_fall_speed"`
		MaxDt        *float64 `yaml:"max_dt"`
	} `yaml:"physics"`

	Player *ActorOverrides `yaml:"player"`
	Enemy  *ActorOverrides `yaml:"enemy"`

	EnemyAI *struct {
		Enabled      *bool    `yaml:"enabled"`
		ChaseRange   *float64 `yaml:"chase_range"`
		LoseRange    *float64 `yaml:"lose_range"`
		StopDistance *float64 `yaml:"stop_distance"`
	} `yaml:"enemy_ai"`

	Combat *struct {
		AttackWindup *float64 `yaml:"attack_windup"`
		AttackActive *float64 `yaml:"attack_active"`
		IFrameTime   *float64 `yaml:"iframe_time"`
		RangeX       *float64 `yaml:"range_x"`
		RangeY       *float64 `yaml:"range_y"`
	} `yaml:"combat"`

	Animation *struct {
		FPS *float64 `yaml:"fps"`
	} `yaml:"animation"`

	Debug *struct {
		DrawHitboxes *bool `yaml:"draw_hitboxes"`
		DebugKeys    *bool `yaml:"debug_keys"`
	} `yaml:"debug"`
}

type ActorOverrides struct {
	MoveSpeed      *float64 `yaml:"move_speed"`
	MaxHP          *int     `yaml:"max_hp"`
	Damage         *int     `yaml:"damage"`
	AttackCooldown *float64 `yaml:"attack_cooldown"`
}

// LoadOverrides reads a YAML tuning file and applies it over the current
// values.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides decodes YAML tuning data and applies it. Values are
// validated before anything is changed.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("decode overrides: %w", err)
	}
	if err := o.validate(); err != nil {
		return err
	}

	if p := o.Physics; p != nil {
		set(&Physics.Gravity, p.Gravity)
		set(&Physics.JumpVelocity, p.JumpVelocity)
		set(&Physics.MaxFallSpeed, p.MaxFallSpeed)
		set(&Physics.MaxDt, p.MaxDt)
	}
	o.Player.apply(&Player)
	o.Enemy.apply(&Enemy)
	if ai := o.EnemyAI; ai != nil {
		set(&EnemyAI.Enabled, ai.Enabled)
		set(&EnemyAI.ChaseRange, ai.ChaseRange)
		set(&EnemyAI.LoseRange, ai.LoseRange)
		set(&EnemyAI.StopDistance, ai.StopDistance)
	}
	if c := o.Combat; c != nil {
		set(&Combat.AttackWindup, c.AttackWindup)
		set(&Combat.AttackActive, c.AttackActive)
		set(&Combat.IFrameTime, c.IFrameTime)
		set(&Combat.RangeX, c.RangeX)
		set(&Combat.RangeY, c.RangeY)
	}
	if a := o.Animation; a != nil {
		set(&Animation.FPS, a.FPS)
	}
	if d := o.Debug; d != nil {
		set(&Debug.DrawHitboxes, d.DrawHitboxes)
		set(&Debug.DebugKeys, d.DebugKeys)
	}
	return nil
}

func (a *ActorOverrides) apply(dst *ActorConfig) {
	if a == nil {
		return
	}
	set(&dst.MoveSpeed, a.MoveSpeed)
	set(&dst.MaxHP, a.MaxHP)
	set(&dst.Damage, a.Damage)
	set(&dst.AttackCooldown, a.AttackCooldown)
}

func (o *Overrides) validate() error {
	if p := o.Physics; p != nil && p.MaxDt != nil && *p.MaxDt <= 0 {
		return fmt.Errorf("physics.max_dt must be positive, got %v", *p.MaxDt)
	}
	for name, a := range map[string]*ActorOverrides{"player": o.Player, "enemy": o.Enemy} {
		if a != nil && a.MaxHP != nil && *a.MaxHP <= 0 {
			return fmt.Errorf("%s.max_hp must be positive, got %d", name, *a.MaxHP)
		}
		if a != nil && a.Damage != nil && *a.Damage < 0 {
			return fmt.Errorf("%s.damage must not be negative, got %d", name, *a.Damage)
		}
	}
	if a := o.Animation; a != nil && a.FPS != nil && *a.FPS <= 0 {
		return fmt.Errorf("animation.fps must be positive, got %v", *a.FPS)
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
