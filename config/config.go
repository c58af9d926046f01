package config

// GameConfig holds window and tick settings for the host.
type GameConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Name string `yaml:"name"`

	// Movement, in px/s and px/s²
	SpeedIncrease    float64 `yaml:"speed_increase"`
	SpeedDecrease    float64 `yaml:"speed_decrease"`
	MaxVelocityX     float64 `yaml:"max_velocity_x"`
	MaxVelocityY     float64 `yaml:"max_velocity_y"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	JumpKillVelocity float64 `yaml:"jump_kill_velocity"`
	Gravity          float64 `yaml:"gravity"`
}

// ChildConfig contains the movement values shared by every child type.
type ChildConfig struct {
	SpeedIncrease float64 `yaml:"speed_increase"`
	SpeedDecrease float64 `yaml:"speed_decrease"`
	MaxVelocityX  float64 `yaml:"max_velocity_x"`
	MaxVelocityY  float64 `yaml:"max_velocity_y"`
	Gravity       float64 `yaml:"gravity"`
}

// ComboConfig tunes the consecutive-jump bonus.
type ComboConfig struct {
	Window            float64 `yaml:"window"` // seconds after landing
	StrengthIncrement float64 `yaml:"strength_increment"`
	MaxCount          int     `yaml:"max_count"`
	SpinDuration      float64 `yaml:"spin_duration"` // seconds per full turn
}

type JumpPadConfig struct {
	Strength    float64 `yaml:"strength"`
	CenterInset float64 `yaml:"center_inset"` // fraction of width cut from each side
}

type GoalConfig struct {
	MaxOccupancy int `yaml:"max_occupancy"`
}

// AnimSpec describes a frame strip: Frames frames, each shown for TicksPerFrame+1 ticks.
type AnimSpec struct {
	Frames        int     `yaml:"frames"`
	TicksPerFrame float32 `yaml:"ticks_per_frame"`
}

// AnimationConfig drives the interactable state machines. Transitional
// states end once their strip has played through.
type AnimationConfig struct {
	DoorTransition   AnimSpec `yaml:"door_transition"`
	DoorIdle         AnimSpec `yaml:"door_idle"`
	SwitchTransition AnimSpec `yaml:"switch_transition"`
	SwitchIdle       AnimSpec `yaml:"switch_idle"`
	JumpPadTrigger   AnimSpec `yaml:"jump_pad_trigger"`
	JumpPadIdle      AnimSpec `yaml:"jump_pad_idle"`
	GoalIdle         AnimSpec `yaml:"goal_idle"`
	OneWayIdle       AnimSpec `yaml:"one_way_idle"`
	SolidifierIdle   AnimSpec `yaml:"solidifier_idle"`
}

// WorldConfig sizes the broadphase grid.
type WorldConfig struct {
	CellSize int     `yaml:"cell_size"`
	Margin   float64 `yaml:"margin"`
}

type ScoreConfig struct {
	PlayerReward int `yaml:"player_reward"`
	ChildReward  int `yaml:"child_reward"`
}

type CameraConfig struct {
	Speed float64 `yaml:"speed"`
}

type LevelsConfig struct {
	Dir   string   `yaml:"dir"` // empty: embedded levels
	Order []string `yaml:"order"`
}

type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

type DebugConfig struct {
	LogLevel    string `yaml:"log_level"`
	WatchLevels bool   `yaml:"watch_levels"`
	DrawMasks   bool   `yaml:"draw_masks"`
}

var Game GameConfig
var Player PlayerConfig
var Child ChildConfig
var Combo ComboConfig
var JumpPad JumpPadConfig
var Goal GoalConfig
var Animation AnimationConfig
var World WorldConfig
var Score ScoreConfig
var Camera CameraConfig
var Levels LevelsConfig
var Storage StorageConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	Game = GameConfig{
		Title:  "Nihilistic Nurture Navigation",
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Player = PlayerConfig{
		Name:             "Player",
		SpeedIncrease:    600,
		SpeedDecrease:    600,
		MaxVelocityX:     150,
		MaxVelocityY:     1000,
		JumpSpeed:        325,
		JumpKillVelocity: 250,
		Gravity:          800,
	}

	Child = ChildConfig{
		SpeedIncrease: 400,
		SpeedDecrease: 600,
		MaxVelocityX:  80,
		MaxVelocityY:  1000,
		Gravity:       800,
	}

	Combo = ComboConfig{
		Window:            0.5,
		StrengthIncrement: 50,
		MaxCount:          2,
		SpinDuration:      0.5,
	}

	JumpPad = JumpPadConfig{
		Strength:    600,
		CenterInset: 0.25,
	}

	Goal = GoalConfig{
		MaxOccupancy: 4,
	}

	Animation = AnimationConfig{
		DoorTransition:   AnimSpec{Frames: 4, TicksPerFrame: 4},
		DoorIdle:         AnimSpec{Frames: 1, TicksPerFrame: 30},
		SwitchTransition: AnimSpec{Frames: 3, TicksPerFrame: 4},
		SwitchIdle:       AnimSpec{Frames: 1, TicksPerFrame: 30},
		JumpPadTrigger:   AnimSpec{Frames: 3, TicksPerFrame: 3},
		JumpPadIdle:      AnimSpec{Frames: 2, TicksPerFrame: 20},
		GoalIdle:         AnimSpec{Frames: 4, TicksPerFrame: 10},
		OneWayIdle:       AnimSpec{Frames: 1, TicksPerFrame: 30},
		SolidifierIdle:   AnimSpec{Frames: 2, TicksPerFrame: 15},
	}

	World = WorldConfig{
		CellSize: 32,
		Margin:   256,
	}

	Score = ScoreConfig{
		PlayerReward: 50,
		ChildReward:  100,
	}

	Camera = CameraConfig{
		Speed: 500,
	}

	Levels = LevelsConfig{
		Order: []string{"test_one", "test_two", "tiled_one"},
	}

	Storage = StorageConfig{
		DBPath: "~/.nurture/runs.db",
	}

	Debug = DebugConfig{
		LogLevel: "info",
	}
}
