package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// file mirrors the YAML layout. Each field points at its global so that
// unmarshalling only overwrites keys present in the document.
type file struct {
	Game      *GameConfig      `yaml:"game"`
	Player    *PlayerConfig    `yaml:"player"`
	Child     *ChildConfig     `yaml:"child"`
	Combo     *ComboConfig     `yaml:"combo"`
	JumpPad   *JumpPadConfig   `yaml:"jump_pad"`
	Goal      *GoalConfig      `yaml:"goal"`
	Animation *AnimationConfig `yaml:"animation"`
	World     *WorldConfig     `yaml:"world"`
	Score     *ScoreConfig     `yaml:"score"`
	Camera    *CameraConfig    `yaml:"camera"`
	Levels    *LevelsConfig    `yaml:"levels"`
	Storage   *StorageConfig   `yaml:"storage"`
	Debug     *DebugConfig     `yaml:"debug"`
}

func globals() *file {
	return &file{
		Game:      &Game,
		Player:    &Player,
		Child:     &Child,
		Combo:     &Combo,
		JumpPad:   &JumpPad,
		Goal:      &Goal,
		Animation: &Animation,
		World:     &World,
		Score:     &Score,
		Camera:    &Camera,
		Levels:    &Levels,
		Storage:   &Storage,
		Debug:     &Debug,
	}
}

// Load overlays a YAML config onto the defaults.
// Search order: customPath -> ~/.nurture/config.yaml -> ./nurture.yaml.
// A missing custom path is an error; the other locations are optional.
// It returns the path that was applied, or "" when none was found.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath(), "nurture.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("config: parse %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// Apply overlays a YAML document onto the current globals.
func Apply(data []byte) error {
	return yaml.Unmarshal(data, globals())
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nurture", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
