package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// InstancesGroup is the TMX object group holding level instances.
const InstancesGroup = "instances"

// LoadTMX parses a Tiled map. Every object in the "instances" object groups
// becomes an Instance: its class (or legacy type attribute) is the type tag
// and its custom properties fill Additional. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Description, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	desc := &Description{
		Name: stem(tmxPath),
		Size: &Size{
			W: float64(levelMap.Width * levelMap.TileWidth),
			H: float64(levelMap.Height * levelMap.TileHeight),
		},
		Instances: []Instance{},
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != InstancesGroup {
			continue
		}
		for _, o := range og.Objects {
			typ := o.Class
			if typ == "" {
				typ = o.Type //nolint:staticcheck // older TMX files use type=
			}
			add, err := tmxAdditional(o.Properties)
			if err != nil {
				return nil, fmt.Errorf("leveldata: %s object %d (%s): %w", tmxPath, o.ID, typ, err)
			}
			desc.Instances = append(desc.Instances, Instance{
				Type:       typ,
				Position:   &Point{X: o.X, Y: o.Y},
				Size:       &Size{W: o.Width, H: o.Height},
				Additional: add,
			})
		}
	}

	return desc, nil
}

// properties is the part of the go-tiled property list the loader reads.
type properties interface {
	Get(name string) []string
	GetString(name string) string
}

func tmxAdditional(props properties) (*Additional, error) {
	var add Additional
	found := false

	if s := props.GetString("state"); s != "" {
		add.State = &s
		found = true
	}
	if s := props.GetString("color"); s != "" {
		add.Color = &s
		found = true
	}
	if s := props.GetString("id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("property id: %w", err)
		}
		v := uint32(id)
		add.ID = &v
		found = true
	}
	if s := props.GetString("strength"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("property strength: %w", err)
		}
		add.Strength = &f
		found = true
	}
	if vals := props.Get("triggers"); len(vals) > 0 {
		s := vals[0]
		ids, err := parseIDList(s)
		if err != nil {
			return nil, fmt.Errorf("property triggers: %w", err)
		}
		add.Triggers = ids
		found = true
	}

	if !found {
		return nil, nil
	}
	return &add, nil
}

func parseIDList(s string) ([]uint32, error) {
	ids := []uint32{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}

// Load reads a level by file extension (.json or .tmx).
func Load(fsys fs.FS, p string) (*Description, error) {
	switch path.Ext(p) {
	case ".json":
		return LoadJSON(fsys, p)
	case ".tmx":
		return LoadTMX(fsys, p)
	}
	return nil, fmt.Errorf("leveldata: unsupported level file %s", p)
}

// LoadAll discovers all .json and .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Description, []string, error) {
	paths, err := Discover(fsys, levelsDir)
	if err != nil {
		return nil, nil, err
	}

	levels := make(map[string]*Description, len(paths))
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		desc, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		if _, dup := levels[desc.Name]; dup {
			return nil, nil, fmt.Errorf("leveldata: duplicate level name %q", desc.Name)
		}
		levels[desc.Name] = desc
		names = append(names, desc.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// Discover lists level files in levelsDir, sorted.
func Discover(fsys fs.FS, levelsDir string) ([]string, error) {
	var paths []string
	for _, ext := range []string{"json", "tmx"} {
		pattern := path.Join(levelsDir, "*."+ext)
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("leveldata: no level files found in %s", levelsDir)
	}
	sort.Strings(paths)
	return paths, nil
}

// Find locates the level file for a stem name in levelsDir.
func Find(fsys fs.FS, levelsDir, name string) (string, error) {
	for _, ext := range []string{".json", ".tmx"} {
		p := path.Join(levelsDir, name+ext)
		if _, err := fs.Stat(fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("leveldata: level %q not found in %s", name, levelsDir)
}

// IsLevelFile reports whether p has a level file extension.
func IsLevelFile(p string) bool {
	ext := path.Ext(p)
	return ext == ".json" || ext == ".tmx"
}

// Stem returns the level name for a file path: its base name without extension.
func Stem(p string) string {
	return stem(p)
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
