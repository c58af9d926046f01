// Package assets embeds the built-in levels and example replay scripts.
package assets

import (
	"embed"
	"io/fs"
	"os"

	"github.com/automoto/nurture/shared/leveldata"
)

// LevelsDir is the directory holding level files inside Levels.
const LevelsDir = "levels"

var (
	//go:embed levels/*.json levels/*.tmx
	levelFS embed.FS

	//go:embed scripts/*.yaml
	scriptFS embed.FS
)

// Levels returns the level file system and the directory inside it.
// An empty dir selects the embedded set; otherwise dir is read from disk.
func Levels(dir string) (fs.FS, string) {
	if dir == "" {
		return levelFS, LevelsDir
	}
	return os.DirFS(dir), "."
}

// Scripts holds the example replay scripts under scripts/.
func Scripts() fs.FS { return scriptFS }

// LevelLoader loads and caches level descriptions from one source.
type LevelLoader struct {
	fsys  fs.FS
	dir   string
	cache map[string]*leveldata.Description
	names []string
}

func NewLevelLoader(dir string) *LevelLoader {
	fsys, root := Levels(dir)
	return &LevelLoader{fsys: fsys, dir: root}
}

// LoadAll reads every level file and replaces the cache.
func (l *LevelLoader) LoadAll() ([]string, error) {
	levels, names, err := leveldata.LoadAll(l.fsys, l.dir)
	if err != nil {
		return nil, err
	}
	l.cache = levels
	l.names = names
	return names, nil
}

// Get returns a cached description, reading it on a miss.
func (l *LevelLoader) Get(name string) (*leveldata.Description, error) {
	if desc, ok := l.cache[name]; ok {
		return desc, nil
	}
	return l.Reload(name)
}

// Reload reads one level from its source again, bypassing the cache.
func (l *LevelLoader) Reload(name string) (*leveldata.Description, error) {
	p, err := leveldata.Find(l.fsys, l.dir, name)
	if err != nil {
		return nil, err
	}
	desc, err := leveldata.Load(l.fsys, p)
	if err != nil {
		return nil, err
	}
	if l.cache == nil {
		l.cache = make(map[string]*leveldata.Description)
	}
	l.cache[name] = desc
	return desc, nil
}

// Names is the sorted list from the last LoadAll.
func (l *LevelLoader) Names() []string { return l.names }

// Order returns the configured order filtered to levels that exist,
// followed by any remaining levels in name order.
func (l *LevelLoader) Order(configured []string) []string {
	seen := make(map[string]bool, len(l.names))
	var order []string
	for _, name := range configured {
		if _, ok := l.cache[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	for _, name := range l.names {
		if !seen[name] {
			order = append(order, name)
		}
	}
	return order
}
