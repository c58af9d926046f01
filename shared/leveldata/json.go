package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// LoadJSON reads a level in the editor's JSON format from fsys.
func LoadJSON(fsys fs.FS, path string) (*Description, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("leveldata: read %s: %w", path, err)
	}
	desc, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("leveldata: %s: %w", path, err)
	}
	desc.Name = stem(path)
	return desc, nil
}

// ParseJSON decodes a JSON level document.
func ParseJSON(data []byte) (*Description, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if desc.Instances == nil {
		return nil, fmt.Errorf("decode JSON: missing instances")
	}
	return &desc, nil
}
