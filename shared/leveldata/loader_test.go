package leveldata

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

const sampleJSON = `{
  "instances": [
    {"type": "Player", "position": {"x": 10, "y": 20}, "size": {"w": 32, "h": 64}},
    {"type": "LarryChild", "position": {"x": 50, "y": 20}, "size": {"w": 24, "h": 32}},
    {"type": "SwitchInteractable", "position": {"x": 100, "y": 40}, "size": {"w": 32, "h": 32},
     "additional": {"id": 3, "color": "red", "triggers": [7]}},
    {"type": "DoorInteractable", "position": {"x": 200, "y": 0}, "size": {"w": 32, "h": 96},
     "additional": {"state": "Closed", "id": 7, "color": "red"}},
    {"type": "Decoration", "position": {"x": 0, "y": 0}}
  ]
}`

func TestLoadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/first.json": {Data: []byte(sampleJSON)},
	}

	desc, err := LoadJSON(fsys, "levels/first.json")
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if desc.Name != "first" {
		t.Errorf("Name = %q, want first", desc.Name)
	}
	if len(desc.Instances) != 5 {
		t.Fatalf("got %d instances, want 5", len(desc.Instances))
	}

	sw := desc.Instances[2]
	if sw.Additional == nil || *sw.Additional.ID != 3 || len(sw.Additional.Triggers) != 1 || sw.Additional.Triggers[0] != 7 {
		t.Errorf("switch additional = %+v", sw.Additional)
	}
	door := desc.Instances[3]
	if door.Additional.State == nil || *door.Additional.State != "Closed" {
		t.Errorf("door state = %v", door.Additional.State)
	}
	if desc.Instances[4].Size != nil {
		t.Errorf("missing size should stay nil")
	}
	if desc.Count(TypePlayer) != 1 {
		t.Errorf("Count(Player) = %d", desc.Count(TypePlayer))
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"instances": [`},
		{"no instances", `{"size": {"w": 1, "h": 1}}`},
		{"wrong field type", `{"instances": [{"type": "Wall", "position": {"x": "ten"}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSON([]byte(tt.doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadTMX(t *testing.T) {
	desc, err := LoadTMX(os.DirFS("testdata"), "small.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if desc.Name != "small" {
		t.Errorf("Name = %q", desc.Name)
	}
	if desc.Size == nil || desc.Size.W != 640 || desc.Size.H != 320 {
		t.Errorf("Size = %+v", desc.Size)
	}
	if len(desc.Instances) != 5 {
		t.Fatalf("got %d instances, want 5 (decoration group ignored)", len(desc.Instances))
	}

	byType := map[string]Instance{}
	for _, in := range desc.Instances {
		byType[in.Type] = in
	}

	door, ok := byType[TypeDoor]
	if !ok {
		t.Fatal("legacy type= attribute not read")
	}
	if *door.Additional.State != "Closed" || *door.Additional.ID != 7 || *door.Additional.Color != "blue" {
		t.Errorf("door additional = %+v", door.Additional)
	}

	sw := byType[TypeSwitch]
	if got := sw.Additional.Triggers; len(got) != 2 || got[0] != 7 || got[1] != 8 {
		t.Errorf("switch triggers = %v", got)
	}

	pad := byType[TypeJumpPad]
	if pad.Additional.Strength == nil || *pad.Additional.Strength != 450.5 {
		t.Errorf("jump pad strength = %v", pad.Additional.Strength)
	}

	if byType[TypePlayer].Additional != nil {
		t.Errorf("player without properties should have nil Additional")
	}
}

func TestLoadAllAndFind(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.json":    {Data: []byte(sampleJSON)},
		"levels/a.json":    {Data: []byte(sampleJSON)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}

	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if strings.Join(names, ",") != "a,b" || len(levels) != 2 {
		t.Fatalf("names = %v", names)
	}

	p, err := Find(fsys, "levels", "b")
	if err != nil || p != "levels/b.json" {
		t.Fatalf("Find = %q, %v", p, err)
	}
	if _, err := Find(fsys, "levels", "zzz"); err == nil {
		t.Fatal("expected not found")
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected error for empty level dir")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	fsys := fstest.MapFS{"levels/x.xml": {Data: []byte("<x/>")}}
	if _, err := Load(fsys, "levels/x.xml"); err == nil {
		t.Fatal("expected error")
	}
}
