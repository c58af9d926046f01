package score

import (
	"testing"

	"github.com/automoto/nurture/core"
)

func TestProgressRecord(t *testing.T) {
	p := NewProgress()
	order := []string{"one", "two", "three"}

	if !p.IsUnlocked("one", order) || p.IsUnlocked("two", order) {
		t.Fatal("only the first level should start unlocked")
	}

	var first Score
	first.Add(core.Result{PlayerSaved: true, Children: []core.ChildType{core.Larry}})
	first.Moved(core.Larry)
	if !p.Record("one", first, "two") {
		t.Fatal("first result should be a new best")
	}
	if !p.IsUnlocked("two", order) {
		t.Fatal("next level not unlocked")
	}

	var worse Score
	worse.Add(core.Result{PlayerSaved: true})
	if p.Record("one", worse, "two") {
		t.Error("lower score replaced the best")
	}
	if got := p.Best["one"].Total(); got != 149 {
		t.Errorf("best = %d, want 149", got)
	}
	if got := p.Total.Total(); got != 199 {
		t.Errorf("total = %d, want 199", got)
	}
}

func TestProgressEncodeDecode(t *testing.T) {
	p := NewProgress()
	var s Score
	s.Add(core.Result{Children: []core.ChildType{core.Bloat, core.Thing}})
	p.Record("two", s, "three")

	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeProgress(data)
	if err != nil {
		t.Fatalf("DecodeProgress: %v", err)
	}
	if !got.Unlocked["three"] || got.Best["two"].Total() != 200 || got.Total.Total() != 200 {
		t.Errorf("decoded = %+v", got)
	}
}

func TestDecodeProgressEmpty(t *testing.T) {
	p, err := DecodeProgress(nil)
	if err != nil {
		t.Fatalf("DecodeProgress(nil): %v", err)
	}
	if p.Unlocked == nil || p.Best == nil {
		t.Fatal("maps not initialised")
	}
	if _, err := DecodeProgress([]byte("{")); err == nil {
		t.Fatal("expected error for malformed data")
	}
}
