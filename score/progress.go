package score

import "encoding/json"

// Progress is the saved state of a player's campaign: which levels are
// unlocked, the best score per level and the sum of every finished level.
type Progress struct {
	Unlocked map[string]bool  `json:"unlocked"`
	Best     map[string]Score `json:"best"`
	Total    Score            `json:"total"`
}

func NewProgress() *Progress {
	return &Progress{
		Unlocked: make(map[string]bool),
		Best:     make(map[string]Score),
	}
}

// Record adds a finished level's score, keeps it as the level's best when
// it beats the old one and unlocks next. It reports whether s is a new best.
func (p *Progress) Record(level string, s Score, next string) bool {
	p.Total.Merge(s)
	if next != "" {
		p.Unlocked[next] = true
	}
	if old, ok := p.Best[level]; ok && old.Total() >= s.Total() {
		return false
	}
	p.Best[level] = s
	return true
}

// IsUnlocked reports whether level can be played. The first level in order
// is always unlocked.
func (p *Progress) IsUnlocked(level string, order []string) bool {
	if len(order) > 0 && order[0] == level {
		return true
	}
	return p.Unlocked[level]
}

// DecodeProgress parses saved progress. Empty data is a fresh campaign.
func DecodeProgress(data []byte) (*Progress, error) {
	p := NewProgress()
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if p.Unlocked == nil {
		p.Unlocked = make(map[string]bool)
	}
	if p.Best == nil {
		p.Best = make(map[string]Score)
	}
	return p, nil
}

func (p *Progress) Encode() ([]byte, error) {
	return json.Marshal(p)
}
