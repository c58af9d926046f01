package systems

import (
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"

	"github.com/automoto/nurture/score"
)

const progressKey = "progress"

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for campaign progress.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "nurture",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress returns the saved progress, or a fresh one when nothing is
// saved or persistence is unavailable.
func LoadProgress() *score.Progress {
	if gdataManager == nil {
		return score.NewProgress()
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Warn("could not load progress", "err", err)
		return score.NewProgress()
	}
	p, err := score.DecodeProgress(data)
	if err != nil {
		log.Warn("could not parse saved progress", "err", err)
		return score.NewProgress()
	}
	return p
}

// SaveProgress writes p to disk. It is a no-op without persistence.
func SaveProgress(p *score.Progress) error {
	if gdataManager == nil {
		return nil
	}

	data, err := p.Encode()
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(progressKey, data)
}
