package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

// SavedRecord tracks the best run across game sessions.
type SavedRecord struct {
	MostShadesSlain int `json:"mostShadesSlain"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "grove",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings during startup.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadRecord loads the best run record from disk.
func LoadRecord() *SavedRecord {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("record")
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse saved record: %v", err)
		return nil
	}

	return &record
}

// SaveRecordIfBest persists the run if it beats the current record and
// reports whether a new record was set.
func SaveRecordIfBest(shadesSlain int) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	if prev := LoadRecord(); prev != nil && prev.MostShadesSlain >= shadesSlain {
		return false
	}

	data, err := json.Marshal(&SavedRecord{MostShadesSlain: shadesSlain})
	if err != nil {
		log.Printf("Warning: Could not serialize record: %v", err)
		return false
	}

	if err := gdataManager.SaveItem("record", data); err != nil {
		log.Printf("Warning: Could not save record: %v", err)
		return false
	}
	return true
}
