package tracker

import (
	"encoding/json"
	"os"
	"time"

	"RiskSentinel/internal/model"
)

// LoadState reads the tracker state from a JSON file. Returns a zero state if the file doesn't exist.
func LoadState(filePath string) (*model.TrackerState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.TrackerState{}, nil
		}
		return nil, err
	}
	var state model.TrackerState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the tracker state to a JSON file.
func SaveState(filePath string, state *model.TrackerState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
