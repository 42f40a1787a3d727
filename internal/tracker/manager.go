package tracker

import (
	"log"
	"sync"
	"time"

	"RiskSentinel/internal/model"
)

// historyWindow bounds the rolling volatility history.
const historyWindow = 30

// minHistory is the minimum number of recorded readings before spike
// detection activates.
const minHistory = 5

// Manager tracks rolling volatility history with concurrency safety and
// decides when a reading counts as a spike.
type Manager struct {
	mu             sync.Mutex
	state          *model.TrackerState
	filePath       string
	spikeThreshold float64
}

// NewManager creates a Manager, loading or initializing state from disk.
// spikeThreshold is the multiple of the rolling mean volatility above which
// a reading is treated as a spike.
func NewManager(filePath string, spikeThreshold float64) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	m := &Manager{state: state, filePath: filePath, spikeThreshold: spikeThreshold}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// GetState returns a copy of the current tracker state.
func (m *Manager) GetState() model.TrackerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := *m.state
	st.RecentVolatilities = append([]float64(nil), m.state.RecentVolatilities...)
	return st
}

// Record appends today's volatility reading and reports whether it spikes
// above the rolling mean. Spike detection needs at least minHistory prior
// readings.
func (m *Manager) Record(volatility float64, elevated bool) (spike bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prior := m.state.RecentVolatilities
	if len(prior) >= minHistory {
		sum := 0.0
		for _, v := range prior {
			sum += v
		}
		avg := sum / float64(len(prior))
		if avg > 0 && volatility >= avg*m.spikeThreshold {
			spike = true
			m.state.LastAlertAt = time.Now()
		}
	}

	m.state.RecentVolatilities = append(m.state.RecentVolatilities, volatility)
	if len(m.state.RecentVolatilities) > historyWindow {
		m.state.RecentVolatilities = m.state.RecentVolatilities[len(m.state.RecentVolatilities)-historyWindow:]
	}

	if elevated {
		m.state.ConsecutiveElevatedDays++
	} else {
		m.state.ConsecutiveElevatedDays = 0
	}

	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save tracker state: %v", err)
	}
	return spike
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
