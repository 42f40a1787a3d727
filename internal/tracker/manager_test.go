package tracker

import (
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T, threshold float64) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "tracker_state.json"), threshold)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestRecord_NoSpikeWithoutHistory(t *testing.T) {
	m := newTestManager(t, 2.0)
	for i := 0; i < 4; i++ {
		if spike := m.Record(10.0, false); spike {
			t.Fatalf("spike reported with only %d prior readings", i)
		}
	}
}

func TestRecord_SpikeAboveThreshold(t *testing.T) {
	m := newTestManager(t, 2.0)
	for i := 0; i < 5; i++ {
		m.Record(1.0, false)
	}
	if spike := m.Record(1.5, false); spike {
		t.Error("1.5x rolling mean should not spike at 2.0 threshold")
	}
	if spike := m.Record(2.5, true); !spike {
		t.Error("expected spike well above 2x rolling mean")
	}
}

func TestRecord_ElevatedStreak(t *testing.T) {
	m := newTestManager(t, 2.0)
	m.Record(1.0, true)
	m.Record(1.0, true)
	if st := m.GetState(); st.ConsecutiveElevatedDays != 2 {
		t.Errorf("streak = %d, want 2", st.ConsecutiveElevatedDays)
	}
	m.Record(1.0, false)
	if st := m.GetState(); st.ConsecutiveElevatedDays != 0 {
		t.Errorf("streak = %d, want 0 after calm day", st.ConsecutiveElevatedDays)
	}
}

func TestStatePersistsAcrossManagers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker_state.json")
	m1, err := NewManager(path, 2.0)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	m1.Record(1.25, true)

	m2, err := NewManager(path, 2.0)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	st := m2.GetState()
	if len(st.RecentVolatilities) != 1 || st.RecentVolatilities[0] != 1.25 {
		t.Errorf("reloaded volatilities = %v", st.RecentVolatilities)
	}
	if st.ConsecutiveElevatedDays != 1 {
		t.Errorf("reloaded streak = %d, want 1", st.ConsecutiveElevatedDays)
	}
}
