package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func gateAt(now time.Time) Gate {
	opens := time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC)
	return Gate{
		OpensAt:  opens,
		ClosesAt: opens.Add(7 * 24 * time.Hour),
		Now:      func() time.Time { return now },
	}
}

func TestGateStatus(t *testing.T) {
	opens := time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC)

	t.Run("one second before open", func(t *testing.T) {
		s := gateAt(opens.Add(-time.Second)).Status()
		assert.False(t, s.IsAvailable)
		assert.False(t, s.IsOpened)
		assert.False(t, s.IsClosed, "a window that never opened is not closed")
		assert.Equal(t, PhaseComingSoon, s.Phase)
	})

	t.Run("exactly at open", func(t *testing.T) {
		s := gateAt(opens).Status()
		assert.True(t, s.IsAvailable)
		assert.True(t, s.IsOpened)
		assert.Equal(t, PhaseOpen, s.Phase)
	})

	t.Run("one day in", func(t *testing.T) {
		s := gateAt(opens.Add(24 * time.Hour)).Status()
		assert.True(t, s.IsAvailable)
		assert.False(t, s.IsClosed)
		assert.Equal(t, PhaseOpen, s.Phase)
	})

	t.Run("exactly at close", func(t *testing.T) {
		s := gateAt(opens.Add(7 * 24 * time.Hour)).Status()
		assert.True(t, s.IsAvailable, "close timestamp is inclusive")
		assert.False(t, s.IsClosed)
	})

	t.Run("one day after close", func(t *testing.T) {
		s := gateAt(opens.Add(8 * 24 * time.Hour)).Status()
		assert.False(t, s.IsAvailable)
		assert.True(t, s.IsOpened)
		assert.True(t, s.IsClosed)
		assert.Equal(t, PhaseClosed, s.Phase)
	})
}

func TestNewGateEnvOverride(t *testing.T) {
	t.Setenv("REGISTRATION_OPENS_AT", "2027-01-01T00:00:00Z")
	t.Setenv("REGISTRATION_CLOSES_AT", "2027-02-01T00:00:00Z")

	g := NewGate()
	assert.Equal(t, 2027, g.OpensAt.Year())
	assert.Equal(t, time.February, g.ClosesAt.Month())
}

func TestNewGateDefaults(t *testing.T) {
	t.Setenv("REGISTRATION_OPENS_AT", "")
	t.Setenv("REGISTRATION_CLOSES_AT", "")

	g := NewGate()
	assert.True(t, g.OpensAt.Equal(RegistrationOpens))
	assert.True(t, g.ClosesAt.Equal(RegistrationCloses))
}
