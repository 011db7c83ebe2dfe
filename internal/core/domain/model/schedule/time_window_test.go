package schedule_test

import (
	"testing"

	"fieldops/internal/core/domain/model/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	t.Run("creates valid window", func(t *testing.T) {
		w, err := schedule.NewTimeWindow(8, 16)

		require.NoError(t, err)
		assert.Equal(t, 8, w.StartHour())
		assert.Equal(t, 16, w.EndHour())
		assert.Equal(t, 8, w.Hours())
		assert.Equal(t, "08:00-16:00", w.String())
	})

	t.Run("allows full day", func(t *testing.T) {
		w, err := schedule.NewTimeWindow(0, 24)

		require.NoError(t, err)
		assert.Equal(t, 24, w.Hours())
	})

	t.Run("rejects end not after start", func(t *testing.T) {
		_, err := schedule.NewTimeWindow(16, 8)
		require.Error(t, err)

		_, err = schedule.NewTimeWindow(8, 8)
		require.Error(t, err)
	})

	t.Run("rejects out of range hours", func(t *testing.T) {
		_, err := schedule.NewTimeWindow(-1, 8)
		require.Error(t, err)

		_, err = schedule.NewTimeWindow(8, 25)
		require.Error(t, err)
	})
}

func TestTimeWindow_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var w schedule.TimeWindow
		require.Error(t, w.Validate())
	})

	t.Run("constructed window is valid", func(t *testing.T) {
		w, err := schedule.NewTimeWindow(9, 17)
		require.NoError(t, err)
		require.NoError(t, w.Validate())
	})
}
