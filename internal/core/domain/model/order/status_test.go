package order_test

import (
	"testing"

	"fieldops/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"unclassified is valid", order.Unclassified, false},
		{"unassigned is valid", order.Unassigned, false},
		{"assigned is valid", order.Assigned, false},
		{"finished is valid", order.Finished, false},
		{"unknown is invalid", order.Unknown, true},
		{"out of range is invalid", order.Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, order.ErrInvalidTransition)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Unclassified", order.Unclassified.String())
	assert.Equal(t, "Unassigned", order.Unassigned.String())
	assert.Equal(t, "Assigned", order.Assigned.String())
	assert.Equal(t, "Finished", order.Finished.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Classify(t *testing.T) {
	t.Run("unclassified becomes unassigned", func(t *testing.T) {
		next, err := order.Unclassified.Classify()

		require.NoError(t, err)
		assert.Equal(t, order.Unassigned, next)
	})

	t.Run("any other status fails", func(t *testing.T) {
		for _, s := range []order.Status{order.Unassigned, order.Assigned, order.Finished} {
			_, err := s.Classify()
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("unassigned becomes assigned", func(t *testing.T) {
		next, err := order.Unassigned.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("assigned stays assigned on reassignment", func(t *testing.T) {
		next, err := order.Assigned.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("unclassified and finished cannot be assigned", func(t *testing.T) {
		for _, s := range []order.Status{order.Unclassified, order.Finished, order.Unknown} {
			_, err := s.Assign()
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_Finish(t *testing.T) {
	t.Run("assigned becomes finished", func(t *testing.T) {
		next, err := order.Assigned.Finish()

		require.NoError(t, err)
		assert.Equal(t, order.Finished, next)
	})

	t.Run("finish from any other status fails", func(t *testing.T) {
		for _, s := range []order.Status{order.Unclassified, order.Unassigned, order.Finished} {
			_, err := s.Finish()
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_ValidateCanHaveWorker(t *testing.T) {
	t.Run("assigned and finished require a worker", func(t *testing.T) {
		require.NoError(t, order.Assigned.ValidateCanHaveWorker(true))
		require.NoError(t, order.Finished.ValidateCanHaveWorker(true))
		require.Error(t, order.Assigned.ValidateCanHaveWorker(false))
		require.Error(t, order.Finished.ValidateCanHaveWorker(false))
	})

	t.Run("earlier statuses must not have a worker", func(t *testing.T) {
		require.NoError(t, order.Unclassified.ValidateCanHaveWorker(false))
		require.NoError(t, order.Unassigned.ValidateCanHaveWorker(false))
		require.Error(t, order.Unclassified.ValidateCanHaveWorker(true))
		require.Error(t, order.Unassigned.ValidateCanHaveWorker(true))
	})
}
