package worker_test

import (
	"testing"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorker(t *testing.T) {
	t.Run("creates worker with capabilities", func(t *testing.T) {
		id := kernel.NewUUID()

		w, err := worker.NewWorker(id, "Alice", "alice@example.com", worker.RoleEmployee,
			[]string{"repair/zoneA", "installation/zoneA"})

		require.NoError(t, err)
		assert.True(t, w.ID().IsEqual(id))
		assert.Equal(t, "Alice", w.Name())
		assert.Equal(t, "alice@example.com", w.Email())
		assert.Equal(t, worker.RoleEmployee, w.Role())
		assert.Equal(t, []string{"repair/zoneA", "installation/zoneA"}, w.Capabilities())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := worker.NewWorker(kernel.NewUUID(), "", "a@example.com", worker.RoleEmployee, nil)

		require.ErrorIs(t, err, worker.ErrNameIsRequired)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		_, err := worker.NewWorker(kernel.NewUUID(), "Alice", "", worker.RoleEmployee, nil)

		require.ErrorIs(t, err, worker.ErrEmailIsRequired)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := worker.NewWorker(kernel.NewUUID(), "Alice", "a@example.com", worker.Role("intern"), nil)

		require.Error(t, err)
	})
}

func TestWorker_CanHandle(t *testing.T) {
	w, err := worker.NewWorker(kernel.NewUUID(), "Alice", "a@example.com", worker.RoleEmployee,
		[]string{"repair/zoneA"})
	require.NoError(t, err)

	repairA, err := order.NewCategory("repair", "zoneA", false)
	require.NoError(t, err)
	repairB, err := order.NewCategory("repair", "zoneB", false)
	require.NoError(t, err)
	urgentRepairA, err := order.NewCategory("repair", "zoneA", true)
	require.NoError(t, err)

	assert.True(t, w.CanHandle(repairA))
	assert.False(t, w.CanHandle(repairB))
	assert.True(t, w.CanHandle(urgentRepairA), "urgency does not narrow capability")
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses defined roles", func(t *testing.T) {
		r, err := worker.RoleFromString("manager")
		require.NoError(t, err)
		assert.Equal(t, worker.RoleManager, r)

		r, err = worker.RoleFromString("employee")
		require.NoError(t, err)
		assert.Equal(t, worker.RoleEmployee, r)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := worker.RoleFromString("owner")

		require.Error(t, err)
	})
}

func TestWorker_Validate(t *testing.T) {
	t.Run("nil and zero value are invalid", func(t *testing.T) {
		var nilWorker *worker.Worker
		require.ErrorIs(t, nilWorker.Validate(), worker.ErrWorkerIsNotConstructed)

		zero := &worker.Worker{}
		require.ErrorIs(t, zero.Validate(), worker.ErrWorkerIsNotConstructed)
	})
}
