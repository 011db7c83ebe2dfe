package commands_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/schedule"
	"fieldops/internal/core/domain/model/worker"
	"fieldops/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

// 2024-05-15 is a Wednesday; the requested date lands inside every horizon.
var (
	testNow           = time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	testRequestedDate = time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)
)

func testClock() time.Time { return testNow }

func testClassifier(t *testing.T) services.OrderClassifier {
	t.Helper()
	classifier, err := services.NewOrderClassifier(services.Taxonomy{
		ServiceTypes:   []string{"repair", "installation"},
		Zones:          map[string][]string{"zoneA": {"Warsaw"}, "zoneB": {"Krakow"}},
		UrgencyMarkers: []string{"urgent:"},
	})
	require.NoError(t, err)
	return classifier
}

func testPlanner(t *testing.T) services.SchedulePlanner {
	t.Helper()
	window, err := schedule.NewTimeWindow(8, 16)
	require.NoError(t, err)
	planner, err := services.NewSchedulePlanner(5, window)
	require.NoError(t, err)
	return planner
}

func newUnassignedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Warsaw", "Main St 1", "repair", "boiler",
		testRequestedDate)
	require.NoError(t, err)
	category, err := order.NewCategory("repair", "zoneA", false)
	require.NoError(t, err)
	require.NoError(t, o.Classify(category))
	return o
}

func newPoolWorker(t *testing.T, tags ...string) *worker.Worker {
	t.Helper()
	w, err := worker.NewWorker(kernel.NewUUID(), "Alice", "alice@example.com",
		worker.RoleEmployee, tags)
	require.NoError(t, err)
	return w
}

func newLeavePeriod(t *testing.T, start, end time.Time) kernel.DateRange {
	t.Helper()
	period, err := kernel.NewDateRange(start, end)
	require.NoError(t, err)
	return period
}
