package services_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRequestedDate = time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

func testTaxonomy() services.Taxonomy {
	return services.Taxonomy{
		ServiceTypes: []string{"repair", "installation"},
		Zones: map[string][]string{
			"zoneA": {"Warsaw", "Lodz"},
			"zoneB": {"Krakow"},
		},
		UrgencyMarkers: []string{"urgent:", "asap:"},
	}
}

func newClassifier(t *testing.T) services.OrderClassifier {
	t.Helper()
	c, err := services.NewOrderClassifier(testTaxonomy())
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, city, serviceType, description string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), city, "Main St 1", serviceType, description,
		testRequestedDate)
	require.NoError(t, err)
	return o
}

func TestNewOrderClassifier(t *testing.T) {
	t.Run("builds classifier from taxonomy", func(t *testing.T) {
		_, err := services.NewOrderClassifier(testTaxonomy())

		require.NoError(t, err)
	})

	t.Run("rejects taxonomy without service types", func(t *testing.T) {
		taxonomy := testTaxonomy()
		taxonomy.ServiceTypes = nil

		_, err := services.NewOrderClassifier(taxonomy)

		require.ErrorIs(t, err, services.ErrInvalidOrderInput)
	})

	t.Run("rejects taxonomy without zones", func(t *testing.T) {
		taxonomy := testTaxonomy()
		taxonomy.Zones = nil

		_, err := services.NewOrderClassifier(taxonomy)

		require.ErrorIs(t, err, services.ErrInvalidOrderInput)
	})
}

func TestOrderClassifier_Classify(t *testing.T) {
	classifier := newClassifier(t)

	t.Run("derives category from service type and city zone", func(t *testing.T) {
		category, err := classifier.Classify(newOrder(t, "Warsaw", "repair", "broken boiler"))

		require.NoError(t, err)
		assert.Equal(t, "repair/zoneA", category.Code())
		assert.False(t, category.Urgent())
	})

	t.Run("is deterministic", func(t *testing.T) {
		o := newOrder(t, "Krakow", "installation", "new meter")

		first, err := classifier.Classify(o)
		require.NoError(t, err)
		second, err := classifier.Classify(o)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("matches case insensitively", func(t *testing.T) {
		category, err := classifier.Classify(newOrder(t, "WARSAW", "Repair", "boiler"))

		require.NoError(t, err)
		assert.Equal(t, "repair/zoneA", category.Code())
	})

	t.Run("flags urgency from description marker", func(t *testing.T) {
		category, err := classifier.Classify(newOrder(t, "Warsaw", "repair", "URGENT: no heating"))

		require.NoError(t, err)
		assert.True(t, category.Urgent())
		assert.Equal(t, "repair/zoneA", category.Code(), "urgency does not change the code")
	})

	t.Run("marker must be a prefix", func(t *testing.T) {
		category, err := classifier.Classify(newOrder(t, "Warsaw", "repair", "not urgent: whenever"))

		require.NoError(t, err)
		assert.False(t, category.Urgent())
	})

	t.Run("fails on unknown service type", func(t *testing.T) {
		_, err := classifier.Classify(newOrder(t, "Warsaw", "gardening", "hedge"))

		require.ErrorIs(t, err, services.ErrInvalidOrderInput)
	})

	t.Run("fails on city outside every zone", func(t *testing.T) {
		_, err := classifier.Classify(newOrder(t, "Gdansk", "repair", "boiler"))

		require.ErrorIs(t, err, services.ErrInvalidOrderInput)
	})

	t.Run("fails on unconstructed order", func(t *testing.T) {
		_, err := classifier.Classify(&order.Order{})

		require.Error(t, err)
	})
}
