package order_test

import (
	"testing"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category with code", func(t *testing.T) {
		cat, err := order.NewCategory("repair", "zoneA", false)

		require.NoError(t, err)
		assert.Equal(t, "repair", cat.ServiceType())
		assert.Equal(t, "zoneA", cat.Zone())
		assert.False(t, cat.Urgent())
		assert.Equal(t, "repair/zoneA", cat.Code())
	})

	t.Run("urgency does not change the code", func(t *testing.T) {
		normal, err := order.NewCategory("repair", "zoneA", false)
		require.NoError(t, err)
		urgent, err := order.NewCategory("repair", "zoneA", true)
		require.NoError(t, err)

		assert.Equal(t, normal.Code(), urgent.Code())
		assert.False(t, normal.IsEqual(urgent))
	})

	t.Run("rejects empty service type", func(t *testing.T) {
		_, err := order.NewCategory("", "zoneA", false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty zone", func(t *testing.T) {
		_, err := order.NewCategory("repair", "", true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCategory_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var cat order.Category

		require.Error(t, cat.Validate())
	})

	t.Run("constructed category is valid", func(t *testing.T) {
		cat, err := order.NewCategory("installation", "zoneB", true)
		require.NoError(t, err)

		require.NoError(t, cat.Validate())
	})
}
