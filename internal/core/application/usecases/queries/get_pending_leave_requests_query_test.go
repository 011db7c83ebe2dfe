package queries_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingLeaveRequestsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingLeaveRequestsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPendingLeaveRequestsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingLeaveRequestsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingLeaveRequestsQueryIsNotConstructed)
}
