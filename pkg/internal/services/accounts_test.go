package services_test

import (
	"testing"

	"github.com/inkstream/inkstream/pkg/internal/services"
	"github.com/stretchr/testify/require"
)

func TestNewAccountRejectsDuplicates(t *testing.T) {
	useTestDatabase(t)

	_, err := services.NewAccount("alice", "Alice", "hunter22")
	require.NoError(t, err)

	_, err = services.NewAccount("alice", "Another Alice", "hunter22")
	require.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	useTestDatabase(t)

	account, err := services.NewAccount("alice", "Alice", "hunter22")
	require.NoError(t, err)

	require.True(t, services.CheckPassword(account, "hunter22"))
	require.False(t, services.CheckPassword(account, "wrong"))
}

func TestGetAccountUnknownName(t *testing.T) {
	useTestDatabase(t)

	_, err := services.GetAccount("nobody")
	require.Error(t, err)
}
