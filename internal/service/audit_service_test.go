package service

import (
	"context"
	"testing"

	"fleetflow/internal/model"
	"fleetflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAuditLogs(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Audit.Log(ctx, &model.AuditLog{TenantID: "T1", Action: model.ActionSyncELDMileage, EntityID: "2024Q3"}))
	require.NoError(t, store.Audit.Log(ctx, &model.AuditLog{TenantID: "T1", UserID: "user-1", Action: model.ActionFileReturn}))
	require.NoError(t, store.Audit.Log(ctx, &model.AuditLog{TenantID: "T2", Action: model.ActionFileReturn}))

	logs, total, err := NewAuditService(store.Audit).GetAuditLogs(ctx, "T1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 2)
	assert.Equal(t, "user-1", logs[0].UserID, "newest first")
	assert.Equal(t, "system", logs[1].UserID)
}
