package worker

import (
	"github.com/spec-kit/ticket-board/internal/service"
)

// StartSyncWorker registers the sync status handlers.
func StartSyncWorker(syncService *service.SyncService) {
	if syncService == nil {
		return
	}
	syncService.RegisterHandlers()
}
