package secureboot

import (
	"context"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
)

type (
	// Repository stores the enrolled entries of every secure boot database.
	Repository interface {
		Insert(ctx context.Context, entry *entity.SecureBootEntry) error
		Delete(ctx context.Context, database, id string) (bool, error)
		List(ctx context.Context, database string) ([]entity.SecureBootEntry, error)
	}

	// Reporter forwards a diagnostic for a task to the BMC.
	Reporter interface {
		ReportMessage(ctx context.Context, taskID, message, severity string) error
	}
)
