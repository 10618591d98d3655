package sqldb

import "github.com/device-management-toolkit/redfish-sync/pkg/syncerrors"

// DatabaseError -.
type DatabaseError struct {
	Sync syncerrors.InternalError
}

func (e DatabaseError) Error() string {
	return e.Sync.Error()
}

func (e DatabaseError) Unwrap() error {
	return e.Sync.OriginalError
}

// Wrap -.
func (e DatabaseError) Wrap(function, call string, err error) error {
	_ = e.Sync.Wrap(function, call, err)
	e.Sync.Message = "database error"

	return e
}

func dbError(repo string) DatabaseError {
	return DatabaseError{Sync: syncerrors.CreateSyncError(repo)}
}
