package entity

// TaskState is the Redfish Task.TaskState enumeration. The spelling is part
// of the wire contract.
type TaskState string

const (
	TaskStateNew         TaskState = "New"
	TaskStateStarting    TaskState = "Starting"
	TaskStateRunning     TaskState = "Running"
	TaskStateSuspended   TaskState = "Suspended"
	TaskStateInterrupted TaskState = "Interrupted"
	TaskStatePending     TaskState = "Pending"
	TaskStateStopping    TaskState = "Stopping"
	TaskStateCompleted   TaskState = "Completed"
	TaskStateKilled      TaskState = "Killed"
	TaskStateException   TaskState = "Exception"
	TaskStateService     TaskState = "Service"
	TaskStateCancelling  TaskState = "Cancelling"
	TaskStateCancelled   TaskState = "Cancelled"
)

var taskStates = []TaskState{
	TaskStateNew, TaskStateStarting, TaskStateRunning, TaskStateSuspended,
	TaskStateInterrupted, TaskStatePending, TaskStateStopping, TaskStateCompleted,
	TaskStateKilled, TaskStateException, TaskStateService, TaskStateCancelling,
	TaskStateCancelled,
}

// ParseTaskState matches s case-sensitively against the known states.
func ParseTaskState(s string) (TaskState, bool) {
	for _, st := range taskStates {
		if string(st) == s {
			return st, true
		}
	}

	return "", false
}

// IsActive reports whether a task in this state still needs handling.
func (s TaskState) IsActive() bool {
	switch s {
	case TaskStateNew, TaskStatePending, TaskStateRunning, TaskStateStarting:
		return true
	case TaskStateSuspended, TaskStateInterrupted, TaskStateStopping, TaskStateCompleted,
		TaskStateKilled, TaskStateException, TaskStateService, TaskStateCancelling, TaskStateCancelled:
		return false
	}

	return false
}

// TaskStatus is the Redfish Health value written back as TaskStatus.
type TaskStatus string

const (
	TaskStatusOK       TaskStatus = "OK"
	TaskStatusWarning  TaskStatus = "Warning"
	TaskStatusCritical TaskStatus = "Critical"
)

// TaskResult is the final state reported to the BMC for a handled task.
type TaskResult struct {
	State  TaskState  `json:"TaskState"`
	Status TaskStatus `json:"TaskStatus"`
}

var (
	TaskCompleted = TaskResult{State: TaskStateCompleted, Status: TaskStatusOK}
	TaskFailed    = TaskResult{State: TaskStateException, Status: TaskStatusCritical}
)

// Messages reported to the BMC when a task cannot be honored.
const (
	MessageRequestKeyNotFound    = "Cannot find request key"
	MessageRequestKeyUnsupported = "Request key is unsupported"
	MessageSecurityViolation     = "Security violation"
	MessageCannotFinish          = "Cannot finish request"
	MessageInternalFailure       = "UEFI internal failure"
	MessageOnlyPEMCertificate    = "Only support PEM type of certificate"
	MessageOnlySHA256Signature   = "Only support EFI_CERT_SHA256_GUID type of signature"
)

// TaskRequest is the snapshot handed to a registered task handler.
type TaskRequest struct {
	TaskID    string
	TaskURI   string
	Operation string
	TargetURI string
	JSONBody  []byte
	Snapshot  []byte
}
