package reconcile

// Action is the outcome of one reconciliation pass over a resource.
type Action int

const (
	// NotOwned: the resource belongs to another schema.
	NotOwned Action = iota
	// NothingToHandle: no local configuration exists for the resource.
	NothingToHandle
	Provisioned
	Updated
	// NoChange: every local value already equals the remote one.
	NoChange
)

func (a Action) String() string {
	switch a {
	case NotOwned:
		return "not_owned"
	case NothingToHandle:
		return "nothing_to_handle"
	case Provisioned:
		return "provisioned"
	case Updated:
		return "updated"
	case NoChange:
		return "no_change"
	}

	return "unknown"
}

// CheckResult tells whether the local properties already exist remotely.
type CheckResult int

const (
	CheckNotRun CheckResult = iota
	Found
	NotFound
	Unsupported
)

func (c CheckResult) String() string {
	switch c {
	case CheckNotRun:
		return "not_run"
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Unsupported:
		return "unsupported"
	}

	return "unknown"
}

// ConsumeState -.
type ConsumeState int

const (
	ConsumeNotRun ConsumeState = iota
	// SkippedUnchanged: the stored ETag matched, nothing was read.
	SkippedUnchanged
	Applied
)

func (c ConsumeState) String() string {
	switch c {
	case ConsumeNotRun:
		return "not_run"
	case SkippedUnchanged:
		return "skipped_unchanged"
	case Applied:
		return "applied"
	}

	return "unknown"
}

// Target addresses one resource. Index is the 1-based collection position
// and is ignored for singletons.
type Target struct {
	URI   string
	Index int
}

// Result -.
type Result struct {
	URI           string
	Schema        string
	ConfigureLang string
	Action        Action
	Check         CheckResult
	Consume       ConsumeState
	// RebootRequired is set when a remote value changed the local store.
	RebootRequired bool
	// Unimplemented lists remote properties present but not synchronized.
	Unimplemented []string
}
