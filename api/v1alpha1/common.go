package v1alpha1

// StringToStatus maps a raw backend status string onto the closed Status set.
// Unknown values come back as StatusNone so a malformed response never
// smuggles an unreachable state into a transition graph.
func StringToStatus(s string) Status {
	switch s {
	case string(StatusPending):
		return StatusPending
	case string(StatusAccepted):
		return StatusAccepted
	case "approved": // some backend routes use "approved" for the accepted state
		return StatusAccepted
	case string(StatusRejected):
		return StatusRejected
	case string(StatusNew):
		return StatusNew
	case string(StatusInProgress):
		return StatusInProgress
	case string(StatusResolved):
		return StatusResolved
	default:
		return StatusNone
	}
}

// Terminal reports whether no further transition leaves the state in either
// of the console's graphs.
func (s Status) Terminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusResolved:
		return true
	default:
		return false
	}
}
