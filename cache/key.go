package cache

// Key identifies one cached entity or collection. Kind and ID address
// a single entity; Query carries normalized parameters for list and
// search endpoints so that ("recipes", "", "ingredient=x") and
// ("recipe", id, "") invalidate independently.
type Key struct {
	Kind  string
	ID    string
	Query string
}

func (k Key) String() string {
	s := k.Kind
	if k.ID != "" {
		s += ":" + k.ID
	}
	if k.Query != "" {
		s += "?" + k.Query
	}
	return s
}

// Status is the freshness of a cache entry.
type Status int

const (
	// StatusAbsent means the key has never been loaded.
	StatusAbsent Status = iota
	// StatusLoading means a load is in flight and no prior value exists.
	StatusLoading
	// StatusFresh means the value reflects the latest completed load.
	StatusFresh
	// StatusStale means the value exists but has been invalidated or aged out.
	StatusStale
	// StatusError means the latest load failed; Err returns the cause.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusLoading:
		return "loading"
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
