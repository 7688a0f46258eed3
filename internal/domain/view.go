package domain

// Filter selects which tasks the view projection keeps.
// Values outside the enumerated set are accepted by the store and behave like FilterAll.
type Filter string

const (
	FilterAll    Filter = "all"    // Every task
	FilterActive Filter = "active" // Tasks not completed
	FilterDone   Filter = "done"   // Completed tasks
)

// AllFilters returns the enumerated filter values in display order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterDone}
}

// IsValid returns true if f is one of the enumerated filters.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterDone:
		return true
	}
	return false
}

// Next returns the filter that follows f in display order.
// Unknown values cycle back to FilterAll.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterDone
	default:
		return FilterAll
	}
}

// Display returns a human-readable label.
func (f Filter) Display() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterDone:
		return "Done"
	}
	return string(f)
}

// ParseFilter parses s strictly. Boundaries (flags, config) use it; the store does not.
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if !f.IsValid() {
		return "", ErrInvalidFilter
	}
	return f, nil
}

// SortMode selects the ordering of the view projection.
// Values outside the enumerated set leave insertion order untouched.
type SortMode string

const (
	SortByID   SortMode = "id"     // Ascending numeric ID
	SortRecent SortMode = "recent" // Most recently created first
)

// AllSortModes returns the enumerated sort modes in display order.
func AllSortModes() []SortMode {
	return []SortMode{SortByID, SortRecent}
}

// IsValid returns true if m is one of the enumerated sort modes.
func (m SortMode) IsValid() bool {
	return m == SortByID || m == SortRecent
}

// Next returns the sort mode that follows m. Unknown values cycle back to SortByID.
func (m SortMode) Next() SortMode {
	if m == SortByID {
		return SortRecent
	}
	return SortByID
}

// Display returns a human-readable label.
func (m SortMode) Display() string {
	switch m {
	case SortByID:
		return "ID"
	case SortRecent:
		return "Recent"
	}
	return string(m)
}

// ParseSortMode parses s strictly.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(s)
	if !m.IsValid() {
		return "", ErrInvalidSort
	}
	return m, nil
}
