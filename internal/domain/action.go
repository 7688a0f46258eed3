package domain

// Action is the sealed interface for store transitions.
//
// go-sumtype:decl Action
type Action interface {
	sealed()
}

// ActionReplaceAll replaces every task. Used once, by the bootstrap.
type ActionReplaceAll struct {
	Tasks []Task
}

func (ActionReplaceAll) sealed() {}

// ActionAdd appends a task.
type ActionAdd struct {
	Task Task
}

func (ActionAdd) sealed() {}

// ActionToggle flips the completed flag of a task.
type ActionToggle struct {
	ID TaskID
}

func (ActionToggle) sealed() {}

// ActionDelete removes a task.
type ActionDelete struct {
	ID TaskID
}

func (ActionDelete) sealed() {}

// ActionSetFilter changes the filter preference.
type ActionSetFilter struct {
	Filter Filter
}

func (ActionSetFilter) sealed() {}

// ActionSetSort changes the sort preference.
type ActionSetSort struct {
	Sort SortMode
}

func (ActionSetSort) sealed() {}

// Reduce applies a to s and returns the resulting state.
// A nil action returns s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ActionReplaceAll:
		return s.ReplaceAll(a.Tasks)
	case ActionAdd:
		return s.Add(a.Task)
	case ActionToggle:
		return s.ToggleComplete(a.ID)
	case ActionDelete:
		return s.Delete(a.ID)
	case ActionSetFilter:
		return s.SetFilter(a.Filter)
	case ActionSetSort:
		return s.SetSort(a.Sort)
	}
	return s
}
