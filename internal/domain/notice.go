package domain

// NoticeKind classifies a notice for the notification sink.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a one-way, human-readable message about a user action.
type Notice struct {
	Kind   NoticeKind
	Title  string // Short title
	Detail string // Short detail line
}

// NoticeTaskAdded is sent after a task was added.
func NoticeTaskAdded() Notice {
	return Notice{
		Kind:   NoticeSuccess,
		Title:  "Todo Added",
		Detail: "Your new todo has been added successfully.",
	}
}

// NoticeEmptyTitle is sent when an add is rejected for a blank title.
func NoticeEmptyTitle() Notice {
	return Notice{
		Kind:   NoticeError,
		Title:  "Invalid Input",
		Detail: "Todo title cannot be empty.",
	}
}

// NoticeTaskDeleted is sent after a task was removed.
func NoticeTaskDeleted() Notice {
	return Notice{
		Kind:   NoticeSuccess,
		Title:  "Todo Deleted",
		Detail: "The todo has been removed successfully.",
	}
}

// NoticeTaskToggled describes the state the task was toggled into.
func NoticeTaskToggled(t Task) Notice {
	return Notice{
		Kind:   NoticeInfo,
		Title:  "Todo Updated",
		Detail: "The todo has been marked as " + t.StateText() + ".",
	}
}
