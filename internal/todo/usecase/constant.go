package usecase

// Result messages shown to the user.
const (
	MsgAdded         = `Added "%s" to the list.`
	MsgDeleted       = "Deleted todo at index %d"
	MsgUpdated       = `Updated todo at index %d to "%s".`
	MsgEditing       = "Editing todo at index %d"
	MsgEditCancelled = "Edit cancelled."
	MsgListEmpty     = "The list is empty."
	MsgListItem      = "%d: %s"

	MsgAddEmpty      = "Cannot add an empty todo item."
	MsgNoTodoAtIndex = "Invalid operation: there is no todo at index %s."
	MsgEditEmpty     = "Invalid operation: the new text for todo at index %d is empty."
)
