package todo

// --- Labels for the primary action button ---

const (
	ActionLabelAdd    = "Add"
	ActionLabelUpdate = "Update"
)

// State is a snapshot of one session's list, edit cursor and pending input.
type State struct {
	Todos     []string
	Editing   bool
	EditIndex int // meaningful only when Editing
	Input     string
}

// ActionLabel returns the label of the primary button for this state.
func (s State) ActionLabel() string {
	if s.Editing {
		return ActionLabelUpdate
	}
	return ActionLabelAdd
}

// --- Direct UI inputs ---

type AddInput struct {
	Text string
}

type DeleteInput struct {
	Index int
}

type BeginEditInput struct {
	Index int
}

type CommitEditInput struct {
	Text string
}

type SubmitInput struct {
	Text string
}

type SetInputInput struct {
	Text string
}

// --- Direct UI output ---

// Output is returned by every direct UI operation. Applied is false when the
// operation was a silent no-op (empty submission, commit without a cursor).
type Output struct {
	State   State
	Applied bool
	Message string
}

// --- Assistant output ---

// CommandOutput is the narrated result of an assistant-issued command. Err is
// nil on success and one of ErrEmptyText / ErrIndexOutOfRange otherwise.
type CommandOutput struct {
	Message string
	Err     error
	Todos   []string
}

// Success reports whether the command mutated (or read) the list.
func (o CommandOutput) Success() bool {
	return o.Err == nil
}
