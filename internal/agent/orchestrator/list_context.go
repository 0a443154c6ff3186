package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"itodo/internal/model"
)

// buildListContext renders the session's list so the model can resolve
// "delete the milk one" to a position without a listTodoItems round trip.
func (o *Orchestrator) buildListContext(ctx context.Context, sc model.Scope) (string, error) {
	if o.lists == nil {
		return "", nil
	}
	state, err := o.lists.Detail(ctx, sc)
	if err != nil {
		return "", fmt.Errorf(ErrMsgListContextError, err)
	}

	var b strings.Builder
	b.WriteString(ListContextHeader)
	if len(state.Todos) == 0 {
		b.WriteString(ListContextEmpty)
		return b.String(), nil
	}
	for i, t := range state.Todos {
		fmt.Fprintf(&b, ListContextItem, i, t)
	}
	if state.Editing {
		fmt.Fprintf(&b, ListContextEdit, state.EditIndex)
	}
	return b.String(), nil
}
