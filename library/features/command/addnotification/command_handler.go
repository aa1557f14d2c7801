package addnotification

import (
	"context"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// CommandHandler runs Decide through the shell command workflow.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	workflow *shell.CommandWorkflow
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(workflow *shell.CommandWorkflow) CommandHandler {
	return CommandHandler{workflow: workflow}
}

// Handle executes the command with retries on concurrency conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	return shell.ExecuteCommand(ctx, h.workflow, command, Decide)
}
