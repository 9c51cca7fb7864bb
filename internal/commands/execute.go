package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Reset   func(ResetArgs) (Result, error)
	Trash   func(RowArgs) (Result, error)
	Restore func(RowArgs) (Result, error)
	Empty   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset(*cmd.Reset)
	case TypeTrash:
		if handlers.Trash == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "trash handler not configured"}
		}
		return handlers.Trash(*cmd.Trash)
	case TypeRestore:
		if handlers.Restore == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "restore handler not configured"}
		}
		return handlers.Restore(*cmd.Restore)
	case TypeEmpty:
		if handlers.Empty == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "empty handler not configured"}
		}
		return handlers.Empty()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
