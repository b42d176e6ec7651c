package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Ask     func(AskArgs) (Result, error)
	Refresh func() (Result, error)
	Show    func(ShowArgs) (Result, error)
	Log     func(LogArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAsk:
		if handlers.Ask == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "ask handler not configured"}
		}
		return handlers.Ask(*cmd.Ask)
	case TypeRefresh:
		if handlers.Refresh == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "refresh handler not configured"}
		}
		return handlers.Refresh()
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeLog:
		if handlers.Log == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "log handler not configured"}
		}
		return handlers.Log(*cmd.Log)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
