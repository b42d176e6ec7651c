package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAsk     Type = "ask"
	TypeRefresh Type = "refresh"
	TypeShow    Type = "show"
	TypeLog     Type = "log"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AskArgs struct {
	Message string
}

type ShowArgs struct {
	Subject string
}

type LogKind string

const (
	LogSymptom LogKind = "symptom"
	LogDay     LogKind = "day"
)

type LogArgs struct {
	Kind LogKind
	Text string
	Day  int
}

type Command struct {
	Type Type
	Raw  string
	Ask  *AskArgs
	Show *ShowArgs
	Log  *LogArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAsk:
		return parseAsk(input, args)
	case TypeRefresh:
		return parseRefresh(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeLog:
		return parseLog(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAsk(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "ask requires a message"}
	}
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "ask requires a message"}
	}
	return Command{Type: TypeAsk, Raw: raw, Ask: &AskArgs{Message: message}}, nil
}

func parseRefresh(raw string, args []string) (Command, error) {
	if len(args) > 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "refresh takes no arguments"}
	}
	return Command{Type: TypeRefresh, Raw: raw}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	switch subject {
	case "dashboard", "insights", "coach", "cycle":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown subject: %s", subject)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
}

func parseLog(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "log requires a kind and a value"}
	}
	switch LogKind(strings.ToLower(args[0])) {
	case LogSymptom:
		text := strings.TrimSpace(strings.Join(args[1:], " "))
		if text == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "log symptom requires a description"}
		}
		return Command{Type: TypeLog, Raw: raw, Log: &LogArgs{Kind: LogSymptom, Text: text}}, nil
	case LogDay:
		day, err := strconv.Atoi(args[1])
		if err != nil || day < 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "log day requires a positive day number"}
		}
		return Command{Type: TypeLog, Raw: raw, Log: &LogArgs{Kind: LogDay, Day: day}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown log kind: %s", args[0])}
	}
}
