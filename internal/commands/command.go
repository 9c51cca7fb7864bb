package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeReset   Type = "reset"
	TypeTrash   Type = "trash"
	TypeRestore Type = "restore"
	TypeEmpty   Type = "empty"
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

type AddArgs struct {
	Time  string
	Label string
}

type ResetArgs struct {
	Row  int
	Time string
}

type RowArgs struct {
	Row int
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Reset   *ResetArgs
	Trash   *RowArgs
	Restore *RowArgs
}

// Parse resolves palette input into a command. Rows are 1-based display
// positions: trash/reset count the active list, restore counts the trash
// list.
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
	case TypeAdd:
		return parseAdd(input, args)
	case TypeReset:
		return parseReset(input, args)
	case TypeTrash:
		return parseRow(input, TypeTrash, args)
	case TypeRestore:
		return parseRow(input, TypeRestore, args)
	case TypeEmpty:
		return Command{Type: TypeEmpty, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a time (HH:MM, M:SS, or minutes)"}
	}
	return Command{
		Type: TypeAdd,
		Raw:  raw,
		Add: &AddArgs{
			Time:  args[0],
			Label: strings.TrimSpace(strings.Join(args[1:], " ")),
		},
	}, nil
}

func parseReset(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset requires a row number and a time"}
	}
	row, err := parseRowNumber(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeReset, Raw: raw, Reset: &ResetArgs{Row: row, Time: args[1]}}, nil
}

func parseRow(raw string, typ Type, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a row number", typ)}
	}
	row, err := parseRowNumber(args[0])
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeTrash:
		cmd.Trash = &RowArgs{Row: row}
	case TypeRestore:
		cmd.Restore = &RowArgs{Row: row}
	}
	return cmd, nil
}

func parseRowNumber(raw string) (int, error) {
	row, err := strconv.Atoi(raw)
	if err != nil || row < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row number: %s", raw)}
	}
	return row, nil
}
