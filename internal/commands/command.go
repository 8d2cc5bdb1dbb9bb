package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeEdit   Type = "edit"
	TypeDelete Type = "delete"
	TypeClear  Type = "clear"
	TypeList   Type = "list"
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
	Text string
}

// Positions are 1-based, as shown on screen.
type ToggleArgs struct {
	Position int
}

type EditArgs struct {
	Position int
	Text     string
}

type DeleteArgs struct {
	Position int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *ToggleArgs
	Edit   *EditArgs
	Delete *DeleteArgs
}

var aliases = map[string]Type{
	"a":      TypeAdd,
	"new":    TypeAdd,
	"t":      TypeToggle,
	"done":   TypeToggle,
	"e":      TypeEdit,
	"rename": TypeEdit,
	"d":      TypeDelete,
	"rm":     TypeDelete,
	"clear":  TypeClear,
	"ls":     TypeList,
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

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)
	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeToggle:
		pos, err := parsePosition("toggle", rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeToggle, Raw: input, Toggle: &ToggleArgs{Position: pos}}, nil
	case TypeEdit:
		return parseEdit(input, rest)
	case TypeDelete:
		pos, err := parsePosition("delete", rest)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDelete, Raw: input, Delete: &DeleteArgs{Position: pos}}, nil
	case TypeClear, TypeList:
		if rest != "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", typ)}
		}
		return Command{Type: typ, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd keeps the text as typed; trimming and validation belong to the list.
func parseAdd(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a todo text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: rest}}, nil
}

func parseEdit(raw, rest string) (Command, error) {
	posText, text, _ := strings.Cut(rest, " ")
	pos, err := parsePosition("edit", posText)
	if err != nil {
		return Command{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a position and new text"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{Position: pos, Text: text}}, nil
}

func parsePosition(name, s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires an item number", name)}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: invalid item number %q", name, s)}
	}
	return n, nil
}
