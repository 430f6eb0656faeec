/*
Package sim is the interactive driver for the cache: it turns user
input into structured commands, runs them against the api.Cache
contract, and renders the results as text.

The package contains no policy logic. The cache is an opaque
collaborator reached only through its public contract, and rendering is
pure string building, so the whole driver is testable without a
terminal.
*/
package sim

import (
	"errors"
	"fmt"
	"strings"
)

// Op identifies a driver command.
type Op int

const (
	Get Op = iota
	Put
	Display
	Exit
)

// Command is one parsed user instruction. Key is set for Get and Put,
// Value only for Put.
type Command struct {
	Op    Op
	Key   string
	Value string
}

// ErrBadCommand is wrapped by every Parse failure.
var ErrBadCommand = errors.New("bad command")

/*
Parse turns an input line into a Command.

The grammar is one command per line, case-insensitive:

	get <key>
	put <key> <value>
	display
	exit

Values may contain spaces; everything after the key belongs to the
value.
*/
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrBadCommand)
	}

	switch strings.ToLower(fields[0]) {
	case "get":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%w: usage: get <key>", ErrBadCommand)
		}
		return Command{Op: Get, Key: fields[1]}, nil

	case "put":
		if len(fields) < 3 {
			return Command{}, fmt.Errorf("%w: usage: put <key> <value>", ErrBadCommand)
		}
		return Command{Op: Put, Key: fields[1], Value: strings.Join(fields[2:], " ")}, nil

	case "display":
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: display takes no arguments", ErrBadCommand)
		}
		return Command{Op: Display}, nil

	case "exit", "quit":
		return Command{Op: Exit}, nil

	default:
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, fields[0])
	}
}
