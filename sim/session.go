package sim

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cachelab/policycache/api"
	"github.com/cachelab/policycache/types"
)

// Session runs commands against one cache instance and renders the
// outcomes. It holds no state beyond the cache itself.
type Session struct {
	cache api.Cache[string, string]
}

// NewSession builds a session over any cache satisfying the contract.
func NewSession(cache api.Cache[string, string]) *Session {
	return &Session{cache: cache}
}

// Exec runs one command and returns the rendered result line. done is
// true once an Exit command has been executed.
func (s *Session) Exec(cmd Command) (line string, done bool) {
	switch cmd.Op {
	case Get:
		if v, ok := s.cache.Get(cmd.Key); ok {
			return fmt.Sprintf("Cache Hit: %s -> %s", cmd.Key, v), false
		}
		return fmt.Sprintf("Cache Miss for key: %s", cmd.Key), false

	case Put:
		res := s.cache.Put(cmd.Key, cmd.Value)
		switch res.Outcome {
		case types.Inserted:
			if res.Evicted {
				return fmt.Sprintf("Inserted: %s -> %s (evicted %s)", cmd.Key, cmd.Value, res.Victim), false
			}
			return fmt.Sprintf("Inserted: %s -> %s", cmd.Key, cmd.Value), false
		case types.Updated:
			return fmt.Sprintf("Updated: %s -> %s", cmd.Key, cmd.Value), false
		default:
			return fmt.Sprintf("Dropped: %s (cache has capacity 0)", cmd.Key), false
		}

	case Display:
		return renderState(s.cache.Display()), false

	case Exit:
		return "Exiting...", true

	default:
		return fmt.Sprintf("unsupported command: %d", cmd.Op), false
	}
}

/*
Run reads commands from r line by line, executes each, and writes the
rendered results to w. Unparseable lines are reported and skipped. Run
returns after an exit command or end of input.
*/
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		cmd, err := Parse(raw)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}

		line, done := s.Exec(cmd)
		fmt.Fprintln(w, line)
		if done {
			return nil
		}
	}
	return scanner.Err()
}

// renderState formats a snapshot the way the console shows it:
//
//	Cache State: a:1 b:2(f=3)
//
// The frequency suffix appears only for entries that carry one.
func renderState(entries []types.Entry[string, string]) string {
	var b strings.Builder
	b.WriteString("Cache State:")
	for _, e := range entries {
		b.WriteByte(' ')
		b.WriteString(e.Key)
		b.WriteByte(':')
		b.WriteString(e.Value)
		if e.Frequency > 0 {
			fmt.Fprintf(&b, "(f=%d)", e.Frequency)
		}
	}
	return b.String()
}
