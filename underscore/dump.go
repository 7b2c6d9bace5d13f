package underscore

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	dumpKey    = color.New(color.FgCyan).SprintFunc()
	dumpArrow  = color.New(color.Faint).SprintFunc()
	dumpString = color.New(color.FgGreen).SprintFunc()
	dumpNumber = color.New(color.FgYellow).SprintFunc()
	dumpNil    = color.New(color.FgRed).SprintFunc()
	dumpType   = color.New(color.Bold).SprintFunc()
)

// Dump writes a colourised listing of c to color.Output (stdout unless
// redirected) and returns c for chaining.
func (c *Container) Dump() *Container {
	c.Fdump(color.Output)
	return c
}

// Fdump writes a listing of c to w, one "key => value" line per entry,
// nested containers and slices indented beneath their key. Colour follows
// fatih/color's detection, so it is off when w is not a terminal.
func (c *Container) Fdump(w io.Writer) {
	fmt.Fprintf(w, "%s(%d) {\n", dumpType("Container"), c.Count())
	fdumpEntries(w, c.snapshot(), 1)
	fmt.Fprintln(w, "}")
}

func fdumpEntries(w io.Writer, entries []Entry, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		key := e.Key.String()
		if e.Key.named {
			key = fmt.Sprintf("%q", key)
		}
		fmt.Fprintf(w, "%s%s %s ", indent, dumpKey(key), dumpArrow("=>"))
		fdumpValue(w, e.Value, depth)
	}
}

func fdumpValue(w io.Writer, v any, depth int) {
	switch val := v.(type) {
	case nil:
		fmt.Fprintln(w, dumpNil("nil"))
		return
	case *Container:
		fmt.Fprintf(w, "%s(%d) {\n", dumpType("Container"), val.Count())
		fdumpEntries(w, val.snapshot(), depth+1)
		fmt.Fprintf(w, "%s}\n", strings.Repeat("  ", depth))
		return
	}
	if elems, ok := elementsOf(v); ok {
		entries := make([]Entry, len(elems))
		for i, e := range elems {
			entries[i] = Entry{Key: IntKey(i), Value: e}
		}
		fmt.Fprintf(w, "%s(%d) [\n", dumpType(fmt.Sprintf("%T", v)), len(elems))
		fdumpEntries(w, entries, depth+1)
		fmt.Fprintf(w, "%s]\n", strings.Repeat("  ", depth))
		return
	}
	if s, ok := stringOf(v); ok {
		fmt.Fprintln(w, dumpString(fmt.Sprintf("%q", s)))
		return
	}
	if _, ok := numberOf(v); ok {
		fmt.Fprintln(w, dumpNumber(fmt.Sprint(v)))
		return
	}
	fmt.Fprintf(w, "%v\n", v)
}
