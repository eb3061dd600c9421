package gobf

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree rendering of prog to w: one command per
// line, each loop as a bracketed block around its body.
func Fprint(w io.Writer, prog []Node) error {
	dump := astDumper{out: w}
	dump.nodes(prog)
	return dump.err
}

type astDumper struct {
	out    io.Writer
	indent int
	err    error
}

func (dump *astDumper) nodes(nodes []Node) {
	for _, n := range nodes {
		if dump.err != nil {
			return
		}
		if !n.IsLoop() {
			dump.line(n.Cmd.String())
			continue
		}
		dump.line("Loop [")
		dump.indent++
		dump.nodes(n.Body)
		dump.indent--
		dump.line("]")
	}
}

func (dump *astDumper) line(s string) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, "%s%s\n", strings.Repeat("  ", dump.indent), s)
	}
}
