package logger

import (
	"io"

	"github.com/heaths/go-console"
	"github.com/heaths/go-console/pkg/colorscheme"
)

// New returns a writer that colors whatever is written to it and sends it to
// the console's stderr. It is meant for diagnostic output like HTTP traces.
func New(con console.Console, style string) io.Writer {
	cs := con.ColorScheme().Clone(
		colorscheme.WithTTY(con.IsStderrTTY),
	)
	return &writer{
		w:     con.Stderr(),
		color: cs.ColorFunc(style),
	}
}

type writer struct {
	w     io.Writer
	color func(string) string
}

func (l *writer) Write(buf []byte) (int, error) {
	s := l.color(string(buf))
	return l.w.Write([]byte(s))
}
