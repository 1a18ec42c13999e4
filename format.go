package matrix3

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// String renders m row by row, e.g. "[1 0 5; 0 1 7; 0 0 1]".
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%g %g %g", m[row], m[row+3], m[row+6])
	}
	b.WriteByte(']')
	return b.String()
}

// Fprint writes m to w as three lines, one per row, with numbers
// formatted for the language tag.
func (m Matrix) Fprint(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag)
	for row := 0; row < 3; row++ {
		if _, err := p.Fprintf(w, "%10.3f %10.3f %10.3f\n", m[row], m[row+3], m[row+6]); err != nil {
			return err
		}
	}
	return nil
}
