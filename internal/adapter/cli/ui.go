package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type ui struct {
	in  *bufio.Scanner
	out io.Writer
}

func newUI(in io.Reader, out io.Writer) *ui {
	return &ui{in: bufio.NewScanner(in), out: out}
}

func (u *ui) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

func (u *ui) println(s string) {
	fmt.Fprintln(u.out, s)
}

// readLine prints the prompt and reads one trimmed line. ok is false on
// end of input, which aborts the surrounding flow.
func (u *ui) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(u.out, prompt)
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

func isBack(s string) bool { return strings.EqualFold(s, "back") }
