// Command lineterm-demo exercises a Session against the local controlling
// terminal, put into raw mode for the duration of the program.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/cliofy/lineterm"
)

type stdioTransport struct {
	in  *os.File
	out *os.File
}

func (t *stdioTransport) ReadOne() (byte, error) {
	var buf [1]byte
	n, err := t.in.Read(buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("lineterm-demo: short read")
	}
	return buf[0], nil
}

func (t *stdioTransport) WriteAll(p []byte) error {
	for len(p) > 0 {
		n, err := t.out.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

func main() {
	fd := int(os.Stdin.Fd())
	prevState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lineterm-demo: make raw:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, prevState)

	transport := &stdioTransport{in: os.Stdin, out: os.Stdout}
	session, err := lineterm.New(transport, "demo> ", 256,
		lineterm.WithHistory(4096),
		lineterm.WithXtermMode(),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lineterm-demo: new session:", err)
		os.Exit(1)
	}

	session.Detect()

	for {
		line, err := session.ReadLine()
		if err != nil {
			break
		}
		if line == "exit" || line == "quit" {
			break
		}
		transport.WriteAll([]byte(fmt.Sprintf("you said: %s\r\n", line)))
	}
}
