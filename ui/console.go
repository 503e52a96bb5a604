package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// Console reads user input from the terminal with line editing and history.
type Console struct {
	readline *readline.Instance
}

// NewConsole creates a console that keeps history in historyFile.
func NewConsole(historyFile string) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize readline")
	}

	return &Console{readline: rl}, nil
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return readline.IsTerminal(int(os.Stdin.Fd()))
}

// ReadLine shows prompt and returns the entered line.
// Ctrl+C and Ctrl+D both end input with io.EOF.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.readline.SetPrompt(BrightBlue(prompt))

	line, err := c.readline.Readline()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", io.EOF
		}
		return "", err
	}

	return line, nil
}

// Close releases readline resources
func (c *Console) Close() {
	if c.readline != nil {
		c.readline.Close()
	}
}

// ShowWelcome prints the welcome banner.
func ShowWelcome(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Header("micros"))
	fmt.Fprintln(w, Info("Pick an exercise, or exit to quit"))
	fmt.Fprintln(w, Dim("Ctrl+D inside an exercise returns to this menu"))
	fmt.Fprintln(w)
}

// ShowError prints the error in a formatted style
func ShowError(w io.Writer, err error) {
	fmt.Fprintln(w, Error(err.Error()))
}
