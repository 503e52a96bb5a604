package ui

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader reads newline separated input from any reader, writing the
// prompt to out first. It serves piped stdin where readline is not usable.
type LineReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *LineReader) ReadLine(prompt string) (string, error) {
	if r.out != nil && prompt != "" {
		fmt.Fprint(r.out, prompt)
	}

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return r.scanner.Text(), nil
}
