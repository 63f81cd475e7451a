// Package prompt asks questions on a line oriented terminal.
//
// Every question is printed on its own line and answered by one input line.
// Answers are checked by a parse function: a rejected answer prints the
// parse error and asks the same question again.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/badbets"
)

// Prompter reads answers from an input and writes questions to an output.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading r and writing w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Printf writes a message to the output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line prints question and returns the next input line, trimmed.
// At the end of the input it returns io.EOF.
func (p *Prompter) Line(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("could not read answer: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Ask prints question until parse accepts the answer.
func Ask[T any](p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.Line(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, err)
	}
}

// YesNo asks a yes or no question. Only "y" or "yes" mean yes.
func (p *Prompter) YesNo(question string) (bool, error) {
	line, err := p.Line(question + " (Y/n)")
	if err != nil {
		return false, err
	}
	return badbets.ParseYesNo(line), nil
}
