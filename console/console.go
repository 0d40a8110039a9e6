// Package console is the line-based terminal contract the command handlers
// talk to. It wraps an explicit reader/writer pair so a session can be
// driven from a test without a real terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Print(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadLine returns the next input line without its terminator. A final
// unterminated line is still returned; after that, the reader's error.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) PromptLine(text string) (string, error) {
	c.Printf("%s", text)
	return c.ReadLine()
}

// PromptInt reads one line and parses it. A parse failure aborts the calling
// command; only the quantity prompt re-asks.
func (c *Console) PromptInt(text string) (int, error) {
	line, err := c.PromptLine(text)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

func (c *Console) PromptFloat(text string) (float64, error) {
	line, err := c.PromptLine(text)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}

// ReadChoice keeps asking until the input parses as an integer. This is the
// one place malformed input re-prompts instead of aborting: the menu loop
// itself must survive anything typed at it.
func (c *Console) ReadChoice() (int, error) {
	for {
		line, err := c.PromptLine("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr != nil {
			c.Print("Your input is invalid!")
			continue
		}
		return n, nil
	}
}

// PromptQuantity re-prompts until a strictly positive integer arrives.
// Returns an error only when the input stream fails.
func (c *Console) PromptQuantity(text string) (int, error) {
	line, err := c.PromptLine(text)
	for {
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr == nil && n > 0 {
			return n, nil
		}
		c.Print("Invalid quantity entered. Try again!")
		line, err = c.ReadLine()
	}
}

// Table prints a header row followed by tab-aligned data rows.
func (c *Console) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
