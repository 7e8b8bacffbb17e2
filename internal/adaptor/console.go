package adaptor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is the shell's only I/O surface. A single buffered reader is
// shared by every handler; creating a second reader over the same input
// would swallow buffered lines.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine prints the prompt and reads one trimmed line.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) ReadInt(prompt string) (int, error) {
	line, err := c.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return value, nil
}

// ReadInts reads a comma-separated list of integers.
func (c *Console) ReadInts(prompt string) ([]int, error) {
	line, err := c.ReadLine(prompt)
	if err != nil {
		return nil, err
	}

	var values []int
	for _, part := range strings.Split(line, ",") {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		values = append(values, value)
	}
	return values, nil
}

// Confirm reads a yes/no answer; anything but "yes"/"y" is no.
func (c *Console) Confirm(prompt string) bool {
	line, err := c.ReadLine(prompt)
	if err != nil {
		return false
	}
	answer := strings.ToLower(line)
	return answer == "yes" || answer == "y"
}
