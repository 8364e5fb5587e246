package iodev

import "strings"

// DefaultConsoleCap bounds how much program output the console retains.
const DefaultConsoleCap = 4096

// Console collects PrintChar output for a front end to draw. It implements
// io.ByteWriter and keeps only the most recent bytes up to its cap, pruning
// from the front once the cap is exceeded.
type Console struct {
	buf []byte
	max int
}

func NewConsole(max int) *Console {
	if max <= 0 {
		max = DefaultConsoleCap
	}
	return &Console{max: max}
}

func (c *Console) WriteByte(ch byte) error {
	c.buf = append(c.buf, ch)
	if len(c.buf) > c.max {
		c.buf = c.buf[len(c.buf)-c.max:]
	}
	return nil
}

// String returns the retained output.
func (c *Console) String() string {
	return string(c.buf)
}

// Lines splits the retained output on newlines for line-by-line rendering.
func (c *Console) Lines() []string {
	if len(c.buf) == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(string(c.buf), "\n"), "\n")
}

// Reset discards all retained output.
func (c *Console) Reset() {
	c.buf = c.buf[:0]
}
