package sink

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

// ConsoleSink prints notifications for a human watching a terminal, matchctl uses it.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (c *ConsoleSink) SendText(_ context.Context, userID string, text string) error {
	return c.print(userID, text, "")
}

func (c *ConsoleSink) SendPhoto(_ context.Context, userID string, photoRef string, caption string) error {
	return c.print(userID, caption, photoRef)
}

func (c *ConsoleSink) print(userID, text, photoRef string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	header := color.New(color.BgBlack, color.FgGreen).Render(fmt.Sprintf(" to %s ", userID))
	line := header + " " + text
	if photoRef != "" {
		line += " " + color.FgCyan.Render("["+photoRef+"]")
	}
	_, err := fmt.Fprintln(c.out, line)
	return err
}
