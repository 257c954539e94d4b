// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
)

// Printer writes case headers and latency lines through one buffered writer.
// It is not safe for concurrent use.
type Printer struct {
	w *bufio.Writer
}

// NewPrinter returns a Printer buffering writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// Header writes a case name on its own line.
func (p *Printer) Header(name string) error {
	if _, err := fmt.Fprintln(p.w, name); err != nil {
		return fmt.Errorf("report: header %q: %w", name, err)
	}

	return nil
}

// Duration writes one formatted latency line.
func (p *Printer) Duration(seconds float64) error {
	if _, err := p.w.WriteString(FormatDuration(seconds)); err != nil {
		return fmt.Errorf("report: duration: %w", err)
	}

	return nil
}

// Flush writes any buffered data to the underlying writer.
func (p *Printer) Flush() error {
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}
