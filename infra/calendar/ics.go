// Package calendar implements the calendar creation port over an iCalendar
// file.
package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	corecal "github.com/YoRyan/operdate-getbus/core/calendar"
	"github.com/YoRyan/operdate-getbus/infra/logger"
)

// Writer is the calendar creation port: it accepts synthesized events and
// records them somewhere a calendar client can see.
type Writer interface {
	Add(events []corecal.Event) error
}

// Config identifies the target calendar.
type Config struct {
	// Name is the calendar display name.
	Name string `json:"name"`
	// Path is the .ics file the events are appended to.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = "GET Bus"
	}
	if c.Path == "" {
		c.Path = "getbus.ics"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("calendar path is required")
	}
	return nil
}

const icsTimeLayout = "20060102T150405Z"

// ICSWriter appends events to a single iCalendar file, creating the
// VCALENDAR wrapper on first use.
type ICSWriter struct {
	cfg Config
	log logger.Logger
	now func() time.Time
}

// NewICSWriter creates a writer for the configured calendar file.
func NewICSWriter(cfg Config, log logger.Logger) *ICSWriter {
	return &ICSWriter{cfg: cfg, log: log, now: time.Now}
}

// Add appends one VEVENT per event. Nothing is written when events is empty.
func (w *ICSWriter) Add(events []corecal.Event) error {
	if len(events) == 0 {
		return nil
	}

	existing, err := os.ReadFile(w.cfg.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read calendar: %w", err)
	}

	var b strings.Builder
	if content := string(existing); content != "" {
		// Re-open the existing calendar by dropping its closing line.
		if i := strings.LastIndex(content, "END:VCALENDAR"); i >= 0 {
			content = content[:i]
		}
		b.WriteString(content)
	} else {
		b.WriteString("BEGIN:VCALENDAR\r\n")
		b.WriteString("VERSION:2.0\r\n")
		b.WriteString("PRODID:-//operdate//getbus//EN\r\n")
		fmt.Fprintf(&b, "X-WR-CALNAME:%s\r\n", escapeText(w.cfg.Name))
	}

	stamp := w.now().UTC().Format(icsTimeLayout)
	for _, ev := range events {
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s\r\n", uuid.NewString())
		fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp)
		fmt.Fprintf(&b, "DTSTART:%s\r\n", ev.Start.UTC().Format(icsTimeLayout))
		fmt.Fprintf(&b, "DTEND:%s\r\n", ev.End.UTC().Format(icsTimeLayout))
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeText(ev.Title))
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")

	if err := os.WriteFile(w.cfg.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	w.log.Infof("added %d events to %s", len(events), w.cfg.Path)
	return nil
}

// escapeText escapes the characters RFC 5545 reserves in text values.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
