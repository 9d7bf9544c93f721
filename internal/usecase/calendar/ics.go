package calendar

import (
	"strings"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// icsProdID identifies this exporter in generated calendar files
const icsProdID = "-//Meeting Insights//Calendar Export//EN"

// icsTimeLayout is the RFC 5545 UTC date-time form
const icsTimeLayout = "20060102T150405Z"

// RenderICS serializes event candidates as an iCalendar document. Lines are
// CRLF terminated and text values escaped per RFC 5545. The stamp clock is a
// parameter so output stays deterministic in tests.
func RenderICS(events []entities.EventCandidate, now func() time.Time) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+icsProdID)

	stamp := now().UTC().Format(icsTimeLayout)
	for _, ev := range events {
		start := ev.SuggestedDate.UTC()
		end := start.Add(time.Duration(ev.DurationMinutes) * time.Minute)

		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+ev.ID.String())
		writeLine(&b, "DTSTAMP:"+stamp)
		writeLine(&b, "DTSTART:"+start.Format(icsTimeLayout))
		writeLine(&b, "DTEND:"+end.Format(icsTimeLayout))
		writeLine(&b, "SUMMARY:"+escapeICS(ev.Title))
		writeLine(&b, "DESCRIPTION:"+escapeICS(ev.Description))
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// escapeICS escapes backslash, semicolon, comma and newline in text values
func escapeICS(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
