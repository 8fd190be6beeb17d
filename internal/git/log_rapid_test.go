package git

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

func genSHA() *rapid.Generator[string] {
	return rapid.StringMatching(`[0-9a-f]{40}`)
}

// Subjects are single-line and NUL-free; internal spacing is allowed.
func genSubject() *rapid.Generator[string] {
	return rapid.StringMatching(`[ -~]{0,60}`)
}

// Bodies may span lines; they come out of the parser trimmed, so
// generate them pre-trimmed for direct comparison.
func genBody() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		lines := rapid.SliceOfN(rapid.StringMatching(`[ -~]{0,40}`), 0, 5).Draw(t, "lines")
		return strings.TrimSpace(strings.Join(lines, "\n"))
	})
}

func genRecord() *rapid.Generator[CommitRecord] {
	return rapid.Custom(func(t *rapid.T) CommitRecord {
		return CommitRecord{
			SHA:     genSHA().Draw(t, "sha"),
			Subject: genSubject().Draw(t, "subject"),
			Body:    genBody().Draw(t, "body"),
		}
	})
}

// formatLogBlob reproduces the shape of `git log` output under
// logPrettyFormat: three NUL-terminated fields per commit, records
// separated by a newline.
func formatLogBlob(records []CommitRecord) string {
	var sb strings.Builder
	for i, rec := range records {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(rec.SHA)
		sb.WriteString("\x00")
		sb.WriteString(rec.Subject)
		sb.WriteString("\x00")
		sb.WriteString(rec.Body)
		sb.WriteString("\x00")
	}
	return sb.String()
}

// --- Property Tests ---

func TestRapidParseLog_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOfN(genRecord(), 0, 20).Draw(t, "records")

		parsed := ParseLog(formatLogBlob(records))

		if len(parsed) != len(records) {
			t.Fatalf("parsed %d records, expected %d", len(parsed), len(records))
		}
		for i := range records {
			if parsed[i].SHA != records[i].SHA {
				t.Fatalf("record %d: SHA = %q, want %q", i, parsed[i].SHA, records[i].SHA)
			}
			if parsed[i].Subject != records[i].Subject {
				t.Fatalf("record %d: Subject = %q, want %q", i, parsed[i].Subject, records[i].Subject)
			}
			if parsed[i].Body != records[i].Body {
				t.Fatalf("record %d: Body = %q, want %q", i, parsed[i].Body, records[i].Body)
			}
		}
	})
}

func TestRapidMessage_AssemblyRule(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rec := genRecord().Draw(t, "record")

		msg := rec.Message()

		if strings.TrimSpace(rec.Body) == "" {
			if msg != strings.TrimSpace(rec.Subject) {
				t.Fatalf("empty body: Message() = %q, want trimmed subject %q", msg, rec.Subject)
			}
		} else {
			want := strings.TrimSpace(rec.Subject + "\n\n" + strings.TrimSpace(rec.Body))
			if msg != want {
				t.Fatalf("Message() = %q, want %q", msg, want)
			}
		}

		if msg != strings.TrimSpace(msg) {
			t.Fatalf("Message() = %q is not trimmed", msg)
		}
	})
}
