package git

import "testing"

func TestParseLog_EmptyBody(t *testing.T) {
	records := ParseLog("abc123\x00Fix bug\x00\x00")

	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	rec := records[0]
	if rec.SHA != "abc123" {
		t.Errorf("SHA = %q, want %q", rec.SHA, "abc123")
	}
	if rec.Subject != "Fix bug" {
		t.Errorf("Subject = %q, want %q", rec.Subject, "Fix bug")
	}
	if rec.Body != "" {
		t.Errorf("Body = %q, want empty", rec.Body)
	}
	if got := rec.Message(); got != "Fix bug" {
		t.Errorf("Message() = %q, want %q", got, "Fix bug")
	}
}

func TestParseLog_WithBody(t *testing.T) {
	records := ParseLog("def456\x00Add feature\x00Closes #12\x00")

	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	if got, want := records[0].Message(), "Add feature\n\nCloses #12"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestParseLog_MultipleCommits(t *testing.T) {
	// git separates pretty records with a newline after the trailing NUL.
	blob := "aaa111\x00First\x00body one\x00\n" +
		"bbb222\x00Second\x00\x00\n" +
		"ccc333\x00Third\x00multi\nline\nbody\x00"

	records := ParseLog(blob)
	if len(records) != 3 {
		t.Fatalf("records = %d, expected 3", len(records))
	}

	wantSHAs := []string{"aaa111", "bbb222", "ccc333"}
	for i, want := range wantSHAs {
		if records[i].SHA != want {
			t.Errorf("records[%d].SHA = %q, want %q", i, records[i].SHA, want)
		}
	}

	if records[0].Body != "body one" {
		t.Errorf("records[0].Body = %q, want %q", records[0].Body, "body one")
	}
	if records[1].Body != "" {
		t.Errorf("records[1].Body = %q, want empty", records[1].Body)
	}
	if records[2].Body != "multi\nline\nbody" {
		t.Errorf("records[2].Body = %q, want multi-line body", records[2].Body)
	}
}

func TestParseLog_Empty(t *testing.T) {
	for _, blob := range []string{"", "   ", "\x00", "\n"} {
		if records := ParseLog(blob); len(records) != 0 {
			t.Errorf("ParseLog(%q) = %d records, expected 0", blob, len(records))
		}
	}
}

func TestParseLog_ShortFinalGroup(t *testing.T) {
	// Blob ended early: body token missing for the last commit.
	records := ParseLog("abc123\x00Fix bug")

	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	if records[0].Subject != "Fix bug" {
		t.Errorf("Subject = %q, want %q", records[0].Subject, "Fix bug")
	}
	if records[0].Body != "" {
		t.Errorf("Body = %q, want empty", records[0].Body)
	}
}

func TestParseLog_SubjectPreservedAsIs(t *testing.T) {
	// Subjects may legitimately be empty or carry internal spacing.
	records := ParseLog("abc123\x00  spaced  subject \x00\x00")

	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}
	if got, want := records[0].Subject, "  spaced  subject "; got != want {
		t.Errorf("Subject = %q, want %q", got, want)
	}
}
