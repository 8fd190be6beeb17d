package git

import "testing"

func TestCommitRecordMessage(t *testing.T) {
	tests := []struct {
		name string
		rec  CommitRecord
		want string
	}{
		{name: "SubjectOnly", rec: CommitRecord{Subject: "Fix bug"}, want: "Fix bug"},
		{name: "SubjectAndBody", rec: CommitRecord{Subject: "Add feature", Body: "Closes #12"}, want: "Add feature\n\nCloses #12"},
		{name: "WhitespaceBody", rec: CommitRecord{Subject: "Tidy", Body: "  \n "}, want: "Tidy"},
		{name: "UntrimmedBody", rec: CommitRecord{Subject: "Refactor", Body: "\ndetails\n"}, want: "Refactor\n\ndetails"},
		{name: "TrailingSubjectSpace", rec: CommitRecord{Subject: "Fix bug "}, want: "Fix bug"},
		{name: "Empty", rec: CommitRecord{}, want: ""},
		{name: "MultiLineBody", rec: CommitRecord{Subject: "Rework parser", Body: "line one\nline two"}, want: "Rework parser\n\nline one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChangeKindString(t *testing.T) {
	tests := []struct {
		kind ChangeKind
		want string
	}{
		{ChangeKindAdded, "added"},
		{ChangeKindModified, "modified"},
		{ChangeKindDeleted, "deleted"},
		{ChangeKindRenamed, "renamed"},
		{ChangeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ChangeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
