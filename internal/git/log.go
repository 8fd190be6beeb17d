package git

import "strings"

// logPrettyFormat makes each commit contribute exactly three
// NUL-terminated fields: hash, subject, body. NUL cannot appear in
// commit text, so the blob splits unambiguously.
const logPrettyFormat = "%H%x00%s%x00%b%x00"

// logFieldsPerCommit is the number of fields each commit contributes
// to the log blob.
const logFieldsPerCommit = 3

// ParseLog transforms a raw `git log` blob produced with
// logPrettyFormat into an ordered sequence of CommitRecord.
//
// Tokens are consumed in groups of three (hash, subject, body). A
// short final group yields an empty body rather than an error. The
// hash and body are trimmed; the subject is taken as-is since it may
// legitimately be empty or carry meaningful spacing. An empty blob
// yields an empty sequence: a repository with no commits is normal
// data, not an error.
func ParseLog(blob string) []CommitRecord {
	blob = strings.Trim(strings.TrimSpace(blob), "\x00")
	if blob == "" {
		return nil
	}

	tokens := strings.Split(blob, "\x00")
	records := make([]CommitRecord, 0, len(tokens)/logFieldsPerCommit+1)

	for i := 0; i < len(tokens); i += logFieldsPerCommit {
		// git separates records with a newline, which sticks to the
		// front of the next hash token. Trimming the hash removes it.
		rec := CommitRecord{SHA: strings.TrimSpace(tokens[i])}
		if i+1 < len(tokens) {
			rec.Subject = tokens[i+1]
		}
		if i+2 < len(tokens) {
			rec.Body = strings.TrimSpace(tokens[i+2])
		}
		records = append(records, rec)
	}

	return records
}
