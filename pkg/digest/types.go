package digest

import "time"

// FileToProcess is one unit of extraction work: a cached file together
// with the digest types still missing for it. MissingTypes is never
// empty; a file with every type present does not appear in the stream.
type FileToProcess struct {
	FileID       int
	SubmissionID int64
	AssignmentID int64
	UserID       int64
	Filename     string
	MimeType     string
	Size         int64
	URL          string
	Uploaded     time.Time
	MissingTypes []string
}

// Record is one digest row to upsert. Content is gzip-compressed; nil
// records "extraction ran and produced nothing" so the file is not
// picked up again next cycle.
type Record struct {
	FileID       int
	Type         string
	Content      []byte
	AssignmentID int64
	SubmissionID int64
	UserID       int64
	Uploaded     time.Time
}

// Warning is one warning row produced alongside extraction.
type Warning struct {
	FileID  int
	Type    string
	Message string
}

// Pair is one missing comparison: two same-type digests of the same
// assignment from different submissions, older uploaded strictly before
// newer. Both content fields are compressed and non-nil.
type Pair struct {
	OlderFileID  int
	NewerFileID  int
	Type         string
	OlderContent []byte
	NewerContent []byte
}

// Comparison is one similarity row to upsert, keyed by the four-tuple.
type Comparison struct {
	OlderFileID int
	OlderType   string
	NewerFileID int
	NewerType   string
	Score       float64
}

// SimilarFile is one entry of the top-K answer for a looked-up file.
type SimilarFile struct {
	SubmissionID int64   `json:"submission_id"`
	UserID       int64   `json:"author_id"`
	UserName     string  `json:"author"`
	Filename     string  `json:"name"`
	URL          string  `json:"url"`
	Similarity   float64 `json:"similarity"`
}

// WarningDetail is one extraction warning attached to a looked-up file.
type WarningDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// FileDetails is the per-filename answer of GetFilesBySubmission.
// Known is false when the submission has no file with that name; the
// remaining fields are then empty.
type FileDetails struct {
	Name     string          `json:"name"`
	Known    bool            `json:"known"`
	Older    []SimilarFile   `json:"older"`
	Newer    []SimilarFile   `json:"newer"`
	Warnings []WarningDetail `json:"warnings"`
}
