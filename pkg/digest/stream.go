package digest

import (
	stdsql "database/sql"
	"fmt"
	"strings"
)

// FileIterator is a lazy sequence of files to process. Consumers pull
// with Next and must Close on all exit paths.
type FileIterator interface {
	Next() (FileToProcess, bool)
	Err() error
	Close() error
}

// PairIterator is a lazy sequence of missing comparison pairs.
type PairIterator interface {
	Next() (Pair, bool)
	Err() error
	Close() error
}

// FileStream is a lazy cursor over files with missing digests. The
// caller must Close it on all exit paths; rows for the same file are
// emitted as one record.
type FileStream struct {
	rows      *stdsql.Rows
	available []string
	err       error
}

// Next returns the next file to process; ok is false at end of stream
// or on error. Check Err after the loop.
func (s *FileStream) Next() (FileToProcess, bool) {
	if s.rows == nil || s.err != nil {
		return FileToProcess{}, false
	}
	if !s.rows.Next() {
		s.err = s.rows.Err()
		return FileToProcess{}, false
	}

	var (
		f        FileToProcess
		existing string
	)
	if err := s.rows.Scan(
		&f.FileID, &f.SubmissionID, &f.AssignmentID, &f.UserID,
		&f.Filename, &f.MimeType, &f.Size, &f.URL, &f.Uploaded,
		&existing,
	); err != nil {
		s.err = fmt.Errorf("scanning file row: %w", err)
		return FileToProcess{}, false
	}

	f.MissingTypes = missingTypes(s.available, existing)
	return f, true
}

// Err returns the error that terminated the stream, if any.
func (s *FileStream) Err() error {
	return s.err
}

// Close releases the underlying cursor.
func (s *FileStream) Close() error {
	if s.rows == nil {
		return nil
	}
	return s.rows.Close()
}

// missingTypes is the set difference available \ existing, preserving
// the order of available. existing is a comma-joined aggregate.
func missingTypes(available []string, existing string) []string {
	have := make(map[string]bool)
	for _, t := range strings.Split(existing, ",") {
		if t != "" {
			have[t] = true
		}
	}
	var missing []string
	for _, t := range available {
		if !have[t] {
			missing = append(missing, t)
		}
	}
	return missing
}

// PairStream is a lazy cursor over missing comparison pairs. Pairs for
// the same newer file are contiguous.
type PairStream struct {
	rows *stdsql.Rows
	err  error
}

// Next returns the next pair; ok is false at end of stream or on error.
func (s *PairStream) Next() (Pair, bool) {
	if s.rows == nil || s.err != nil {
		return Pair{}, false
	}
	if !s.rows.Next() {
		s.err = s.rows.Err()
		return Pair{}, false
	}

	var p Pair
	if err := s.rows.Scan(
		&p.OlderFileID, &p.OlderContent,
		&p.NewerFileID, &p.NewerContent,
		&p.Type,
	); err != nil {
		s.err = fmt.Errorf("scanning pair row: %w", err)
		return Pair{}, false
	}
	return p, true
}

// Err returns the error that terminated the stream, if any.
func (s *PairStream) Err() error {
	return s.err
}

// Close releases the underlying cursor.
func (s *PairStream) Close() error {
	if s.rows == nil {
		return nil
	}
	return s.rows.Close()
}
