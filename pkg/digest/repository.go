// Package digest is the repository for file digests, warnings and
// comparisons. It owns the "missing work" queries of the comparison
// pipeline and the top-K lookup behind the HTTP API.
//
// Writes go through ent upserts. The missing-set and window queries go
// through raw SQL on the shared connection pool because ent cannot
// express aggregated set differences or window functions.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moodle-tools/simwatch/ent"
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/pkg/database"
)

// Repository provides keyed access to digests, warnings and comparisons.
type Repository struct {
	db *database.Client
}

// NewRepository creates a digest repository over the shared client.
func NewRepository(db *database.Client) *Repository {
	return &Repository{db: db}
}

const missingDigestsQuery = `
SELECT f.id, f.submission_id, f.assignment_id, f.user_id,
       f.filename, f.mimetype, f.filesize, f.url, f.uploaded,
       COALESCE(string_agg(DISTINCT d.digest_type, ','), '')
FROM moodle_submitted_files f
LEFT JOIN file_digests d ON d.file_id = f.id
WHERE ($2::timestamptz IS NULL OR f.uploaded >= $2)
  AND ($3::bigint IS NULL OR f.filesize <= $3)
GROUP BY f.id
HAVING count(DISTINCT d.digest_type) FILTER (WHERE d.digest_type = ANY($1::text[])) < $4
ORDER BY f.id`

// StreamFilesWithMissingDigests returns a cursor over files that pass
// the age/size filters and lack at least one digest from available.
// Each record carries the subset of types still missing. An empty
// available set yields an exhausted stream and a warning, never an
// unfiltered scan.
func (r *Repository) StreamFilesWithMissingDigests(ctx context.Context, available []string, maxAge *time.Duration, maxSize *int64) (FileIterator, error) {
	if len(available) == 0 {
		slog.Warn("No digest types available, nothing to extract")
		return &FileStream{}, nil
	}

	var cutoff any
	if maxAge != nil {
		cutoff = time.Now().UTC().Add(-*maxAge)
	}
	var sizeLimit any
	if maxSize != nil {
		sizeLimit = *maxSize
	}

	rows, err := r.db.DB().QueryContext(ctx, missingDigestsQuery, available, cutoff, sizeLimit, len(available))
	if err != nil {
		return nil, fmt.Errorf("querying files with missing digests: %w", err)
	}
	return &FileStream{rows: rows, available: available}, nil
}

// StoreDigests upserts digest rows by (file_id, digest_type). Content
// may be nil; the row is still written so the file is not retried on
// every cycle.
func (r *Repository) StoreDigests(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UTC()
	builders := make([]*ent.FileDigestCreate, 0, len(records))
	for _, rec := range records {
		builders = append(builders, r.db.FileDigest.Create().
			SetFileID(rec.FileID).
			SetDigestType(rec.Type).
			SetContent(rec.Content).
			SetCreated(now).
			SetAssignmentID(rec.AssignmentID).
			SetSubmissionID(rec.SubmissionID).
			SetUserID(rec.UserID).
			SetUploaded(rec.Uploaded))
	}
	err := r.db.FileDigest.CreateBulk(builders...).
		OnConflictColumns(filedigest.FieldFileID, filedigest.FieldDigestType).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("storing %d digests: %w", len(records), err)
	}
	return nil
}

// StoreWarnings upserts warning rows by (file_id, warning_type).
func (r *Repository) StoreWarnings(ctx context.Context, warnings []Warning) error {
	if len(warnings) == 0 {
		return nil
	}
	builders := make([]*ent.FileWarningCreate, 0, len(warnings))
	for _, w := range warnings {
		builders = append(builders, r.db.FileWarning.Create().
			SetFileID(w.FileID).
			SetWarningType(w.Type).
			SetMessage(w.Message))
	}
	err := r.db.FileWarning.CreateBulk(builders...).
		OnConflictColumns(filewarning.FieldFileID, filewarning.FieldWarningType).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("storing %d warnings: %w", len(warnings), err)
	}
	return nil
}

const missingComparisonsQuery = `
SELECT older.file_id, older.content, newer.file_id, newer.content, older.digest_type
FROM file_digests older
JOIN file_digests newer
  ON newer.digest_type = older.digest_type
 AND newer.assignment_id = older.assignment_id
 AND newer.submission_id <> older.submission_id
 AND newer.uploaded > older.uploaded
WHERE older.content IS NOT NULL
  AND newer.content IS NOT NULL
  AND NOT EXISTS (
      SELECT 1 FROM file_comparisons c
      WHERE c.older_file_id = older.file_id
        AND c.older_digest_type = older.digest_type
        AND c.newer_file_id = newer.file_id
        AND c.newer_digest_type = newer.digest_type
  )
ORDER BY newer.file_id, older.uploaded, older.file_id`

// StreamMissingComparisons returns a cursor over digest pairs that have
// no comparison row yet. Emitted pairs always satisfy the direction and
// ownership rules: same type, same assignment, different submissions,
// older uploaded strictly before newer. Null-content digests never pair.
func (r *Repository) StreamMissingComparisons(ctx context.Context) (PairIterator, error) {
	rows, err := r.db.DB().QueryContext(ctx, missingComparisonsQuery)
	if err != nil {
		return nil, fmt.Errorf("querying missing comparisons: %w", err)
	}
	return &PairStream{rows: rows}, nil
}

// StoreComparisons upserts similarity rows by their four-tuple key.
func (r *Repository) StoreComparisons(ctx context.Context, comparisons []Comparison) error {
	if len(comparisons) == 0 {
		return nil
	}
	builders := make([]*ent.FileComparisonCreate, 0, len(comparisons))
	for _, c := range comparisons {
		builders = append(builders, r.db.FileComparison.Create().
			SetOlderFileID(c.OlderFileID).
			SetOlderDigestType(c.OlderType).
			SetNewerFileID(c.NewerFileID).
			SetNewerDigestType(c.NewerType).
			SetSimilarityScore(c.Score))
	}
	err := r.db.FileComparison.CreateBulk(builders...).
		OnConflictColumns(
			filecomparison.FieldOlderFileID,
			filecomparison.FieldOlderDigestType,
			filecomparison.FieldNewerFileID,
			filecomparison.FieldNewerDigestType,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("storing %d comparisons: %w", len(comparisons), err)
	}
	return nil
}

// GetFilesBySubmission answers the user-facing lookup. For each
// requested filename: Known=false when the submission has no such file;
// otherwise the file's warnings plus the top-K older similar files with
// similarity >= minScore (and, when alsoLater, the symmetric newer
// list). Each counterpart file counts once toward K at its best score
// across digest types. The cutoff is a strict row-number limit, so
// ties beyond K are dropped. Results never mix across filenames.
func (r *Repository) GetFilesBySubmission(ctx context.Context, submissionID int64, filenames []string, minScore float64, maxSimilar int, alsoLater bool) (map[string]FileDetails, error) {
	out := make(map[string]FileDetails, len(filenames))
	for _, name := range filenames {
		file, err := r.db.SubmittedFile.Query().
			Where(
				submittedfile.SubmissionIDEQ(submissionID),
				submittedfile.FilenameEQ(name),
			).
			Only(ctx)
		if ent.IsNotFound(err) {
			out[name] = FileDetails{Name: name, Known: false}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("looking up file %q of submission %d: %w", name, submissionID, err)
		}

		details := FileDetails{Name: name, Known: true}

		warnings, err := r.db.FileWarning.Query().
			Where(filewarning.FileIDEQ(file.ID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading warnings for file %d: %w", file.ID, err)
		}
		for _, w := range warnings {
			details.Warnings = append(details.Warnings, WarningDetail{Type: w.WarningType, Message: w.Message})
		}

		details.Older, err = r.similarFiles(ctx, file.ID, minScore, maxSimilar, false)
		if err != nil {
			return nil, err
		}
		if alsoLater {
			details.Newer, err = r.similarFiles(ctx, file.ID, minScore, maxSimilar, true)
			if err != nil {
				return nil, err
			}
		}
		out[name] = details
	}
	return out, nil
}

// The inner DISTINCT ON collapses multiple comparisons against the
// same counterpart file (one per digest type) to its best score, so
// the top-K window counts each counterpart once.
const olderSimilarQuery = `
SELECT submission_id, user_id, user_name, filename, url, similarity
FROM (
    SELECT best.*, ROW_NUMBER() OVER (ORDER BY best.similarity DESC, best.file_id) AS rn
    FROM (
        SELECT DISTINCT ON (sf.id)
               sf.id AS file_id, sf.submission_id, sf.user_id, u.fullname AS user_name,
               sf.filename, sf.url, c.similarity_score AS similarity
        FROM file_comparisons c
        JOIN moodle_submitted_files sf ON sf.id = c.older_file_id
        JOIN moodle_users u ON u.id = sf.user_id
        WHERE c.newer_file_id = $1 AND c.similarity_score >= $2
        ORDER BY sf.id, c.similarity_score DESC
    ) best
) ranked
WHERE rn <= $3
ORDER BY similarity DESC`

const newerSimilarQuery = `
SELECT submission_id, user_id, user_name, filename, url, similarity
FROM (
    SELECT best.*, ROW_NUMBER() OVER (ORDER BY best.similarity DESC, best.file_id) AS rn
    FROM (
        SELECT DISTINCT ON (sf.id)
               sf.id AS file_id, sf.submission_id, sf.user_id, u.fullname AS user_name,
               sf.filename, sf.url, c.similarity_score AS similarity
        FROM file_comparisons c
        JOIN moodle_submitted_files sf ON sf.id = c.newer_file_id
        JOIN moodle_users u ON u.id = sf.user_id
        WHERE c.older_file_id = $1 AND c.similarity_score >= $2
        ORDER BY sf.id, c.similarity_score DESC
    ) best
) ranked
WHERE rn <= $3
ORDER BY similarity DESC`

func (r *Repository) similarFiles(ctx context.Context, fileID int, minScore float64, limit int, later bool) ([]SimilarFile, error) {
	query := olderSimilarQuery
	if later {
		query = newerSimilarQuery
	}
	rows, err := r.db.DB().QueryContext(ctx, query, fileID, minScore, limit)
	if err != nil {
		return nil, fmt.Errorf("querying similar files for file %d: %w", fileID, err)
	}
	defer func() { _ = rows.Close() }()

	var similar []SimilarFile
	for rows.Next() {
		var s SimilarFile
		if err := rows.Scan(&s.SubmissionID, &s.UserID, &s.UserName, &s.Filename, &s.URL, &s.Similarity); err != nil {
			return nil, fmt.Errorf("scanning similar file row: %w", err)
		}
		similar = append(similar, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating similar file rows: %w", err)
	}
	return similar, nil
}
