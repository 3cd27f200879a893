package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodle-tools/simwatch/pkg/digest"
)

const (
	defaultMinRatio = 0.5
	defaultMaxFiles = 5
	maxFilesLimit   = 10
)

// fileCompQuery is the validated query of the file-comparison lookup.
type fileCompQuery struct {
	submissionID int64
	minRatio     float64
	maxFiles     int
	showNewer    bool
	filenames    []string
}

// parseFileCompQuery validates the path and query parameters,
// collecting every violation so the client sees all of them at once.
func parseFileCompQuery(c *gin.Context) (fileCompQuery, []string) {
	q := fileCompQuery{
		minRatio: defaultMinRatio,
		maxFiles: defaultMaxFiles,
	}
	var errs []string

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Sprintf("submission_id must be an integer, got %q", c.Param("id")))
	} else {
		q.submissionID = id
	}

	if raw := c.Query("minratio"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("minratio must be a number, got %q", raw))
		case v < 0 || v > 1:
			errs = append(errs, fmt.Sprintf("minratio must be between 0 and 1, got %g", v))
		default:
			q.minRatio = v
		}
	}

	if raw := c.Query("maxfiles"); raw != "" {
		v, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("maxfiles must be an integer, got %q", raw))
		case v < 1 || v > maxFilesLimit:
			errs = append(errs, fmt.Sprintf("maxfiles must be between 1 and %d, got %d", maxFilesLimit, v))
		default:
			q.maxFiles = v
		}
	}

	if raw := c.Query("shownewer"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("shownewer must be a boolean, got %q", raw))
		} else {
			q.showNewer = v
		}
	}

	q.filenames = c.QueryArray("filename")
	return q, errs
}

// FileComparison handles
// GET /filecomp/submission/:id?minratio=&maxfiles=&shownewer=&filename=...
// Without filename parameters every cached file of the submission is
// looked up.
func (s *Server) FileComparison(c *gin.Context) {
	q, errs := parseFileCompQuery(c)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"files":  gin.H{},
			"errors": errs,
		})
		return
	}

	ctx := c.Request.Context()
	filenames := q.filenames
	if len(filenames) == 0 {
		files, err := s.files.GetSubmissionFiles(ctx, q.submissionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"files":  gin.H{},
				"errors": []string{"failed to list submission files"},
			})
			return
		}
		for _, f := range files {
			filenames = append(filenames, f.Filename)
		}
	}

	details, err := s.lookup.GetFilesBySubmission(ctx, q.submissionID, filenames, q.minRatio, q.maxFiles, q.showNewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"files":  gin.H{},
			"errors": []string{"failed to look up file comparisons"},
		})
		return
	}

	for name, d := range details {
		details[name] = normalized(d)
	}
	c.JSON(http.StatusOK, gin.H{
		"files":  details,
		"errors": []string{},
	})
}

// normalized replaces nil slices so clients always see lists.
func normalized(d digest.FileDetails) digest.FileDetails {
	if d.Older == nil {
		d.Older = []digest.SimilarFile{}
	}
	if d.Newer == nil {
		d.Newer = []digest.SimilarFile{}
	}
	if d.Warnings == nil {
		d.Warnings = []digest.WarningDetail{}
	}
	return d
}
