// Package cache is the repository mirroring the remote LMS into the
// local store: courses, users, participation, assignments, submissions
// and submitted files. Writes are upserts on natural keys; refreshes
// that must remove stale children delete with "id not in provided set"
// predicates scoped to the refreshed parents, never globally.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/moodle-tools/simwatch/ent"
	"github.com/moodle-tools/simwatch/ent/assignment"
	"github.com/moodle-tools/simwatch/ent/course"
	"github.com/moodle-tools/simwatch/ent/group"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantgroup"
	"github.com/moodle-tools/simwatch/ent/participantrole"
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/role"
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
	"github.com/moodle-tools/simwatch/pkg/database"
)

// Repository provides upsert/stream access to the LMS mirror.
type Repository struct {
	db *database.Client
}

// NewRepository creates a cache repository over the shared client.
func NewRepository(db *database.Client) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// StoreCourses replaces the canonical snapshot of the provided courses:
// courses, users and roles upsert by id; groups, participants and their
// role/group links are full-sync replaced, scoped to exactly these
// courses. Users are never deleted here; last_seen is refreshed and a
// retention job outside this repository decides about stale users.
func (r *Repository) StoreCourses(ctx context.Context, courses []Course, now time.Time) error {
	if len(courses) == 0 {
		return nil
	}
	return r.withTx(ctx, func(tx *ent.Tx) error {
		courseIDs := make([]int64, 0, len(courses))
		for _, c := range courses {
			courseIDs = append(courseIDs, c.ID)
		}

		if err := upsertCourses(ctx, tx, courses, now); err != nil {
			return err
		}
		if err := upsertUsers(ctx, tx, courses, now); err != nil {
			return err
		}
		if err := upsertRoles(ctx, tx, courses); err != nil {
			return err
		}
		if err := syncGroups(ctx, tx, courses); err != nil {
			return err
		}
		if err := syncParticipants(ctx, tx, courses); err != nil {
			return err
		}
		return syncParticipantLinks(ctx, tx, courses, courseIDs)
	})
}

func upsertCourses(ctx context.Context, tx *ent.Tx, courses []Course, now time.Time) error {
	builders := make([]*ent.CourseCreate, 0, len(courses))
	for _, c := range courses {
		builders = append(builders, tx.Course.Create().
			SetID(c.ID).
			SetShortname(c.ShortName).
			SetFullname(c.FullName).
			SetNillableStarts(c.Starts).
			SetNillableEnds(c.Ends).
			SetLastSeen(now))
	}
	err := tx.Course.CreateBulk(builders...).
		OnConflictColumns(course.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting %d courses: %w", len(builders), err)
	}
	return nil
}

func upsertUsers(ctx context.Context, tx *ent.Tx, courses []Course, now time.Time) error {
	seen := make(map[int64]bool)
	var builders []*ent.UserCreate
	for _, c := range courses {
		for _, p := range c.Participants {
			if seen[p.User.ID] {
				continue
			}
			seen[p.User.ID] = true
			builders = append(builders, tx.User.Create().
				SetID(p.User.ID).
				SetFullname(p.User.FullName).
				SetNillableEmail(p.User.Email).
				SetLastSeen(now))
		}
	}
	if len(builders) == 0 {
		return nil
	}
	err := tx.User.CreateBulk(builders...).
		OnConflictColumns(user.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting %d users: %w", len(builders), err)
	}
	return nil
}

func upsertRoles(ctx context.Context, tx *ent.Tx, courses []Course) error {
	seen := make(map[int64]bool)
	var builders []*ent.RoleCreate
	for _, c := range courses {
		for _, p := range c.Participants {
			for _, rl := range p.Roles {
				if seen[rl.ID] {
					continue
				}
				seen[rl.ID] = true
				builders = append(builders, tx.Role.Create().
					SetID(rl.ID).
					SetName(rl.Name))
			}
		}
	}
	if len(builders) == 0 {
		return nil
	}
	err := tx.Role.CreateBulk(builders...).
		OnConflictColumns(role.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting %d roles: %w", len(builders), err)
	}
	return nil
}

// syncGroups upserts the group set of each course and deletes groups of
// these courses that are no longer reported. The cascade clears stale
// participant-group links.
func syncGroups(ctx context.Context, tx *ent.Tx, courses []Course) error {
	for _, c := range courses {
		seen := make(map[int64]bool)
		var builders []*ent.GroupCreate
		addGroup := func(g Group) {
			if seen[g.ID] {
				return
			}
			seen[g.ID] = true
			builders = append(builders, tx.Group.Create().
				SetID(g.ID).
				SetCourseID(c.ID).
				SetName(g.Name))
		}
		for _, g := range c.Groups {
			addGroup(g)
		}
		for _, p := range c.Participants {
			for _, g := range p.Groups {
				addGroup(g)
			}
		}

		if len(builders) > 0 {
			err := tx.Group.CreateBulk(builders...).
				OnConflictColumns(group.FieldID).
				UpdateNewValues().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("upserting groups of course %d: %w", c.ID, err)
			}
		}

		preds := []predicate.Group{group.CourseIDEQ(c.ID)}
		if len(seen) > 0 {
			keep := make([]int64, 0, len(seen))
			for id := range seen {
				keep = append(keep, id)
			}
			preds = append(preds, group.IDNotIn(keep...))
		}
		if _, err := tx.Group.Delete().Where(preds...).Exec(ctx); err != nil {
			return fmt.Errorf("deleting stale groups of course %d: %w", c.ID, err)
		}
	}
	return nil
}

// syncParticipants upserts the (course, user) pairs and deletes pairs
// of these courses that are no longer reported.
func syncParticipants(ctx context.Context, tx *ent.Tx, courses []Course) error {
	for _, c := range courses {
		userIDs := make([]int64, 0, len(c.Participants))
		builders := make([]*ent.ParticipantCreate, 0, len(c.Participants))
		for _, p := range c.Participants {
			userIDs = append(userIDs, p.User.ID)
			builders = append(builders, tx.Participant.Create().
				SetCourseID(c.ID).
				SetUserID(p.User.ID))
		}

		if len(builders) > 0 {
			err := tx.Participant.CreateBulk(builders...).
				OnConflictColumns(participant.FieldCourseID, participant.FieldUserID).
				Ignore().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("upserting participants of course %d: %w", c.ID, err)
			}
		}

		preds := []predicate.Participant{participant.CourseIDEQ(c.ID)}
		if len(userIDs) > 0 {
			preds = append(preds, participant.UserIDNotIn(userIDs...))
		}
		if _, err := tx.Participant.Delete().Where(preds...).Exec(ctx); err != nil {
			return fmt.Errorf("deleting stale participants of course %d: %w", c.ID, err)
		}
	}
	return nil
}

// syncParticipantLinks full-sync replaces the role and group links of
// every participant of the refreshed courses.
func syncParticipantLinks(ctx context.Context, tx *ent.Tx, courses []Course, courseIDs []int64) error {
	parts, err := tx.Participant.Query().
		Where(participant.CourseIDIn(courseIDs...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("loading participants for link sync: %w", err)
	}

	type pairKey struct {
		courseID int64
		userID   int64
	}
	ids := make(map[pairKey]int, len(parts))
	pids := make([]int, 0, len(parts))
	for _, p := range parts {
		ids[pairKey{p.CourseID, p.UserID}] = p.ID
		pids = append(pids, p.ID)
	}
	if len(pids) == 0 {
		return nil
	}

	if _, err := tx.ParticipantRole.Delete().
		Where(participantrole.ParticipantIDIn(pids...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clearing participant roles: %w", err)
	}
	if _, err := tx.ParticipantGroup.Delete().
		Where(participantgroup.ParticipantIDIn(pids...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clearing participant groups: %w", err)
	}

	var roleLinks []*ent.ParticipantRoleCreate
	var groupLinks []*ent.ParticipantGroupCreate
	for _, c := range courses {
		for _, p := range c.Participants {
			pid, ok := ids[pairKey{c.ID, p.User.ID}]
			if !ok {
				return fmt.Errorf("participant (%d, %d) missing after upsert", c.ID, p.User.ID)
			}
			for _, rl := range p.Roles {
				roleLinks = append(roleLinks, tx.ParticipantRole.Create().
					SetParticipantID(pid).
					SetRoleID(rl.ID))
			}
			for _, g := range p.Groups {
				groupLinks = append(groupLinks, tx.ParticipantGroup.Create().
					SetParticipantID(pid).
					SetGroupID(g.ID))
			}
		}
	}

	if len(roleLinks) > 0 {
		err := tx.ParticipantRole.CreateBulk(roleLinks...).
			OnConflictColumns(participantrole.FieldParticipantID, participantrole.FieldRoleID).
			Ignore().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("inserting participant roles: %w", err)
		}
	}
	if len(groupLinks) > 0 {
		err := tx.ParticipantGroup.CreateBulk(groupLinks...).
			OnConflictColumns(participantgroup.FieldParticipantID, participantgroup.FieldGroupID).
			Ignore().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("inserting participant groups: %w", err)
		}
	}
	return nil
}

// LoadCourses reads back full course snapshots for the given ids, in
// the same shape StoreCourses accepts.
func (r *Repository) LoadCourses(ctx context.Context, ids []int64) ([]Course, error) {
	rows, err := r.db.Course.Query().
		Where(course.IDIn(ids...)).
		Order(ent.Asc(course.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}

	groups, err := r.db.Group.Query().
		Where(group.CourseIDIn(ids...)).
		Order(ent.Asc(group.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}
	groupsByID := make(map[int64]Group, len(groups))
	groupsByCourse := make(map[int64][]Group)
	for _, g := range groups {
		cg := Group{ID: g.ID, Name: g.Name}
		groupsByID[g.ID] = cg
		groupsByCourse[g.CourseID] = append(groupsByCourse[g.CourseID], cg)
	}

	parts, err := r.db.Participant.Query().
		Where(participant.CourseIDIn(ids...)).
		Order(ent.Asc(participant.FieldUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading participants: %w", err)
	}

	pids := make([]int, 0, len(parts))
	userIDs := make([]int64, 0, len(parts))
	for _, p := range parts {
		pids = append(pids, p.ID)
		userIDs = append(userIDs, p.UserID)
	}

	users := make(map[int64]User)
	if len(userIDs) > 0 {
		userRows, err := r.db.User.Query().Where(user.IDIn(userIDs...)).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading users: %w", err)
		}
		for _, u := range userRows {
			users[u.ID] = User{ID: u.ID, FullName: u.Fullname, Email: u.Email}
		}
	}

	rolesByParticipant := make(map[int][]Role)
	groupsByParticipant := make(map[int][]Group)
	if len(pids) > 0 {
		roleLinks, err := r.db.ParticipantRole.Query().
			Where(participantrole.ParticipantIDIn(pids...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading participant roles: %w", err)
		}
		roleIDs := make([]int64, 0, len(roleLinks))
		for _, l := range roleLinks {
			roleIDs = append(roleIDs, l.RoleID)
		}
		roleNames := make(map[int64]string)
		if len(roleIDs) > 0 {
			roleRows, err := r.db.Role.Query().Where(role.IDIn(roleIDs...)).All(ctx)
			if err != nil {
				return nil, fmt.Errorf("loading roles: %w", err)
			}
			for _, rl := range roleRows {
				roleNames[rl.ID] = rl.Name
			}
		}
		for _, l := range roleLinks {
			rolesByParticipant[l.ParticipantID] = append(rolesByParticipant[l.ParticipantID], Role{ID: l.RoleID, Name: roleNames[l.RoleID]})
		}

		groupLinks, err := r.db.ParticipantGroup.Query().
			Where(participantgroup.ParticipantIDIn(pids...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading participant groups: %w", err)
		}
		for _, l := range groupLinks {
			groupsByParticipant[l.ParticipantID] = append(groupsByParticipant[l.ParticipantID], groupsByID[l.GroupID])
		}
	}

	participantsByCourse := make(map[int64][]Participant)
	for _, p := range parts {
		participantsByCourse[p.CourseID] = append(participantsByCourse[p.CourseID], Participant{
			User:   users[p.UserID],
			Roles:  rolesByParticipant[p.ID],
			Groups: groupsByParticipant[p.ID],
		})
	}

	out := make([]Course, 0, len(rows))
	for _, c := range rows {
		out = append(out, Course{
			ID:           c.ID,
			ShortName:    c.Shortname,
			FullName:     c.Fullname,
			Starts:       c.Starts,
			Ends:         c.Ends,
			Groups:       groupsByCourse[c.ID],
			Participants: participantsByCourse[c.ID],
		})
	}
	return out, nil
}

// StoreAssignments upserts assignments by id. Storing the same snapshot
// twice leaves the table unchanged.
func (r *Repository) StoreAssignments(ctx context.Context, assignments []Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	builders := make([]*ent.AssignmentCreate, 0, len(assignments))
	for _, a := range assignments {
		builders = append(builders, r.db.Assignment.Create().
			SetID(a.ID).
			SetCourseID(a.CourseID).
			SetName(a.Name).
			SetNillableOpening(a.Opening).
			SetNillableClosing(a.Closing).
			SetNillableCutoff(a.Cutoff))
	}
	err := r.db.Assignment.CreateBulk(builders...).
		OnConflictColumns(assignment.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting %d assignments: %w", len(assignments), err)
	}
	return nil
}

// DropAssignmentsExceptFor deletes assignments of the courses in
// content that are not listed in content. Courses absent from the map
// are untouched, so a partial refresh never wipes foreign courses.
func (r *Repository) DropAssignmentsExceptFor(ctx context.Context, content map[int64][]int64) error {
	for courseID, keep := range content {
		preds := []predicate.Assignment{assignment.CourseIDEQ(courseID)}
		if len(keep) > 0 {
			preds = append(preds, assignment.IDNotIn(keep...))
		}
		if _, err := r.db.Assignment.Delete().Where(preds...).Exec(ctx); err != nil {
			return fmt.Errorf("dropping stale assignments of course %d: %w", courseID, err)
		}
	}
	return nil
}

// StoreSubmissions upserts submissions and their files. Submissions are
// only ever added or updated here; removal happens through the parent
// assignment's cascade.
func (r *Repository) StoreSubmissions(ctx context.Context, submissions []Submission) error {
	if len(submissions) == 0 {
		return nil
	}
	return r.withTx(ctx, func(tx *ent.Tx) error {
		subBuilders := make([]*ent.SubmissionCreate, 0, len(submissions))
		var fileBuilders []*ent.SubmittedFileCreate
		for _, s := range submissions {
			subBuilders = append(subBuilders, tx.Submission.Create().
				SetID(s.ID).
				SetAssignmentID(s.AssignmentID).
				SetUserID(s.UserID).
				SetNillableStatus(s.Status).
				SetUpdated(s.Updated))
			for _, f := range s.Files {
				fileBuilders = append(fileBuilders, tx.SubmittedFile.Create().
					SetSubmissionID(s.ID).
					SetAssignmentID(s.AssignmentID).
					SetUserID(s.UserID).
					SetFilename(f.Filename).
					SetFilesize(f.Size).
					SetMimetype(f.MimeType).
					SetURL(f.URL).
					SetUploaded(f.Uploaded))
			}
		}

		err := tx.Submission.CreateBulk(subBuilders...).
			OnConflictColumns(submission.FieldID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upserting %d submissions: %w", len(subBuilders), err)
		}

		if len(fileBuilders) > 0 {
			err := tx.SubmittedFile.CreateBulk(fileBuilders...).
				OnConflictColumns(submittedfile.FieldSubmissionID, submittedfile.FieldFilename).
				UpdateNewValues().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("upserting %d submitted files: %w", len(fileBuilders), err)
			}
		}
		return nil
	})
}

// openCoursePredicates selects courses currently open at now. With
// withDatesOnly a course must carry both bounds to qualify.
func openCoursePredicates(now time.Time, withDatesOnly bool) []predicate.Course {
	if withDatesOnly {
		return []predicate.Course{
			course.StartsNotNil(),
			course.StartsLTE(now),
			course.EndsNotNil(),
			course.EndsGTE(now),
		}
	}
	return []predicate.Course{
		course.Or(course.StartsIsNil(), course.StartsLTE(now)),
		course.Or(course.EndsIsNil(), course.EndsGTE(now)),
	}
}

// GetOpenCourseIDs returns ids of courses open at now.
func (r *Repository) GetOpenCourseIDs(ctx context.Context, now time.Time, withDatesOnly bool) ([]int64, error) {
	ids, err := r.db.Course.Query().
		Where(openCoursePredicates(now, withDatesOnly)...).
		Order(ent.Asc(course.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying open courses: %w", err)
	}
	return ids, nil
}

// closingWindow selects assignments whose due or cutoff falls inside
// [now-before, now+after]. Both boundaries are inclusive.
func closingWindow(now time.Time, before, after time.Duration) predicate.Assignment {
	lo := now.Add(-before)
	hi := now.Add(after)
	return assignment.Or(
		assignment.And(assignment.ClosingNotNil(), assignment.ClosingGTE(lo), assignment.ClosingLTE(hi)),
		assignment.And(assignment.CutoffNotNil(), assignment.CutoffGTE(lo), assignment.CutoffLTE(hi)),
	)
}

// activePredicates selects assignments of open courses whose opening
// has passed (or is unset).
func activePredicates(now time.Time) []predicate.Assignment {
	return []predicate.Assignment{
		assignment.HasCourseWith(openCoursePredicates(now, false)...),
		assignment.Or(assignment.OpeningIsNil(), assignment.OpeningLTE(now)),
	}
}

// GetActiveAssignmentIDsEndingSoon returns active assignments whose
// deadline falls inside the [now-before, now+after] window.
func (r *Repository) GetActiveAssignmentIDsEndingSoon(ctx context.Context, now time.Time, before, after time.Duration) ([]int64, error) {
	preds := append(activePredicates(now), closingWindow(now, before, after))
	ids, err := r.db.Assignment.Query().
		Where(preds...).
		Order(ent.Asc(assignment.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying assignments ending soon: %w", err)
	}
	return ids, nil
}

// GetActiveAssignmentIDsNotEndingSoon is the complement on the deadline
// window, keeping the open-course and opening-passed clauses.
func (r *Repository) GetActiveAssignmentIDsNotEndingSoon(ctx context.Context, now time.Time, before, after time.Duration) ([]int64, error) {
	preds := append(activePredicates(now), assignment.Not(closingWindow(now, before, after)))
	ids, err := r.db.Assignment.Query().
		Where(preds...).
		Order(ent.Asc(assignment.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying assignments not ending soon: %w", err)
	}
	return ids, nil
}

const lastSubmissionTimesQuery = `
SELECT assignment_id, MAX(updated)
FROM moodle_submissions
WHERE assignment_id = ANY($1::bigint[])
GROUP BY assignment_id`

// GetLastSubmissionTimes maps each given assignment id to the latest
// submission update it has cached, or nil when it has none.
func (r *Repository) GetLastSubmissionTimes(ctx context.Context, assignmentIDs []int64) (map[int64]*time.Time, error) {
	out := make(map[int64]*time.Time, len(assignmentIDs))
	for _, id := range assignmentIDs {
		out[id] = nil
	}
	if len(assignmentIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.DB().QueryContext(ctx, lastSubmissionTimesQuery, assignmentIDs)
	if err != nil {
		return nil, fmt.Errorf("querying last submission times: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id int64
			ts time.Time
		)
		if err := rows.Scan(&id, &ts); err != nil {
			return nil, fmt.Errorf("scanning last submission time: %w", err)
		}
		t := ts.UTC()
		out[id] = &t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating last submission times: %w", err)
	}
	return out, nil
}

// GetSubmissionFiles returns the cached files of one submission.
func (r *Repository) GetSubmissionFiles(ctx context.Context, submissionID int64) ([]StoredFile, error) {
	rows, err := r.db.SubmittedFile.Query().
		Where(submittedfile.SubmissionIDEQ(submissionID)).
		Order(ent.Asc(submittedfile.FieldFilename)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading files of submission %d: %w", submissionID, err)
	}
	out := make([]StoredFile, 0, len(rows))
	for _, f := range rows {
		out = append(out, StoredFile{
			FileID:       f.ID,
			SubmissionID: f.SubmissionID,
			AssignmentID: f.AssignmentID,
			UserID:       f.UserID,
			Filename:     f.Filename,
			Size:         f.Filesize,
			MimeType:     f.Mimetype,
			URL:          f.URL,
			Uploaded:     f.Uploaded,
		})
	}
	return out, nil
}
