// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// FileComparison is the predicate function for filecomparison builders.
type FileComparison func(*sql.Selector)

// FileDigest is the predicate function for filedigest builders.
type FileDigest func(*sql.Selector)

// FileWarning is the predicate function for filewarning builders.
type FileWarning func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// ParticipantGroup is the predicate function for participantgroup builders.
type ParticipantGroup func(*sql.Selector)

// ParticipantRole is the predicate function for participantrole builders.
type ParticipantRole func(*sql.Selector)

// Role is the predicate function for role builders.
type Role func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// SubmittedFile is the predicate function for submittedfile builders.
type SubmittedFile func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
