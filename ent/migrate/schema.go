// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MoodleAssignmentsColumns holds the columns for the "moodle_assignments" table.
	MoodleAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "opening", Type: field.TypeTime, Nullable: true},
		{Name: "closing", Type: field.TypeTime, Nullable: true},
		{Name: "cutoff", Type: field.TypeTime, Nullable: true},
		{Name: "course_id", Type: field.TypeInt64},
	}
	// MoodleAssignmentsTable holds the schema information for the "moodle_assignments" table.
	MoodleAssignmentsTable = &schema.Table{
		Name:       "moodle_assignments",
		Columns:    MoodleAssignmentsColumns,
		PrimaryKey: []*schema.Column{MoodleAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "moodle_assignments_moodle_courses_assignments",
				Columns:    []*schema.Column{MoodleAssignmentsColumns[5]},
				RefColumns: []*schema.Column{MoodleCoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_opening",
				Unique:  false,
				Columns: []*schema.Column{MoodleAssignmentsColumns[2]},
			},
			{
				Name:    "assignment_closing",
				Unique:  false,
				Columns: []*schema.Column{MoodleAssignmentsColumns[3]},
			},
			{
				Name:    "assignment_cutoff",
				Unique:  false,
				Columns: []*schema.Column{MoodleAssignmentsColumns[4]},
			},
		},
	}
	// MoodleCoursesColumns holds the columns for the "moodle_courses" table.
	MoodleCoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "shortname", Type: field.TypeString},
		{Name: "fullname", Type: field.TypeString},
		{Name: "starts", Type: field.TypeTime, Nullable: true},
		{Name: "ends", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// MoodleCoursesTable holds the schema information for the "moodle_courses" table.
	MoodleCoursesTable = &schema.Table{
		Name:       "moodle_courses",
		Columns:    MoodleCoursesColumns,
		PrimaryKey: []*schema.Column{MoodleCoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_starts_ends",
				Unique:  false,
				Columns: []*schema.Column{MoodleCoursesColumns[3], MoodleCoursesColumns[4]},
			},
		},
	}
	// FileComparisonsColumns holds the columns for the "file_comparisons" table.
	FileComparisonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "older_digest_type", Type: field.TypeString},
		{Name: "newer_digest_type", Type: field.TypeString},
		{Name: "similarity_score", Type: field.TypeFloat64},
		{Name: "older_file_id", Type: field.TypeInt},
		{Name: "newer_file_id", Type: field.TypeInt},
	}
	// FileComparisonsTable holds the schema information for the "file_comparisons" table.
	FileComparisonsTable = &schema.Table{
		Name:       "file_comparisons",
		Columns:    FileComparisonsColumns,
		PrimaryKey: []*schema.Column{FileComparisonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_comparisons_moodle_submitted_files_older_comparisons",
				Columns:    []*schema.Column{FileComparisonsColumns[4]},
				RefColumns: []*schema.Column{MoodleSubmittedFilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "file_comparisons_moodle_submitted_files_newer_comparisons",
				Columns:    []*schema.Column{FileComparisonsColumns[5]},
				RefColumns: []*schema.Column{MoodleSubmittedFilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "filecomparison_older_file_id_older_digest_type_newer_file_id_newer_digest_type",
				Unique:  true,
				Columns: []*schema.Column{FileComparisonsColumns[4], FileComparisonsColumns[1], FileComparisonsColumns[5], FileComparisonsColumns[2]},
			},
			{
				Name:    "filecomparison_newer_file_id_similarity_score",
				Unique:  false,
				Columns: []*schema.Column{FileComparisonsColumns[5], FileComparisonsColumns[3]},
			},
			{
				Name:    "filecomparison_older_file_id_similarity_score",
				Unique:  false,
				Columns: []*schema.Column{FileComparisonsColumns[4], FileComparisonsColumns[3]},
			},
		},
	}
	// FileDigestsColumns holds the columns for the "file_digests" table.
	FileDigestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "digest_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeBytes, Nullable: true},
		{Name: "created", Type: field.TypeTime},
		{Name: "assignment_id", Type: field.TypeInt64},
		{Name: "submission_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "uploaded", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeInt},
	}
	// FileDigestsTable holds the schema information for the "file_digests" table.
	FileDigestsTable = &schema.Table{
		Name:       "file_digests",
		Columns:    FileDigestsColumns,
		PrimaryKey: []*schema.Column{FileDigestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_digests_moodle_submitted_files_digests",
				Columns:    []*schema.Column{FileDigestsColumns[8]},
				RefColumns: []*schema.Column{MoodleSubmittedFilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "filedigest_file_id_digest_type",
				Unique:  true,
				Columns: []*schema.Column{FileDigestsColumns[8], FileDigestsColumns[1]},
			},
			{
				Name:    "filedigest_assignment_id_digest_type",
				Unique:  false,
				Columns: []*schema.Column{FileDigestsColumns[4], FileDigestsColumns[1]},
			},
		},
	}
	// FileWarningsColumns holds the columns for the "file_warnings" table.
	FileWarningsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "warning_type", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "file_id", Type: field.TypeInt},
	}
	// FileWarningsTable holds the schema information for the "file_warnings" table.
	FileWarningsTable = &schema.Table{
		Name:       "file_warnings",
		Columns:    FileWarningsColumns,
		PrimaryKey: []*schema.Column{FileWarningsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_warnings_moodle_submitted_files_warnings",
				Columns:    []*schema.Column{FileWarningsColumns[3]},
				RefColumns: []*schema.Column{MoodleSubmittedFilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "filewarning_file_id_warning_type",
				Unique:  true,
				Columns: []*schema.Column{FileWarningsColumns[3], FileWarningsColumns[1]},
			},
		},
	}
	// MoodleGroupsColumns holds the columns for the "moodle_groups" table.
	MoodleGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeInt64},
	}
	// MoodleGroupsTable holds the schema information for the "moodle_groups" table.
	MoodleGroupsTable = &schema.Table{
		Name:       "moodle_groups",
		Columns:    MoodleGroupsColumns,
		PrimaryKey: []*schema.Column{MoodleGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "moodle_groups_moodle_courses_groups",
				Columns:    []*schema.Column{MoodleGroupsColumns[2]},
				RefColumns: []*schema.Column{MoodleCoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// MoodleParticipantsColumns holds the columns for the "moodle_participants" table.
	MoodleParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// MoodleParticipantsTable holds the schema information for the "moodle_participants" table.
	MoodleParticipantsTable = &schema.Table{
		Name:       "moodle_participants",
		Columns:    MoodleParticipantsColumns,
		PrimaryKey: []*schema.Column{MoodleParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "moodle_participants_moodle_courses_participants",
				Columns:    []*schema.Column{MoodleParticipantsColumns[1]},
				RefColumns: []*schema.Column{MoodleCoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "moodle_participants_moodle_users_participants",
				Columns:    []*schema.Column{MoodleParticipantsColumns[2]},
				RefColumns: []*schema.Column{MoodleUsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participant_course_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{MoodleParticipantsColumns[1], MoodleParticipantsColumns[2]},
			},
		},
	}
	// MoodleParticipantGroupsColumns holds the columns for the "moodle_participant_groups" table.
	MoodleParticipantGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "group_id", Type: field.TypeInt64},
		{Name: "participant_id", Type: field.TypeInt},
	}
	// MoodleParticipantGroupsTable holds the schema information for the "moodle_participant_groups" table.
	MoodleParticipantGroupsTable = &schema.Table{
		Name:       "moodle_participant_groups",
		Columns:    MoodleParticipantGroupsColumns,
		PrimaryKey: []*schema.Column{MoodleParticipantGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "moodle_participant_groups_moodle_groups_participant_groups",
				Columns:    []*schema.Column{MoodleParticipantGroupsColumns[1]},
				RefColumns: []*schema.Column{MoodleGroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "moodle_participant_groups_moodle_participants_group_memberships",
				Columns:    []*schema.Column{MoodleParticipantGroupsColumns[2]},
				RefColumns: []*schema.Column{MoodleParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participantgroup_participant_id_group_id",
				Unique:  true,
				Columns: []*schema.Column{MoodleParticipantGroupsColumns[2], MoodleParticipantGroupsColumns[1]},
			},
		},
	}
	// MoodleParticipantRolesColumns holds the columns for the "moodle_participant_roles" table.
	MoodleParticipantRolesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "participant_id", Type: field.TypeInt},
		{Name: "role_id", Type: field.TypeInt64},
	}
	// MoodleParticipantRolesTable holds the schema information for the "moodle_participant_roles" table.
	MoodleParticipantRolesTable = &schema.Table{
		Name:       "moodle_participant_roles",
		Columns:    MoodleParticipantRolesColumns,
		PrimaryKey: []*schema.Column{MoodleParticipantRolesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "moodle_participant_roles_moodle_participants_roles",
				Columns:    []*schema.Column{MoodleParticipantRolesColumns[1]},
				RefColumns: []*schema.Column{MoodleParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "moodle_participant_roles_moodle_roles_participant_roles",
				Columns:    []*schema.Column{MoodleParticipantRolesColumns[2]},
				RefColumns: []*schema.Column{MoodleRolesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participantrole_participant_id_role_id",
				Unique:  true,
				Columns: []*schema.Column{MoodleParticipantRolesColumns[1], MoodleParticipantRolesColumns[2]},
			},
		},
	}
	// MoodleRolesColumns holds the columns for the "moodle_roles" table.
	MoodleRolesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
	}
	// MoodleRolesTable holds the schema information for the "moodle_roles" table.
	MoodleRolesTable = &schema.Table{
		Name:       "moodle_roles",
		Columns:    MoodleRolesColumns,
		PrimaryKey: []*schema.Column{MoodleRolesColumns[0]},
	}
	// MoodleSubmissionsColumns holds the columns for the "moodle_submissions" table.
	MoodleSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "updated", Type: field.TypeTime},
		{Name: "assignment_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// MoodleSubmissionsTable holds the schema information for the "moodle_submissions" table.
	MoodleSubmissionsTable = &schema.Table{
		Name:       "moodle_submissions",
		Columns:    MoodleSubmissionsColumns,
		PrimaryKey: []*schema.Column{MoodleSubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "moodle_submissions_moodle_assignments_submissions",
				Columns:    []*schema.Column{MoodleSubmissionsColumns[3]},
				RefColumns: []*schema.Column{MoodleAssignmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "moodle_submissions_moodle_users_submissions",
				Columns:    []*schema.Column{MoodleSubmissionsColumns[4]},
				RefColumns: []*schema.Column{MoodleUsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{MoodleSubmissionsColumns[3]},
			},
			{
				Name:    "submission_updated",
				Unique:  false,
				Columns: []*schema.Column{MoodleSubmissionsColumns[2]},
			},
		},
	}
	// MoodleSubmittedFilesColumns holds the columns for the "moodle_submitted_files" table.
	MoodleSubmittedFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "filesize", Type: field.TypeInt64},
		{Name: "mimetype", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "uploaded", Type: field.TypeTime},
		{Name: "assignment_id", Type: field.TypeInt64},
		{Name: "submission_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
	}
	// MoodleSubmittedFilesTable holds the schema information for the "moodle_submitted_files" table.
	MoodleSubmittedFilesTable = &schema.Table{
		Name:       "moodle_submitted_files",
		Columns:    MoodleSubmittedFilesColumns,
		PrimaryKey: []*schema.Column{MoodleSubmittedFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "moodle_submitted_files_moodle_assignments_submitted_files",
				Columns:    []*schema.Column{MoodleSubmittedFilesColumns[6]},
				RefColumns: []*schema.Column{MoodleAssignmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "moodle_submitted_files_moodle_submissions_files",
				Columns:    []*schema.Column{MoodleSubmittedFilesColumns[7]},
				RefColumns: []*schema.Column{MoodleSubmissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "moodle_submitted_files_moodle_users_submitted_files",
				Columns:    []*schema.Column{MoodleSubmittedFilesColumns[8]},
				RefColumns: []*schema.Column{MoodleUsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submittedfile_submission_id_filename",
				Unique:  true,
				Columns: []*schema.Column{MoodleSubmittedFilesColumns[7], MoodleSubmittedFilesColumns[1]},
			},
			{
				Name:    "submittedfile_uploaded",
				Unique:  false,
				Columns: []*schema.Column{MoodleSubmittedFilesColumns[5]},
			},
			{
				Name:    "submittedfile_filesize",
				Unique:  false,
				Columns: []*schema.Column{MoodleSubmittedFilesColumns[2]},
			},
		},
	}
	// MoodleUsersColumns holds the columns for the "moodle_users" table.
	MoodleUsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "fullname", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// MoodleUsersTable holds the schema information for the "moodle_users" table.
	MoodleUsersTable = &schema.Table{
		Name:       "moodle_users",
		Columns:    MoodleUsersColumns,
		PrimaryKey: []*schema.Column{MoodleUsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MoodleAssignmentsTable,
		MoodleCoursesTable,
		FileComparisonsTable,
		FileDigestsTable,
		FileWarningsTable,
		MoodleGroupsTable,
		MoodleParticipantsTable,
		MoodleParticipantGroupsTable,
		MoodleParticipantRolesTable,
		MoodleRolesTable,
		MoodleSubmissionsTable,
		MoodleSubmittedFilesTable,
		MoodleUsersTable,
	}
)

func init() {
	MoodleAssignmentsTable.ForeignKeys[0].RefTable = MoodleCoursesTable
	MoodleAssignmentsTable.Annotation = &entsql.Annotation{
		Table: "moodle_assignments",
	}
	MoodleCoursesTable.Annotation = &entsql.Annotation{
		Table: "moodle_courses",
	}
	FileComparisonsTable.ForeignKeys[0].RefTable = MoodleSubmittedFilesTable
	FileComparisonsTable.ForeignKeys[1].RefTable = MoodleSubmittedFilesTable
	FileComparisonsTable.Annotation = &entsql.Annotation{
		Table: "file_comparisons",
	}
	FileDigestsTable.ForeignKeys[0].RefTable = MoodleSubmittedFilesTable
	FileDigestsTable.Annotation = &entsql.Annotation{
		Table: "file_digests",
	}
	FileWarningsTable.ForeignKeys[0].RefTable = MoodleSubmittedFilesTable
	FileWarningsTable.Annotation = &entsql.Annotation{
		Table: "file_warnings",
	}
	MoodleGroupsTable.ForeignKeys[0].RefTable = MoodleCoursesTable
	MoodleGroupsTable.Annotation = &entsql.Annotation{
		Table: "moodle_groups",
	}
	MoodleParticipantsTable.ForeignKeys[0].RefTable = MoodleCoursesTable
	MoodleParticipantsTable.ForeignKeys[1].RefTable = MoodleUsersTable
	MoodleParticipantsTable.Annotation = &entsql.Annotation{
		Table: "moodle_participants",
	}
	MoodleParticipantGroupsTable.ForeignKeys[0].RefTable = MoodleGroupsTable
	MoodleParticipantGroupsTable.ForeignKeys[1].RefTable = MoodleParticipantsTable
	MoodleParticipantGroupsTable.Annotation = &entsql.Annotation{
		Table: "moodle_participant_groups",
	}
	MoodleParticipantRolesTable.ForeignKeys[0].RefTable = MoodleParticipantsTable
	MoodleParticipantRolesTable.ForeignKeys[1].RefTable = MoodleRolesTable
	MoodleParticipantRolesTable.Annotation = &entsql.Annotation{
		Table: "moodle_participant_roles",
	}
	MoodleRolesTable.Annotation = &entsql.Annotation{
		Table: "moodle_roles",
	}
	MoodleSubmissionsTable.ForeignKeys[0].RefTable = MoodleAssignmentsTable
	MoodleSubmissionsTable.ForeignKeys[1].RefTable = MoodleUsersTable
	MoodleSubmissionsTable.Annotation = &entsql.Annotation{
		Table: "moodle_submissions",
	}
	MoodleSubmittedFilesTable.ForeignKeys[0].RefTable = MoodleAssignmentsTable
	MoodleSubmittedFilesTable.ForeignKeys[1].RefTable = MoodleSubmissionsTable
	MoodleSubmittedFilesTable.ForeignKeys[2].RefTable = MoodleUsersTable
	MoodleSubmittedFilesTable.Annotation = &entsql.Annotation{
		Table: "moodle_submitted_files",
	}
	MoodleUsersTable.Annotation = &entsql.Annotation{
		Table: "moodle_users",
	}
}
