package moodle

import (
	"context"
	"time"
)

// CourseStream is a lazy, finite, non-restartable sequence over the
// enrolled-courses endpoint. Pages are fetched on demand; consumers
// pull with Next, which provides natural backpressure.
type CourseStream struct {
	client         *Client
	classification string

	buf      []Course
	offset   int
	done     bool
	firstErr error
}

// Next returns the next course. ok is false when the stream is
// exhausted or failed; check Err afterwards.
func (s *CourseStream) Next(ctx context.Context) (Course, bool) {
	if s.firstErr != nil {
		return Course{}, false
	}
	if len(s.buf) == 0 {
		if s.done {
			return Course{}, false
		}
		if err := s.fetchPage(ctx); err != nil {
			s.firstErr = err
			return Course{}, false
		}
		if len(s.buf) == 0 {
			return Course{}, false
		}
	}
	course := s.buf[0]
	s.buf = s.buf[1:]
	return course, true
}

// Err returns the error that terminated the stream, if any.
func (s *CourseStream) Err() error {
	return s.firstErr
}

// Collect drains the stream into a slice.
func (s *CourseStream) Collect(ctx context.Context) ([]Course, error) {
	var courses []Course
	for {
		c, ok := s.Next(ctx)
		if !ok {
			return courses, s.Err()
		}
		courses = append(courses, c)
	}
}

func (s *CourseStream) fetchPage(ctx context.Context) error {
	var page wireCoursesPage
	err := s.client.call(ctx, "core_course_get_enrolled_courses_by_timeline_classification", Params{
		"classification": s.classification,
		"offset":         s.offset,
	}, &page)
	if err != nil {
		return err
	}

	for _, w := range page.Courses {
		s.buf = append(s.buf, Course{
			ID:        w.ID,
			ShortName: w.ShortName,
			FullName:  w.FullName,
			Starts:    unixOrNil(w.StartDate),
			Ends:      unixOrNil(w.EndDate),
		})
	}

	// The server signals the final page with an unchanged offset or an
	// empty batch.
	if page.NextOffset <= s.offset || len(page.Courses) == 0 {
		s.done = true
	} else {
		s.offset = page.NextOffset
	}
	return nil
}

// MessageStream pages through the user's inbox the same way
// CourseStream pages through courses.
type MessageStream struct {
	client   *Client
	userID   int64
	readOnly bool

	buf      []Message
	offset   int
	done     bool
	firstErr error
}

// GetMessages returns a lazy stream over the inbox of userID.
func (c *Client) GetMessages(ctx context.Context, userID int64) *MessageStream {
	return &MessageStream{client: c, userID: userID}
}

// Next returns the next message; ok is false at end of stream.
func (s *MessageStream) Next(ctx context.Context) (Message, bool) {
	if s.firstErr != nil {
		return Message{}, false
	}
	if len(s.buf) == 0 {
		if s.done {
			return Message{}, false
		}
		if err := s.fetchPage(ctx); err != nil {
			s.firstErr = err
			return Message{}, false
		}
		if len(s.buf) == 0 {
			return Message{}, false
		}
	}
	msg := s.buf[0]
	s.buf = s.buf[1:]
	return msg, true
}

// Err returns the error that terminated the stream, if any.
func (s *MessageStream) Err() error {
	return s.firstErr
}

func (s *MessageStream) fetchPage(ctx context.Context) error {
	var page wireMessagesPage
	err := s.client.call(ctx, "core_message_get_messages", Params{
		"useridto": s.userID,
		"offset":   s.offset,
	}, &page)
	if err != nil {
		return err
	}

	for _, w := range page.Messages {
		s.buf = append(s.buf, Message{
			ID:      w.ID,
			FromID:  w.UserFromID,
			Subject: w.Subject,
			Text:    w.Text,
			Created: time.Unix(w.TimeCreated, 0).UTC(),
			Read:    w.Read != 0,
		})
	}

	if page.NextOffset <= s.offset || len(page.Messages) == 0 {
		s.done = true
	} else {
		s.offset = page.NextOffset
	}
	return nil
}

// MarkMessageRead marks one inbox message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID int64, readAt time.Time) error {
	return c.call(ctx, "core_message_mark_message_read", Params{
		"messageid": messageID,
		"timeread":  readAt,
	}, nil)
}

// SendMessage sends an instant message to one user.
func (c *Client) SendMessage(ctx context.Context, toUserID int64, text string) error {
	return c.call(ctx, "core_message_send_instant_messages", Params{
		"messages": []any{
			map[string]any{"touserid": toUserID, "text": text},
		},
	}, nil)
}
