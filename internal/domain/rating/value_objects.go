package rating

import (
	"strings"
	"unicode/utf8"
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 1000
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < MinScore || v > MaxScore {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Comment is optional; the zero value means no comment.
type Comment struct {
	text string
	set  bool
}

func NewComment(s *string) (Comment, error) {
	if s == nil {
		return Comment{}, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return Comment{}, nil
	}
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t, set: true}, nil
}

func (c Comment) String() string { return c.text }

func (c Comment) Ptr() *string {
	if !c.set {
		return nil
	}
	t := c.text
	return &t
}
