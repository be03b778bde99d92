package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

const maxCommentLength = 500

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// List returns the comments of a video in insertion order.
func (s *CommentService) List(videoId string) ([]*db.Comment, error) {
	if !videoSource.Has(s.ctx, videoId) {
		return nil, errno.NotFoundErr
	}
	comments := []*db.Comment{}
	db.View(s.ctx, func(st *db.Store) {
		if meta, ok := st.Videos[videoId]; ok {
			comments = append(comments, meta.Comments...)
		}
	})
	return comments, nil
}

// Create appends a comment from an authenticated user. Text is trimmed and
// capped at maxCommentLength runes.
func (s *CommentService) Create(videoId string, author *db.User, text string) (*db.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errno.ParamErr.WithMessage("Comment cannot be empty")
	}
	if runes := []rune(text); len(runes) > maxCommentLength {
		text = string(runes[:maxCommentLength])
	}
	if !videoSource.Has(s.ctx, videoId) {
		return nil, errno.NotFoundErr
	}
	comment := &db.Comment{
		CommentId: uuid.NewString(),
		UserId:    author.UserId,
		Username:  author.Username,
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	err := db.Mutate(s.ctx, func(st *db.Store) error {
		meta := st.EnsureVideo(videoId)
		meta.Comments = append(meta.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}
