package service

import (
	"context"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

type ReactionService struct {
	ctx context.Context
}

func NewReactionService(ctx context.Context) *ReactionService {
	return &ReactionService{ctx: ctx}
}

// React moves one identity between the none/liked/disliked states and keeps
// the aggregate counters equal to the number of records of each kind.
// Re-submitting the current reaction is a no-op; there is no way back to
// "no reaction".
func (s *ReactionService) React(videoId, identityKey, reaction string) (likes, dislikes int64, err error) {
	if reaction != ReactionLike && reaction != ReactionDislike {
		return 0, 0, errno.ParamErr.WithMessage("Reaction must be like or dislike")
	}
	if !videoSource.Has(s.ctx, videoId) {
		return 0, 0, errno.NotFoundErr
	}
	err = db.Mutate(s.ctx, func(st *db.Store) error {
		meta := st.EnsureVideo(videoId)
		current := st.Reaction(videoId, identityKey)
		if current != reaction {
			switch current {
			case ReactionLike:
				if meta.Likes > 0 {
					meta.Likes--
				}
			case ReactionDislike:
				if meta.Dislikes > 0 {
					meta.Dislikes--
				}
			}
			if reaction == ReactionLike {
				meta.Likes++
			} else {
				meta.Dislikes++
			}
			st.SetReaction(videoId, identityKey, reaction)
		}
		likes, dislikes = meta.Likes, meta.Dislikes
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}
