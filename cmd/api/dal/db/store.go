package db

import "strings"

type User struct {
	UserId       string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	ProfilePic   string `json:"profilePic,omitempty"`
}

type Comment struct {
	CommentId string `json:"id"`
	UserId    string `json:"userId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type VideoMeta struct {
	Views    int64      `json:"views"`
	Likes    int64      `json:"likes"`
	Dislikes int64      `json:"dislikes"`
	Comments []*Comment `json:"comments"`
}

// Store is the whole persisted document. It is only ever touched inside
// Mutate/View so the single lock in init.go serializes every access.
type Store struct {
	Users     []*User                      `json:"users"`
	Videos    map[string]*VideoMeta        `json:"videos"`
	Reactions map[string]map[string]string `json:"reactions"`
}

func (s *Store) normalize() {
	if s.Users == nil {
		s.Users = []*User{}
	}
	if s.Videos == nil {
		s.Videos = map[string]*VideoMeta{}
	}
	if s.Reactions == nil {
		s.Reactions = map[string]map[string]string{}
	}
	for _, meta := range s.Videos {
		if meta.Comments == nil {
			meta.Comments = []*Comment{}
		}
	}
}

// EnsureVideo returns the metadata for id, creating zeroed counters when the
// id is new to the store.
func (s *Store) EnsureVideo(id string) *VideoMeta {
	meta, ok := s.Videos[id]
	if !ok {
		meta = &VideoMeta{Comments: []*Comment{}}
		s.Videos[id] = meta
	}
	return meta
}

// RemoveVideo drops metadata and reaction records for an id that left the catalog.
func (s *Store) RemoveVideo(id string) {
	delete(s.Videos, id)
	delete(s.Reactions, id)
}

// Reaction returns the active reaction of an identity on a video, or "".
func (s *Store) Reaction(videoId, identityKey string) string {
	return s.Reactions[videoId][identityKey]
}

func (s *Store) SetReaction(videoId, identityKey, value string) {
	if s.Reactions[videoId] == nil {
		s.Reactions[videoId] = map[string]string{}
	}
	s.Reactions[videoId][identityKey] = value
}

// FindUserByName matches usernames case-insensitively, the way signup
// uniqueness is enforced.
func (s *Store) FindUserByName(username string) *User {
	for _, u := range s.Users {
		if strings.EqualFold(u.Username, username) {
			return u
		}
	}
	return nil
}

func (s *Store) FindUserById(id string) *User {
	for _, u := range s.Users {
		if u.UserId == id {
			return u
		}
	}
	return nil
}
