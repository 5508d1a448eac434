// Package feed owns the page-session state: the post list, the announcement
// board and the praise window. Everything lives in process memory, is rebuilt
// from the backend on refresh and is never persisted.
//
// Slices are copy-on-write: every mutation installs a freshly built slice, so
// a snapshot handed to a caller never changes under them.
package feed

import (
	"sync"

	"github.com/pyo-glory/site-gateway/internal/model"
)

// DefaultPraiseWindow caps how many praises the page shows.
const DefaultPraiseWindow = 8

type Store struct {
	mu sync.RWMutex

	posts   []model.Post
	loading bool
	loadErr string

	announcements []model.Announcement

	praises      []model.Praise
	praiseWindow int
}

func New(praiseWindow int) *Store {
	if praiseWindow <= 0 {
		praiseWindow = DefaultPraiseWindow
	}
	return &Store{
		loading:      true,
		praiseWindow: praiseWindow,
	}
}

// Posts returns the current snapshot, newest first. Callers must treat the
// slice as read-only.
func (s *Store) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

// ReplacePosts installs a whole new list and clears the loading gate and any
// previous fetch error.
func (s *Store) ReplacePosts(posts []model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
	s.loading = false
	s.loadErr = ""
}

// PrependPost puts a freshly created record at index 0 without touching the
// existing snapshot.
func (s *Store) PrependPost(post model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Post, 0, len(s.posts)+1)
	next = append(next, post)
	next = append(next, s.posts...)
	s.posts = next
}

// FailPosts records a fetch failure and clears the loading gate. The previous
// snapshot, if any, stays visible.
func (s *Store) FailPosts(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loadErr = message
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) PostsError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *Store) Announcements() []model.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.announcements
}

func (s *Store) ReplaceAnnouncements(announcements []model.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = announcements
}

func (s *Store) Praises() []model.Praise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.praises
}

// ReplacePraises installs the fetched list, trimmed to the display window.
func (s *Store) ReplacePraises(praises []model.Praise) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(praises) > s.praiseWindow {
		praises = praises[:s.praiseWindow]
	}
	s.praises = praises
}

// PrependPraise inserts a confirmed praise at index 0, keeping the window cap.
func (s *Store) PrependPraise(praise model.Praise) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]model.Praise, 0, len(s.praises)+1)
	next = append(next, praise)
	next = append(next, s.praises...)
	if len(next) > s.praiseWindow {
		next = next[:s.praiseWindow]
	}
	s.praises = next
}
