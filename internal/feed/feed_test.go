package feed

import (
	"fmt"
	"testing"

	"github.com/pyo-glory/site-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrependPostKeepsNewestFirst(t *testing.T) {
	s := New(0)
	s.ReplacePosts([]model.Post{{ID: 1, Title: "old"}})

	s.PrependPost(model.Post{ID: 2, Title: "new"})

	posts := s.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, int64(2), posts[0].ID)
	assert.Equal(t, int64(1), posts[1].ID)
}

func TestPrependPostDoesNotMutateSnapshots(t *testing.T) {
	s := New(0)
	s.ReplacePosts([]model.Post{{ID: 1}})
	snapshot := s.Posts()

	s.PrependPost(model.Post{ID: 2})

	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(1), snapshot[0].ID)
}

func TestLoadingGate(t *testing.T) {
	s := New(0)
	assert.True(t, s.Loading(), "store starts in the loading state")

	s.ReplacePosts(nil)
	assert.False(t, s.Loading())
	assert.Empty(t, s.PostsError())
}

func TestFailPostsKeepsPreviousSnapshot(t *testing.T) {
	s := New(0)
	s.ReplacePosts([]model.Post{{ID: 1}})

	s.FailPosts("backend unreachable")

	assert.False(t, s.Loading())
	assert.Equal(t, "backend unreachable", s.PostsError())
	assert.Len(t, s.Posts(), 1)
}

func TestPraiseWindowCap(t *testing.T) {
	s := New(3)

	var fetched []model.Praise
	for i := 1; i <= 5; i++ {
		fetched = append(fetched, model.Praise{ID: int64(i), Message: fmt.Sprintf("m%d", i)})
	}
	s.ReplacePraises(fetched)
	assert.Len(t, s.Praises(), 3)

	s.PrependPraise(model.Praise{ID: 6, Message: "m6"})
	praises := s.Praises()
	require.Len(t, praises, 3)
	assert.Equal(t, int64(6), praises[0].ID)
}

func TestAnnouncementsLatestFirst(t *testing.T) {
	s := New(0)
	s.ReplaceAnnouncements([]model.Announcement{{ID: 9, Content: "latest"}, {ID: 8, Content: "older"}})

	anns := s.Announcements()
	require.Len(t, anns, 2)
	assert.Equal(t, "latest", anns[0].Content)
}
