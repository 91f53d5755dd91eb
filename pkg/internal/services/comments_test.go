package services_test

import (
	"testing"

	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/inkstream/inkstream/pkg/internal/services"
	"github.com/stretchr/testify/require"
)

func TestNewCommentForcesRelations(t *testing.T) {
	useTestDatabase(t)

	alice := mustAccount(t, "alice")
	bob := mustAccount(t, "bob")

	post, err := services.NewPost(alice, models.Post{Text: "a post"})
	require.NoError(t, err)

	comment, err := services.NewComment(bob, post, "a comment")
	require.NoError(t, err)
	require.Equal(t, post.ID, comment.PostID)
	require.Equal(t, bob.ID, comment.AuthorID)
}

func TestListCommentCreationOrder(t *testing.T) {
	useTestDatabase(t)

	alice := mustAccount(t, "alice")

	post, err := services.NewPost(alice, models.Post{Text: "a post"})
	require.NoError(t, err)

	for _, text := range []string{"first", "second", "third"} {
		_, err := services.NewComment(alice, post, text)
		require.NoError(t, err)
	}

	comments, err := services.ListComment(post)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "first", comments[0].Text)
	require.Equal(t, "third", comments[2].Text)
}
