package services_test

import (
	"testing"
	"time"

	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/inkstream/inkstream/pkg/internal/services"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestNewPostForcesAuthorAndPublishTime(t *testing.T) {
	useTestDatabase(t)

	alice := mustAccount(t, "alice")
	mallory := mustAccount(t, "mallory")

	// A forged author in the submitted entity must be overridden.
	item, err := services.NewPost(alice, models.Post{
		Text:     "hello from alice",
		AuthorID: mallory.ID,
	})
	require.NoError(t, err)
	require.Equal(t, alice.ID, item.AuthorID)
	require.WithinDuration(t, time.Now(), item.PublishedAt, time.Minute)
}

func TestEditPostKeepsAuthorAndPublishTime(t *testing.T) {
	useTestDatabase(t)

	alice := mustAccount(t, "alice")

	item, err := services.NewPost(alice, models.Post{Text: "original text"})
	require.NoError(t, err)

	loaded, err := services.GetPost(database.C, item.ID)
	require.NoError(t, err)

	loaded.Text = "revised text"
	_, err = services.EditPost(loaded)
	require.NoError(t, err)

	after, err := services.GetPost(database.C, item.ID)
	require.NoError(t, err)
	require.Equal(t, "revised text", after.Text)
	require.Equal(t, alice.ID, after.AuthorID)
	require.Equal(t, item.PublishedAt.Unix(), after.PublishedAt.Unix())
}

func TestListPostOrderIsDeterministic(t *testing.T) {
	useTestDatabase(t)

	alice := mustAccount(t, "alice")

	// Same-second publishes must still come back newest row first.
	now := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, database.C.Create(&models.Post{
			Text:        "post",
			AuthorID:    alice.ID,
			PublishedAt: now,
		}).Error)
	}

	items, err := services.ListPost(database.C, services.PostDefaultOrder)
	require.NoError(t, err)
	require.Len(t, items, 5)

	ids := lo.Map(items, func(item models.Post, _ int) uint {
		return item.ID
	})
	for i := 1; i < len(ids); i++ {
		require.Greater(t, ids[i-1], ids[i])
	}
}

func TestListPostFollowedBelongsToViewer(t *testing.T) {
	useTestDatabase(t)

	alice := mustAccount(t, "alice")
	bob := mustAccount(t, "bob")

	_, err := services.NewPost(alice, models.Post{Text: "by alice"})
	require.NoError(t, err)
	_, err = services.NewPost(bob, models.Post{Text: "by bob"})
	require.NoError(t, err)

	// Alice follows Bob; Bob follows nobody.
	_, err = services.FollowAccount(alice, bob)
	require.NoError(t, err)

	forAlice, err := services.ListPost(
		services.FilterPostFollowed(database.C, alice),
		services.PostDefaultOrder,
	)
	require.NoError(t, err)
	require.Len(t, forAlice, 1)
	require.Equal(t, "by bob", forAlice[0].Text)

	// Bob's feed stays empty even though Bob has a follower.
	forBob, err := services.ListPost(
		services.FilterPostFollowed(database.C, bob),
		services.PostDefaultOrder,
	)
	require.NoError(t, err)
	require.Empty(t, forBob)
}

func TestGetPostUnknownID(t *testing.T) {
	useTestDatabase(t)

	_, err := services.GetPost(database.C, 404)
	require.Error(t, err)
}
