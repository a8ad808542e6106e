package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/pkg/consts"
	"context"
	"errors"
	"testing"
)

func TestToggleLikeRoundTripNotifiesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	story := env.publish(t, bob, "Night Train", true)

	res, err := env.actions.ToggleLike(ctx, alice, story)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if res.Action != consts.ActionLiked || len(res.Story.Likes) != 1 || res.Story.Likes[0] != alice {
		t.Fatalf("unexpected like result: %+v", res)
	}

	res, err = env.actions.ToggleLike(ctx, alice, story)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if res.Action != consts.ActionUnliked || len(res.Story.Likes) != 0 {
		t.Fatalf("unexpected unlike result: %+v", res)
	}

	all := env.notifications.All()
	if len(all) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(all))
	}
	n := all[0]
	if n.Type != consts.NotificationTypeLike || n.UserID != bob || n.FromUser != alice {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if n.StoryID == nil || *n.StoryID != story {
		t.Fatalf("notification missing story ref: %+v", n)
	}
	if n.Message != `alice liked your story "Night Train"` {
		t.Fatalf("unexpected message %q", n.Message)
	}
}

func TestSelfLikeNeverNotifies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.register(t, "bob")
	story := env.publish(t, bob, "Mine", true)

	if _, err := env.actions.ToggleLike(ctx, bob, story); err != nil {
		t.Fatalf("like: %v", err)
	}
	if len(env.notifications.All()) != 0 {
		t.Fatalf("self like must not notify")
	}
}

func TestToggleLikeMissingStory(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	_, err := env.actions.ToggleLike(context.Background(), alice, 424242)
	if !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}

func TestNotificationFailureDoesNotFailLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	story := env.publish(t, bob, "Fragile", true)
	env.notifications.FailCreate = errors.New("mongo down")

	res, err := env.actions.ToggleLike(ctx, alice, story)
	if err != nil {
		t.Fatalf("like should succeed despite notification failure: %v", err)
	}
	if res.Action != consts.ActionLiked {
		t.Fatalf("unexpected action %s", res.Action)
	}
	liked, _ := env.storyActionRepo.CheckLikeExists(ctx, alice, story)
	if !liked {
		t.Fatalf("like not persisted")
	}
}

func TestAddCommentNotifiesOnlyOtherAuthors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	story := env.publish(t, bob, "Lighthouse", true)

	c, err := env.actions.AddComment(ctx, alice, story, &dto.CommentCreateDTO{Content: "  lovely  "})
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if c.Content != "lovely" || c.User.Username != "alice" {
		t.Fatalf("unexpected comment: %+v", c)
	}

	if _, err = env.actions.AddComment(ctx, bob, story, &dto.CommentCreateDTO{Content: "thanks"}); err != nil {
		t.Fatalf("self comment: %v", err)
	}

	comments, _ := env.actions.GetComments(ctx, story)
	if len(comments) != 2 || comments[0].Content != "lovely" || comments[1].Content != "thanks" {
		t.Fatalf("comments not persisted oldest-first: %+v", comments)
	}

	all := env.notifications.All()
	if len(all) != 1 {
		t.Fatalf("expected one comment notification, got %d", len(all))
	}
	if all[0].Type != consts.NotificationTypeComment || all[0].Message != `alice commented on your story "Lighthouse"` {
		t.Fatalf("unexpected notification: %+v", all[0])
	}
}

func TestAddCommentValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	story := env.publish(t, alice, "S", true)

	if _, err := env.actions.AddComment(ctx, alice, story, &dto.CommentCreateDTO{Content: " \n\t "}); !errors.Is(err, ErrCommentEmpty) {
		t.Fatalf("expected ErrCommentEmpty, got %v", err)
	}
	if _, err := env.actions.AddComment(ctx, alice, 999, &dto.CommentCreateDTO{Content: "hi"}); !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	first := env.publish(t, bob, "First", true)
	second := env.publish(t, bob, "Second", false)

	res, err := env.bookmarks.ToggleBookmark(ctx, alice, first)
	if err != nil || res.Action != consts.ActionBookmarked {
		t.Fatalf("bookmark: %+v %v", res, err)
	}
	if _, err = env.bookmarks.ToggleBookmark(ctx, alice, second); err != nil {
		t.Fatalf("bookmark second: %v", err)
	}

	list, err := env.bookmarks.GetBookmarks(ctx, alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}
	seen := map[uint64]bool{}
	for _, b := range list {
		if seen[b.StoryID] {
			t.Fatalf("duplicate bookmark for story %d", b.StoryID)
		}
		seen[b.StoryID] = true
		if b.Story == nil || b.Story.Title == "" {
			t.Fatalf("missing projection: %+v", b)
		}
	}

	res, err = env.bookmarks.ToggleBookmark(ctx, alice, first)
	if err != nil || res.Action != consts.ActionRemoved {
		t.Fatalf("remove: %+v %v", res, err)
	}
	list, _ = env.bookmarks.GetBookmarks(ctx, alice)
	if len(list) != 1 || list[0].StoryID != second {
		t.Fatalf("unexpected bookmarks after removal: %+v", list)
	}
	if len(env.notifications.All()) != 0 {
		t.Fatalf("bookmarks must never notify")
	}
}

func TestBookmarkOfDeletedStoryHasNoProjection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	story := env.publish(t, alice, "Gone soon", true)

	if _, err := env.bookmarks.ToggleBookmark(ctx, alice, story); err != nil {
		t.Fatalf("bookmark: %v", err)
	}
	if err := env.stories.DeleteStory(ctx, alice, story); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, _ := env.bookmarks.GetBookmarks(ctx, alice)
	if len(list) != 1 || list[0].Story != nil {
		t.Fatalf("orphaned bookmark should remain with null story: %+v", list)
	}
}
