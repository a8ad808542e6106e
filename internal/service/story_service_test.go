package service

import (
	"StorySphere/internal/api/dto"
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"strings"
	"testing"
)

func TestCreateStoryDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")

	st, err := env.stories.CreateStory(ctx, alice, &dto.StoryCreateDTO{Title: "  Tides  ", Tags: []string{"sea"}}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if st.Title != "Tides" || st.Genre != "General" || st.IsPublished || st.Views != 0 {
		t.Fatalf("unexpected defaults: %+v", st)
	}
	if st.Author.ID != alice || st.Author.Username != "alice" {
		t.Fatalf("unexpected author: %+v", st.Author)
	}
	if len(st.Likes) != 0 || len(st.Tags) != 1 {
		t.Fatalf("unexpected sets: %+v", st)
	}

	if _, err = env.stories.CreateStory(ctx, alice, &dto.StoryCreateDTO{Title: "   "}, nil); !errors.Is(err, ErrStoryTitleRequired) {
		t.Fatalf("expected ErrStoryTitleRequired, got %v", err)
	}
}

func TestCreateStoryWithCover(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, 640, 480)), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}

	st, err := env.stories.CreateStory(context.Background(), alice, &dto.StoryCreateDTO{Title: "Covered"}, buf)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(st.CoverImage, "http://objects.test/covers/") || !strings.HasSuffix(st.CoverImage, ".jpg") {
		t.Fatalf("unexpected cover url %q", st.CoverImage)
	}
}

func TestPublishedStoriesExcludeDrafts(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	env.publish(t, alice, "draft", false)
	pub := env.publish(t, alice, "public", true)

	list, err := env.stories.GetPublishedStories(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != pub {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestUpdateStoryOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	story := env.publish(t, alice, "Original", false)

	title := "Hijacked"
	if _, err := env.stories.UpdateStory(ctx, bob, story, &dto.StoryUpdateDTO{Title: &title}, nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	got, _ := env.stories.GetStory(ctx, story)
	if got.Title != "Original" {
		t.Fatalf("forbidden update mutated story: %+v", got)
	}

	published, emptyGenre := true, ""
	title = "Revised"
	got, err := env.stories.UpdateStory(ctx, alice, story, &dto.StoryUpdateDTO{Title: &title, Genre: &emptyGenre, IsPublished: &published}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Revised" || got.Genre != "General" || !got.IsPublished {
		t.Fatalf("unexpected update: %+v", got)
	}

	unpublished := false
	got, _ = env.stories.UpdateStory(ctx, alice, story, &dto.StoryUpdateDTO{IsPublished: &unpublished}, nil)
	if got.IsPublished || got.Title != "Revised" {
		t.Fatalf("explicit false should unpublish only: %+v", got)
	}

	if _, err = env.stories.UpdateStory(ctx, alice, 777, &dto.StoryUpdateDTO{}, nil); !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}

func TestDeleteStoryDoesNotCascade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	story := env.publish(t, alice, "Doomed", true)

	if _, err := env.chapters.CreateChapter(ctx, alice, story, &dto.ChapterCreateDTO{Title: "One", Content: "text"}); err != nil {
		t.Fatalf("chapter: %v", err)
	}
	if _, err := env.actions.AddComment(ctx, bob, story, &dto.CommentCreateDTO{Content: "nice"}); err != nil {
		t.Fatalf("comment: %v", err)
	}

	if err := env.stories.DeleteStory(ctx, bob, story); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := env.stories.DeleteStory(ctx, alice, story); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.stories.GetStory(ctx, story); !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}

	chapters, _ := env.chapters.GetChapters(ctx, story)
	comments, _ := env.actions.GetComments(ctx, story)
	if len(chapters) != 1 || len(comments) != 1 {
		t.Fatalf("orphans should remain: %d chapters, %d comments", len(chapters), len(comments))
	}
	if len(env.notifications.All()) != 1 {
		t.Fatalf("comment notification should remain")
	}
}
