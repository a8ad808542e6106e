package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/pkg/mongo"
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateNotificationSuppressesSelf(t *testing.T) {
	env := newTestEnv(t)
	env.notification.CreateNotification(context.Background(), &mongo.Notification{UserID: 1, FromUser: 1, Type: "like", Message: "x"})
	if len(env.notifications.All()) != 0 {
		t.Fatalf("self notification persisted")
	}
}

func TestGetNotificationsResolvesReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	story := env.publish(t, bob, "Harbor", true)
	chapter, err := env.chapters.CreateChapter(ctx, bob, story, &dto.ChapterCreateDTO{Title: "Dawn", Content: "..."})
	if err != nil {
		t.Fatalf("chapter: %v", err)
	}

	now := time.Now()
	env.notification.CreateNotification(ctx, &mongo.Notification{
		UserID: bob, FromUser: alice, Type: "like", StoryID: &story, Message: "older", CreatedAt: now.Add(-time.Minute),
	})
	env.notification.CreateNotification(ctx, &mongo.Notification{
		UserID: bob, FromUser: alice, Type: "comment", StoryID: &story, ChapterID: &chapter.ID, Message: "newer", CreatedAt: now,
	})

	list, err := env.notification.GetNotifications(ctx, bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Message != "newer" || list[1].Message != "older" {
		t.Fatalf("expected newest first: %+v", list)
	}
	first := list[0]
	if first.FromUser == nil || first.FromUser.Username != "alice" {
		t.Fatalf("actor not resolved: %+v", first.FromUser)
	}
	if first.Story == nil || first.Story.Title != "Harbor" {
		t.Fatalf("story not resolved: %+v", first.Story)
	}
	if first.Chapter == nil || first.Chapter.Title != "Dawn" {
		t.Fatalf("chapter not resolved: %+v", first.Chapter)
	}
	if list[1].Chapter != nil {
		t.Fatalf("chapter should be absent: %+v", list[1].Chapter)
	}

	if err = env.stories.DeleteStory(ctx, bob, story); err != nil {
		t.Fatalf("delete story: %v", err)
	}
	list, _ = env.notification.GetNotifications(ctx, bob)
	if len(list) != 2 || list[0].Story != nil {
		t.Fatalf("notification for deleted story should survive with null story: %+v", list)
	}
}

func TestMarkAsRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	if _, err := env.follows.ToggleFollow(ctx, alice, bob); err != nil {
		t.Fatalf("follow: %v", err)
	}
	id := env.notifications.All()[0].ID.Hex()

	if _, err := env.notification.MarkAsRead(ctx, alice, id); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if env.notifications.All()[0].IsRead {
		t.Fatalf("forbidden call must not mutate")
	}

	for i := 0; i < 2; i++ {
		n, err := env.notification.MarkAsRead(ctx, bob, id)
		if err != nil {
			t.Fatalf("mark read #%d: %v", i, err)
		}
		if !n.IsRead {
			t.Fatalf("notification not marked read")
		}
	}

	if _, err := env.notification.MarkAsRead(ctx, bob, "000000000000000000000000"); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
	if _, err := env.notification.MarkAsRead(ctx, bob, "not-an-id"); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("expected ErrParamInvalid, got %v", err)
	}
}
