package service

import (
	"StorySphere/internal/pkg/consts"
	"context"
	"errors"
	"testing"
)

func TestToggleFollowRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")

	res, err := env.follows.ToggleFollow(ctx, alice, bob)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if res.Action != consts.ActionFollowed || res.Message != "Followed bob" {
		t.Fatalf("unexpected result: %+v", res)
	}

	aliceInfo, _ := env.users.GetUserInfo(ctx, alice)
	bobInfo, _ := env.users.GetUserInfo(ctx, bob)
	if len(aliceInfo.Following) != 1 || aliceInfo.Following[0] != bob {
		t.Fatalf("alice.following = %v", aliceInfo.Following)
	}
	if len(bobInfo.Followers) != 1 || bobInfo.Followers[0] != alice {
		t.Fatalf("bob.followers = %v", bobInfo.Followers)
	}

	all := env.notifications.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(all))
	}
	n := all[0]
	if n.UserID != bob || n.FromUser != alice || n.Type != consts.NotificationTypeFollow || n.Message != "alice started following you" {
		t.Fatalf("unexpected notification: %+v", n)
	}

	res, err = env.follows.ToggleFollow(ctx, alice, bob)
	if err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if res.Action != consts.ActionUnfollowed || res.Message != "Unfollowed bob" {
		t.Fatalf("unexpected result: %+v", res)
	}

	aliceInfo, _ = env.users.GetUserInfo(ctx, alice)
	bobInfo, _ = env.users.GetUserInfo(ctx, bob)
	if len(aliceInfo.Following) != 0 || len(bobInfo.Followers) != 0 {
		t.Fatalf("edges not removed: %v %v", aliceInfo.Following, bobInfo.Followers)
	}
	if len(env.notifications.All()) != 1 {
		t.Fatalf("unfollow must not notify")
	}
}

func TestToggleFollowSelf(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	_, err := env.follows.ToggleFollow(context.Background(), alice, alice)
	if !errors.Is(err, ErrUserFollowSelf) {
		t.Fatalf("expected ErrUserFollowSelf, got %v", err)
	}
	if code, _ := StatusOf(err); code != BadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if len(env.notifications.All()) != 0 {
		t.Fatalf("self follow must not notify")
	}
}

func TestToggleFollowMissingTarget(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	_, err := env.follows.ToggleFollow(context.Background(), alice, 9999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFollowingFeedScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")

	if _, err := env.follows.ToggleFollow(ctx, alice, bob); err != nil {
		t.Fatalf("follow: %v", err)
	}
	published := env.publish(t, bob, "Published Tale", true)
	env.publish(t, bob, "Secret Draft", false)

	feed, err := env.follows.GetFollowingFeed(ctx, alice)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != published {
		t.Fatalf("feed should contain only the published story: %+v", feed)
	}
	if feed[0].Author == nil || feed[0].Author.Username != "bob" {
		t.Fatalf("author projection missing: %+v", feed[0].Author)
	}

	own, _ := env.follows.GetFollowingFeed(ctx, bob)
	if len(own) != 0 {
		t.Fatalf("bob follows nobody, feed = %+v", own)
	}
}
