package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/pkg/testutil"
	"StorySphere/internal/repository"
	"context"
	"testing"

	"gorm.io/gorm"
)

type testEnv struct {
	db            *gorm.DB
	notifications *testutil.NotificationRepo
	objects       *testutil.ObjectStore
	blacklist     *testutil.TokenBlacklist

	userRepo        repository.UserRepo
	userFollowRepo  repository.UserFollowRepo
	storyRepo       repository.StoryRepo
	storyActionRepo repository.StoryActionRepo
	chapterRepo     repository.ChapterRepo

	users        UserService
	follows      UserFollowService
	stories      StoryService
	chapters     ChapterService
	actions      StoryActionService
	bookmarks    BookmarkService
	notification NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	env := &testEnv{
		db:              db,
		notifications:   testutil.NewNotificationRepo(),
		objects:         testutil.NewObjectStore(),
		blacklist:       testutil.NewTokenBlacklist(),
		userRepo:        repository.NewUserRepo(db),
		userFollowRepo:  repository.NewUserFollowRepo(db),
		storyRepo:       repository.NewStoryRepo(db),
		storyActionRepo: repository.NewStoryActionRepo(db),
		chapterRepo:     repository.NewChapterRepo(db),
	}

	env.notification = NewNotificationService(env.notifications, nil, env.userRepo, env.storyRepo, env.chapterRepo)
	env.users = NewUserService(env.userRepo, env.userFollowRepo, env.objects, env.blacklist)
	env.follows = NewUserFollowService(env.userRepo, env.userFollowRepo, env.storyRepo, env.storyActionRepo, env.notification)
	env.stories = NewStoryService(env.storyRepo, env.storyActionRepo, env.objects)
	env.chapters = NewChapterService(env.chapterRepo, env.storyRepo, nil)
	env.actions = NewStoryActionService(env.userRepo, env.storyRepo, env.storyActionRepo, env.notification)
	env.bookmarks = NewBookmarkService(env.storyRepo, env.storyActionRepo)
	return env
}

func (e *testEnv) register(t *testing.T, name string) uint64 {
	t.Helper()
	res, err := e.users.Register(context.Background(), &dto.RegisterDTO{
		Username: name,
		Email:    name + "@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return res.User.ID
}

func (e *testEnv) publish(t *testing.T, authorID uint64, title string, published bool) uint64 {
	t.Helper()
	st, err := e.stories.CreateStory(context.Background(), authorID, &dto.StoryCreateDTO{Title: title, IsPublished: published}, nil)
	if err != nil {
		t.Fatalf("create story %s: %v", title, err)
	}
	return st.ID
}
