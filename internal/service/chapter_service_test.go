package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"
)

// barrierChapterRepo 让并发创建在计数之后、写入之前汇合
type barrierChapterRepo struct {
	repository.ChapterRepo
	wg *sync.WaitGroup
}

func (r *barrierChapterRepo) CountByStoryID(ctx context.Context, storyID uint64) (int64, error) {
	n, err := r.ChapterRepo.CountByStoryID(ctx, storyID)
	r.wg.Done()
	r.wg.Wait()
	return n, err
}

// mutexLocker 进程内锁，行为与 Redis 锁一致
type mutexLocker struct {
	mu sync.Mutex
}

func (l *mutexLocker) Lock(_ context.Context, _ string) (func(), error) {
	l.mu.Lock()
	return l.mu.Unlock, nil
}

func TestChapterNumbering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	story := env.publish(t, alice, "Saga", true)

	for i := 1; i <= 3; i++ {
		ch, err := env.chapters.CreateChapter(ctx, alice, story, &dto.ChapterCreateDTO{Title: "c", Content: "x"})
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		if ch.ChapterNumber != i {
			t.Fatalf("expected chapter number %d, got %d", i, ch.ChapterNumber)
		}
	}
}

func TestConcurrentChapterNumbersMayCollide(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	story := env.publish(t, alice, "Race", true)

	wg := &sync.WaitGroup{}
	wg.Add(2)
	svc := NewChapterService(&barrierChapterRepo{ChapterRepo: env.chapterRepo, wg: wg}, env.storyRepo, nil)

	numbers := make([]int, 2)
	errs := make([]error, 2)
	var done sync.WaitGroup
	for i := 0; i < 2; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			ch, err := svc.CreateChapter(ctx, alice, story, &dto.ChapterCreateDTO{Title: "c", Content: "x"})
			errs[i] = err
			if ch != nil {
				numbers[i] = ch.ChapterNumber
			}
		}(i)
	}
	done.Wait()

	for _, err := range errs {
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if numbers[0] != 1 || numbers[1] != 1 {
		t.Fatalf("expected both creations to receive number 1, got %v", numbers)
	}
}

func TestSerializedChapterNumbersAreDistinct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	story := env.publish(t, alice, "Orderly", true)
	svc := NewChapterService(env.chapterRepo, env.storyRepo, &mutexLocker{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.CreateChapter(ctx, alice, story, &dto.ChapterCreateDTO{Title: "c", Content: "x"}); err != nil {
				t.Errorf("create: %v", err)
			}
		}()
	}
	wg.Wait()

	chapters, _ := svc.GetChapters(ctx, story)
	for i, ch := range chapters {
		if ch.ChapterNumber != i+1 {
			t.Fatalf("expected distinct sequential numbers, got %+v", chapters)
		}
	}
}

func TestChapterOwnershipAndValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice, bob := env.register(t, "alice"), env.register(t, "bob")
	story := env.publish(t, alice, "Mine", true)

	if _, err := env.chapters.CreateChapter(ctx, bob, story, &dto.ChapterCreateDTO{Title: "t", Content: "c"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := env.chapters.CreateChapter(ctx, alice, 999, &dto.ChapterCreateDTO{Title: "t", Content: "c"}); !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
	if _, err := env.chapters.CreateChapter(ctx, alice, story, &dto.ChapterCreateDTO{Title: "t", Content: "   "}); !errors.Is(err, ErrChapterFieldsMissing) {
		t.Fatalf("expected ErrChapterFieldsMissing, got %v", err)
	}

	ch, err := env.chapters.CreateChapter(ctx, alice, story, &dto.ChapterCreateDTO{Title: "One", Content: "body"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "Uno"
	if _, err = env.chapters.UpdateChapter(ctx, bob, ch.ID, &dto.ChapterUpdateDTO{Title: &newTitle}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	updated, err := env.chapters.UpdateChapter(ctx, alice, ch.ID, &dto.ChapterUpdateDTO{Title: &newTitle})
	if err != nil || updated.Title != "Uno" || updated.Content != "body" || updated.ChapterNumber != 1 {
		t.Fatalf("unexpected update: %+v %v", updated, err)
	}

	if err = env.chapters.DeleteChapter(ctx, bob, ch.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err = env.chapters.DeleteChapter(ctx, alice, ch.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err = env.chapters.DeleteChapter(ctx, alice, ch.ID); !errors.Is(err, ErrChapterNotFound) {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestOrphanedChapterReportsMissingStory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice")
	story := env.publish(t, alice, "Ephemeral", true)
	ch, err := env.chapters.CreateChapter(ctx, alice, story, &dto.ChapterCreateDTO{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err = env.stories.DeleteStory(ctx, alice, story); err != nil {
		t.Fatalf("delete story: %v", err)
	}

	title := "x"
	if _, err = env.chapters.UpdateChapter(ctx, alice, ch.ID, &dto.ChapterUpdateDTO{Title: &title}); !errors.Is(err, ErrStoryNotFound) {
		t.Fatalf("expected ErrStoryNotFound, got %v", err)
	}
}
