package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"itodo/internal/todo/repository"
	pkgLog "itodo/pkg/log"
)

func newTestRepo(maxSessions int) repository.SessionRepository {
	return New(Config{MaxSessions: maxSessions, TTL: time.Hour}, pkgLog.NewNop())
}

func TestSessionRepository_Isolation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(10)

	repo.Do(ctx, repository.DoOptions{SessionID: "s1"}, func(s repository.ListStore) error {
		return s.Append("only in s1")
	})

	var s2Len int
	repo.Do(ctx, repository.DoOptions{SessionID: "s2"}, func(s repository.ListStore) error {
		s2Len = s.Len()
		return nil
	})
	if s2Len != 0 {
		t.Errorf("session s2 observed %d todos from s1", s2Len)
	}

	var s1Todos []string
	repo.Do(ctx, repository.DoOptions{SessionID: "s1"}, func(s repository.ListStore) error {
		s1Todos = s.Todos()
		return nil
	})
	if len(s1Todos) != 1 || s1Todos[0] != "only in s1" {
		t.Errorf("unexpected s1 todos: %v", s1Todos)
	}
	if repo.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", repo.Len())
	}
}

func TestSessionRepository_ReturnsFnError(t *testing.T) {
	repo := newTestRepo(10)
	want := errors.New("boom")
	got := repo.Do(context.Background(), repository.DoOptions{SessionID: "s"}, func(repository.ListStore) error {
		return want
	})
	if !errors.Is(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSessionRepository_SerializesOperations(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(10)
	opt := repository.DoOptions{SessionID: "shared"}

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Do(ctx, opt, func(s repository.ListStore) error {
				return s.Append("x")
			})
		}()
	}
	wg.Wait()

	var n int
	repo.Do(ctx, opt, func(s repository.ListStore) error {
		n = s.Len()
		return nil
	})
	if n != workers {
		t.Errorf("expected %d todos, got %d", workers, n)
	}
}

func TestSessionRepository_Eviction(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(2)
	appendOne := func(id string) {
		repo.Do(ctx, repository.DoOptions{SessionID: id}, func(s repository.ListStore) error {
			return s.Append("todo")
		})
	}

	appendOne("a")
	appendOne("b")
	appendOne("c")
	if repo.Len() != 2 {
		t.Errorf("expected registry bounded at 2, got %d", repo.Len())
	}

	// "a" was least recently used, so its list is gone.
	repo.Do(ctx, repository.DoOptions{SessionID: "a"}, func(s repository.ListStore) error {
		if s.Len() != 0 {
			t.Errorf("evicted session kept %d todos", s.Len())
		}
		return nil
	})
}

func TestSessionRepository_EvictionDuringDoKeepsMutation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(1)

	err := repo.Do(ctx, repository.DoOptions{SessionID: "a"}, func(s repository.ListStore) error {
		// A second session pushes "a" out of the registry while "a" is mid-operation.
		repo.Do(ctx, repository.DoOptions{SessionID: "b"}, func(repository.ListStore) error { return nil })
		return s.Append("kept")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.Do(ctx, repository.DoOptions{SessionID: "a"}, func(s repository.ListStore) error {
		if got := s.Todos(); len(got) != 1 || got[0] != "kept" {
			t.Errorf("expected the in-flight append to survive eviction, got %v", got)
		}
		return nil
	})
}

func TestSessionRepository_SameSessionDuringEviction(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(1)
	opt := repository.DoOptions{SessionID: "a"}

	entered := make(chan struct{})
	proceed := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		repo.Do(ctx, opt, func(s repository.ListStore) error {
			close(entered)
			<-proceed
			return s.Append("first")
		})
	}()

	<-entered
	repo.Do(ctx, repository.DoOptions{SessionID: "b"}, func(repository.ListStore) error { return nil })

	// "a" is evicted but still in use: a second request must queue on the
	// same list instead of starting a fresh one.
	second := make(chan struct{})
	go func() {
		defer close(second)
		repo.Do(ctx, opt, func(s repository.ListStore) error {
			return s.Append("second")
		})
	}()
	close(proceed)
	<-done
	<-second

	repo.Do(ctx, opt, func(s repository.ListStore) error {
		if got := s.Todos(); len(got) != 2 {
			t.Errorf("expected both appends on one list, got %v", got)
		}
		return nil
	})
}
