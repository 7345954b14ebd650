package snapshot

import (
	"context"
	"errors"
	"testing"

	"study-copilot/pkg/log"
)

type stubSource struct {
	profile Profile
	err     error
	calls   int
}

func (s *stubSource) GetProfile(ctx context.Context, userID string) (Profile, error) {
	s.calls++
	if s.err != nil {
		return Profile{}, s.err
	}
	return s.profile, nil
}

func TestBuilder_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles snapshot from caller input", func(t *testing.T) {
		src := &stubSource{profile: Profile{Plan: "pro", RemainingTokens: 5000}}
		b := NewBuilder(log.NewNop(), src, BuilderConfig{})

		snap, err := b.Build(ctx, "u1",
			PageFacts{CurrentView: "note", ViewItemID: "n9"},
			[]Reference{{ID: "42", DisplayName: "Chapter 3"}},
		)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}

		if snap.User.Plan != "pro" || snap.User.RemainingTokens != 5000 {
			t.Errorf("User = %+v", snap.User)
		}
		if snap.User.Degraded {
			t.Error("Degraded = true for healthy lookup")
		}
		if snap.Page.CurrentView != "note" {
			t.Errorf("CurrentView = %q", snap.Page.CurrentView)
		}
		ref, ok := snap.FirstRef()
		if !ok || ref.ID != "42" || ref.DisplayName != "Chapter 3" {
			t.Errorf("FirstRef = %+v, %v", ref, ok)
		}
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		b := NewBuilder(log.NewNop(), &stubSource{}, BuilderConfig{})
		if _, err := b.Build(ctx, "", PageFacts{}, nil); !errors.Is(err, ErrEmptyUserID) {
			t.Errorf("err = %v, want ErrEmptyUserID", err)
		}
	})

	t.Run("rejects reference without id", func(t *testing.T) {
		b := NewBuilder(log.NewNop(), &stubSource{}, BuilderConfig{})
		_, err := b.Build(ctx, "u1", PageFacts{}, []Reference{{DisplayName: "orphan"}})
		if !errors.Is(err, ErrEmptyRefID) {
			t.Errorf("err = %v, want ErrEmptyRefID", err)
		}
	})

	t.Run("fills placeholder for unnamed references", func(t *testing.T) {
		src := &stubSource{profile: Profile{Plan: "free"}}
		b := NewBuilder(log.NewNop(), src, BuilderConfig{})

		snap, err := b.Build(ctx, "u1", PageFacts{}, []Reference{{ID: "7"}})
		if err != nil {
			t.Fatal(err)
		}
		if snap.Refs[0].DisplayName != NamePlaceholder {
			t.Errorf("DisplayName = %q, want %q", snap.Refs[0].DisplayName, NamePlaceholder)
		}
	})

	t.Run("degrades on profile failure instead of failing", func(t *testing.T) {
		src := &stubSource{err: errors.New("profile service down")}
		b := NewBuilder(log.NewNop(), src, BuilderConfig{})

		snap, err := b.Build(ctx, "u1", PageFacts{}, nil)
		if err != nil {
			t.Fatalf("Build should not fail on profile error, got %v", err)
		}
		if !snap.User.Degraded {
			t.Error("Degraded = false after profile failure")
		}
		if snap.User.Plan != "free" {
			t.Errorf("degraded Plan = %q, want free", snap.User.Plan)
		}
	})

	t.Run("caches profile lookups", func(t *testing.T) {
		src := &stubSource{profile: Profile{Plan: "pro"}}
		b := NewBuilder(log.NewNop(), src, BuilderConfig{})

		for i := 0; i < 3; i++ {
			if _, err := b.Build(ctx, "u1", PageFacts{}, nil); err != nil {
				t.Fatal(err)
			}
		}
		if src.calls != 1 {
			t.Errorf("profile source called %d times, want 1", src.calls)
		}
	})

	t.Run("does not alias caller reference slice", func(t *testing.T) {
		src := &stubSource{profile: Profile{Plan: "free"}}
		b := NewBuilder(log.NewNop(), src, BuilderConfig{})

		refs := []Reference{{ID: "1", DisplayName: "a"}}
		snap, err := b.Build(ctx, "u1", PageFacts{}, refs)
		if err != nil {
			t.Fatal(err)
		}
		refs[0].DisplayName = "mutated"
		if snap.Refs[0].DisplayName != "a" {
			t.Error("snapshot refs alias caller slice")
		}
	})
}
