package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"study-copilot/internal/model"
	"study-copilot/pkg/log"
)

var (
	ErrEmptyUserID = errors.New("snapshot: user id must not be empty")
	ErrEmptyRefID  = errors.New("snapshot: reference id must not be empty")
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 5 * time.Minute
)

// Builder assembles per-request context snapshots. Profile lookups go through
// a TTL cache so hot users do not hammer the profile service.
type Builder struct {
	l       log.Logger
	source  ProfileSource
	profile *expirable.LRU[string, Profile]
}

type BuilderConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

func NewBuilder(l log.Logger, source ProfileSource, cfg BuilderConfig) *Builder {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Builder{
		l:       l,
		source:  source,
		profile: expirable.NewLRU[string, Profile](size, nil, ttl),
	}
}

// Build assembles a snapshot from what the caller supplied. A failed profile
// lookup degrades the user facts instead of failing the request.
func (b *Builder) Build(ctx context.Context, userID string, page PageFacts, refs []Reference) (Snapshot, error) {
	if userID == "" {
		return Snapshot{}, ErrEmptyUserID
	}
	for _, r := range refs {
		if r.ID == "" {
			return Snapshot{}, ErrEmptyRefID
		}
	}

	snap := Snapshot{
		User: b.userFacts(ctx, userID),
		Page: page,
	}

	if len(refs) > 0 {
		snap.Refs = make([]Reference, len(refs))
		copy(snap.Refs, refs)
		for i := range snap.Refs {
			if snap.Refs[i].DisplayName == "" {
				snap.Refs[i].DisplayName = NamePlaceholder
			}
		}
	}

	return snap, nil
}

func (b *Builder) userFacts(ctx context.Context, userID string) UserFacts {
	if p, ok := b.profile.Get(userID); ok {
		return factsFromProfile(p)
	}

	p, err := b.source.GetProfile(ctx, userID)
	if err != nil {
		b.l.Warnf(ctx, "snapshot.Builder.userFacts.GetProfile: %v", err)
		return UserFacts{Plan: string(model.PlanFree), Degraded: true}
	}

	b.profile.Add(userID, p)
	return factsFromProfile(p)
}

// factsFromProfile normalizes unknown plan names to free.
func factsFromProfile(p Profile) UserFacts {
	return UserFacts{
		Plan:            string(model.ParsePlan(p.Plan)),
		RemainingTokens: p.RemainingTokens,
	}
}
