// Package service orchestrates the feed pipeline: profile build, candidate
// fetch, suppression, scoring, the fallback cascade, and page assembly
package service

import (
	"context"
	"sort"
	"time"

	"mingle/internal/platform/logger"
	ptime "mingle/internal/platform/time"

	"mingle/internal/core/affinity"
	"mingle/internal/core/feedcast"
	"mingle/internal/core/scoring"
	"mingle/internal/services/feed/domain"
)

// Config tunes the feed pipeline
type Config struct {
	DefaultCount   int
	MaxCount       int
	PoolMultiplier int
	WindowDays     int
	BaselineMode   scoring.BaselineMode
	BaselineFixed  float64
	Jitter         float64
}

// Collaborators are the external ports the pipeline reads and writes.
// Serve may be nil; everything else is required
type Collaborators struct {
	Log      domain.InteractionLogPort
	Pool     domain.CandidatePoolPort
	Authored domain.AuthoredContentPort
	Seen     domain.SuppressionPort
	Serve    domain.ServeLogPort
}

// Service implements domain.GeneratePort, RecorderPort, and StatsPort
type Service struct {
	deps Collaborators
	cfg  Config
	log  logger.Logger
	now  func() time.Time
}

// New constructs the feed service
func New(deps Collaborators, cfg Config, log logger.Logger) *Service {
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 20
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = 50
	}
	if cfg.PoolMultiplier <= 0 {
		cfg.PoolMultiplier = 3
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 30
	}
	if cfg.BaselineMode == "" {
		cfg.BaselineMode = scoring.BaselineMedian
	}
	return &Service{deps: deps, cfg: cfg, log: log, now: time.Now}
}

// GenerateFeed implements domain.GeneratePort. It never returns an error for
// collaborator failures; the cascade degrades until it either serves a page
// or proves the pool is globally empty
func (s *Service) GenerateFeed(ctx context.Context, userID string, requested int, cursor string) (domain.FeedResult, error) {
	if requested <= 0 {
		requested = s.cfg.DefaultCount
	}
	if requested > s.cfg.MaxCount {
		requested = s.cfg.MaxCount
	}

	now := s.now()
	day := ptime.DayStart(now)
	pos := domain.DecodeCursor(cursor)

	profile := s.buildProfile(ctx, userID, now)

	counts := map[string]int{}
	var page []domain.FeedItem
	var cycled bool
	var candidates int

	tier := feedcast.TierPrimary
	for {
		var batch []domain.FeedItem
		var fetched int
		switch tier {
		case feedcast.TierPrimary:
			batch, fetched = s.primary(ctx, userID, pos, requested, profile, now, day)
		case feedcast.TierFallback:
			batch, cycled, fetched = s.fallback(ctx, userID, requested-len(page), profile, now, day)
		case feedcast.TierEmergency:
			batch, fetched = s.emergency(ctx, userID, requested, profile, now)
		}
		candidates += fetched

		batch = dedupAgainst(page, batch)
		for _, it := range batch {
			counts[it.Source]++
		}
		page = append(page, batch...)

		next, cont := feedcast.Next(tier, feedcast.Outcome{Served: len(page), Cycled: cycled}, requested)
		if !cont {
			tier = next
			break
		}
		tier = next
	}

	res := domain.FeedResult{
		Items: page,
		Diagnostics: domain.Diagnostics{
			Tier:          tier.String(),
			ColdStart:     profile.ColdStart,
			Cycled:        cycled,
			Candidates:    candidates,
			CountsPerTier: counts,
		},
	}
	if len(page) > 0 {
		last := page[len(page)-1]
		res.NextCursor = domain.Cursor{CreatedAt: last.CreatedAt, LastID: last.ID}.Encode()
	}

	s.recordShown(ctx, userID, page, now)
	s.logServe(ctx, userID, day, now, res)

	return res, nil
}

// buildProfile derives the affinity profile, failing open to cold start on
// any collaborator error
func (s *Service) buildProfile(ctx context.Context, userID string, now time.Time) affinity.Profile {
	since := now.Add(-time.Duration(s.cfg.WindowDays) * 24 * time.Hour)

	events, err := s.deps.Log.Window(ctx, userID, since)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("interaction window read failed, serving cold start")
		return affinity.ColdStartProfile()
	}

	authored, categories, err := s.deps.Authored.ForUser(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("authored content read failed, serving cold start")
		return affinity.ColdStartProfile()
	}

	evs := make([]affinity.Event, len(events))
	for i, ev := range events {
		evs[i] = affinity.Event{
			ContentType:     ev.ContentType,
			InteractionType: ev.InteractionType,
			OccurredAt:      ev.OccurredAt,
		}
	}
	auth := make([]affinity.Authored, len(authored))
	for i, a := range authored {
		auth[i] = affinity.Authored{ContentType: a.ContentType, CategoryTerms: a.CategoryTerms}
	}
	return affinity.Build(evs, auth, categories)
}

// primary fetches a wide pool, drops today's primary-namespace repeats,
// scores the rest, and returns the top of the ranking
func (s *Service) primary(
	ctx context.Context,
	userID string,
	pos domain.Cursor,
	requested int,
	profile affinity.Profile,
	now, day time.Time,
) ([]domain.FeedItem, int) {
	pool, err := s.deps.Pool.Fetch(ctx, userID, pos, requested*s.cfg.PoolMultiplier)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("primary pool fetch failed, escalating")
		return nil, 0
	}
	if len(pool) == 0 {
		return nil, 0
	}

	seen := s.seenSet(ctx, userID, day, feedcast.SourcePrimary)

	cands := make([]scoring.Candidate, 0, len(pool))
	byID := make(map[string]domain.CandidateItem, len(pool))
	for _, c := range pool {
		if seen[c.ID] {
			continue
		}
		byID[c.ID] = c
		cands = append(cands, toScoringCandidate(c))
	}
	if len(cands) == 0 {
		return nil, len(pool)
	}

	baseline := scoring.Baseline(allScoringCandidates(pool), s.cfg.BaselineMode, s.cfg.BaselineFixed)
	scorer := scoring.New(profile, baseline, now, scoring.WithJitter(s.cfg.Jitter))

	type scored struct {
		item  domain.CandidateItem
		score float64
	}
	ranked := make([]scored, len(cands))
	for i, c := range cands {
		ranked[i] = scored{item: byID[c.ID], score: scorer.Score(c)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		// ties go to the most recent item
		return ranked[i].item.CreatedAt.After(ranked[j].item.CreatedAt)
	})

	if len(ranked) > requested {
		ranked = ranked[:requested]
	}
	out := make([]domain.FeedItem, len(ranked))
	for i, r := range ranked {
		out[i] = toFeedItem(r.item, r.score, feedcast.SourcePrimary)
	}
	return out, len(pool)
}

// fallback serves recency-ordered items the user has not seen in the
// fallback namespace today. When the namespace is exhausted but the pool is
// not, it restarts the cycle and serves unfiltered, tagged fallback_cycle
func (s *Service) fallback(
	ctx context.Context,
	userID string,
	want int,
	profile affinity.Profile,
	now, day time.Time,
) (items []domain.FeedItem, cycled bool, fetched int) {
	if want <= 0 {
		want = 1
	}

	pool, err := s.deps.Pool.Fetch(ctx, userID, domain.Cursor{}, want*s.cfg.PoolMultiplier)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("fallback pool fetch failed, escalating")
		return nil, false, 0
	}
	if len(pool) == 0 {
		return nil, false, 0
	}

	seen := s.seenSet(ctx, userID, day, feedcast.SourceFallback)

	eligible := pool[:0:0]
	for _, c := range pool {
		if !seen[c.ID] {
			eligible = append(eligible, c)
		}
	}
	source := feedcast.SourceFallback
	if len(eligible) == 0 {
		// cycle exhaustion: restart and serve the unfiltered pool
		eligible = pool
		source = feedcast.SourceFallbackCycle
		cycled = true
	}
	if len(eligible) > want {
		eligible = eligible[:want]
	}

	baseline := scoring.Baseline(allScoringCandidates(pool), s.cfg.BaselineMode, s.cfg.BaselineFixed)
	scorer := scoring.New(profile, baseline, now, scoring.WithJitter(s.cfg.Jitter))

	out := make([]domain.FeedItem, len(eligible))
	for i, c := range eligible {
		out[i] = toFeedItem(c, scorer.Score(toScoringCandidate(c)), source)
	}
	return out, cycled, len(pool)
}

// emergency ignores all suppression state. It retries the fetch once and
// returns whatever exists; empty here means the pool is globally empty
func (s *Service) emergency(
	ctx context.Context,
	userID string,
	requested int,
	profile affinity.Profile,
	now time.Time,
) ([]domain.FeedItem, int) {
	pool, err := s.deps.Pool.Fetch(ctx, userID, domain.Cursor{}, requested)
	if err != nil {
		pool, err = s.deps.Pool.Fetch(ctx, userID, domain.Cursor{}, requested)
	}
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("emergency pool fetch failed, serving empty feed")
		return nil, 0
	}
	fetched := len(pool)
	if len(pool) > requested {
		pool = pool[:requested]
	}

	baseline := scoring.Baseline(allScoringCandidates(pool), s.cfg.BaselineMode, s.cfg.BaselineFixed)
	scorer := scoring.New(profile, baseline, now, scoring.WithJitter(s.cfg.Jitter))

	out := make([]domain.FeedItem, len(pool))
	for i, c := range pool {
		out[i] = toFeedItem(c, scorer.Score(toScoringCandidate(c)), feedcast.SourceEmergency)
	}
	return out, fetched
}

// seenSet reads the suppression namespace, failing open to an empty set
func (s *Service) seenSet(ctx context.Context, userID string, day time.Time, namespace string) map[string]bool {
	seen, err := s.deps.Seen.Seen(ctx, userID, day, namespace)
	if err != nil {
		s.log.Warn().Err(err).Str("namespace", namespace).Msg("suppression read failed, skipping dedup")
		return map[string]bool{}
	}
	return seen
}

// recordShown marks every served item as seen under its source label.
// Failures are logged and swallowed: a duplicate tomorrow is a smaller harm
// than an error today
func (s *Service) recordShown(ctx context.Context, userID string, page []domain.FeedItem, now time.Time) {
	bySource := map[string][]string{}
	for _, it := range page {
		bySource[it.Source] = append(bySource[it.Source], it.ID)
	}
	for source, ids := range bySource {
		if err := s.deps.Seen.Record(ctx, userID, ids, source, now); err != nil {
			s.log.Warn().Err(err).Str("source", source).Int("count", len(ids)).
				Msg("suppression record failed, duplicates possible")
		}
	}
}

// logServe appends the analytics row, best effort
func (s *Service) logServe(ctx context.Context, userID string, day, now time.Time, res domain.FeedResult) {
	if s.deps.Serve == nil {
		return
	}
	err := s.deps.Serve.AppendServe(ctx, domain.ServeLogEntry{
		UserID:      userID,
		Day:         day,
		Tier:        res.Diagnostics.Tier,
		ColdStart:   res.Diagnostics.ColdStart,
		Candidates:  res.Diagnostics.Candidates,
		Served:      len(res.Items),
		GeneratedAt: now,
	})
	if err != nil {
		s.log.Debug().Err(err).Msg("serve log append failed")
	}
}

// RecordInteraction implements domain.RecorderPort
func (s *Service) RecordInteraction(ctx context.Context, ev domain.InteractionEvent) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = s.now()
	}
	return s.deps.Log.Append(ctx, []domain.InteractionEvent{ev})
}

// TierStats implements domain.StatsPort
func (s *Service) TierStats(ctx context.Context, days int) ([]domain.TierStatsRow, error) {
	if s.deps.Serve == nil {
		return nil, nil
	}
	if days <= 0 {
		days = 7
	}
	since := ptime.DayStart(s.now()).Add(-time.Duration(days-1) * 24 * time.Hour)
	return s.deps.Serve.TierStats(ctx, since)
}

func toScoringCandidate(c domain.CandidateItem) scoring.Candidate {
	hints := c.TagHints
	if len(hints) == 0 && c.Category != "" {
		hints = affinity.Tokenize(c.Category)
	}
	return scoring.Candidate{
		ID:              c.ID,
		ContentType:     c.ContentType,
		CreatorID:       c.CreatorID,
		CreatedAt:       c.CreatedAt,
		EngagementScore: c.EngagementScore,
		TagHints:        hints,
	}
}

func allScoringCandidates(pool []domain.CandidateItem) []scoring.Candidate {
	out := make([]scoring.Candidate, len(pool))
	for i, c := range pool {
		out[i] = toScoringCandidate(c)
	}
	return out
}

func toFeedItem(c domain.CandidateItem, score float64, source string) domain.FeedItem {
	return domain.FeedItem{
		ID:          c.ID,
		ContentType: c.ContentType,
		CreatorID:   c.CreatorID,
		CreatedAt:   c.CreatedAt,
		Score:       score,
		Source:      source,
	}
}

// dedupAgainst drops batch entries whose id already appears in page
func dedupAgainst(page, batch []domain.FeedItem) []domain.FeedItem {
	if len(page) == 0 || len(batch) == 0 {
		return batch
	}
	have := make(map[string]bool, len(page))
	for _, it := range page {
		have[it.ID] = true
	}
	out := batch[:0]
	for _, it := range batch {
		if !have[it.ID] {
			out = append(out, it)
		}
	}
	return out
}
