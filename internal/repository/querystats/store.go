package querystats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/docnav/internal/db"
	"github.com/kailas-cloud/docnav/internal/domain/locale"
	"github.com/kailas-cloud/docnav/internal/domain/search/outcome"
)

// dayLayout formats the day segment of counter keys.
const dayLayout = "2006-01-02"

// store is the consumer interface for counter operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) error
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Store keeps daily search outcome counters (INCRBY + EXPIRE NX).
type Store struct {
	store  store
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// New creates a counter store. Keys look like {prefix}search:{day}:{locale}:{outcome}
// and expire ttl after the first increment of the day.
func New(s store, prefix string, ttl time.Duration) *Store {
	return &Store{
		store:  s,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Record increments today's counter for code and o.
func (s *Store) Record(ctx context.Context, code locale.Code, o outcome.Outcome) error {
	key := s.key(s.now().UTC(), code, o)
	if err := s.store.IncrBy(ctx, key, 1); err != nil {
		return fmt.Errorf("querystats INCRBY %s: %w", key, err)
	}

	// Set TTL only if the key has no expiry yet (NX, not reset on repeat).
	if err := s.store.Expire(ctx, key, s.ttl, true); err != nil {
		return fmt.Errorf("querystats EXPIRE %s: %w", key, err)
	}
	return nil
}

// Day holds one day's counters, per locale and outcome.
type Day struct {
	Day    string
	Counts map[locale.Code]map[outcome.Outcome]int64
}

// Total sums every counter of the day.
func (d Day) Total() int64 {
	var n int64
	for _, byOutcome := range d.Counts {
		for _, c := range byOutcome {
			n += c
		}
	}
	return n
}

// Counts reads the counters of day. Missing keys count as zero.
func (s *Store) Counts(ctx context.Context, day time.Time) (Day, error) {
	out := Day{
		Day:    day.UTC().Format(dayLayout),
		Counts: make(map[locale.Code]map[outcome.Outcome]int64, locale.NumCodes),
	}
	for _, code := range locale.All() {
		byOutcome := make(map[outcome.Outcome]int64, len(outcome.All()))
		for _, o := range outcome.All() {
			n, err := s.get(ctx, s.key(day.UTC(), code, o))
			if err != nil {
				return Day{}, err
			}
			byOutcome[o] = n
		}
		out.Counts[code] = byOutcome
	}
	return out, nil
}

func (s *Store) get(ctx context.Context, key string) (int64, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("querystats GET %s: %w", key, err)
	}

	val, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("querystats GET %s parse: %w", key, err)
	}
	return val, nil
}

func (s *Store) key(day time.Time, code locale.Code, o outcome.Outcome) string {
	return s.prefix + "search:" + day.Format(dayLayout) + ":" + code.String() + ":" + string(o)
}
