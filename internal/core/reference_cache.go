package core

import (
	"context"
	"sync"
)

// referenceCache memoizes read-mostly reference listings for the lifetime of
// the process. Entries are filled lazily and never invalidated; writes to
// reference data only become visible to cached listings after a restart.
type referenceCache struct {
	mu      sync.Mutex
	entries map[EntityType][]Record
}

func newReferenceCache() *referenceCache {
	return &referenceCache{entries: make(map[EntityType][]Record)}
}

func (c *referenceCache) list(entity EntityType, load func() []Record) []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.entries[entity]; ok {
		return cached
	}
	loaded := load()
	c.entries[entity] = loaded
	return loaded
}

// SaveCountry persists a new country. Country mutations are not audited.
func (s *Service) SaveCountry(ctx context.Context, country Country, actor Actor) (Country, Result, error) {
	return saveRecord(ctx, s, country, actor)
}

// UpdateCountry replaces an existing country.
func (s *Service) UpdateCountry(ctx context.Context, country Country, actor Actor) (Country, Result, error) {
	return updateRecord(ctx, s, country, actor)
}

// SaveOrUpdateCountry inserts or updates depending on the id.
func (s *Service) SaveOrUpdateCountry(ctx context.Context, country Country, actor Actor) (Country, Result, error) {
	return saveOrUpdateRecord(ctx, s, country, actor)
}

// DeleteCountry removes a country unless states depend on it.
func (s *Service) DeleteCountry(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityCountry, id, actor)
}

// GetCountry fetches a country by id from committed state, bypassing the cache.
func (s *Service) GetCountry(ctx context.Context, id int64) (Country, bool) {
	return getRecord[Country](s, EntityCountry, id)
}

// ListCountries returns the cached country listing, populating it on first use.
func (s *Service) ListCountries(ctx context.Context) []Country {
	return collect[Country](s.refs.list(EntityCountry, func() []Record {
		return s.store.List(EntityCountry)
	}))
}

// SaveState persists a new state. State mutations are not audited.
func (s *Service) SaveState(ctx context.Context, state State, actor Actor) (State, Result, error) {
	return saveRecord(ctx, s, state, actor)
}

// UpdateState replaces an existing state.
func (s *Service) UpdateState(ctx context.Context, state State, actor Actor) (State, Result, error) {
	return updateRecord(ctx, s, state, actor)
}

// SaveOrUpdateState inserts or updates depending on the id.
func (s *Service) SaveOrUpdateState(ctx context.Context, state State, actor Actor) (State, Result, error) {
	return saveOrUpdateRecord(ctx, s, state, actor)
}

// DeleteState removes a state.
func (s *Service) DeleteState(ctx context.Context, id int64, actor Actor) (Result, error) {
	return s.deleteRecord(ctx, EntityState, id, actor)
}

// GetState fetches a state by id from committed state, bypassing the cache.
func (s *Service) GetState(ctx context.Context, id int64) (State, bool) {
	return getRecord[State](s, EntityState, id)
}

// ListStates returns the cached state listing, populating it on first use.
func (s *Service) ListStates(ctx context.Context) []State {
	return collect[State](s.refs.list(EntityState, func() []Record {
		return s.store.List(EntityState)
	}))
}

// ListStatesByCountry filters the cached state listing by country.
func (s *Service) ListStatesByCountry(ctx context.Context, countryID int64) []State {
	all := s.ListStates(ctx)
	out := make([]State, 0, len(all))
	for _, st := range all {
		if st.CountryID == countryID {
			out = append(out, st)
		}
	}
	return out
}
