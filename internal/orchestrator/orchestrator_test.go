package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/drip-agent/internal/db"
	"github.com/jonathan/drip-agent/internal/types"
)

// memStore is an in-memory Store that records every job update in order and
// signals when a job reaches a terminal status.
type memStore struct {
	mu        sync.Mutex
	jobs      map[string]*types.AnalysisJob
	lookbooks map[string]*types.Lookbook
	history   []types.AnalysisJob
	terminal  chan struct{}
}

func newMemStore() *memStore {
	return &memStore{
		jobs:      make(map[string]*types.AnalysisJob),
		lookbooks: make(map[string]*types.Lookbook),
		terminal:  make(chan struct{}),
	}
}

func (s *memStore) CreateJob(_ context.Context, job *types.AnalysisJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *job
	s.jobs[job.ID] = &copied
	s.history = append(s.history, copied)
	return nil
}

func (s *memStore) UpdateJob(_ context.Context, jobID string, update db.JobUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return errors.New("job not found")
	}
	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.Progress != nil {
		job.Progress = *update.Progress
	}
	if update.Error != nil {
		job.Error = *update.Error
	}
	if update.LookbookID != nil {
		job.LookbookID = *update.LookbookID
	}
	s.history = append(s.history, *job)
	if job.Status.Terminal() {
		close(s.terminal)
	}
	return nil
}

func (s *memStore) GetJob(_ context.Context, jobID string) (*types.AnalysisJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, nil
	}
	copied := *job
	return &copied, nil
}

func (s *memStore) ListJobs(_ context.Context, limit int) ([]types.AnalysisJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var jobs []types.AnalysisJob
	for _, job := range s.jobs {
		if limit > 0 && len(jobs) >= limit {
			break
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (s *memStore) SaveLookbook(_ context.Context, lookbook *types.Lookbook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookbooks[lookbook.ID] = lookbook
	return nil
}

func (s *memStore) GetLookbook(_ context.Context, lookbookID string) (*types.Lookbook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookbooks[lookbookID], nil
}

func (s *memStore) GetLookbookByHandle(_ context.Context, handle string) (*types.Lookbook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, lookbook := range s.lookbooks {
		if lookbook.Handle == handle {
			return lookbook, nil
		}
	}
	return nil, nil
}

func (s *memStore) ListArchetypes(context.Context) ([]types.Archetype, error) {
	return []types.Archetype{{ID: "techwear", Name: "Techwear"}}, nil
}

func (s *memStore) waitTerminal(t *testing.T) {
	t.Helper()
	select {
	case <-s.terminal:
	case <-time.After(5 * time.Second):
		t.Fatal("job never reached a terminal status")
	}
}

type fakeScraper struct {
	profile *types.Profile
	err     error
}

func (f *fakeScraper) Scrape(_ context.Context, handle string) (*types.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.profile != nil {
		return f.profile, nil
	}
	return &types.Profile{Handle: handle, Bio: "scraped bio", Posts: []string{"a post"}}, nil
}

type fakeVibes struct {
	result  *types.VibeProfile
	err     error
	lastBio string
}

func (f *fakeVibes) Aggregate(_ context.Context, p *types.Profile) (*types.VibeProfile, error) {
	f.lastBio = p.Bio
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &types.VibeProfile{Energy: "calm", Gender: types.GenderUnknown, Profession: types.ProfessionGeneral}, nil
}

type fakeStyles struct{}

func (fakeStyles) Resolve(context.Context, *types.VibeProfile, []types.Archetype) *types.StyleRecommendation {
	return &types.StyleRecommendation{PrimaryArchetype: "Minimalist", SecondaryArchetype: "Streetwear", BudgetTier: types.BudgetMixed}
}

type fakeMatcher struct {
	err error
}

func (f *fakeMatcher) Match(context.Context, *types.StyleRecommendation, *types.VibeProfile) (*types.ShoppingResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.ShoppingResult{
		FreeRecommendations: []types.ScoredProduct{{Product: types.Product{ID: "tee"}, MatchScore: 60}},
	}, nil
}

func newTestOrchestrator(store *memStore, scraper ProfileSource, vibes VibeAnalyzer, matcher ProductMatcher) *Orchestrator {
	return New(store, scraper, vibes, fakeStyles{}, matcher, false)
}

func TestStartAnalysis_CompletesWithLookbook(t *testing.T) {
	store := newMemStore()
	o := newTestOrchestrator(store, &fakeScraper{}, &fakeVibes{}, &fakeMatcher{})

	jobID, err := o.StartAnalysis(context.Background(), "@Some_User", "")
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	store.waitTerminal(t)

	job, err := o.GetJobStatus(context.Background(), jobID)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, types.StatusComplete, job.Status)
	assert.Equal(t, 100, job.Progress)
	assert.Equal(t, "some_user", job.Handle)
	require.NotEmpty(t, job.LookbookID)

	lookbook, err := o.GetLookbook(context.Background(), job.LookbookID)
	require.NoError(t, err)
	require.NotNil(t, lookbook)
	assert.Equal(t, "some_user", lookbook.Handle)
	assert.Equal(t, "Minimalist", lookbook.Style.PrimaryArchetype)
	assert.Len(t, lookbook.Products.FreeRecommendations, 1)
}

func TestStartAnalysis_ProgressIsMonotonic(t *testing.T) {
	store := newMemStore()
	o := newTestOrchestrator(store, &fakeScraper{}, &fakeVibes{}, &fakeMatcher{})

	_, err := o.StartAnalysis(context.Background(), "someone", "")
	require.NoError(t, err)
	store.waitTerminal(t)

	store.mu.Lock()
	defer store.mu.Unlock()
	last := -1
	var statuses []types.JobStatus
	for _, snapshot := range store.history {
		assert.GreaterOrEqual(t, snapshot.Progress, last, "progress regressed at status %s", snapshot.Status)
		last = snapshot.Progress
		if len(statuses) == 0 || statuses[len(statuses)-1] != snapshot.Status {
			statuses = append(statuses, snapshot.Status)
		}
	}
	assert.Equal(t, []types.JobStatus{
		types.StatusPending,
		types.StatusScraping,
		types.StatusAnalyzingVibe,
		types.StatusMatchingStyle,
		types.StatusFindingProducts,
		types.StatusComplete,
	}, statuses)
}

func TestStartAnalysis_ScrapeFailureFallsBackToDemoProfile(t *testing.T) {
	store := newMemStore()
	vibes := &fakeVibes{}
	o := newTestOrchestrator(store, &fakeScraper{err: errors.New("rate limited")}, vibes, &fakeMatcher{})

	jobID, err := o.StartAnalysis(context.Background(), "demo_dev", "")
	require.NoError(t, err)
	store.waitTerminal(t)

	job, err := o.GetJobStatus(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusComplete, job.Status)
	// The dev-flavored demo profile was analyzed, not an empty one.
	assert.Contains(t, vibes.lastBio, "Staff Engineer")
}

func TestStartAnalysis_DirectInputSkipsScraping(t *testing.T) {
	store := newMemStore()
	vibes := &fakeVibes{}
	scraper := &fakeScraper{err: errors.New("should not be called")}
	o := newTestOrchestrator(store, scraper, vibes, &fakeMatcher{})

	_, err := o.StartAnalysis(context.Background(), "pasted", "I build furniture.\nWeekend woodworker.")
	require.NoError(t, err)
	store.waitTerminal(t)

	assert.True(t, strings.Contains(vibes.lastBio, "furniture"))
}

func TestStartAnalysis_VibeFailureIsTerminalError(t *testing.T) {
	store := newMemStore()
	o := newTestOrchestrator(store, &fakeScraper{}, &fakeVibes{err: errors.New("model returned garbage")}, &fakeMatcher{})

	jobID, err := o.StartAnalysis(context.Background(), "someone", "")
	require.NoError(t, err)
	store.waitTerminal(t)

	job, err := o.GetJobStatus(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusError, job.Status)
	assert.Contains(t, job.Error, "vibe analysis")
	assert.Empty(t, job.LookbookID)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.lookbooks)
}

func TestStartAnalysis_MatchFailureIsTerminalError(t *testing.T) {
	store := newMemStore()
	o := newTestOrchestrator(store, &fakeScraper{}, &fakeVibes{}, &fakeMatcher{err: errors.New("catalog unavailable")})

	jobID, err := o.StartAnalysis(context.Background(), "someone", "")
	require.NoError(t, err)
	store.waitTerminal(t)

	job, err := o.GetJobStatus(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusError, job.Status)
	assert.Contains(t, job.Error, "product matching")
}

func TestStartAnalysis_AttachesOutfitColors(t *testing.T) {
	store := newMemStore()
	vibes := &fakeVibes{result: &types.VibeProfile{
		Gender:     types.GenderFemale,
		Profession: types.ProfessionDesigner,
		ColorSeason: &types.ColorProfile{
			Subtype:    types.SubtypeDeepWinter,
			BestColors: []string{"black", "true red"},
			Neutrals:   []string{"charcoal", "soft white"},
		},
	}}
	o := newTestOrchestrator(store, &fakeScraper{}, vibes, &fakeMatcher{})

	jobID, err := o.StartAnalysis(context.Background(), "someone", "")
	require.NoError(t, err)
	store.waitTerminal(t)

	job, err := o.GetJobStatus(context.Background(), jobID)
	require.NoError(t, err)
	lookbook, err := o.GetLookbook(context.Background(), job.LookbookID)
	require.NoError(t, err)
	require.NotNil(t, lookbook.OutfitColors)
	assert.NotEmpty(t, lookbook.OutfitColors.EverydayPalette)
}

func TestGetLookbookByHandle_CleansHandle(t *testing.T) {
	store := newMemStore()
	o := newTestOrchestrator(store, &fakeScraper{}, &fakeVibes{}, &fakeMatcher{})

	_, err := o.StartAnalysis(context.Background(), "@Some_User", "")
	require.NoError(t, err)
	store.waitTerminal(t)

	lookbook, err := o.GetLookbookByHandle(context.Background(), "@Some_User")
	require.NoError(t, err)
	require.NotNil(t, lookbook)
	assert.Equal(t, "some_user", lookbook.Handle)
}

func TestListJobs(t *testing.T) {
	store := newMemStore()
	o := newTestOrchestrator(store, &fakeScraper{}, &fakeVibes{}, &fakeMatcher{})

	_, err := o.StartAnalysis(context.Background(), "someone", "")
	require.NoError(t, err)
	store.waitTerminal(t)

	jobs, err := o.ListJobs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "someone", jobs[0].Handle)
}

func TestGetJobStatus_UnknownJob(t *testing.T) {
	store := newMemStore()
	o := newTestOrchestrator(store, &fakeScraper{}, &fakeVibes{}, &fakeMatcher{})

	job, err := o.GetJobStatus(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, job)
}
