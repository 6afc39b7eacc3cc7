// Package orchestrator runs the end-to-end analysis pipeline behind an
// asynchronous job API: submitting a handle returns a job id immediately and
// the pipeline runs in the background, persisting status and progress before
// each stage so pollers never observe a stale phase.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/drip-agent/internal/colorseason"
	"github.com/jonathan/drip-agent/internal/db"
	"github.com/jonathan/drip-agent/internal/observability"
	"github.com/jonathan/drip-agent/internal/profile"
	"github.com/jonathan/drip-agent/internal/types"
)

// Store is the persistence surface the orchestrator needs. *db.Store
// satisfies it.
type Store interface {
	CreateJob(ctx context.Context, job *types.AnalysisJob) error
	UpdateJob(ctx context.Context, jobID string, update db.JobUpdate) error
	GetJob(ctx context.Context, jobID string) (*types.AnalysisJob, error)
	ListJobs(ctx context.Context, limit int) ([]types.AnalysisJob, error)
	SaveLookbook(ctx context.Context, lookbook *types.Lookbook) error
	GetLookbook(ctx context.Context, lookbookID string) (*types.Lookbook, error)
	GetLookbookByHandle(ctx context.Context, handle string) (*types.Lookbook, error)
	ListArchetypes(ctx context.Context) ([]types.Archetype, error)
}

// ProfileSource fetches a social profile for a handle.
type ProfileSource interface {
	Scrape(ctx context.Context, handle string) (*types.Profile, error)
}

// VibeAnalyzer turns a profile into a vibe analysis.
type VibeAnalyzer interface {
	Aggregate(ctx context.Context, p *types.Profile) (*types.VibeProfile, error)
}

// StyleResolver maps a vibe onto fashion archetypes. It never fails.
type StyleResolver interface {
	Resolve(ctx context.Context, vibe *types.VibeProfile, archetypes []types.Archetype) *types.StyleRecommendation
}

// ProductMatcher scores and ranks catalog products for a resolved style.
type ProductMatcher interface {
	Match(ctx context.Context, style *types.StyleRecommendation, vibe *types.VibeProfile) (*types.ShoppingResult, error)
}

// Orchestrator owns the job lifecycle. Jobs run detached from the submitting
// request context; Shutdown cancels anything still in flight.
type Orchestrator struct {
	store   Store
	scraper ProfileSource
	vibes   VibeAnalyzer
	styles  StyleResolver
	matcher ProductMatcher

	printer *observability.Printer
	verbose bool

	mu      sync.Mutex
	running map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// New wires an Orchestrator from its pipeline stages.
func New(store Store, scraper ProfileSource, vibes VibeAnalyzer, styles StyleResolver, matcher ProductMatcher, verbose bool) *Orchestrator {
	return &Orchestrator{
		store:   store,
		scraper: scraper,
		vibes:   vibes,
		styles:  styles,
		matcher: matcher,
		printer: observability.NewPrinter(os.Stdout),
		verbose: verbose,
		running: make(map[string]context.CancelFunc),
	}
}

// StartAnalysis creates a pending job for the handle and kicks off the
// pipeline in the background. When directInput is non-empty it is treated as
// pasted profile text and scraping is skipped. The returned job id can be
// polled immediately.
func (o *Orchestrator) StartAnalysis(ctx context.Context, handle, directInput string) (string, error) {
	handle = profile.CleanHandle(handle)

	job := &types.AnalysisJob{
		ID:       uuid.NewString(),
		Handle:   handle,
		Status:   types.StatusPending,
		Progress: 0,
	}
	if err := o.store.CreateJob(ctx, job); err != nil {
		return "", fmt.Errorf("creating job: %w", err)
	}

	// Jobs run detached from the request context; there is no per-job
	// timeout. External collaborators carry their own deadlines, and a hung
	// call leaves the job at its last persisted progress.
	runCtx, cancel := context.WithCancel(context.Background())
	o.mu.Lock()
	o.running[job.ID] = cancel
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer cancel()
		defer func() {
			o.mu.Lock()
			delete(o.running, job.ID)
			o.mu.Unlock()
		}()
		o.processJob(runCtx, job.ID, handle, directInput)
	}()

	return job.ID, nil
}

// GetJobStatus returns the current persisted state of a job, or nil if the id
// is unknown.
func (o *Orchestrator) GetJobStatus(ctx context.Context, jobID string) (*types.AnalysisJob, error) {
	return o.store.GetJob(ctx, jobID)
}

// ListJobs returns recent jobs, newest first.
func (o *Orchestrator) ListJobs(ctx context.Context, limit int) ([]types.AnalysisJob, error) {
	return o.store.ListJobs(ctx, limit)
}

// GetLookbook returns a persisted lookbook, or nil if the id is unknown.
func (o *Orchestrator) GetLookbook(ctx context.Context, lookbookID string) (*types.Lookbook, error) {
	return o.store.GetLookbook(ctx, lookbookID)
}

// GetLookbookByHandle returns the most recent lookbook for a handle, or nil
// when the handle has none.
func (o *Orchestrator) GetLookbookByHandle(ctx context.Context, handle string) (*types.Lookbook, error) {
	return o.store.GetLookbookByHandle(ctx, profile.CleanHandle(handle))
}

// Shutdown cancels all in-flight jobs and waits for their goroutines to
// finish persisting.
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	for _, cancel := range o.running {
		cancel()
	}
	o.mu.Unlock()
	o.wg.Wait()
}

// processJob runs the four pipeline stages. Each stage's status and progress
// are persisted before the stage's work starts, and again on the stage's
// completion, so progress is monotonically non-decreasing from a poller's
// point of view.
func (o *Orchestrator) processJob(ctx context.Context, jobID, handle, directInput string) {
	o.setStage(ctx, jobID, types.StatusScraping, 10)

	profileData := o.loadProfile(ctx, handle, directInput)
	o.setProgress(ctx, jobID, 25)

	o.setStage(ctx, jobID, types.StatusAnalyzingVibe, 30)
	vibe, err := o.vibes.Aggregate(ctx, profileData)
	if err != nil {
		o.failJob(ctx, jobID, fmt.Errorf("vibe analysis: %w", err))
		return
	}
	if o.verbose {
		o.printer.PrintVibeProfile(vibe)
	}
	o.setProgress(ctx, jobID, 50)

	o.setStage(ctx, jobID, types.StatusMatchingStyle, 55)
	archetypes, err := o.store.ListArchetypes(ctx)
	if err != nil {
		// The resolver carries its own archetype knowledge; keep going.
		fmt.Printf("Warning: loading archetypes failed: %v\n", err)
	}
	styleRec := o.styles.Resolve(ctx, vibe, archetypes)
	if o.verbose {
		o.printer.PrintStyleRecommendation(styleRec)
	}
	o.setProgress(ctx, jobID, 70)

	o.setStage(ctx, jobID, types.StatusFindingProducts, 75)
	products, err := o.matcher.Match(ctx, styleRec, vibe)
	if err != nil {
		o.failJob(ctx, jobID, fmt.Errorf("product matching: %w", err))
		return
	}
	if o.verbose {
		o.printer.PrintShoppingResult(products)
	}
	o.setProgress(ctx, jobID, 90)

	lookbook := &types.Lookbook{
		ID:       uuid.NewString(),
		Handle:   handle,
		Profile:  *profileData,
		Vibe:     *vibe,
		Style:    *styleRec,
		Products: *products,
	}
	if vibe.ColorSeason != nil {
		colors := colorseason.OutfitColors(*vibe.ColorSeason)
		lookbook.OutfitColors = &colors
	}

	if err := o.store.SaveLookbook(ctx, lookbook); err != nil {
		o.failJob(ctx, jobID, fmt.Errorf("saving lookbook: %w", err))
		return
	}

	status := types.StatusComplete
	progress := 100
	if err := o.store.UpdateJob(ctx, jobID, db.JobUpdate{
		Status:     &status,
		Progress:   &progress,
		LookbookID: &lookbook.ID,
	}); err != nil {
		fmt.Printf("Warning: failed to mark job %s complete: %v\n", jobID, err)
	}
}

// loadProfile resolves the profile for a job. Direct input bypasses scraping;
// a scrape failure degrades to a canned demo profile so the pipeline always
// has something to analyze.
func (o *Orchestrator) loadProfile(ctx context.Context, handle, directInput string) *types.Profile {
	if directInput != "" {
		if o.verbose {
			fmt.Printf("[VERBOSE] Using direct profile input for @%s\n", handle)
		}
		return profile.ParseManualInput(directInput, handle)
	}

	p, err := o.scraper.Scrape(ctx, handle)
	if err != nil {
		fmt.Printf("Warning: scraping @%s failed (%v), falling back to demo profile\n", handle, err)
		return profile.DemoProfile(handle)
	}
	return p
}

func (o *Orchestrator) setStage(ctx context.Context, jobID string, status types.JobStatus, progress int) {
	if err := o.store.UpdateJob(ctx, jobID, db.JobUpdate{Status: &status, Progress: &progress}); err != nil {
		fmt.Printf("Warning: failed to update job %s to %s: %v\n", jobID, status, err)
	}
}

func (o *Orchestrator) setProgress(ctx context.Context, jobID string, progress int) {
	if err := o.store.UpdateJob(ctx, jobID, db.JobUpdate{Progress: &progress}); err != nil {
		fmt.Printf("Warning: failed to update job %s progress: %v\n", jobID, err)
	}
}

func (o *Orchestrator) failJob(ctx context.Context, jobID string, cause error) {
	fmt.Printf("Job %s failed: %v\n", jobID, cause)
	status := types.StatusError
	msg := cause.Error()
	if err := o.store.UpdateJob(ctx, jobID, db.JobUpdate{Status: &status, Error: &msg}); err != nil {
		fmt.Printf("Warning: failed to mark job %s as errored: %v\n", jobID, err)
	}
}
