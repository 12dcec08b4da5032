package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/healthcalc/internal/health"
	"github.com/rshade/healthcalc/internal/logging"
)

// Concurrency limits for Run.
const (
	MinConcurrency = 1
	MaxConcurrency = 64
)

// Common batch errors.
var (
	ErrNoProfiles         = errors.New("profiles file contains no profiles")
	ErrInvalidConcurrency = fmt.Errorf("concurrency must be between %d and %d", MinConcurrency, MaxConcurrency)
)

// File is the decoded profiles document.
type File struct {
	Profiles []Entry `yaml:"profiles"`
}

// Entry is one raw profile as written in the file. Enumerated fields are kept
// as strings so a bad value fails only its own profile.
type Entry struct {
	Name     string  `yaml:"name"`
	Weight   float64 `yaml:"weight"`
	Height   float64 `yaml:"height"`
	Age      int     `yaml:"age"`
	Sex      string  `yaml:"sex,omitempty"`
	Units    string  `yaml:"units,omitempty"`
	Activity string  `yaml:"activity,omitempty"`
	Goal     string  `yaml:"goal,omitempty"`
}

// Defaults fill in the enumerated fields an entry leaves empty.
type Defaults struct {
	Units    health.UnitSystem
	Sex      health.Sex
	Activity health.ActivityLevel
	Goal     health.Goal
}

// Profile converts the entry to a health.Profile. Units and sex are parsed
// strictly; activity and goal fall back with a logged warning.
func (e Entry) Profile(d Defaults) (health.Profile, error) {
	p := health.Profile{
		Name: e.Name,
		BiometricInput: health.BiometricInput{
			Weight: e.Weight,
			Height: e.Height,
			Age:    e.Age,
			Sex:    d.Sex,
			Units:  d.Units,
		},
		Activity: d.Activity,
		Goal:     d.Goal,
	}

	var err error
	if e.Units != "" {
		if p.Units, err = health.ParseUnitSystem(e.Units); err != nil {
			return health.Profile{}, err
		}
	}
	if e.Sex != "" {
		if p.Sex, err = health.ParseSex(e.Sex); err != nil {
			return health.Profile{}, err
		}
	}
	if e.Activity != "" {
		p.Activity = health.ActivityLevelOrDefault(e.Activity)
	}
	if e.Goal != "" {
		p.Goal = health.GoalOrDefault(e.Goal)
	}
	return p, nil
}

// Load reads a profiles file from path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profiles file: %w", err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes a profiles document. Unknown keys are rejected so typos such
// as "hieght" do not silently zero a field.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoProfiles
		}
		return nil, fmt.Errorf("parsing profiles YAML: %w", err)
	}
	if len(file.Profiles) == 0 {
		return nil, ErrNoProfiles
	}
	return &file, nil
}

// Result is the outcome for one entry.
type Result struct {
	Index  int            `json:"index" yaml:"index"`
	Name   string         `json:"name,omitempty" yaml:"name,omitempty"`
	Report *health.Report `json:"report,omitempty" yaml:"report,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`

	// Err is the underlying error, if any.
	Err error `json:"-" yaml:"-"`
}

// OK reports whether the entry was assessed successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Options configure Run.
type Options struct {
	// Concurrency bounds parallel assessments. Zero means runtime.NumCPU().
	Concurrency int
	Defaults    Defaults
	// OnProgress, if set, is called after each entry completes. It may be
	// called from several goroutines.
	OnProgress ProgressCallback
}

// Run validates and assesses every entry. The returned slice has one
// Result per entry in input order. The error is non-nil only for invalid
// options or when ctx is cancelled.
func Run(ctx context.Context, entries []Entry, opts Options) ([]Result, error) {
	if len(entries) == 0 {
		return nil, ErrNoProfiles
	}

	limit := opts.Concurrency
	if limit == 0 {
		limit = min(runtime.NumCPU(), MaxConcurrency)
	}
	if limit < MinConcurrency || limit > MaxConcurrency {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, limit)
	}

	log := logging.ComponentLogger(*logging.FromContext(ctx), "batch")
	log.Debug().Ctx(ctx).Int("profiles", len(entries)).Int("concurrency", limit).Msg("batch started")

	progress := NewProgress(len(entries))
	results := make([]Result, len(entries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			results[i] = assess(i, entry, opts.Defaults)
			if results[i].Err != nil {
				log.Debug().Ctx(ctx).Int("index", i).Str("name", entry.Name).
					Err(results[i].Err).Msg("profile failed")
			}

			progress.Add(results[i].OK())
			if opts.OnProgress != nil {
				opts.OnProgress(progress)
			}
			// Per-profile failures live in the result and never cancel the group.
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	snap := progress.Snapshot()
	log.Info().Ctx(ctx).
		Int("succeeded", snap.Succeeded).
		Int("failed", snap.Failed).
		Dur("elapsed", snap.Elapsed).
		Msg("batch complete")

	return results, nil
}

func assess(index int, e Entry, d Defaults) Result {
	res := Result{Index: index, Name: e.Name}

	p, err := e.Profile(d)
	if err == nil {
		err = p.Validate()
	}
	if err == nil {
		var report health.Report
		if report, err = health.Assess(p); err == nil {
			res.Report = &report
		}
	}

	if err != nil {
		res.Err = err
		res.Error = err.Error()
	}
	return res
}

// Summarize counts successful and failed results.
func Summarize(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
