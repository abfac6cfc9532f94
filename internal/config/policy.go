package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Policy holds the adjustable thresholds of the retention engine. The risk
// tier cutoffs and alerting windows are operator policy, not business law:
// they can be changed in the policy file without a code change and take
// effect on the next operation.
//
// The model-evaluation decision boundary is deliberately NOT here. It is a
// fixed 0.5 cut (see the evaluation package) so evaluation stays comparable
// across threshold changes.
type Policy struct {
	// HighRiskThreshold: churn probability at or above this is tier high.
	HighRiskThreshold float64 `yaml:"high_risk_threshold"`
	// MediumRiskThreshold: at or above this (and below high) is tier medium.
	MediumRiskThreshold float64 `yaml:"medium_risk_threshold"`
	// InactivityDays: attendance gap beyond this raises an inactivity alert.
	InactivityDays int `yaml:"inactivity_days"`
	// OverdueHighSeverityDays: payments overdue longer than this are
	// high severity instead of medium.
	OverdueHighSeverityDays int `yaml:"overdue_high_severity_days"`
	// EvaluationWindowDays: default lookback for model evaluation.
	EvaluationWindowDays int `yaml:"evaluation_window_days"`
}

// DefaultPolicy returns the built-in policy values.
func DefaultPolicy() Policy {
	return Policy{
		HighRiskThreshold:       0.70,
		MediumRiskThreshold:     0.40,
		InactivityDays:          14,
		OverdueHighSeverityDays: 7,
		EvaluationWindowDays:    30,
	}
}

// Validate checks the policy invariants.
func (p Policy) Validate() error {
	if p.MediumRiskThreshold < 0 || p.HighRiskThreshold > 1 {
		return fmt.Errorf("risk thresholds must lie in [0,1]")
	}
	if p.MediumRiskThreshold >= p.HighRiskThreshold {
		return fmt.Errorf("medium_risk_threshold (%.2f) must be below high_risk_threshold (%.2f)",
			p.MediumRiskThreshold, p.HighRiskThreshold)
	}
	if p.InactivityDays <= 0 {
		return fmt.Errorf("inactivity_days must be positive")
	}
	if p.OverdueHighSeverityDays <= 0 {
		return fmt.Errorf("overdue_high_severity_days must be positive")
	}
	if p.EvaluationWindowDays <= 0 {
		return fmt.Errorf("evaluation_window_days must be positive")
	}
	return nil
}

// PolicyLoader reads the policy YAML file and watches it for changes.
type PolicyLoader struct {
	path     string
	mu       sync.RWMutex
	current  Policy
	onChange []func(Policy)
	watcher  *fsnotify.Watcher
}

// NewPolicyLoader creates a loader and performs the initial load. An empty
// path yields the built-in defaults with no file backing.
func NewPolicyLoader(path string) (*PolicyLoader, error) {
	l := &PolicyLoader{path: path, current: DefaultPolicy()}
	if path == "" {
		return l, nil
	}
	p, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = p
	return l, nil
}

// Policy returns the current (latest) policy.
func (l *PolicyLoader) Policy() Policy {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the policy reloads.
func (l *PolicyLoader) OnChange(fn func(Policy)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the policy on file
// changes. Call the returned stop function to clean up. A no-op when the
// loader has no file backing.
func (l *PolicyLoader) Watch() (stop func(), err error) {
	if l.path == "" {
		return func() {}, nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("policy watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("policy watcher add %s: %w", l.path, err)
	}
	l.watcher = w

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case evt, ok := <-w.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				p, err := l.load()
				if err != nil {
					log.Printf("policy: reload failed, keeping previous: %v", err)
					continue
				}
				l.mu.Lock()
				l.current = p
				callbacks := l.onChange
				l.mu.Unlock()
				log.Printf("policy: reloaded from %s", l.path)
				for _, fn := range callbacks {
					fn(p)
				}
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("policy: watcher error: %v", werr)
			}
		}
	}()

	return func() {
		w.Close()
		<-done
	}, nil
}

func (l *PolicyLoader) load() (Policy, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return Policy{}, fmt.Errorf("reading policy %s: %w", l.path, err)
	}
	p := DefaultPolicy()
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Policy{}, fmt.Errorf("parsing policy %s: %w", l.path, err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("policy %s: %w", l.path, err)
	}
	return p, nil
}
