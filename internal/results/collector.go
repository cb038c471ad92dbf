package results

import (
	"sync"

	"github.com/cybertec-postgresql/tokscan/internal/runner"
)

// Collector aggregates scan runs into a Result. It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	result *Result
}

// NewCollector creates a new result collector
func NewCollector() *Collector {
	return &Collector{
		result: NewResult(),
	}
}

// CollectFromRun records one scan run. Failed and cancelled runs are kept
// with their error so reports can list them.
func (c *Collector) CollectFromRun(run *runner.ScanRun) {
	if run == nil || run.File == nil {
		return
	}

	var fr *FileResult
	if run.Status == runner.ScanOK {
		fr = NewFileResult(run.File.RelativePath, run.File.Language, run.Tokens)
	} else {
		fr = &FileResult{
			Path:     run.File.RelativePath,
			Language: run.File.Language,
		}
		if run.Error != nil {
			fr.Error = run.Error.Error()
		} else {
			fr.Error = run.Status.String()
		}
	}

	c.add(fr)
}

// CollectFromRuns records multiple scan runs
func (c *Collector) CollectFromRuns(runs []*runner.ScanRun) {
	for _, run := range runs {
		c.CollectFromRun(run)
	}
}

// Add records an already built file result, replacing any previous entry
// for the same path.
func (c *Collector) Add(fr *FileResult) {
	c.add(fr)
}

func (c *Collector) add(fr *FileResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result.Files[fr.Path] = fr
}

// Result returns the aggregated result
func (c *Collector) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
