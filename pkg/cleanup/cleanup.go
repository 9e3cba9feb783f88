package cleanup

import (
	"log/slog"
	"slices"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs the registered jobs newest first and forgets them.
func CleanUp() {
	mu.Lock()
	pending := slices.Clone(jobs)
	jobs = nil
	mu.Unlock()

	for _, j := range slices.Backward(pending) {
		slog.Info("cleanup job started", slog.String("job", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job finished with error", slog.String("job", j.Name), slog.String("error", err.Error()))
			continue
		}
		slog.Info("cleaned", slog.String("job", j.Name))
	}
}
