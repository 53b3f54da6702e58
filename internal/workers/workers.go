package workers

type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers so the application can start them as
// one unit.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
