package domain

// Worker is a registered employee. Read-only from this module's
// perspective: accident intake only looks victims up by login ID.
type Worker struct {
	ID   string
	Name string
}

// WorkAssignment associates a worker with a work site.
type WorkAssignment struct {
	WorkerID string
	WorkID   string
}
