// Package queue holds the ordered list of jobs being swiped through,
// the current position, and the swipe history.
//
// Invariant: the current index always equals the history length, and
// the interested and rejected lists partition the history by decision.
package queue

import "github.com/gigsterhq/gigster/pkg/models"

// Queue is the job queue state machine. All operations are total: the
// only "failures" are no-ops (undo on empty history, current job when
// exhausted). Not safe for concurrent use; the app mutates it from a
// single interaction loop.
type Queue struct {
	jobs       []models.Job
	index      int
	history    []models.SwipeRecord
	interested []models.Job
	rejected   []models.Job
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Load replaces the queue contents and resets all progress. An empty
// list simply leaves the queue exhausted.
func (q *Queue) Load(jobs []models.Job) {
	q.jobs = make([]models.Job, len(jobs))
	copy(q.jobs, jobs)
	q.index = 0
	q.history = nil
	q.interested = nil
	q.rejected = nil
}

// Current returns the job at the current position. ok is false once the
// queue is exhausted.
func (q *Queue) Current() (models.Job, bool) {
	if q.index < len(q.jobs) {
		return q.jobs[q.index], true
	}
	return models.Job{}, false
}

// HasMore reports whether any unswiped jobs remain.
func (q *Queue) HasMore() bool {
	return q.index < len(q.jobs)
}

// SwipeRight files jobID as interested and advances. The caller is
// responsible for passing the id of the current job.
func (q *Queue) SwipeRight(jobID string) {
	q.swipe(jobID, models.DecisionInterested)
}

// SwipeLeft files jobID as rejected and advances.
func (q *Queue) SwipeLeft(jobID string) {
	q.swipe(jobID, models.DecisionRejected)
}

func (q *Queue) swipe(jobID string, decision models.SwipeDecision) {
	job, ok := q.findJob(jobID)
	if !ok {
		return
	}
	switch decision {
	case models.DecisionInterested:
		q.interested = append(q.interested, job)
	case models.DecisionRejected:
		q.rejected = append(q.rejected, job)
	}
	q.history = append(q.history, models.SwipeRecord{JobID: jobID, Decision: decision})
	q.index++
}

// Undo reverses the most recent swipe: the record is popped, the job is
// removed from its derived list, and the index steps back (floored at
// zero). No-op when the history is empty.
func (q *Queue) Undo() {
	if len(q.history) == 0 {
		return
	}
	last := q.history[len(q.history)-1]
	q.history = q.history[:len(q.history)-1]

	switch last.Decision {
	case models.DecisionInterested:
		q.interested = removeJob(q.interested, last.JobID)
	case models.DecisionRejected:
		q.rejected = removeJob(q.rejected, last.JobID)
	}
	if q.index > 0 {
		q.index--
	}
}

// Reset replays the same job list from the start: index and history are
// cleared, the queue contents are untouched.
func (q *Queue) Reset() {
	q.index = 0
	q.history = nil
	q.interested = nil
	q.rejected = nil
}

// Job returns the loaded job with the given id.
func (q *Queue) Job(jobID string) (models.Job, bool) {
	return q.findJob(jobID)
}

// Index returns the current position.
func (q *Queue) Index() int { return q.index }

// Len returns the number of loaded jobs.
func (q *Queue) Len() int { return len(q.jobs) }

// History returns the swipe records in chronological order.
func (q *Queue) History() []models.SwipeRecord {
	out := make([]models.SwipeRecord, len(q.history))
	copy(out, q.history)
	return out
}

// Interested returns the jobs swiped right, in swipe order.
func (q *Queue) Interested() []models.Job {
	out := make([]models.Job, len(q.interested))
	copy(out, q.interested)
	return out
}

// Rejected returns the jobs swiped left, in swipe order.
func (q *Queue) Rejected() []models.Job {
	out := make([]models.Job, len(q.rejected))
	copy(out, q.rejected)
	return out
}

func (q *Queue) findJob(jobID string) (models.Job, bool) {
	for _, job := range q.jobs {
		if job.ID == jobID {
			return job, true
		}
	}
	return models.Job{}, false
}

func removeJob(jobs []models.Job, jobID string) []models.Job {
	out := jobs[:0]
	for _, job := range jobs {
		if job.ID != jobID {
			out = append(out, job)
		}
	}
	return out
}
