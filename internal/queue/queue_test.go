package queue

import (
	"testing"

	"github.com/gigsterhq/gigster/pkg/models"
)

func testJobs() []models.Job {
	return []models.Job{
		{ID: "j1", Title: "Senior Frontend Developer", Company: "TechCorp"},
		{ID: "j2", Title: "Full Stack Engineer", Company: "StartupCo"},
		{ID: "j3", Title: "DevOps Engineer", Company: "CloudTech"},
	}
}

func checkInvariant(t *testing.T, q *Queue) {
	t.Helper()
	if q.Index() != len(q.History()) {
		t.Errorf("invariant broken: index %d != history length %d", q.Index(), len(q.History()))
	}
	if got := len(q.Interested()) + len(q.Rejected()); got != len(q.History()) {
		t.Errorf("invariant broken: interested+rejected %d != history length %d", got, len(q.History()))
	}
}

func TestLoadResetsProgress(t *testing.T) {
	q := New()
	q.Load(testJobs())
	q.SwipeRight("j1")

	q.Load(testJobs()[:2])
	if q.Index() != 0 {
		t.Errorf("index after Load = %d, expected 0", q.Index())
	}
	if len(q.History()) != 0 || len(q.Interested()) != 0 || len(q.Rejected()) != 0 {
		t.Error("Load should clear history and derived lists")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", q.Len())
	}
}

func TestLoadEmptyListExhaustsQueue(t *testing.T) {
	q := New()
	q.Load(nil)
	if q.HasMore() {
		t.Error("empty queue should have no more jobs")
	}
	if _, ok := q.Current(); ok {
		t.Error("Current() on empty queue should report no job")
	}
}

func TestSwipesAdvanceAndPartition(t *testing.T) {
	q := New()
	q.Load(testJobs())

	q.SwipeRight("j1")
	checkInvariant(t, q)
	q.SwipeLeft("j2")
	checkInvariant(t, q)

	if q.Index() != 2 {
		t.Errorf("index = %d, expected 2", q.Index())
	}
	interested := q.Interested()
	if len(interested) != 1 || interested[0].ID != "j1" {
		t.Errorf("interested = %+v, expected [j1]", interested)
	}
	rejected := q.Rejected()
	if len(rejected) != 1 || rejected[0].ID != "j2" {
		t.Errorf("rejected = %+v, expected [j2]", rejected)
	}

	current, ok := q.Current()
	if !ok || current.ID != "j3" {
		t.Errorf("Current() = %+v, expected j3", current)
	}

	q.SwipeRight("j3")
	if q.HasMore() {
		t.Error("queue should be exhausted after swiping every job")
	}
	checkInvariant(t, q)
}

func TestUndoInvertsSwipeRight(t *testing.T) {
	q := New()
	q.Load(testJobs())

	q.SwipeRight("j1")
	q.Undo()

	if q.Index() != 0 {
		t.Errorf("index after undo = %d, expected 0", q.Index())
	}
	if len(q.History()) != 0 {
		t.Errorf("history after undo = %d records, expected 0", len(q.History()))
	}
	if len(q.Interested()) != 0 {
		t.Error("interested should be empty after undoing a right swipe")
	}
	current, ok := q.Current()
	if !ok || current.ID != "j1" {
		t.Errorf("Current() after undo = %+v, expected j1", current)
	}
	checkInvariant(t, q)
}

func TestUndoInvertsSwipeLeft(t *testing.T) {
	q := New()
	q.Load(testJobs())

	q.SwipeLeft("j1")
	q.Undo()

	if len(q.Rejected()) != 0 {
		t.Error("rejected should be empty after undoing a left swipe")
	}
	if q.Index() != 0 {
		t.Errorf("index after undo = %d, expected 0", q.Index())
	}
	checkInvariant(t, q)
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	q := New()
	q.Load(testJobs())
	q.Undo()

	if q.Index() != 0 || len(q.History()) != 0 {
		t.Error("Undo on empty history should change nothing")
	}
	checkInvariant(t, q)
}

func TestUndoRestoresExhaustedQueue(t *testing.T) {
	q := New()
	q.Load(testJobs()[:1])
	q.SwipeRight("j1")
	if q.HasMore() {
		t.Fatal("queue should be exhausted")
	}
	q.Undo()
	if !q.HasMore() {
		t.Error("Undo should make the last job current again")
	}
}

func TestResetKeepsJobs(t *testing.T) {
	q := New()
	q.Load(testJobs()[:2])
	q.SwipeRight("j1")
	q.SwipeLeft("j2")

	q.Reset()

	if q.Index() != 0 {
		t.Errorf("index after Reset = %d, expected 0", q.Index())
	}
	if len(q.History()) != 0 || len(q.Interested()) != 0 || len(q.Rejected()) != 0 {
		t.Error("Reset should clear history and derived lists")
	}
	if !q.HasMore() {
		t.Error("Reset should replay the same list from the start")
	}
	if q.Len() != 2 {
		t.Errorf("Len() after Reset = %d, expected 2", q.Len())
	}
	checkInvariant(t, q)
}

func TestInvariantHoldsForArbitrarySequences(t *testing.T) {
	q := New()
	q.Load(testJobs())

	steps := []func(){
		func() { q.SwipeRight("j1") },
		func() { q.Undo() },
		func() { q.SwipeLeft("j1") },
		func() { q.SwipeRight("j2") },
		func() { q.Undo() },
		func() { q.Undo() },
		func() { q.SwipeRight("j1") },
		func() { q.SwipeRight("j2") },
		func() { q.SwipeLeft("j3") },
	}
	for i, step := range steps {
		step()
		checkInvariant(t, q)
		if t.Failed() {
			t.Fatalf("invariant broken after step %d", i)
		}
	}
	if q.Index() != 3 {
		t.Errorf("final index = %d, expected 3", q.Index())
	}
}
