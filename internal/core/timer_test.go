package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(30 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(10 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the interval elapses")
	}
	clock = clock.Add(20 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once 30ms accumulated")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(30 * time.Millisecond)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("expected backlog capped to 2 steps, got %d", steps)
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	if got := NewFixedStep(0).Interval(); got != DefaultTickInterval {
		t.Fatalf("interval = %v, want %v", got, DefaultTickInterval)
	}
}
