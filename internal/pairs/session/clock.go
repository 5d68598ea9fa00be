package session

import "time"

// task is a deferred effect bound to the stage instance that scheduled it.
type task struct {
	at  time.Duration
	seq int
	gen int
	run func()
}

// schedule queues fn to run after delay on the session clock.
// The task is dropped if a new stage starts before it fires.
func (s *Session) schedule(delay time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{
		at:  s.now + delay,
		seq: s.seq,
		gen: s.generation,
		run: fn,
	})
}

// startTimer (re)starts the one-second countdown from the current instant.
func (s *Session) startTimer() {
	s.timerOn = true
	s.nextTick = s.now + time.Second
}

// stopTimer halts the countdown. Pending tasks are unaffected.
func (s *Session) stopTimer() {
	s.timerOn = false
}

// Advance moves the session clock forward by dt, firing countdown ticks and
// deferred tasks in chronological order. At equal instants tasks fire before
// the tick, and tasks fire in the order they were scheduled.
func (s *Session) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	target := s.now + dt

	for {
		ti := s.nextTask()
		tickDue := s.timerOn && s.nextTick <= target
		taskDue := ti >= 0 && s.tasks[ti].at <= target

		switch {
		case taskDue && (!tickDue || s.tasks[ti].at <= s.nextTick):
			t := s.tasks[ti]
			s.tasks = append(s.tasks[:ti], s.tasks[ti+1:]...)
			s.now = t.at
			if t.gen == s.generation {
				t.run()
			}
		case tickDue:
			s.now = s.nextTick
			s.tick()
		default:
			s.now = target
			return
		}
	}
}

// nextTask returns the index of the earliest queued task, or -1.
func (s *Session) nextTask() int {
	best := -1
	for i, t := range s.tasks {
		if best < 0 || t.at < s.tasks[best].at || (t.at == s.tasks[best].at && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	return best
}

// tick is one countdown step.
func (s *Session) tick() {
	s.nextTick += time.Second
	if s.status != StatusPlaying {
		return
	}
	s.timeLeft -= time.Second
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.gameOver()
	}
}
