package animate

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/schedule"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const frame = 16 * time.Millisecond

// runFrames presents frames until nothing is pending or limit is reached.
func runFrames(m *schedule.Manual, limit int) int {
	n := 0
	for m.PendingFrames() > 0 && n < limit {
		m.Frame(frame)
		n++
	}
	return n
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{3, 0},
		{12.5, 1},
		{12.50, 1},
		{-0.125, 3},
		{1e21, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := Precision(tt.v); got != tt.want {
			t.Errorf("Precision(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestPrecisionOf(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"12.50", 2},
		{"12", 0},
		{" 0.100 ", 3},
		{"1.5e-3", 4},
		{"1e3", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := PrecisionOf(tt.s); got != tt.want {
			t.Errorf("PrecisionOf(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestEaseOutExpo(t *testing.T) {
	if got := EaseOutExpo(0, 5, 10, 1000); got != 5 {
		t.Errorf("t=0: %g, want 5", got)
	}
	if got := EaseOutExpo(1000, 5, 10, 1000); math.Abs(got-15) > 1e-9 {
		t.Errorf("t=d: %g, want 15", got)
	}
	if got := EaseOutExpo(10, 5, 10, 0); got != 15 {
		t.Errorf("zero duration: %g, want 15", got)
	}
	prev := -1.0
	for ms := 0.0; ms <= 1000; ms += 10 {
		v := EaseOutExpo(ms, 0, 100, 1000)
		if v < prev {
			t.Fatalf("not monotonic at %gms: %g < %g", ms, v, prev)
		}
		prev = v
	}
}

func TestCountTwoDecimals(t *testing.T) {
	m := schedule.NewManual(epoch)
	var ticks []Tick
	h := Count(m, 0, 12.50, PrecisionOf("12.50"), time.Second, func(tk Tick) {
		ticks = append(ticks, tk)
	})
	runFrames(m, 1000)

	if !h.Done() {
		t.Fatal("count did not finish")
	}
	if len(ticks) < 3 {
		t.Fatalf("only %d ticks", len(ticks))
	}
	for i, tk := range ticks {
		dot := strings.IndexByte(tk.Text, '.')
		if dot < 0 || len(tk.Text)-dot-1 != 2 {
			t.Errorf("tick %d text %q does not have 2 decimals", i, tk.Text)
		}
		if tk.Finished != (i == len(ticks)-1) {
			t.Errorf("tick %d finished = %v", i, tk.Finished)
		}
		if i > 0 && tk.Value < ticks[i-1].Value {
			t.Errorf("tick %d decreased: %g < %g", i, tk.Value, ticks[i-1].Value)
		}
		if tk.Value > 12.5 {
			t.Errorf("tick %d overshot: %g", i, tk.Value)
		}
	}
	last := ticks[len(ticks)-1]
	if last.Value != 12.5 || last.Text != "12.50" || !last.Finished {
		t.Errorf("last tick = %+v, want exactly 12.50 finished", last)
	}
	if ticks[0].Value != 0 || ticks[0].Progress != 0 {
		t.Errorf("first tick = %+v, want the start value at progress 0", ticks[0])
	}
}

func TestCountIntegerTarget(t *testing.T) {
	m := schedule.NewManual(epoch)
	var texts []string
	Animate(m, 0, 1000, 500*time.Millisecond, func(tk Tick) { texts = append(texts, tk.Text) })
	runFrames(m, 1000)

	for _, s := range texts {
		if strings.Contains(s, ".") {
			t.Errorf("integer count showed %q", s)
		}
	}
	if texts[len(texts)-1] != "1000" {
		t.Errorf("final = %q", texts[len(texts)-1])
	}
}

func TestCountDown(t *testing.T) {
	m := schedule.NewManual(epoch)
	var vals []float64
	Count(m, 100, 20, 0, 300*time.Millisecond, func(tk Tick) { vals = append(vals, tk.Value) })
	runFrames(m, 1000)

	for i, v := range vals {
		if v < 20 || v > 100 {
			t.Errorf("value %g out of [20,100]", v)
		}
		if i > 0 && v > vals[i-1] {
			t.Errorf("count down increased at %d: %g > %g", i, v, vals[i-1])
		}
	}
	if vals[len(vals)-1] != 20 {
		t.Errorf("final = %g", vals[len(vals)-1])
	}
}

func TestCancel(t *testing.T) {
	m := schedule.NewManual(epoch)
	ticks := 0
	h := Count(m, 0, 10, 0, time.Second, func(Tick) { ticks++ })

	m.Frame(frame)
	m.Frame(frame)
	h.Cancel()
	h.Cancel()
	runFrames(m, 100)

	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
	if !h.Cancelled() || h.Done() {
		t.Errorf("cancelled=%v done=%v", h.Cancelled(), h.Done())
	}
	if m.PendingFrames() != 0 {
		t.Errorf("cancel left %d frames scheduled", m.PendingFrames())
	}
}

func TestCancelAfterFinishIsNoop(t *testing.T) {
	m := schedule.NewManual(epoch)
	h := Count(m, 0, 1, 0, 10*time.Millisecond, func(Tick) {})
	runFrames(m, 10)
	h.Cancel()
	if !h.Done() || h.Cancelled() {
		t.Errorf("done=%v cancelled=%v", h.Done(), h.Cancelled())
	}
}

func TestCancelFromTick(t *testing.T) {
	m := schedule.NewManual(epoch)
	ticks := 0
	var h *Handle
	h = Count(m, 0, 10, 0, time.Second, func(Tick) {
		ticks++
		h.Cancel()
	})
	runFrames(m, 10)
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
}

func TestAnimatorSupersedes(t *testing.T) {
	m := schedule.NewManual(epoch)
	a := NewAnimator(m, WithDuration(200*time.Millisecond))

	var firstAfter, second int
	secondStarted := false
	first := a.Start(0, 100, 0, func(Tick) {
		if secondStarted {
			firstAfter++
		}
	})
	m.Frame(frame)
	m.Frame(frame)

	secondStarted = true
	a.Start(a.Value(), 50, 0, func(Tick) { second++ })
	runFrames(m, 1000)

	if firstAfter != 0 {
		t.Errorf("superseded count delivered %d ticks", firstAfter)
	}
	if !first.Cancelled() {
		t.Error("first count was not cancelled")
	}
	if second == 0 {
		t.Error("second count never ticked")
	}
	if a.Value() != 50 {
		t.Errorf("Value() = %g, want 50", a.Value())
	}
	if a.Running() {
		t.Error("animator still running")
	}
}

func TestAnimatorDropsInFlightTick(t *testing.T) {
	m := schedule.NewManual(epoch)
	a := NewAnimator(m, WithDuration(200*time.Millisecond))

	var ticks []Tick
	onTick := func(tk Tick) { ticks = append(ticks, tk) }

	a.Start(0, 100, 0, onTick)
	m.Frame(frame)
	a.mu.Lock()
	replaced := a.gen
	a.mu.Unlock()

	// A replay with the same target supersedes the count while one of its
	// ticks has passed the handle check but not reached the animator yet.
	a.Start(0, 100, 0, onTick)
	a.deliver(replaced, Tick{Value: 77}, onTick)

	for _, tk := range ticks {
		if tk.Value == 77 {
			t.Fatal("tick of the replaced count was delivered")
		}
	}
	if a.Value() != 0 {
		t.Errorf("Value() = %g after stale tick, want 0", a.Value())
	}

	runFrames(m, 1000)
	if last := ticks[len(ticks)-1]; !last.Finished || last.Value != 100 {
		t.Errorf("last tick = %+v, want finished at 100", last)
	}
}

func TestAnimatorStartFrom(t *testing.T) {
	m := schedule.NewManual(epoch)
	a := NewAnimator(m)
	var firstTick Tick
	got := false

	a.Start(0, 10, 0, func(Tick) {})
	runFrames(m, 1000)
	a.StartFrom(20, 0, func(tk Tick) {
		if !got {
			firstTick, got = tk, true
		}
	})
	m.Frame(frame)

	if firstTick.Value != 10 {
		t.Errorf("StartFrom began at %g, want 10", firstTick.Value)
	}
	a.Cancel()
	if a.Running() {
		t.Error("Cancel left the animator running")
	}
}

type recordingHooks struct {
	observability.NoopAnimationHooks
	mu                        sync.Mutex
	starts, cancels, finishes int
}

func (r *recordingHooks) OnStart(string, float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts++
}

func (r *recordingHooks) OnCancel(string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancels++
}

func (r *recordingHooks) OnFinish(string, int, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finishes++
}

func TestHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetAnimationHooks(hooks)
	t.Cleanup(observability.Reset)

	m := schedule.NewManual(epoch)
	a := NewAnimator(m, WithDuration(50*time.Millisecond))
	a.Start(0, 1, 0, func(Tick) {})
	h := a.Start(0, 2, 0, func(Tick) {})
	runFrames(m, 100)
	h.Cancel()

	if hooks.starts != 2 || hooks.cancels != 1 || hooks.finishes != 1 {
		t.Errorf("starts=%d cancels=%d finishes=%d, want 2/1/1",
			hooks.starts, hooks.cancels, hooks.finishes)
	}
}
