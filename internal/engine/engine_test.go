package engine

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"solarwin/internal/logging"
	"solarwin/internal/tweak"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOp is an operation identified by name; the spy decides its result.
type fakeOp struct{ name string }

func (o fakeOp) Name() string   { return o.name }
func (o fakeOp) Execute() error { return errors.New("fakeOp must run through the spy") }

// spyExecutor records every operation it is asked to run.
type spyExecutor struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]error
	delay    time.Duration

	inFlight    int32
	maxInFlight int32
}

func newSpy(failures map[string]error) *spyExecutor {
	return &spyExecutor{failures: failures}
}

func (s *spyExecutor) Execute(op tweak.Operation) error {
	n := atomic.AddInt32(&s.inFlight, 1)
	defer atomic.AddInt32(&s.inFlight, -1)
	for {
		max := atomic.LoadInt32(&s.maxInFlight)
		if n <= max || atomic.CompareAndSwapInt32(&s.maxInFlight, max, n) {
			break
		}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, op.Name())
	return s.failures[op.Name()]
}

func (s *spyExecutor) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func scenarioCatalog(t *testing.T) *tweak.Catalog {
	t.Helper()
	c, err := tweak.NewCatalog(
		tweak.NewAutomated("vis", "Disable Visual Effects", "Reduces load", fakeOp{"op_A"}),
		tweak.NewManual("bg", "Disable Background Apps", "Disable background apps manually"),
		tweak.NewAutomated("svc", "Services", "Stops services", fakeOp{"op_B"}, fakeOp{"op_C"}),
	)
	require.NoError(t, err)
	return c
}

func TestApplyScenario(t *testing.T) {
	spy := newSpy(map[string]error{"op_C": errors.New("access denied")})
	e := New(scenarioCatalog(t), WithExecutor(spy))

	report := e.Apply(NewSelection("vis", "bg", "svc", "ghost"))

	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, Outcome{TweakID: "vis", DisplayName: "Disable Visual Effects", Status: StatusApplied}, report.Outcomes[0])
	assert.Equal(t, Outcome{
		TweakID:     "bg",
		DisplayName: "Disable Background Apps",
		Status:      StatusManualRequired,
		Detail:      "Disable background apps manually",
	}, report.Outcomes[1])
	assert.Equal(t, "svc", report.Outcomes[2].TweakID)
	assert.Equal(t, StatusFailed, report.Outcomes[2].Status)
	assert.Contains(t, report.Outcomes[2].Detail, "access denied")
	assert.Contains(t, report.Outcomes[2].Detail, "op_C")

	assert.Equal(t, []string{"op_A", "op_B", "op_C"}, spy.Calls())
	assert.Equal(t, Counts{Applied: 1, ManualRequired: 1, Failed: 1}, report.Counts())
}

func TestApplyFollowsCatalogOrder(t *testing.T) {
	spy := newSpy(nil)
	e := New(scenarioCatalog(t), WithExecutor(spy))

	report := e.Apply(NewSelection("svc", "ghost", "vis"))

	var ids []string
	for _, o := range report.Outcomes {
		ids = append(ids, o.TweakID)
	}
	assert.Equal(t, []string{"vis", "svc"}, ids)
}

func TestApplyEmptySelection(t *testing.T) {
	spy := newSpy(nil)
	e := New(scenarioCatalog(t), WithExecutor(spy))

	report := e.Apply(NewSelection())
	assert.True(t, report.Empty())
	assert.Empty(t, spy.Calls())

	report = e.Apply(nil)
	assert.True(t, report.Empty())
}

func TestApplyUnknownIdsOnly(t *testing.T) {
	spy := newSpy(nil)
	report := New(scenarioCatalog(t), WithExecutor(spy)).Apply(NewSelection("ghost", "phantom"))

	assert.True(t, report.Empty())
	assert.Empty(t, spy.Calls())
}

func TestManualTweakNeverExecutes(t *testing.T) {
	spy := newSpy(nil)
	report := New(scenarioCatalog(t), WithExecutor(spy)).Apply(NewSelection("bg"))

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, StatusManualRequired, report.Outcomes[0].Status)
	assert.Equal(t, "Disable background apps manually", report.Outcomes[0].Detail)
	assert.Empty(t, spy.Calls())
}

func TestFailFastWithinTweak(t *testing.T) {
	ops := []tweak.Operation{fakeOp{"w1"}, fakeOp{"w2"}, fakeOp{"w3"}, fakeOp{"w4"}, fakeOp{"w5"}}
	c, err := tweak.NewCatalog(
		tweak.NewAutomated("edge", "Debloat Edge", "policies", ops...),
		tweak.NewAutomated("after", "After", "runs anyway", fakeOp{"z1"}),
	)
	require.NoError(t, err)

	for k := 1; k <= len(ops); k++ {
		failing := ops[k-1].Name()
		spy := newSpy(map[string]error{failing: errors.New("boom")})

		report := New(c, WithExecutor(spy)).Apply(NewSelection("edge", "after"))

		require.Len(t, report.Outcomes, 2)
		assert.Equal(t, StatusFailed, report.Outcomes[0].Status, "k=%d", k)
		assert.Contains(t, report.Outcomes[0].Detail, failing)
		assert.Equal(t, StatusApplied, report.Outcomes[1].Status, "failure must not leak into the next tweak")

		calls := spy.Calls()
		assert.Len(t, calls, k+1, "ops after %s must not run", failing)
		assert.NotContains(t, calls[:k], "z1")
		assert.Equal(t, "z1", calls[k])
	}
}

func TestApplyIsRepeatable(t *testing.T) {
	c := scenarioCatalog(t)
	sel := NewSelection("vis", "bg", "svc")

	first := New(c, WithExecutor(newSpy(nil))).Apply(sel)
	second := New(c, WithExecutor(newSpy(nil))).Apply(sel)

	assert.Equal(t, first, second)
	assert.Len(t, first.Applied(), 2)
	assert.Len(t, first.ManualRequired(), 1)
	assert.Empty(t, first.Failed())
}

func TestApplySerializesCycles(t *testing.T) {
	spy := newSpy(nil)
	spy.delay = 5 * time.Millisecond
	e := New(scenarioCatalog(t), WithExecutor(spy))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Apply(NewSelection("vis", "svc"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&spy.maxInFlight))
	assert.Len(t, spy.Calls(), 12)
}

type panicOp struct{}

func (panicOp) Name() string   { return "explode" }
func (panicOp) Execute() error { panic("registry handle vanished") }

type plainErrOp struct{}

func (plainErrOp) Name() string   { return "set value" }
func (plainErrOp) Execute() error { return errors.New("not found") }

func TestDirectExecutorNormalizes(t *testing.T) {
	c, err := tweak.NewCatalog(
		tweak.NewAutomated("p", "Panics", "x", panicOp{}),
		tweak.NewAutomated("e", "Errors", "y", plainErrOp{}),
	)
	require.NoError(t, err)

	report := Apply(c, NewSelection("p", "e"))

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, StatusFailed, report.Outcomes[0].Status)
	assert.Contains(t, report.Outcomes[0].Detail, "registry handle vanished")
	assert.Equal(t, "set value: not found", report.Outcomes[1].Detail)

	var opErr *tweak.OperationError
	assert.ErrorAs(t, DirectExecutor{}.Execute(plainErrOp{}), &opErr)
}

func TestDryRunExecutor(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info", "")
	require.NoError(t, err)

	c, err := tweak.NewCatalog(tweak.NewAutomated("e", "Errors", "y", plainErrOp{}))
	require.NoError(t, err)

	report := New(c, WithExecutor(DryRunExecutor{Logger: logger}), WithLogger(logger)).Apply(NewSelection("e"))

	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, StatusApplied, report.Outcomes[0].Status)
	assert.Contains(t, buf.String(), "set value")
	assert.Contains(t, buf.String(), "apply cycle finished")
}

func TestSelection(t *testing.T) {
	s := NewSelection("a", "b", "a")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
}
