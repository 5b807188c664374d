package session

import (
	"strings"
	"testing"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/drills/mentalmath"
	"github.com/cortexprime/cortex/internal/drills/reaction"
	"github.com/cortexprime/cortex/internal/drills/thinkaloud"
)

func mathDef(duration int) catalog.GameDefinition {
	return catalog.GameDefinition{
		ID:       "mental-math",
		Name:     "Mental Math",
		Domain:   "problem",
		Kind:     "mentalmath",
		Duration: duration,
	}
}

func textDef() catalog.GameDefinition {
	return catalog.GameDefinition{
		ID:     "think-aloud",
		Name:   "Think Aloud",
		Domain: "language",
		Kind:   "thinkaloud",
	}
}

func TestStartActivates(t *testing.T) {
	s := New(mathDef(30), mentalmath.New(), 1)

	if s.State() != StateIdle {
		t.Fatalf("expected Idle before Start, got %v", s.State())
	}
	if s.Round() != nil {
		t.Error("expected no round before Start")
	}

	s.Start()

	if s.State() != StateActive {
		t.Fatalf("expected Active after Start, got %v", s.State())
	}
	if s.Round() == nil {
		t.Error("expected a live round after Start")
	}
	if s.Remaining() != 30 {
		t.Errorf("expected 30s remaining, got %d", s.Remaining())
	}
}

func TestCorrectAnswersAccumulate(t *testing.T) {
	s := New(mathDef(30), mentalmath.New(), 7)
	s.Start()

	for i := 0; i < 5; i++ {
		r, ok := s.Round().(*mentalmath.Round)
		if !ok {
			t.Fatalf("round %d: expected *mentalmath.Round, got %T", i, s.Round())
		}
		s.Submit(mentalmath.Answer{Value: r.Answer})
	}

	if s.Score() != 50 {
		t.Errorf("expected score 50 after 5 correct answers, got %d", s.Score())
	}
	if s.State() != StateActive {
		t.Errorf("expected still Active, got %v", s.State())
	}
}

func TestWrongAnswerReplacesRound(t *testing.T) {
	s := New(mathDef(30), mentalmath.New(), 3)
	s.Start()

	r := s.Round().(*mentalmath.Round)
	wrong := r.Answer + 1000 // never among the choices
	s.Submit(mentalmath.Answer{Value: wrong})

	if s.Score() != 0 {
		t.Errorf("expected score 0 after wrong answer, got %d", s.Score())
	}
	if s.Round() == r {
		t.Error("expected a fresh round after a scored answer")
	}
	if !s.LastResult().Done || s.LastResult().Correct {
		t.Errorf("expected done, incorrect result, got %+v", s.LastResult())
	}
}

func TestScoreNeverNegative(t *testing.T) {
	def := catalog.GameDefinition{ID: "reaction", Domain: "speed", Kind: "reaction", Duration: 30}
	s := New(def, reaction.New(), 5)
	s.Start()

	// Early taps carry a penalty but the total clamps at zero.
	s.Submit(reaction.Tap{Early: true})
	s.Submit(reaction.Tap{Early: true})

	if s.Score() != 0 {
		t.Errorf("expected score clamped at 0, got %d", s.Score())
	}
}

func TestTickCountsDownAndCompletes(t *testing.T) {
	s := New(mathDef(3), mentalmath.New(), 1)
	s.Start()

	s.Tick()
	s.Tick()
	if s.State() != StateActive {
		t.Fatalf("expected Active with time left, got %v", s.State())
	}
	if s.Remaining() != 1 {
		t.Errorf("expected 1s remaining, got %d", s.Remaining())
	}

	s.Tick()
	if s.State() != StateCompleted {
		t.Fatalf("expected Completed at zero, got %v", s.State())
	}
	if s.Round() != nil {
		t.Error("expected in-flight round discarded on completion")
	}
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	s := New(mathDef(3), mentalmath.New(), 1)

	// Before Start nothing moves.
	s.Tick()
	s.Submit(mentalmath.Answer{Value: 1})
	s.Evaluate()
	s.Reset()
	if s.State() != StateIdle {
		t.Fatalf("expected still Idle, got %v", s.State())
	}

	s.Start()
	s.Start() // second Start ignored
	s.Evaluate()
	if s.State() != StateActive {
		t.Fatalf("expected Active, got %v", s.State())
	}

	s.Tick()
	s.Tick()
	s.Tick()
	score := s.Score()

	// Completed: submits and ticks are ignored.
	s.Submit(mentalmath.Answer{Value: 1})
	s.Tick()
	if s.State() != StateCompleted || s.Score() != score {
		t.Errorf("expected Completed with score %d, got %v score %d", score, s.State(), s.Score())
	}
}

func TestResetRestarts(t *testing.T) {
	s := New(mathDef(2), mentalmath.New(), 9)
	s.Start()

	r := s.Round().(*mentalmath.Round)
	s.Submit(mentalmath.Answer{Value: r.Answer})
	s.Tick()
	s.Tick()
	if s.State() != StateCompleted {
		t.Fatalf("expected Completed, got %v", s.State())
	}

	s.Reset()
	if s.State() != StateActive {
		t.Fatalf("expected Active after Reset, got %v", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("expected score reset to 0, got %d", s.Score())
	}
	if s.Remaining() != 2 {
		t.Errorf("expected time budget restored, got %d", s.Remaining())
	}
	if s.Round() == nil {
		t.Error("expected a fresh round after Reset")
	}
}

func TestDefaultDuration(t *testing.T) {
	s := New(mathDef(0), mentalmath.New(), 1)
	if s.Duration() != DefaultDuration {
		t.Errorf("expected default duration %d, got %d", DefaultDuration, s.Duration())
	}
}

func TestFreeTextFlow(t *testing.T) {
	s := New(textDef(), thinkaloud.New(), 11)
	s.Start()

	if s.Timed() {
		t.Error("free-text sessions should not be timed")
	}
	if s.Duration() != 0 {
		t.Errorf("expected duration 0 for untimed game, got %d", s.Duration())
	}
	if _, ok := s.Round().(*thinkaloud.Round); !ok {
		t.Fatalf("expected *thinkaloud.Round, got %T", s.Round())
	}

	// Ticks never complete an untimed session.
	for i := 0; i < 100; i++ {
		s.Tick()
	}
	if s.State() != StateActive {
		t.Fatalf("expected still Active, got %v", s.State())
	}

	text := "I think the key is to weigh the tradeoffs because every option has costs. " +
		"For example, moving fast risks mistakes. On the other hand, waiting has its own price."
	s.Submit(thinkaloud.Response{Text: text})

	if s.State() != StateEvaluating {
		t.Fatalf("expected Evaluating after submission, got %v", s.State())
	}
	if s.Round() != nil {
		t.Error("expected no round while evaluating")
	}

	// Only Evaluate moves the session on from here.
	s.Submit(thinkaloud.Response{Text: "ignored"})
	s.Tick()
	if s.State() != StateEvaluating {
		t.Fatalf("expected still Evaluating, got %v", s.State())
	}

	s.Evaluate()
	if s.State() != StateCompleted {
		t.Fatalf("expected Completed after Evaluate, got %v", s.State())
	}

	ev := s.Evaluation()
	if ev == nil {
		t.Fatal("expected an evaluation")
	}
	if s.Score() != ev.Score {
		t.Errorf("session score %d should equal evaluation score %d", s.Score(), ev.Score)
	}
	if ev.Feedback == "" {
		t.Error("expected non-empty feedback")
	}
}

func TestRewardFromScore(t *testing.T) {
	s := New(mathDef(2), mentalmath.New(), 9)
	s.Start()
	r := s.Round().(*mentalmath.Round)
	s.Submit(mentalmath.Answer{Value: r.Answer})
	s.Tick()
	s.Tick()

	// 10 points -> 10/2 + 10 XP.
	if got := s.Reward(); got != 15 {
		t.Errorf("expected reward 15 for score 10, got %d", got)
	}
}

func TestDeterministicBySeed(t *testing.T) {
	a := New(mathDef(30), mentalmath.New(), 12345)
	b := New(mathDef(30), mentalmath.New(), 12345)
	a.Start()
	b.Start()

	for i := 0; i < 20; i++ {
		ra := a.Round().(*mentalmath.Round)
		rb := b.Round().(*mentalmath.Round)
		if ra.Question != rb.Question || ra.Choices != rb.Choices {
			t.Fatalf("round %d diverged: %+v vs %+v", i, ra, rb)
		}
		a.Submit(mentalmath.Answer{Value: ra.Answer})
		b.Submit(mentalmath.Answer{Value: rb.Answer})
	}

	if a.Score() != b.Score() {
		t.Errorf("scores diverged: %d vs %d", a.Score(), b.Score())
	}
}

func TestStateString(t *testing.T) {
	states := map[State]string{
		StateIdle:       "idle",
		StateActive:     "active",
		StateEvaluating: "evaluating",
		StateCompleted:  "completed",
	}
	for s, want := range states {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
	if got := State(99).String(); !strings.Contains(got, "unknown") {
		t.Errorf("unexpected name for invalid state: %q", got)
	}
}
