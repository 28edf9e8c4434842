package pipeline

import "testing"

func TestState_Terminal(t *testing.T) {
	terminal := []State{Integrated, Skipped, Failed}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	active := []State{Idle, SchemaReady, DocumentsReady, Configured, Generated}
	for _, s := range active {
		if s.Terminal() {
			t.Errorf("did not expect %s to be terminal", s)
		}
	}
}

func TestTransition(t *testing.T) {
	p := &Pipeline{state: Idle}

	order := []State{SchemaReady, DocumentsReady, Configured, Generated, Integrated}
	for _, next := range order {
		if err := p.transition(next); err != nil {
			t.Fatalf("unexpected error advancing to %s: %s", next, err)
		}
	}

	if err := p.transition(SchemaReady); err == nil {
		t.Fatal("expected an error leaving a terminal state")
	}
}

func TestTransition_NoSkippingStages(t *testing.T) {
	p := &Pipeline{state: Idle}

	if err := p.transition(Configured); err == nil {
		t.Fatal("expected an error skipping stages")
	}
	if p.State() != Idle {
		t.Fatalf("failed transition moved the state to %s", p.State())
	}
}
