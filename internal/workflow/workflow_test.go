package workflow

import (
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	t.Run("runs stages in order", func(t *testing.T) {
		var order []string
		stages := []Stage{
			{Name: "first", Run: func() error { order = append(order, "first"); return nil }},
			{Name: "second", Run: func() error { order = append(order, "second"); return nil }},
			{Name: "third", Run: func() error { order = append(order, "third"); return nil }},
		}

		if err := Run(stages); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
			t.Errorf("unexpected stage order: %v", order)
		}
	})

	t.Run("stops at first failure", func(t *testing.T) {
		boom := errors.New("boom")
		var ran []string
		stages := []Stage{
			{Name: "ok", Run: func() error { ran = append(ran, "ok"); return nil }},
			{Name: "fails", Run: func() error { ran = append(ran, "fails"); return boom }},
			{Name: "never", Run: func() error { ran = append(ran, "never"); return nil }},
		}

		err := Run(stages)
		if !errors.Is(err, boom) {
			t.Fatalf("expected stage error, got %v", err)
		}
		if len(ran) != 2 {
			t.Errorf("stages after failure must not run: %v", ran)
		}
	})

	t.Run("empty workflow succeeds", func(t *testing.T) {
		if err := Run(nil); err != nil {
			t.Errorf("Run(nil) = %v", err)
		}
	})
}
