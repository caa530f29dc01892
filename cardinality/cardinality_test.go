package cardinality

import (
	"errors"
	"testing"
)

func TestRendering(t *testing.T) {
	tests := []struct {
		name  string
		start any
		stop  any
		step  []Step
		want  string
	}{
		{"bounded", 1, 2, nil, "{1,2}"},
		{"fixed", 2, 2, nil, "{2}"},
		{"at least", 2, nil, nil, "{2,}"},
		{"at most", nil, 2, nil, "{,2}"},
		{"maybe", 0, 1, nil, "?"},
		{"one", 1, 1, nil, ""},
		{"many", 1, nil, nil, "+"},
		{"any", nil, nil, nil, "*"},
		{"multi bounded", 2, 3, nil, "{2,3}"},
		{"lazy bounded", 1, 2, []Step{Lazy}, "{1,2}?"},
		{"lazy at least", 2, nil, []Step{Lazy}, "{2,}?"},
		{"lazy at most", nil, 2, []Step{Lazy}, "{,2}?"},
		{"lazy many", 1, nil, []Step{Lazy}, "+?"},
		{"lazy any", nil, nil, []Step{Lazy}, "*?"},
		{"lazy maybe", 0, 1, []Step{Lazy}, "??"},
		{"float truncates", nil, 0.5, nil, "{,0}"},
		{"numeric string", "2", "3", nil, "{2,3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.start, tt.stop, tt.step...)
			if err != nil {
				t.Fatalf("New(%v, %v): %v", tt.start, tt.stop, err)
			}
			if got := c.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortcuts(t *testing.T) {
	if got := One.String(); got != "" {
		t.Fatalf("One = %q, want empty", got)
	}
	if got := Many.String(); got != "+" {
		t.Fatalf("Many = %q, want %q", got, "+")
	}
	if got := Any.String(); got != "*" {
		t.Fatalf("Any = %q, want %q", got, "*")
	}
	if got := Maybe.String(); got != "?" {
		t.Fatalf("Maybe = %q, want %q", got, "?")
	}
}

func TestEquality(t *testing.T) {
	if !MustNew(nil, 2).Equal(MustNew(0, 2)) {
		t.Fatalf("New(nil, 2) should equal New(0, 2)")
	}
	if !MustNew(2, 2).Equal(MustNew(2, 2, Greedy)) {
		t.Fatalf("explicit default step should not affect equality")
	}
	if !Many.Equal(MustNew(1, nil)) {
		t.Fatalf("Many should equal New(1, nil)")
	}
	if !One.Equal(MustNew(1, 1)) {
		t.Fatalf("One should equal New(1, 1)")
	}
	if MustNew(1, 2).Equal(MustNew(1, 2, Lazy)) {
		t.Fatalf("lazy variant must not equal the greedy one")
	}

	c, err := Exact(2)
	if err != nil {
		t.Fatalf("Exact(2): %v", err)
	}
	if !c.Equal(MustNew(2, 2)) {
		t.Fatalf("Exact(2) should equal New(2, 2)")
	}
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name  string
		start any
		stop  any
		step  []Step
		want  error
	}{
		{"out of order", 5, 3, nil, ErrRange},
		{"negative start", -1, nil, nil, ErrRange},
		{"negative stop", 0, -1, nil, ErrRange},
		{"non-numeric stop", nil, "hello", nil, ErrRange},
		{"lazy fixed count", 5, 5, []Step{Lazy}, ErrGreediness},
		{"lazy zero count", 0, 0, []Step{Lazy}, ErrGreediness},
		{"unknown step", nil, nil, []Step{Step(42)}, ErrStep},
		{"too many steps", nil, nil, []Step{Lazy, Greedy}, ErrStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.start, tt.stop, tt.step...); !errors.Is(err, tt.want) {
				t.Fatalf("New(%v, %v) error = %v, want %v", tt.start, tt.stop, err, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	c := MustNew(2, nil, Lazy)
	if c.Start() != 2 {
		t.Fatalf("Start() = %d, want 2", c.Start())
	}
	if c.Stop() != Unbounded {
		t.Fatalf("Stop() = %d, want Unbounded", c.Stop())
	}
	if c.Step() != Lazy {
		t.Fatalf("Step() = %d, want Lazy", c.Step())
	}
}
