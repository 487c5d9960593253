package labelwrap

import (
	"strings"
	"testing"
)

func TestWrap_ShortLabelStaysPlain(t *testing.T) {
	cases := []string{"", "Qubits", "Room Temp", "Error Correction"} // last is exactly 16
	for _, s := range cases {
		l := Wrap(s, Threshold)
		if l.Wrapped() {
			t.Fatalf("Wrap(%q) should stay plain, got lines %v", s, l.Lines())
		}
		if l.Display() != s {
			t.Fatalf("Display mismatch for %q: got %q", s, l.Display())
		}
		if got := l.Lines(); len(got) != 1 || got[0] != s {
			t.Fatalf("Lines for plain %q: got %v", s, got)
		}
	}
}

func TestWrap_LongLabelSplitsOnWords(t *testing.T) {
	l := Wrap("Cryptography Security", Threshold)
	if !l.Wrapped() {
		t.Fatalf("expected wrapped label")
	}
	want := []string{"Cryptography", "Security"}
	got := l.Lines()
	if len(got) != len(want) {
		t.Fatalf("line count: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, got[i], want[i])
		}
	}
	if l.Display() != "Cryptography Security" {
		t.Fatalf("tooltip reconstruction: got %q", l.Display())
	}
}

func TestWrap_LinesRespectLimitAndRejoinExactly(t *testing.T) {
	cases := []string{
		"Room Temp Operation",
		"Quantum Simulation",
		"Optimization and Search Problems",
		"a b c d e f g h i j k l m n o p q",
		"one twowordshere three four five six",
	}
	for _, s := range cases {
		l := Wrap(s, Threshold)
		if !l.Wrapped() {
			t.Fatalf("Wrap(%q) expected wrapped (len=%d)", s, len(s))
		}
		for _, line := range l.Lines() {
			if len(line) > Threshold {
				t.Fatalf("Wrap(%q): line %q exceeds limit", s, line)
			}
		}
		if joined := strings.Join(l.Lines(), " "); joined != s {
			t.Fatalf("Wrap(%q): rejoin mismatch, got %q", s, joined)
		}
	}
}

func TestWrap_UnbreakableWordKeptWhole(t *testing.T) {
	s := "Superpolynomially" // 17 chars, no spaces
	l := Wrap(s, Threshold)
	if !l.Wrapped() {
		t.Fatalf("expected single-element wrapped label")
	}
	got := l.Lines()
	if len(got) != 1 || got[0] != s {
		t.Fatalf("unbreakable word should be kept whole: got %v", got)
	}
}

func TestWrap_OversizedWordInsideLabel(t *testing.T) {
	s := "fast decoherencemitigation path"
	l := Wrap(s, Threshold)
	found := false
	for _, line := range l.Lines() {
		if line == "decoherencemitigation" {
			found = true
		}
	}
	if !found {
		t.Fatalf("oversized inner word should occupy its own line: %v", l.Lines())
	}
	if strings.Join(l.Lines(), " ") != s {
		t.Fatalf("rejoin mismatch: %v", l.Lines())
	}
}

func TestWrapAll_PreservesOrderAndLength(t *testing.T) {
	in := []string{"Scalability", "Cryptography Security", "Room Temp"}
	out := WrapAll(in, Threshold)
	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(in))
	}
	for i, l := range out {
		if l.Display() != in[i] {
			t.Fatalf("order/reconstruction mismatch at %d: %q vs %q", i, l.Display(), in[i])
		}
	}
	if out[0].Wrapped() || !out[1].Wrapped() || out[2].Wrapped() {
		t.Fatalf("unexpected wrap flags: %v %v %v", out[0].Wrapped(), out[1].Wrapped(), out[2].Wrapped())
	}
}

func TestWrapAll_EmptySequence(t *testing.T) {
	if out := WrapAll(nil, Threshold); len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}
