package token

import "testing"

func TestLineShouldStartContext(t *testing.T) {
	cases := []struct {
		name string
		line Line
		want bool
	}{
		{"trailing brace", Line{Tokens: []Token{{Literal: "model"}, {Literal: "{"}}}, true},
		{"quoted brace", Line{Tokens: []Token{{Literal: "{", Quoted: true}}}, false},
		{"no brace", Line{Tokens: []Token{{Literal: "workspace"}}}, false},
		{"empty", Line{}, false},
	}
	for _, c := range cases {
		if got := c.line.ShouldStartContext(); got != c.want {
			t.Errorf("%s: ShouldStartContext() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLineIsContextEnd(t *testing.T) {
	if !(Line{Tokens: []Token{{Literal: "}"}}}).IsContextEnd() {
		t.Error("sole unquoted } should end a context")
	}
	if (Line{Tokens: []Token{{Literal: "}", Quoted: true}}}).IsContextEnd() {
		t.Error("quoted } should not end a context")
	}
	if (Line{Tokens: []Token{{Literal: "a"}, {Literal: "}"}}}).IsContextEnd() {
		t.Error("} is only a context end when it is the sole token")
	}
}

func TestLineWithoutTrailingBrace(t *testing.T) {
	l := Line{Tokens: []Token{{Literal: "model"}, {Literal: "{"}}}
	got := l.WithoutTrailingBrace()
	if len(got) != 1 || got[0].Literal != "model" {
		t.Fatalf("WithoutTrailingBrace() = %v", got)
	}

	l2 := Line{Tokens: []Token{{Literal: "!constant"}, {Literal: "NAME"}}}
	got2 := l2.WithoutTrailingBrace()
	if len(got2) != 2 {
		t.Fatalf("WithoutTrailingBrace() should be a no-op without a trailing brace, got %v", got2)
	}
}

func TestLineFirstAndLiterals(t *testing.T) {
	l := Line{Tokens: []Token{{Literal: "a"}, {Literal: "->"}, {Literal: "b"}}}
	if l.First() != "a" {
		t.Errorf("First() = %q, want %q", l.First(), "a")
	}
	want := []string{"a", "->", "b"}
	got := l.Literals()
	if len(got) != len(want) {
		t.Fatalf("Literals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Literals()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if (Line{}).First() != "" {
		t.Error("First() of an empty line should be empty")
	}
}
