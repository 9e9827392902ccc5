package lexer

import "testing"

func TestTokenizeBareWords(t *testing.T) {
	toks, err := Tokenize(`workspace "Name" {`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"workspace", "Name", "{"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Literal != w {
			t.Errorf("token[%d] = %q, want %q", i, toks[i].Literal, w)
		}
	}
	if !toks[1].Quoted {
		t.Error("the quoted literal should be marked Quoted")
	}
	if toks[0].Quoted || toks[2].Quoted {
		t.Error("bare tokens should not be marked Quoted")
	}
}

func TestTokenizeEscapedQuote(t *testing.T) {
	toks, err := Tokenize(`person "Say \"hi\""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Literal != `Say "hi"` {
		t.Fatalf("got %q, want %q", toks[1].Literal, `Say "hi"`)
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	_, err := Tokenize(`person "unterminated`)
	if err == nil {
		t.Fatal("expected an unterminated-quote error")
	}
}

func TestTokenizeBlankAndComment(t *testing.T) {
	for _, line := range []string{"", "   ", "// a comment", "# a comment"} {
		toks, err := Tokenize(line)
		if err != nil {
			t.Fatalf("Tokenize(%q) returned error: %v", line, err)
		}
		if toks != nil {
			t.Fatalf("Tokenize(%q) = %v, want nil", line, toks)
		}
	}
}

func TestTokenizeArrow(t *testing.T) {
	toks, err := Tokenize(`a -> b "uses"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 4 || toks[1].Literal != "->" {
		t.Fatalf("got %v", toks)
	}
}
