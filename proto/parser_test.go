package proto

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFeedSplitsLines(t *testing.T) {
	p := NewParser()

	var got [][]string
	for _, chunk := range []string{"start ma", "trix\nbrightness ", "9\n"} {
		for _, r := range p.Feed([]byte(chunk)) {
			if r.Err != nil {
				t.Fatalf("unexpected error: %v", r.Err)
			}
			got = append(got, r.Tokens)
		}
	}

	want := [][]string{{"start", "matrix"}, {"brightness", "9"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFeedAcceptsCRTerminator(t *testing.T) {
	p := NewParser()
	results := p.Feed([]byte("stop\r"))
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if !reflect.DeepEqual(results[0].Tokens, []string{"stop"}) {
		t.Fatalf("tokens = %v", results[0].Tokens)
	}
}

func TestFeedIgnoresEmptyLines(t *testing.T) {
	p := NewParser()
	if results := p.Feed([]byte("\n\r\n   \n\t\n")); len(results) != 0 {
		t.Fatalf("empty lines produced %+v", results)
	}
}

func TestFeedCollapsesWhitespaceRuns(t *testing.T) {
	p := NewParser()
	results := p.Feed([]byte("  text   HELLO    WORLD \n"))
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if !reflect.DeepEqual(results[0].Tokens, []string{"text", "HELLO", "WORLD"}) {
		t.Fatalf("tokens = %v", results[0].Tokens)
	}
}

func TestFeedQuotedPayload(t *testing.T) {
	p := NewParser()
	results := p.Feed([]byte(`text "hi there"` + "\n"))
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if !reflect.DeepEqual(results[0].Tokens, []string{"text", "hi there"}) {
		t.Fatalf("tokens = %v", results[0].Tokens)
	}
}

func TestFeedUnterminatedQuoteStaysLiteral(t *testing.T) {
	p := NewParser()
	results := p.Feed([]byte("text \"oops\n"))
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if !reflect.DeepEqual(results[0].Tokens, []string{"text", "\"oops"}) {
		t.Fatalf("tokens = %v", results[0].Tokens)
	}
}

func TestFeedApostrophePayload(t *testing.T) {
	p := NewParser()
	results := p.Feed([]byte("text DON'T PANIC\n"))
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if !reflect.DeepEqual(results[0].Tokens, []string{"text", "DON'T", "PANIC"}) {
		t.Fatalf("tokens = %v", results[0].Tokens)
	}
}

func TestFeedHashIsNotAComment(t *testing.T) {
	p := NewParser()
	results := p.Feed([]byte("text SALE #1 TODAY\n"))
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if !reflect.DeepEqual(results[0].Tokens, []string{"text", "SALE", "#1", "TODAY"}) {
		t.Fatalf("tokens = %v", results[0].Tokens)
	}
}

func TestFeedOverlongLineDiscarded(t *testing.T) {
	p := NewParser()

	long := strings.Repeat("a", MaxLine+50) + "\n"
	results := p.Feed([]byte(long))
	if len(results) != 1 || !errors.Is(results[0].Err, ErrParse) {
		t.Fatalf("overlong line: results = %+v", results)
	}

	// The stream recovers on the next line.
	results = p.Feed([]byte("stop\n"))
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("after overlong: results = %+v", results)
	}
	if !reflect.DeepEqual(results[0].Tokens, []string{"stop"}) {
		t.Fatalf("tokens = %v", results[0].Tokens)
	}
}

func TestFeedBytewise(t *testing.T) {
	p := NewParser()
	var got [][]string
	for _, b := range []byte("speed 500\n") {
		for _, r := range p.Feed([]byte{b}) {
			if r.Err != nil {
				t.Fatal(r.Err)
			}
			got = append(got, r.Tokens)
		}
	}
	if !reflect.DeepEqual(got, [][]string{{"speed", "500"}}) {
		t.Fatalf("got %v", got)
	}
}
