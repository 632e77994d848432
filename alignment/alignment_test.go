package alignment

import (
	"reflect"
	"testing"
)

func TestLinkFormats(t *testing.T) {
	l := Link{Source: 3, Target: 12}
	if l.String() != "3-12" {
		t.Errorf("String() = %q, want 3-12", l.String())
	}
	if l.Decoded() != "12-3" {
		t.Errorf("Decoded() = %q, want 12-3", l.Decoded())
	}
}

func TestParseDecoded(t *testing.T) {
	got, err := ParseDecoded("1-0 2-3 10-2")
	if err != nil {
		t.Fatal(err)
	}
	want := Sentence{{Source: 0, Target: 1}, {Source: 3, Target: 2}, {Source: 2, Target: 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseDecoded = %v, want %v", got, want)
	}
	if got.String() != "1-0 2-3 10-2" {
		t.Errorf("String() = %q", got.String())
	}
}

func TestParseLinkErrors(t *testing.T) {
	for _, tok := range []string{"", "12", "a-1", "1-b", "-1-2"} {
		if _, err := ParseLink(tok); err == nil {
			t.Errorf("ParseLink(%q) succeeded, want error", tok)
		}
	}
}

func TestCorpusJoinSplit(t *testing.T) {
	sents := []Sentence{
		{{Source: 0, Target: 1}, {Source: 2, Target: 2}},
		{{Source: 0, Target: 1}, {Source: 3, Target: 2}, {Source: 2, Target: 3}},
	}
	joined := JoinCorpus(sents)
	if joined != "1-0 2-2,1-0 2-3 3-2" {
		t.Errorf("JoinCorpus = %q", joined)
	}
	parts := SplitCorpus(joined + "\n")
	if !reflect.DeepEqual(parts, []string{"1-0 2-2", "1-0 2-3 3-2"}) {
		t.Errorf("SplitCorpus = %q", parts)
	}
	if SplitCorpus("") != nil {
		t.Error("SplitCorpus(\"\") should be nil")
	}
}
