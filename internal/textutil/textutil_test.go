package textutil

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestSanitizePathSegment(t *testing.T) {
	cases := map[string]string{
		"25ctvibec":     "25ctvibec",
		" 25itcoms ":    "25itcoms",
		"a/b":           "a-b",
		`we"ird?<name>`: "weirdname",
		"..":            "",
		"":              "",
	}
	for input, want := range cases {
		if got := SanitizePathSegment(input); got != want {
			t.Fatalf("SanitizePathSegment(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeCellComposesHangul(t *testing.T) {
	composed := "학습하기"
	decomposed := norm.NFD.String(composed)
	if decomposed == composed {
		t.Fatal("expected NFD form to differ")
	}
	if got := NormalizeCell(decomposed); got != composed {
		t.Fatalf("NormalizeCell did not compose: %q", got)
	}
	if got := NormalizeCell(" 제목 "); got != " 제목 " {
		t.Fatalf("expected whitespace preserved, got %q", got)
	}
}

func TestIsBlankAndFold(t *testing.T) {
	if !IsBlank(" \t") || IsBlank(" x ") {
		t.Fatal("IsBlank misclassified input")
	}
	if Fold("ItCoMs") != "itcoms" {
		t.Fatalf("unexpected fold result %q", Fold("ItCoMs"))
	}
}
