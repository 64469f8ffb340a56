package util

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateRunes(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"", 5, ""},
		{"héllo", 2, "hé"},
	}
	for _, tc := range cases {
		if got := TruncateRunes(tc.in, tc.n); got != tc.want {
			t.Fatalf("TruncateRunes(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}

	long := strings.Repeat("界", 500)
	out := TruncateRunes(long, 120)
	if got := utf8.RuneCountInString(out); got != 120 {
		t.Fatalf("rune count = %d, want 120", got)
	}
	if !utf8.ValidString(out) {
		t.Fatal("truncation split a rune")
	}
}

func TestGeneratedIDShapes(t *testing.T) {
	msgID := GenerateMessageID()
	if len(msgID) != 24 || msgID[0] != 'M' {
		t.Fatalf("message id = %q", msgID)
	}
	convID := GenerateConversationID()
	if len(convID) != 24 || convID[0] != 'C' {
		t.Fatalf("conversation id = %q", convID)
	}
	if GenerateMessageID() == GenerateMessageID() {
		t.Fatal("message ids collide")
	}
}
