package service

import (
	"slices"
	"strings"
	"testing"

	"github.com/rewritely/rewritely-go/internal/model"
)

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Just following up on the invoice", IntentUrge},
		{"I'm sorry but I cannot make it", IntentDecline},
		{"Would you be interested in a partnership?", IntentInquiry},
		{"We need to reschedule the meeting", IntentNotice},
		{"Nice weather today", IntentDefault},
		{"REPLY NEEDED", IntentUrge}, // matching is case-insensitive
	}

	for _, tc := range cases {
		if got := classifyIntent(tc.text); got != tc.want {
			t.Errorf("classifyIntent(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyIntentFirstMatchWins(t *testing.T) {
	// "deadline" (urge) and "cannot" (decline) both appear; urge is scanned
	// first, so it wins.
	text := "I cannot meet the deadline"
	if got := classifyIntent(text); got != IntentUrge {
		t.Errorf("classifyIntent(%q) = %q, want %q", text, got, IntentUrge)
	}
}

func TestRewriteEmptyText(t *testing.T) {
	svc := NewRewriteService()

	for _, text := range []string{"", "   "} {
		_, err := svc.Rewrite(model.RewriteRequest{Text: text, Style: StylePolite})
		if err != ErrTextRequired {
			t.Errorf("Rewrite(text=%q) expected ErrTextRequired, got %v", text, err)
		}
	}
}

func TestRewriteTextTooLong(t *testing.T) {
	svc := NewRewriteService()

	_, err := svc.Rewrite(model.RewriteRequest{
		Text:  strings.Repeat("a", 501),
		Style: StylePolite,
	})
	if err != ErrTextTooLong {
		t.Errorf("expected ErrTextTooLong, got %v", err)
	}
}

func TestRewriteUnknownStyle(t *testing.T) {
	svc := NewRewriteService()

	_, err := svc.Rewrite(model.RewriteRequest{Text: "hello", Style: "sarcastic"})
	if err != ErrUnknownStyle {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestRewriteDefaultsToPolite(t *testing.T) {
	svc := NewRewriteService()

	result, err := svc.Rewrite(model.RewriteRequest{Text: "hello there"})
	if err != nil {
		t.Fatalf("Rewrite() unexpected error: %v", err)
	}
	if result.Style != StylePolite {
		t.Errorf("Rewrite() style = %q, want %q", result.Style, StylePolite)
	}
}

func TestRewriteOutputComesFromTemplateSet(t *testing.T) {
	svc := NewRewriteService()

	for style := range templates {
		result, err := svc.Rewrite(model.RewriteRequest{
			Text:  "any update on this?",
			Style: style,
		})
		if err != nil {
			t.Fatalf("Rewrite(style=%q) unexpected error: %v", style, err)
		}
		if result.Intent != IntentUrge {
			t.Errorf("Rewrite(style=%q) intent = %q, want %q", style, result.Intent, IntentUrge)
		}
		if !slices.Contains(templates[style][IntentUrge], result.Message) {
			t.Errorf("Rewrite(style=%q) message not in template set", style)
		}
	}
}

func TestTemplatesCoverAllIntents(t *testing.T) {
	intents := append(slices.Clone(intentOrder), IntentDefault)
	for style, byIntent := range templates {
		for _, intent := range intents {
			if len(byIntent[intent]) == 0 {
				t.Errorf("style %q has no templates for intent %q", style, intent)
			}
		}
	}
}
