package service

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/rewritely/rewritely-go/internal/model"
)

var (
	ErrTextRequired = errors.New("text is required")
	ErrTextTooLong  = errors.New("text must be at most 500 characters")
	ErrUnknownStyle = errors.New("unknown style")
)

const maxRewriteLength = 500

// Intent labels produced by keyword classification.
const (
	IntentUrge    = "urge"
	IntentDecline = "decline"
	IntentInquiry = "inquiry"
	IntentNotice  = "notice"
	IntentDefault = "default"
)

// intentOrder fixes the scan order for classification; the first intent with
// a matching keyword wins.
var intentOrder = []string{IntentUrge, IntentDecline, IntentInquiry, IntentNotice}

var intentKeywords = map[string][]string{
	IntentUrge:    {"follow up", "following up", "still waiting", "any update", "reply", "deadline", "asap", "urgent", "when can"},
	IntentDecline: {"decline", "can't", "cannot", "unable", "sorry", "refuse", "not interested", "won't", "turn down"},
	IntentInquiry: {"partnership", "cooperation", "collaborate", "wondering", "could you", "would you", "interested in", "inquiry", "question"},
	IntentNotice:  {"notify", "announce", "update you", "postpone", "delay", "change", "adjust", "reschedule", "inform"},
}

// RewriteService turns a raw draft message into a pre-authored message in the
// requested style. The lookup is a pure function of (text, style) up to a
// uniform-random pick among the templates for the matched intent.
type RewriteService struct{}

// NewRewriteService creates a new RewriteService.
func NewRewriteService() *RewriteService {
	return &RewriteService{}
}

// Rewrite classifies the draft's intent and returns a message for the given
// style.
func (s *RewriteService) Rewrite(req model.RewriteRequest) (model.RewriteResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return model.RewriteResult{}, ErrTextRequired
	}
	if len([]rune(req.Text)) > maxRewriteLength {
		return model.RewriteResult{}, ErrTextTooLong
	}

	style := req.Style
	if style == "" {
		style = StylePolite
	}

	styleTemplates, ok := templates[style]
	if !ok {
		return model.RewriteResult{}, ErrUnknownStyle
	}

	intent := classifyIntent(req.Text)
	candidates := styleTemplates[intent]

	return model.RewriteResult{
		Style:   style,
		Intent:  intent,
		Message: candidates[rand.Intn(len(candidates))],
	}, nil
}

// classifyIntent scans the intents in fixed order and returns the first whose
// keyword set matches the text. Matching is case-insensitive substring
// containment.
func classifyIntent(text string) string {
	lower := strings.ToLower(text)
	for _, intent := range intentOrder {
		for _, keyword := range intentKeywords[intent] {
			if strings.Contains(lower, keyword) {
				return intent
			}
		}
	}
	return IntentDefault
}
