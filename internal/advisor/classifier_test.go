package advisor

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		wantKey   string
		wantMatch bool
	}{
		{
			name:      "legal keyword",
			message:   "Do I need a trademark for my brand name?",
			wantKey:   DomainLegal,
			wantMatch: true,
		},
		{
			name:      "finance keyword",
			message:   "How do I file GST returns?",
			wantKey:   DomainFinancial,
			wantMatch: true,
		},
		{
			name:      "gst registration routes to finance",
			message:   "I need help with GST registration",
			wantKey:   DomainFinancial,
			wantMatch: true,
		},
		{
			name:      "plain registration routes to the registration guide",
			message:   "How do I register my startup?",
			wantKey:   DomainRegistration,
			wantMatch: true,
		},
		{
			name:      "scheme keyword",
			message:   "Are there any government grant options for me?",
			wantKey:   DomainGovernment,
			wantMatch: true,
		},
		{
			name:      "branding keyword",
			message:   "I want help designing a logo",
			wantKey:   DomainBranding,
			wantMatch: true,
		},
		{
			name:      "registration keyword",
			message:   "What is a SPICe+ form?",
			wantKey:   DomainRegistration,
			wantMatch: true,
		},
		{
			name:      "legal beats finance when both match",
			message:   "I need a contract for my funding round",
			wantKey:   DomainLegal,
			wantMatch: true,
		},
		{
			name:      "finance beats scheme when both match",
			message:   "Can I get a loan or a subsidy?",
			wantKey:   DomainFinancial,
			wantMatch: true,
		},
		{
			name:      "case insensitive",
			message:   "TRADEMARK my product",
			wantKey:   DomainLegal,
			wantMatch: true,
		},
		{
			name:      "substring match inside a word",
			message:   "pre-incorporation checks",
			wantKey:   DomainLegal,
			wantMatch: true,
		},
		{
			name:      "no match",
			message:   "What should I have for lunch?",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, matched := Classify(tt.message)

			if matched != tt.wantMatch {
				t.Fatalf("matched = %v, want %v", matched, tt.wantMatch)
			}
			if matched && domain.Key != tt.wantKey {
				t.Errorf("domain = %q, want %q", domain.Key, tt.wantKey)
			}
		})
	}
}

func TestWantsDocument(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"Can you generate a PDF guide for me?", true},
		{"I need a checklist to download", true},
		{"create document please", true},
		{"Tell me about private limited companies", false},
	}

	for _, tt := range tests {
		if got := WantsDocument(tt.message); got != tt.want {
			t.Errorf("WantsDocument(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
