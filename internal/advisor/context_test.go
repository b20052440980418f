package advisor

import (
	"strings"
	"testing"

	"startup-companion-be/internal/entity"
)

func completeProfile() *entity.BusinessProfile {
	return &entity.BusinessProfile{
		FullName:        "Asha Rao",
		BusinessName:    "Chai Labs",
		BusinessStage:   "early_revenue",
		Industry:        "food & beverage",
		Location:        "Bengaluru",
		Registered:      false,
		EntityType:      "Private Limited",
		TeamSize:        4,
		RevenueModel:    "D2C",
		FundingNeeded:   true,
		BrandingStatus:  "logo only",
		FinancialStatus: "no accountant",
		LegalHelpNeeded: true,
	}
}

func TestMissingCriticalDetails(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *entity.BusinessProfile) *entity.BusinessProfile
		missing bool
	}{
		{"nil profile", func(p *entity.BusinessProfile) *entity.BusinessProfile { return nil }, true},
		{"complete profile", func(p *entity.BusinessProfile) *entity.BusinessProfile { return p }, false},
		{"missing business name", func(p *entity.BusinessProfile) *entity.BusinessProfile { p.BusinessName = ""; return p }, true},
		{"missing industry", func(p *entity.BusinessProfile) *entity.BusinessProfile { p.Industry = ""; return p }, true},
		{"missing location", func(p *entity.BusinessProfile) *entity.BusinessProfile { p.Location = ""; return p }, true},
		{"missing stage", func(p *entity.BusinessProfile) *entity.BusinessProfile { p.BusinessStage = ""; return p }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingCriticalDetails(tt.mutate(completeProfile())); got != tt.missing {
				t.Errorf("MissingCriticalDetails = %v, want %v", got, tt.missing)
			}
		})
	}
}

func TestRenderContextDomainFields(t *testing.T) {
	profile := completeProfile()

	tests := []struct {
		domainKey string
		contains  []string
		excludes  []string
	}{
		{
			domainKey: DomainLegal,
			contains:  []string{"Chai Labs", "Entity Type: Private Limited", "Needs Legal Help: Yes"},
			excludes:  []string{"Branding Status"},
		},
		{
			domainKey: DomainFinancial,
			contains:  []string{"Revenue Model: D2C", "Funding Needed: Yes", "Team Size: 4"},
			excludes:  []string{"Needs Legal Help"},
		},
		{
			domainKey: DomainGovernment,
			contains:  []string{"Interested in Government Schemes", "Funding Needed: Yes"},
			excludes:  []string{"Branding Status"},
		},
		{
			domainKey: DomainBranding,
			contains:  []string{"Branding Status: logo only"},
			excludes:  []string{"Needs Legal Help"},
		},
		{
			domainKey: DomainRegistration,
			contains:  []string{"Already Registered: No", "Preferred Entity Type: Private Limited"},
			excludes:  []string{"Branding Status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.domainKey, func(t *testing.T) {
			domain, ok := ByKey(tt.domainKey)
			if !ok {
				t.Fatalf("unknown domain %q", tt.domainKey)
			}

			rendered := RenderContext(domain, profile)
			for _, want := range tt.contains {
				if !strings.Contains(rendered, want) {
					t.Errorf("context for %s missing %q:\n%s", tt.domainKey, want, rendered)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(rendered, unwanted) {
					t.Errorf("context for %s should not contain %q:\n%s", tt.domainKey, unwanted, rendered)
				}
			}
		})
	}
}

func TestRenderContextNilProfile(t *testing.T) {
	domain, _ := ByKey(DomainLegal)
	rendered := RenderContext(domain, nil)
	if !strings.Contains(rendered, "not completed their business profile") {
		t.Errorf("nil profile context unexpected: %q", rendered)
	}
}

func TestRenderContextMissingDetailsNote(t *testing.T) {
	profile := completeProfile()
	profile.Location = ""

	domain, _ := ByKey(DomainFinancial)
	rendered := RenderContext(domain, profile)
	if !strings.Contains(rendered, "key profile details are missing") {
		t.Errorf("expected missing details note in:\n%s", rendered)
	}
}
