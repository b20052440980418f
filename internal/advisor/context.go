package advisor

import (
	"fmt"
	"strings"

	"startup-companion-be/internal/entity"
)

// MissingCriticalDetails reports whether the profile is absent or lacks any
// of the fields every advisory prompt needs: business name, industry,
// location, and business stage.
func MissingCriticalDetails(p *entity.BusinessProfile) bool {
	if p == nil {
		return true
	}
	return p.BusinessName == "" || p.Industry == "" || p.Location == "" || p.BusinessStage == ""
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func appendField(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}

func baseContext(b *strings.Builder, p *entity.BusinessProfile) {
	appendField(b, "Business Name", p.BusinessName)
	appendField(b, "Industry", p.Industry)
	appendField(b, "Location", p.Location)
	appendField(b, "Business Stage", p.BusinessStage)
}

// RenderContext builds the business context block appended to a specialist's
// system prompt. Each domain sees the shared basics plus the profile fields
// relevant to its advice.
func RenderContext(d Domain, p *entity.BusinessProfile) string {
	if p == nil {
		return "Business Context: the founder has not completed their business profile yet. Ask for the details you need."
	}

	var b strings.Builder
	b.WriteString("Business Context:\n")
	baseContext(&b, p)

	switch d.Key {
	case DomainLegal:
		fmt.Fprintf(&b, "- Registered: %s\n", yesNo(p.Registered))
		appendField(&b, "Entity Type", p.EntityType)
		fmt.Fprintf(&b, "- Needs Legal Help: %s\n", yesNo(p.LegalHelpNeeded))
	case DomainFinancial:
		appendField(&b, "Revenue Model", p.RevenueModel)
		appendField(&b, "Financial Status", p.FinancialStatus)
		fmt.Fprintf(&b, "- Funding Needed: %s\n", yesNo(p.FundingNeeded))
		if p.TeamSize > 0 {
			fmt.Fprintf(&b, "- Team Size: %d\n", p.TeamSize)
		}
	case DomainGovernment:
		fmt.Fprintf(&b, "- Interested in Government Schemes: %s\n", yesNo(p.GovtSchemeInterest))
		fmt.Fprintf(&b, "- Funding Needed: %s\n", yesNo(p.FundingNeeded))
		fmt.Fprintf(&b, "- Registered: %s\n", yesNo(p.Registered))
	case DomainBranding:
		appendField(&b, "Branding Status", p.BrandingStatus)
		appendField(&b, "Revenue Model", p.RevenueModel)
	case DomainRegistration:
		fmt.Fprintf(&b, "- Already Registered: %s\n", yesNo(p.Registered))
		appendField(&b, "Preferred Entity Type", p.EntityType)
		if p.TeamSize > 0 {
			fmt.Fprintf(&b, "- Team Size: %d\n", p.TeamSize)
		}
	}

	if MissingCriticalDetails(p) {
		b.WriteString("\nNote: some key profile details are missing. Ask the founder for them when your advice depends on them.\n")
	}
	return b.String()
}

// DashboardContext is the orchestrator's view: the full profile summary so
// the general assistant can answer anything and route sensibly.
func DashboardContext(p *entity.BusinessProfile) string {
	if p == nil {
		return "Business Context: the founder has not completed their business profile yet."
	}

	var b strings.Builder
	b.WriteString("Business Context:\n")
	baseContext(&b, p)
	fmt.Fprintf(&b, "- Registered: %s\n", yesNo(p.Registered))
	appendField(&b, "Entity Type", p.EntityType)
	if p.TeamSize > 0 {
		fmt.Fprintf(&b, "- Team Size: %d\n", p.TeamSize)
	}
	appendField(&b, "Revenue Model", p.RevenueModel)
	fmt.Fprintf(&b, "- Funding Needed: %s\n", yesNo(p.FundingNeeded))
	appendField(&b, "Branding Status", p.BrandingStatus)
	appendField(&b, "Financial Status", p.FinancialStatus)
	fmt.Fprintf(&b, "- Interested in Government Schemes: %s\n", yesNo(p.GovtSchemeInterest))
	fmt.Fprintf(&b, "- Needs Legal Help: %s\n", yesNo(p.LegalHelpNeeded))
	return b.String()
}

// KitContext is the full profile rendering for startup kit generation, where
// every filled field matters.
func KitContext(p *entity.BusinessProfile) string {
	var b strings.Builder
	b.WriteString("Founder Business Profile:\n")
	appendField(&b, "Founder", p.FullName)
	baseContext(&b, p)
	fmt.Fprintf(&b, "- Registered: %s\n", yesNo(p.Registered))
	appendField(&b, "Entity Type", p.EntityType)
	if p.TeamSize > 0 {
		fmt.Fprintf(&b, "- Team Size: %d\n", p.TeamSize)
	}
	appendField(&b, "Revenue Model", p.RevenueModel)
	fmt.Fprintf(&b, "- Funding Needed: %s\n", yesNo(p.FundingNeeded))
	appendField(&b, "Branding Status", p.BrandingStatus)
	appendField(&b, "Financial Status", p.FinancialStatus)
	fmt.Fprintf(&b, "- Interested in Government Schemes: %s\n", yesNo(p.GovtSchemeInterest))
	fmt.Fprintf(&b, "- Needs Legal Help: %s\n", yesNo(p.LegalHelpNeeded))
	return b.String()
}
