package advisor

import (
	"startup-companion-be/internal/constant"
)

// Domain describes one specialist advisory area. The slice order in domains
// is the routing priority: legal wins over financial, financial over
// government, and so on, regardless of keyword match counts.
type Domain struct {
	Key          string // routing key, persisted as the session's pending offer
	BotType      string
	SessionType  string
	SessionTitle string
	Label        string // shown in handoff offers, matched by offer detection
	Keywords     []string
	SystemPrompt string
	MaxTokens    int
}

const (
	DomainLegal        = "legal"
	DomainFinancial    = "financial"
	DomainGovernment   = "government"
	DomainBranding     = "branding"
	DomainRegistration = "registration"
)

var domains = []Domain{
	{
		Key:          DomainLegal,
		BotType:      constant.BotTypeLegal,
		SessionType:  constant.SessionTypeLegal,
		SessionTitle: "Legal Advisory Session",
		Label:        "Legal Advisor",
		Keywords:     constant.LegalKeywords,
		SystemPrompt: constant.LegalAdvisorSystemPrompt,
		MaxTokens:    500,
	},
	{
		Key:          DomainFinancial,
		BotType:      constant.BotTypeFinancial,
		SessionType:  constant.SessionTypeFinancial,
		SessionTitle: "Financial Setup Session",
		Label:        "Financial Setup",
		Keywords:     constant.FinanceKeywords,
		SystemPrompt: constant.FinancialSetupSystemPrompt,
		MaxTokens:    500,
	},
	{
		Key:          DomainGovernment,
		BotType:      constant.BotTypeGovernment,
		SessionType:  constant.SessionTypeGovernment,
		SessionTitle: "Government Scheme Matching Session",
		Label:        "Government Scheme",
		Keywords:     constant.SchemeKeywords,
		SystemPrompt: constant.GovtSchemeSystemPrompt,
		MaxTokens:    600,
	},
	{
		Key:          DomainBranding,
		BotType:      constant.BotTypeBranding,
		SessionType:  constant.SessionTypeBranding,
		SessionTitle: "Branding & Marketing Session",
		Label:        "Branding",
		Keywords:     constant.BrandingKeywords,
		SystemPrompt: constant.BrandingSystemPrompt,
		MaxTokens:    500,
	},
	{
		Key:          DomainRegistration,
		BotType:      constant.BotTypeRegistration,
		SessionType:  constant.SessionTypeRegistration,
		SessionTitle: "Company Registration Session",
		Label:        "Registration Guide",
		Keywords:     constant.RegistrationKeywords,
		SystemPrompt: constant.RegistrationGuideSystemPrompt,
		MaxTokens:    800,
	},
}

// Domains returns the specialist domains in routing priority order.
func Domains() []Domain {
	return domains
}

// ByKey looks a domain up by its routing key.
func ByKey(key string) (Domain, bool) {
	for _, d := range domains {
		if d.Key == key {
			return d, true
		}
	}
	return Domain{}, false
}
