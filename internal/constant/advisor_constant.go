package constant

// Chat roles used in history payloads and persisted records.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Bot type tags persisted on ai_responses rows.
const (
	BotTypeMainDashboard = "main_dashboard"
	BotTypeLegal         = "legal_advisor"
	BotTypeFinancial     = "financial_setup"
	BotTypeGovernment    = "govt_scheme_matcher"
	BotTypeBranding      = "branding_marketing"
	BotTypeRegistration  = "registration_guide_guru"
	BotTypeStartupKit    = "startup_kit"
)

// Session type tags persisted on chat_sessions rows.
const (
	SessionTypeMainDashboard = "main_dashboard"
	SessionTypeLegal         = "legal"
	SessionTypeFinancial     = "financial"
	SessionTypeGovernment    = "govt_scheme"
	SessionTypeBranding      = "branding"
	SessionTypeRegistration  = "registration_guide"
	SessionTypeStartupKit    = "startup_kit"
)

// OfferMarkerPhrase is the fixed substring that tags a specialist handoff
// offer in an assistant reply. The router searches for it verbatim, so the
// offer sentence and this constant must stay in sync.
const OfferMarkerPhrase = "Would you like me to connect"

// ApologyReply is returned to the user when the LLM gateway fails or returns
// an empty completion. No response record is persisted for that turn.
const ApologyReply = "Sorry, I encountered an error."

// AffirmativeTokens mark a user message as accepting a pending offer
// (case-insensitive substring containment).
var AffirmativeTokens = []string{"yes", "sure", "connect", "please do", "go ahead", "okay", "ok"}

// Keyword sets for the orchestrator's domain classifier.
// Priority order is legal > financial > government > branding > registration;
// first matching set wins regardless of match counts.
var (
	LegalKeywords = []string{
		"legal", "compliance", "trademark", "patent",
		"contract", "agreement", "incorporation", "entity", "liability",
	}
	FinanceKeywords = []string{
		"finance", "financial", "banking", "account", "funding", "investment",
		"loan", "gst", "tax", "accounting", "bookkeeping",
	}
	SchemeKeywords = []string{
		"government", "scheme", "grant", "subsidy", "funding",
		"incubator", "accelerator", "startup india",
	}
	BrandingKeywords = []string{
		"brand", "branding", "marketing", "logo", "website",
		"social media", "advertising", "promotion",
	}
	RegistrationKeywords = []string{
		"register", "incorporate", "company name", "moa", "aoa",
		"din", "dsc", "spice+",
	}
)

// DocumentKeywords trigger on-demand registration guide generation in the
// registration specialist.
var DocumentKeywords = []string{"pdf", "document", "guide", "checklist", "download", "generate", "create document"}

// RegistrationDocConfirmation is appended to the registration specialist's
// reply after a guide document was generated successfully.
const RegistrationDocConfirmation = "\n\n📋 **Registration Guide Generated!**\n\n" +
	"I've created a comprehensive company registration guide tailored for your business. The document includes:\n\n" +
	"• Entity type recommendations\n• Complete documents checklist\n• Step-by-step registration process\n" +
	"• Official government links and forms\n• Timeline and cost estimates\n• Post-registration compliance requirements\n\n" +
	"You can find this guide in your AI Response Documents section."
