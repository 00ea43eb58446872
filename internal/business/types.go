package business

import (
	"fmt"
	"strings"
)

// The onboarding form carries closed vocabularies. Unknown values are
// rejected at the boundary instead of silently accepted.

// Type is the business vertical.
type Type string

const (
	TypeTech           Type = "tech"
	TypeFinance        Type = "finance"
	TypeHealthcare     Type = "healthcare"
	TypeRetail         Type = "retail"
	TypeEducation      Type = "education"
	TypeHospitality    Type = "hospitality"
	TypeManufacturing  Type = "manufacturing"
	TypeRealEstate     Type = "real_estate"
	TypeTransportation Type = "transportation"
	TypeNonProfit      Type = "non_profit"
)

// AgentGoal is the primary purpose of the configured agent.
type AgentGoal string

const (
	GoalCustomerSupport    AgentGoal = "Provide Customer Support"
	GoalSalesLeads         AgentGoal = "Generate Sales Leads"
	GoalAnswerFAQs         AgentGoal = "Answer FAQs"
	GoalTroubleshootIssues AgentGoal = "Troubleshoot Issues"
	GoalOther              AgentGoal = "Other"
)

// Tonality steers the agent's voice.
type Tonality string

const (
	TonalityFriendly     Tonality = "friendly"
	TonalityProfessional Tonality = "professional"
	TonalityCasual       Tonality = "casual"
	TonalityFormal       Tonality = "formal"
	TonalityEmpathetic   Tonality = "empathetic"
)

// CommunicationStyle is a selectable response-style rule.
type CommunicationStyle string

const (
	StyleSimpleLanguage    CommunicationStyle = "Use simple language"
	StyleGreeting          CommunicationStyle = "Introduce yourself with a greeting"
	StyleConcise           CommunicationStyle = "Keep answers concise"
	StyleNoGuarantees      CommunicationStyle = "Don’t guarantee outcomes"
	StyleNamingConventions CommunicationStyle = "Follow naming conventions"
	StyleEmpathy           CommunicationStyle = "Show empathy and care"
	StyleSeasonalGreetings CommunicationStyle = "Add seasonal greetings"
	StyleNoEmailReferrals  CommunicationStyle = "Avoid directing queries to email"
	StylePersonalize       CommunicationStyle = "Personalize responses with names"
	StyleCustom            CommunicationStyle = "Add Custom Style"
)

// ContextClarity is a selectable clarification rule.
type ContextClarity string

const (
	ClarifyBrief    ContextClarity = "Clarify brief messages"
	ClarifyLocation ContextClarity = "Clarify geographical location"
	ClarifyProduct  ContextClarity = "Clarify product type"
	ClarifyPlatform ContextClarity = "Clarify platform for troubleshooting"
	ClarifyCustom   ContextClarity = "Add Custom Clarification"
)

// HandoverEscalation is a selectable escalation rule.
type HandoverEscalation string

const (
	EscalateRefunds     HandoverEscalation = "Escalate refund requests"
	EscalateFrustrated  HandoverEscalation = "Escalate frustrated or urgent cases"
	EscalateMedical     HandoverEscalation = "Escalate medical advice requests"
	EscalateEmailChange HandoverEscalation = "Escalate email change requests"
	EscalateCustom      HandoverEscalation = "Add Custom Description"
)

// DataToCapture is an identity field the agent should collect.
type DataToCapture string

const (
	CaptureName    DataToCapture = "name"
	CaptureEmail   DataToCapture = "email"
	CapturePhone   DataToCapture = "phone_number"
	CaptureCompany DataToCapture = "company_name"
	CaptureOther   DataToCapture = "other"
)

var (
	validTypes = map[Type]struct{}{
		TypeTech: {}, TypeFinance: {}, TypeHealthcare: {}, TypeRetail: {},
		TypeEducation: {}, TypeHospitality: {}, TypeManufacturing: {},
		TypeRealEstate: {}, TypeTransportation: {}, TypeNonProfit: {},
	}
	validGoals = map[AgentGoal]struct{}{
		GoalCustomerSupport: {}, GoalSalesLeads: {}, GoalAnswerFAQs: {},
		GoalTroubleshootIssues: {}, GoalOther: {},
	}
	validTonalities = map[Tonality]struct{}{
		TonalityFriendly: {}, TonalityProfessional: {}, TonalityCasual: {},
		TonalityFormal: {}, TonalityEmpathetic: {},
	}
	validStyles = map[CommunicationStyle]struct{}{
		StyleSimpleLanguage: {}, StyleGreeting: {}, StyleConcise: {},
		StyleNoGuarantees: {}, StyleNamingConventions: {}, StyleEmpathy: {},
		StyleSeasonalGreetings: {}, StyleNoEmailReferrals: {},
		StylePersonalize: {}, StyleCustom: {},
	}
	validClarities = map[ContextClarity]struct{}{
		ClarifyBrief: {}, ClarifyLocation: {}, ClarifyProduct: {},
		ClarifyPlatform: {}, ClarifyCustom: {},
	}
	validEscalations = map[HandoverEscalation]struct{}{
		EscalateRefunds: {}, EscalateFrustrated: {}, EscalateMedical: {},
		EscalateEmailChange: {}, EscalateCustom: {},
	}
	validCaptures = map[DataToCapture]struct{}{
		CaptureName: {}, CaptureEmail: {}, CapturePhone: {},
		CaptureCompany: {}, CaptureOther: {},
	}
)

// Input is the validated onboarding form.
type Input struct {
	BusinessType             Type
	Domain                   string
	AgentGoal                AgentGoal
	AgentGoalOther           string
	Tonality                 Tonality
	CommunicationStyle       []CommunicationStyle
	CommunicationStyleCustom string
	ContextClarity           []ContextClarity
	ContextClarityCustom     string
	HandoverEscalation       []HandoverEscalation
	HandoverEscalationCustom string
	DataToCapture            []DataToCapture
	DataToCaptureOther       string
	CustomOpeningMessage     string
	CustomInstructions       string
}

// Validate checks every closed-vocabulary field against its value set.
func (in *Input) Validate() error {
	if _, ok := validTypes[in.BusinessType]; !ok {
		return fmt.Errorf("business: unknown business_type %q", in.BusinessType)
	}
	if strings.TrimSpace(in.Domain) == "" {
		return fmt.Errorf("business: domain is required")
	}
	if _, ok := validGoals[in.AgentGoal]; !ok {
		return fmt.Errorf("business: unknown agent_goal %q", in.AgentGoal)
	}
	if _, ok := validTonalities[in.Tonality]; !ok {
		return fmt.Errorf("business: unknown tonality %q", in.Tonality)
	}
	for _, v := range in.CommunicationStyle {
		if _, ok := validStyles[v]; !ok {
			return fmt.Errorf("business: unknown communication_style %q", v)
		}
	}
	for _, v := range in.ContextClarity {
		if _, ok := validClarities[v]; !ok {
			return fmt.Errorf("business: unknown context_clarity %q", v)
		}
	}
	for _, v := range in.HandoverEscalation {
		if _, ok := validEscalations[v]; !ok {
			return fmt.Errorf("business: unknown handover_escalation %q", v)
		}
	}
	for _, v := range in.DataToCapture {
		if _, ok := validCaptures[v]; !ok {
			return fmt.Errorf("business: unknown data_to_capture %q", v)
		}
	}
	if strings.TrimSpace(in.CustomOpeningMessage) == "" {
		return fmt.Errorf("business: custom_opening_message is required")
	}
	return nil
}

// BusinessID derives the storage key for this business.
func (in *Input) BusinessID() string {
	return fmt.Sprintf("%s_%s", in.BusinessType, in.Domain)
}
