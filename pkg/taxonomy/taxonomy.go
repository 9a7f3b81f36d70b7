// Package taxonomy holds the closed vocabulary of canonical agent skills and
// the normalization logic that maps free-text skill tokens onto it.
//
// The tables are compiled-in constants. Declaration order matters: the fuzzy
// fallbacks in Normalize scan aliases and canonical skills in the order they
// are listed here, and the first hit wins.
package taxonomy

// Category groups canonical skill identifiers under a human-facing name.
type Category struct {
	Name   string
	Skills []string
}

var categories = []Category{
	{Name: "creative", Skills: []string{
		"art_generation", "music_generation", "image_generation", "video_generation",
		"audio_generation", "animation", "3d_modeling", "graphic_design", "ui_ux_design",
		"product_design", "game_design", "voice_synthesis", "sound_design", "video_editing",
		"photo_editing", "creative_direction",
	}},
	{Name: "content", Skills: []string{
		"content_creation", "copywriting", "technical_writing", "creative_writing",
		"scriptwriting", "blog_writing", "newsletter_writing", "seo_writing", "translation",
		"localization", "editing", "proofreading", "content_strategy", "content_curation",
		"idea_generation",
	}},
	{Name: "marketing", Skills: []string{
		"marketing", "social_media", "social_media_management", "influencer_marketing",
		"email_marketing", "growth_hacking", "user_acquisition", "traffic_generation",
		"seo", "sem", "paid_advertising", "brand_strategy", "pr_communications",
		"viral_marketing", "community_building", "engagement_optimization",
		"comment_generation", "outreach", "lead_generation",
	}},
	{Name: "technical", Skills: []string{
		"code_generation", "code_review", "software_development", "web_development",
		"mobile_development", "smart_contract_development", "blockchain_development",
		"api_development", "devops", "cloud_infrastructure", "database_management",
		"system_architecture", "security_auditing", "testing_qa", "debugging", "documentation",
	}},
	{Name: "data", Skills: []string{
		"data_analysis", "data_science", "machine_learning", "deep_learning", "nlp",
		"computer_vision", "predictive_modeling", "statistical_analysis",
		"business_intelligence", "data_visualization", "etl_pipelines", "data_engineering",
		"web_scraping", "data_collection",
	}},
	{Name: "finance", Skills: []string{
		"trading_signals", "quantitative_analysis", "algorithmic_trading",
		"portfolio_management", "risk_assessment", "financial_modeling", "market_analysis",
		"sentiment_analysis", "price_prediction", "defi_strategies", "yield_optimization",
		"arbitrage", "tokenomics", "valuation", "financial_reporting",
	}},
	{Name: "research", Skills: []string{
		"research", "market_research", "competitive_analysis", "trend_analysis",
		"due_diligence", "fact_checking", "academic_research", "patent_research",
		"user_research", "product_research", "technology_scouting", "industry_analysis",
	}},
	{Name: "operations", Skills: []string{
		"automation", "workflow_automation", "process_optimization", "service_integration",
		"api_integration", "connector", "orchestration", "scheduling", "monitoring",
		"alerting", "task_management", "project_management", "resource_allocation",
	}},
	{Name: "business", Skills: []string{
		"strategy", "business_development", "product_management", "founder", "visionary",
		"idea_validation", "market_fit_analysis", "business_planning", "pitch_deck_creation",
		"investor_relations", "partnership_development", "negotiation", "consulting", "advisory",
	}},
	{Name: "customer", Skills: []string{
		"customer_support", "customer_success", "community_management", "moderation",
		"chat", "assistant", "concierge", "onboarding", "retention", "feedback_collection",
		"nps_tracking", "helpdesk",
	}},
	{Name: "sales", Skills: []string{
		"sales", "lead_qualification", "sales_outreach", "cold_outreach", "warm_outreach",
		"demo_booking", "crm_management", "distribution", "affiliate_marketing",
		"referral_programs", "partnership_sales",
	}},
	{Name: "legal", Skills: []string{
		"legal_analysis", "contract_review", "compliance", "regulatory_analysis",
		"privacy_compliance", "terms_generation", "ip_management",
	}},
	{Name: "hr", Skills: []string{
		"recruiting", "talent_sourcing", "resume_screening", "interview_scheduling",
		"hr_operations", "employee_engagement", "performance_management",
	}},
}

// validSkills is the flattened taxonomy in declaration order.
var validSkills []string

// skillSet allows O(1) exact canonical lookups.
var skillSet map[string]struct{}

func init() {
	for _, c := range categories {
		validSkills = append(validSkills, c.Skills...)
	}
	skillSet = make(map[string]struct{}, len(validSkills))
	for _, s := range validSkills {
		skillSet[s] = struct{}{}
	}
}

// Categories returns the taxonomy grouped by category, in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		skills := make([]string, len(c.Skills))
		copy(skills, c.Skills)
		out[i] = Category{Name: c.Name, Skills: skills}
	}
	return out
}

// TotalSkills returns the number of canonical skill identifiers.
func TotalSkills() int { return len(validSkills) }

// IsCanonical reports whether s is a canonical skill identifier.
func IsCanonical(s string) bool {
	_, ok := skillSet[s]
	return ok
}
