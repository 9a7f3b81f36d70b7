package taxonomy

// aliasEntry maps a free-text synonym onto one canonical skill identifier.
type aliasEntry struct {
	key   string
	skill string
}

// aliases is scanned in declaration order by the substring fallback, so the
// ordering below is load-bearing for ambiguous short tokens.
var aliases = []aliasEntry{
	// creative
	{"art", "art_generation"}, {"visual", "art_generation"}, {"visuals", "art_generation"},
	{"music", "music_generation"}, {"audio", "audio_generation"}, {"sound", "sound_design"},
	{"image", "image_generation"}, {"images", "image_generation"}, {"video", "video_generation"},
	{"videos", "video_generation"}, {"animate", "animation"}, {"3d", "3d_modeling"},
	{"modeling", "3d_modeling"}, {"design", "graphic_design"}, {"ui", "ui_ux_design"},
	{"ux", "ui_ux_design"}, {"product_designer", "product_design"}, {"voice", "voice_synthesis"},
	{"tts", "voice_synthesis"},
	// content
	{"content", "content_creation"}, {"write", "creative_writing"}, {"writing", "creative_writing"},
	{"copy", "copywriting"}, {"blog", "blog_writing"}, {"newsletter", "newsletter_writing"},
	{"translate", "translation"}, {"edit", "editing"}, {"ideas", "idea_generation"},
	{"brainstorm", "idea_generation"},
	// marketing
	{"social", "social_media"}, {"socials", "social_media_management"}, {"smm", "social_media_management"},
	{"influencer", "influencer_marketing"}, {"email", "email_marketing"}, {"growth", "growth_hacking"},
	{"traffic", "traffic_generation"}, {"acquire", "user_acquisition"}, {"acquisition", "user_acquisition"},
	{"brand", "brand_strategy"}, {"pr", "pr_communications"}, {"community", "community_management"},
	{"engage", "engagement_optimization"}, {"comment", "comment_generation"}, {"comments", "comment_generation"},
	{"commenting", "comment_generation"}, {"outbound", "outreach"}, {"leads", "lead_generation"},
	// technical
	{"code", "code_generation"}, {"coding", "code_generation"}, {"program", "code_generation"},
	{"programming", "code_generation"}, {"develop", "software_development"}, {"dev", "software_development"},
	{"web", "web_development"}, {"frontend", "web_development"}, {"backend", "api_development"},
	{"mobile", "mobile_development"}, {"smart_contract", "smart_contract_development"},
	{"solidity", "smart_contract_development"}, {"blockchain", "blockchain_development"},
	{"crypto", "blockchain_development"}, {"api", "api_development"}, {"devops", "devops"},
	{"cloud", "cloud_infrastructure"}, {"aws", "cloud_infrastructure"}, {"database", "database_management"},
	{"sql", "database_management"}, {"architect", "system_architecture"}, {"security", "security_auditing"},
	{"audit", "security_auditing"}, {"test", "testing_qa"}, {"qa", "testing_qa"}, {"debug", "debugging"},
	{"docs", "documentation"},
	// data
	{"data", "data_analysis"}, {"analytics", "data_analysis"}, {"ml", "machine_learning"},
	{"ai", "machine_learning"}, {"deep_learn", "deep_learning"}, {"neural", "deep_learning"},
	{"nlp", "nlp"}, {"language", "nlp"}, {"vision", "computer_vision"}, {"cv", "computer_vision"},
	{"predict", "predictive_modeling"}, {"statistics", "statistical_analysis"},
	{"stats", "statistical_analysis"}, {"bi", "business_intelligence"}, {"visualize", "data_visualization"},
	{"scrape", "web_scraping"}, {"scraping", "web_scraping"},
	// finance
	{"trading", "trading_signals"}, {"trade", "trading_signals"}, {"signals", "trading_signals"},
	{"quantitative", "quantitative_analysis"},
	{"algo", "algorithmic_trading"}, {"algorithmic", "algorithmic_trading"},
	{"portfolio", "portfolio_management"}, {"risk", "risk_assessment"}, {"financial", "financial_modeling"},
	{"finance", "financial_modeling"}, {"fintech", "financial_modeling"}, {"market", "market_analysis"},
	{"sentiment", "sentiment_analysis"}, {"defi", "defi_strategies"}, {"yield", "yield_optimization"},
	{"arb", "arbitrage"}, {"token", "tokenomics"}, {"valuation", "valuation"},
	// research
	{"research", "research"}, {"analyze", "market_research"}, {"competitive", "competitive_analysis"},
	{"trend", "trend_analysis"}, {"trends", "trend_analysis"}, {"diligence", "due_diligence"},
	{"fact_check", "fact_checking"}, {"academic", "academic_research"}, {"scout", "technology_scouting"},
	// operations
	{"automate", "automation"}, {"workflow", "workflow_automation"}, {"process", "process_optimization"},
	{"integrate", "service_integration"}, {"integration", "service_integration"}, {"connect", "connector"},
	{"connector", "connector"}, {"orchestrate", "orchestration"}, {"schedule", "scheduling"},
	{"cron", "scheduling"}, {"monitor", "monitoring"}, {"alert", "alerting"}, {"task", "task_management"},
	{"project", "project_management"}, {"pm", "project_management"},
	// business
	{"strategy", "strategy"}, {"strategist", "strategy"}, {"biz_dev", "business_development"},
	{"bd", "business_development"}, {"product", "product_management"}, {"founder", "founder"},
	{"founding", "founder"}, {"ceo", "founder"}, {"visionary", "visionary"},
	{"validate", "idea_validation"}, {"mvp", "idea_validation"}, {"business_plan", "business_planning"},
	{"pitch", "pitch_deck_creation"}, {"deck", "pitch_deck_creation"}, {"investor", "investor_relations"},
	{"ir", "investor_relations"}, {"partner", "partnership_development"}, {"negotiate", "negotiation"},
	{"consult", "consulting"}, {"advise", "advisory"}, {"advisor", "advisory"},
	// customer
	{"support", "customer_support"}, {"help", "customer_support"}, {"helpdesk", "helpdesk"},
	{"success", "customer_success"}, {"moderate", "moderation"}, {"mod", "moderation"}, {"chat", "chat"},
	{"chatbot", "chat"}, {"assistant", "assistant"}, {"concierge", "concierge"}, {"onboard", "onboarding"},
	{"retain", "retention"}, {"feedback", "feedback_collection"},
	// sales
	{"sales", "sales"}, {"sell", "sales"}, {"qualify", "lead_qualification"}, {"cold", "cold_outreach"},
	{"warm", "warm_outreach"}, {"demo", "demo_booking"}, {"crm", "crm_management"},
	{"distribute", "distribution"}, {"affiliate", "affiliate_marketing"}, {"referral", "referral_programs"},
	// legal
	{"legal", "legal_analysis"}, {"lawyer", "legal_analysis"}, {"contract", "contract_review"},
	{"compliance", "compliance"}, {"regulatory", "regulatory_analysis"}, {"privacy", "privacy_compliance"},
	{"gdpr", "privacy_compliance"}, {"terms", "terms_generation"}, {"tos", "terms_generation"},
	{"ip", "ip_management"},
	// hr
	{"recruit", "recruiting"}, {"hiring", "recruiting"}, {"talent", "talent_sourcing"},
	{"resume", "resume_screening"}, {"interview", "interview_scheduling"}, {"hr", "hr_operations"},
	{"employee", "employee_engagement"}, {"performance", "performance_management"},
}

// aliasExact provides O(1) whole-token alias lookups.
var aliasExact map[string]string

func init() {
	aliasExact = make(map[string]string, len(aliases))
	for _, a := range aliases {
		aliasExact[a.key] = a.skill
	}
}
