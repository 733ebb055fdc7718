package engine

// builtinTemplates is the shipped catalog data. Population is intentionally
// partial: technical carries the full 8 templates, business 4, resource 1.
// The remaining categories fall back to the baseline category at pick time
// until their template sets are authored.
var builtinTemplates = map[Category][]Template{
	"technical": {
		{
			ID:                  "TECH_001",
			TitleTemplate:       "{severity} {system} Failure at {company_type}",
			DescriptionTemplate: "Your primary {system} has {failure_type} during {timing}, affecting {impact_percentage} of {functionality}. {additional_pressure}",
			ContextTemplate:     "{company_context} {system} has been showing {warning_signs} but {delay_reason}.",
			Variables: map[string][]string{
				"system":            {"database", "API gateway", "authentication service", "payment processor"},
				"failure_type":      {"crashed", "become unresponsive", "started throwing errors", "experienced data corruption"},
				"timing":            {"peak traffic hours", "system maintenance window", "major product launch", "end-of-quarter reporting"},
				"impact_percentage": {"80%", "60%", "90%", "45%"},
				"functionality":     {"user functionality", "core features", "payment processing", "data access"},
				"additional_pressure": {
					"Customer complaints are flooding in",
					"Media is starting to cover the outage",
					"Competitors are gaining users",
					"Revenue is directly impacted",
				},
				"company_context": {
					"Growing SaaS platform with 50,000 users",
					"Enterprise software serving Fortune 500s",
					"Consumer app with 1M+ daily users",
					"B2B platform processing $10M+ monthly",
				},
				"warning_signs": {"performance issues for weeks", "intermittent errors", "memory leaks", "capacity warnings"},
				"delay_reason": {
					"feature development was prioritized",
					"budget constraints delayed upgrades",
					"team was focused on new releases",
					"management deemed it non-critical",
				},
			},
		},
		{
			ID:                  "TECH_002",
			TitleTemplate:       "Critical Security Breach at {company_type}",
			DescriptionTemplate: "Security team discovered {breach_type} affecting {data_scope}. {urgency_factor} and {stakeholder_pressure}.",
			ContextTemplate:     "{security_context} The breach was {discovery_method} and {extent_unknown}.",
			Variables: map[string][]string{
				"breach_type": {"unauthorized database access", "API vulnerability exploitation", "third-party service compromise", "insider threat incident"},
				"data_scope":  {"user credentials", "payment information", "personal data", "proprietary algorithms"},
				"urgency_factor": {
					"Regulatory notification required within 72 hours",
					"Media is already investigating",
					"Competitors may have the data",
					"Customer accounts are at risk",
				},
				"stakeholder_pressure": {
					"board is demanding immediate answers",
					"legal team needs full assessment",
					"customers are panicking",
					"investors are concerned",
				},
				"security_context": {
					"Recent security audit found no issues",
					"New compliance requirements just implemented",
					"Third-party integration was recently added",
					"Security team was recently downsized",
				},
				"discovery_method": {
					"discovered during routine monitoring",
					"reported by ethical hacker",
					"found during incident investigation",
					"detected by automated systems",
				},
				"extent_unknown": {
					"full scope still being assessed",
					"appears limited but unconfirmed",
					"may have been ongoing for months",
					"impact on customers unclear",
				},
			},
		},
		{
			ID:                  "TECH_003",
			TitleTemplate:       "System Integration Failure During {critical_period}",
			DescriptionTemplate: "{integration_system} stopped communicating with {dependent_systems}, causing {business_impact}. {discovery_context}",
			ContextTemplate:     "{technical_background} {timeline_pressure}",
			Variables: map[string][]string{
				"integration_system": {"payment gateway", "third-party API", "microservice", "data pipeline"},
				"dependent_systems":  {"main application", "reporting system", "customer portal", "mobile app"},
				"business_impact":    {"transaction failures", "data sync issues", "customer service delays", "reporting blackouts"},
				"discovery_context": {
					"Users are reporting errors",
					"Automated monitoring detected the issue",
					"Customer support is overwhelmed",
					"Revenue is being impacted",
				},
				"critical_period": {"peak shopping season", "month-end processing", "major product launch", "board presentation week"},
				"technical_background": {
					"Recent deployment included integration changes",
					"Third-party service had maintenance",
					"Network infrastructure was upgraded",
					"Security certificates were updated",
				},
				"timeline_pressure": {
					"Fix needed before market open",
					"Client demo scheduled for today",
					"Compliance deadline tomorrow",
					"Competitor advantage at risk",
				},
			},
		},
		{
			ID:                  "TECH_004",
			TitleTemplate:       "Performance Degradation Crisis at {company_type}",
			DescriptionTemplate: "{performance_metric} has degraded by {degradation_amount} causing {user_impact}. {escalation_factor}",
			ContextTemplate:     "{load_context} {resource_constraints}",
			Variables: map[string][]string{
				"performance_metric": {"response time", "database query speed", "page load time", "API latency"},
				"degradation_amount": {"300%", "500%", "200%", "400%"},
				"user_impact": {
					"user complaints flooding in",
					"customer abandonment rates spiking",
					"support ticket volume tripling",
					"negative reviews appearing",
				},
				"escalation_factor": {
					"Media starting to notice",
					"Major clients threatening to leave",
					"Competitor gaining market share",
					"Internal teams unable to work effectively",
				},
				"load_context": {
					"Traffic increased 10x unexpectedly",
					"Database has grown beyond capacity",
					"Legacy system reaching limits",
					"Resource contention between services",
				},
				"resource_constraints": {
					"Budget constraints prevent immediate scaling",
					"Technical debt makes quick fixes risky",
					"Team lacks expertise in optimization",
					"Infrastructure changes require approval",
				},
			},
		},
		{
			ID:                  "TECH_005",
			TitleTemplate:       "Data Loss Crisis at {company_type}",
			DescriptionTemplate: "{data_scope} has been {loss_type} due to {root_cause}. {recovery_status} and {business_impact}.",
			ContextTemplate:     "{backup_situation} {compliance_implications}",
			Variables: map[string][]string{
				"data_scope": {"customer database", "financial records", "intellectual property", "user-generated content"},
				"loss_type":  {"permanently deleted", "corrupted beyond repair", "encrypted by ransomware", "exposed to unauthorized access"},
				"root_cause": {"hardware failure", "human error", "malicious attack", "software bug"},
				"recovery_status": {
					"Backups are 2 weeks old",
					"Recovery process will take 48 hours",
					"No recent backups available",
					"Partial recovery possible",
				},
				"business_impact": {
					"Revenue operations halted",
					"Customer trust severely damaged",
					"Legal compliance violations likely",
					"Competitive advantage lost",
				},
				"backup_situation": {
					"Last backup verification was 6 months ago",
					"Disaster recovery plan never tested",
					"Backup system showed errors recently",
					"Recovery procedures are outdated",
				},
				"compliance_implications": {
					"GDPR breach notification required",
					"Financial audit requirements affected",
					"Customer contracts may be violated",
					"Industry regulations potentially breached",
				},
			},
		},
		{
			ID:                  "TECH_006",
			TitleTemplate:       "Critical Infrastructure Outage at {company_type}",
			DescriptionTemplate: "{infrastructure_component} has failed, causing {service_disruption}. {external_dependencies} and {customer_impact}.",
			ContextTemplate:     "{infrastructure_age} {redundancy_status}",
			Variables: map[string][]string{
				"infrastructure_component": {"primary data center", "cloud provider region", "CDN network", "internet service provider"},
				"service_disruption": {
					"complete service unavailability",
					"80% performance degradation",
					"intermittent connectivity issues",
					"data synchronization failures",
				},
				"external_dependencies": {
					"Third-party services also affected",
					"Supply chain partners disconnected",
					"Payment processors unreachable",
					"Communication systems down",
				},
				"customer_impact": {
					"Global user base affected",
					"Revenue-generating operations stopped",
					"Customer support overwhelmed",
					"SLA breaches accumulating",
				},
				"infrastructure_age": {
					"Legacy systems at end of life",
					"Recent infrastructure migration",
					"Modern cloud-native architecture",
					"Hybrid on-premise/cloud setup",
				},
				"redundancy_status": {
					"Failover systems also compromised",
					"Backup infrastructure unavailable",
					"Single point of failure exposed",
					"Geographic redundancy insufficient",
				},
			},
		},
		{
			ID:                  "TECH_007",
			TitleTemplate:       "Software Deployment Disaster at {company_type}",
			DescriptionTemplate: "{deployment_scope} deployment has {failure_type}, resulting in {system_state}. {rollback_complications}",
			ContextTemplate:     "{deployment_context} {testing_gaps}",
			Variables: map[string][]string{
				"deployment_scope": {"Major feature release", "Critical security patch", "Database migration", "Infrastructure update"},
				"failure_type": {
					"corrupted production data",
					"broken core functionality",
					"introduced security vulnerabilities",
					"caused cascading system failures",
				},
				"system_state": {
					"complete service outage",
					"partial functionality available",
					"data integrity compromised",
					"severe performance degradation",
				},
				"rollback_complications": {
					"Rollback process is complex and risky",
					"Database changes cannot be reversed",
					"Customer data may be lost in rollback",
					"Rollback estimated to take 6+ hours",
				},
				"deployment_context": {
					"Deployment happened during peak hours",
					"Release was rushed due to business pressure",
					"New team member performed deployment",
					"Automated deployment pipeline failed",
				},
				"testing_gaps": {
					"Staging environment differs from production",
					"Critical user flows were not tested",
					"Load testing was skipped",
					"Integration tests showed warnings",
				},
			},
		},
		{
			ID:                  "TECH_008",
			TitleTemplate:       "Third-Party Integration Failure at {company_type}",
			DescriptionTemplate: "{integration_partner} service has {failure_mode}, affecting {dependent_processes}. {vendor_communication}",
			ContextTemplate:     "{integration_criticality} {alternative_options}",
			Variables: map[string][]string{
				"integration_partner": {"Payment processor", "Authentication provider", "Data analytics platform", "Communication service"},
				"failure_mode": {
					"completely stopped responding",
					"returned error rates above 50%",
					"changed API without notice",
					"been acquired and shut down",
				},
				"dependent_processes": {
					"user registration and login",
					"payment processing and billing",
					"data reporting and analytics",
					"customer communication",
				},
				"vendor_communication": {
					"No response to support tickets",
					"Vendor acknowledges issue but no ETA",
					"Vendor claims issue is on our side",
					"Vendor has ceased business operations",
				},
				"integration_criticality": {
					"This integration is core to business operations",
					"Fallback systems exist but need configuration",
					"Alternative providers available but require integration",
					"Internal replacement would take months",
				},
				"alternative_options": {
					"Immediate switch to backup provider possible",
					"Manual workarounds can maintain basic service",
					"No viable alternatives exist",
					"Alternative providers are significantly more expensive",
				},
			},
		},
	},
	"business": {
		{
			ID:                  "BUS_001",
			TitleTemplate:       "Major {client_type} Threatens Contract Termination",
			DescriptionTemplate: "{client_description} representing {revenue_impact} is threatening to {action_type} due to {complaint_reason}. {deadline_pressure}",
			ContextTemplate:     "{relationship_context} {recent_issues} {competitive_landscape}",
			Variables: map[string][]string{
				"client_type":        {"enterprise client", "key strategic partner", "biggest customer", "long-term client"},
				"client_description": {"Fortune 500 company", "Government agency", "Multi-national corporation", "Industry leader"},
				"revenue_impact":     {"40% of annual revenue", "25% of quarterly targets", "largest single contract", "$2M+ annual value"},
				"action_type": {
					"terminate the contract immediately",
					"switch to competitor",
					"demand full refund",
					"pursue legal action",
				},
				"complaint_reason": {"repeated service outages", "missed delivery deadlines", "quality issues", "poor communication"},
				"deadline_pressure": {
					"Decision needed by end of week",
					"Board meeting scheduled for Monday",
					"Contract expires in 48 hours",
					"Competitor proposal due tomorrow",
				},
				"relationship_context": {
					"5-year partnership with excellent history",
					"New relationship still building trust",
					"Recently renewed contract with high expectations",
					"Pilot project that could expand significantly",
				},
				"recent_issues": {
					"Several minor incidents in past month",
					"New project manager assigned mid-project",
					"Technical difficulties with latest update",
					"Communication breakdown between teams",
				},
				"competitive_landscape": {
					"Main competitor is aggressively pursuing them",
					"Market conditions favor switching",
					"They have leverage due to budget cycles",
					"Industry consolidation creating pressure",
				},
			},
		},
		{
			ID:                  "BUS_002",
			TitleTemplate:       "Competitor Launch Threatens {market_position}",
			DescriptionTemplate: "{competitor_type} launched {product_threat} with {competitive_advantage}. {market_reaction} and {internal_pressure}.",
			ContextTemplate:     "{market_context} {response_constraints}",
			Variables: map[string][]string{
				"competitor_type": {"Well-funded startup", "Industry incumbent", "Big Tech company", "Stealth competitor"},
				"product_threat": {
					"identical product at lower price",
					"superior technology solution",
					"comprehensive platform offering",
					"disruptive business model",
				},
				"competitive_advantage": {"50% cost reduction", "exclusive partnerships", "proprietary technology", "massive marketing budget"},
				"market_reaction": {
					"Early adopters switching rapidly",
					"Industry analysts taking notice",
					"Media highlighting our weaknesses",
					"Customers delaying purchase decisions",
				},
				"internal_pressure": {
					"Board demanding immediate response",
					"Sales team requesting price cuts",
					"Engineering wants to rebuild product",
					"Marketing needs bigger budget",
				},
				"market_position": {"market leadership", "premium positioning", "customer relationships", "brand reputation"},
				"market_context": {
					"Market consolidation accelerating",
					"Customer expectations rising rapidly",
					"Technology disruption occurring",
					"Economic pressures affecting budgets",
				},
				"response_constraints": {
					"Product roadmap already committed",
					"Limited budget for rapid changes",
					"Technical debt prevents quick pivots",
					"Team capacity fully allocated",
				},
			},
		},
		{
			ID:                  "BUS_003",
			TitleTemplate:       "Partnership Crisis Threatens {strategic_initiative}",
			DescriptionTemplate: "{partner_type} partnership has {crisis_type} due to {underlying_cause}. {immediate_impact} and {strategic_implications}.",
			ContextTemplate:     "{partnership_history} {dependency_level}",
			Variables: map[string][]string{
				"partner_type": {"Strategic technology", "Go-to-market channel", "Supply chain", "Joint venture"},
				"crisis_type": {
					"terminated contract unexpectedly",
					"breached confidentiality agreement",
					"failed to meet commitments",
					"been acquired by competitor",
				},
				"underlying_cause": {"strategic misalignment", "financial difficulties", "leadership changes", "competitive conflicts"},
				"immediate_impact": {
					"Revenue pipeline affected",
					"Product launch delayed",
					"Customer deliveries at risk",
					"Market expansion halted",
				},
				"strategic_implications": {
					"Alternative partnerships needed",
					"Internal capabilities must be built",
					"Business model requires revision",
					"Competitive position weakened",
				},
				"strategic_initiative": {"market expansion", "product development", "digital transformation", "operational efficiency"},
				"partnership_history": {
					"Long-standing relationship with deep integration",
					"Recent partnership still in early stages",
					"Partnership was already showing strain",
					"Critical dependency developed over time",
				},
				"dependency_level": {
					"No viable alternatives exist",
					"Transition would take 6+ months",
					"Significant investment required to replace",
					"Customer relationships tied to partnership",
				},
			},
		},
		{
			ID:                  "BUS_004",
			TitleTemplate:       "Market Shift Disrupts {business_model}",
			DescriptionTemplate: "{market_change} has {disruption_impact}, making {business_element} {disruption_severity}. {adaptation_challenge}",
			ContextTemplate:     "{market_intelligence} {competitive_landscape}",
			Variables: map[string][]string{
				"market_change": {"Regulatory requirement change", "Customer behavior shift", "Technology disruption", "Economic downturn"},
				"disruption_impact": {
					"reduced demand by 60%",
					"shifted buying patterns",
					"eliminated key value proposition",
					"changed cost structure fundamentals",
				},
				"business_element": {"current pricing model", "primary revenue stream", "core value proposition", "operational approach"},
				"disruption_severity": {
					"obsolete within months",
					"severely compromised",
					"requiring immediate revision",
					"no longer competitive",
				},
				"adaptation_challenge": {
					"Business model pivot needed urgently",
					"Existing investments may be stranded",
					"Customer base must be retrained",
					"Organizational restructuring required",
				},
				"business_model": {"subscription revenue", "marketplace platform", "service delivery", "product sales"},
				"market_intelligence": {
					"Early warning signs were missed",
					"Competitors are struggling similarly",
					"Industry experts predicted this change",
					"Internal analysis showed this risk",
				},
				"competitive_landscape": {
					"First-movers gaining significant advantage",
					"Industry consolidation accelerating",
					"New players entering with advantages",
					"Traditional competitors also disrupted",
				},
			},
		},
	},
	"resource": {
		{
			ID:                  "RES_001",
			TitleTemplate:       "{resource_type} Crisis Threatens {delivery_scope}",
			DescriptionTemplate: "{crisis_description} {impact_timeline} {stakeholder_impact}",
			ContextTemplate:     "{background_context} {constraint_factors}",
			Variables: map[string][]string{
				"resource_type":  {"Budget shortfall", "Key talent departure", "Vendor relationship breakdown", "Equipment failure"},
				"delivery_scope": {"major product launch", "client deliverables", "quarterly goals", "strategic initiative"},
				"crisis_description": {
					"Critical team members gave notice simultaneously",
					"Primary vendor terminated contract unexpectedly",
					"Budget cut by 30% mid-project",
					"Essential infrastructure failed",
				},
				"impact_timeline": {
					"Launch deadline in 2 weeks unchanged",
					"Client presentation in 3 days",
					"Board expects delivery on schedule",
					"Competitor launching similar product next month",
				},
				"stakeholder_impact": {
					"CEO reputation tied to success",
					"Customer pre-orders already taken",
					"Media coverage planned",
					"Investor expectations set",
				},
				"background_context": {
					"Project was already running behind schedule",
					"Team was working at full capacity",
					"No backup plans were established",
					"Similar issues happened last year",
				},
				"constraint_factors": {
					"Hiring freeze currently in effect",
					"Limited budget for alternatives",
					"No internal expertise available",
					"Legal restrictions on vendor changes",
				},
			},
		},
	},
}
