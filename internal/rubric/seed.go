package rubric

// Seed rubric: a digital maturity model with 4 axes and 12 areas.
// Five levels per area, ranked 1–5. Consulting engagements that need a
// different scale load their own catalog via LoadFile.

var seedAxes = []Axis{
	{
		ID:         "strategy",
		DisplayKey: "axis.strategy",
		AreaIDs:    []string{"vision-alignment", "portfolio-governance", "value-measurement"},
	},
	{
		ID:         "customer",
		DisplayKey: "axis.customer",
		AreaIDs:    []string{"customer-insight", "experience-design", "channel-integration"},
	},
	{
		ID:         "operations",
		DisplayKey: "axis.operations",
		AreaIDs:    []string{"process-automation", "data-quality", "continuous-improvement"},
	},
	{
		ID:         "people",
		DisplayKey: "axis.people",
		AreaIDs:    []string{"digital-skills", "leadership-sponsorship", "collaboration-culture"},
	},
}

var seedAreas = []Area{
	// Strategy (3)
	{
		ID: "vision-alignment", AxisID: "strategy", Name: "Vision & Alignment",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "No articulated digital vision; initiatives start opportunistically."},
			{Rank: 2, Title: "Emerging", Rubric: "A vision exists on paper but is not referenced in planning decisions."},
			{Rank: 3, Title: "Defined", Rubric: "Vision is documented and most departments can state how their work maps to it."},
			{Rank: 4, Title: "Managed", Rubric: "Objectives cascade from the vision and are reviewed quarterly with owners."},
			{Rank: 5, Title: "Optimized", Rubric: "Vision is revisited on market signals and alignment is measured continuously."},
		},
	},
	{
		ID: "portfolio-governance", AxisID: "strategy", Name: "Portfolio Governance",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Projects are approved informally; no shared view of the portfolio."},
			{Rank: 2, Title: "Emerging", Rubric: "A project list exists but prioritization criteria are undocumented."},
			{Rank: 3, Title: "Defined", Rubric: "A governance body prioritizes against published criteria."},
			{Rank: 4, Title: "Managed", Rubric: "Portfolio is rebalanced on a fixed cadence using delivery and value data."},
			{Rank: 5, Title: "Optimized", Rubric: "Funding shifts dynamically between initiatives based on measured outcomes."},
		},
	},
	{
		ID: "value-measurement", AxisID: "strategy", Name: "Value Measurement",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Benefits are asserted in business cases and never checked afterwards."},
			{Rank: 2, Title: "Emerging", Rubric: "Some initiatives define success metrics, measured inconsistently."},
			{Rank: 3, Title: "Defined", Rubric: "Every initiative has baseline metrics and a post-launch review."},
			{Rank: 4, Title: "Managed", Rubric: "Value tracking feeds back into portfolio decisions each cycle."},
			{Rank: 5, Title: "Optimized", Rubric: "Leading indicators are instrumented and drive mid-flight course corrections."},
		},
	},

	// Customer (3)
	{
		ID: "customer-insight", AxisID: "customer", Name: "Customer Insight",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Customer knowledge lives in individual heads; no systematic research."},
			{Rank: 2, Title: "Emerging", Rubric: "Occasional surveys or interviews, findings rarely shared."},
			{Rank: 3, Title: "Defined", Rubric: "Recurring research program with personas and journey maps in active use."},
			{Rank: 4, Title: "Managed", Rubric: "Behavioral analytics complement research; insights are centrally accessible."},
			{Rank: 5, Title: "Optimized", Rubric: "Insight generation is continuous and product decisions cite the evidence."},
		},
	},
	{
		ID: "experience-design", AxisID: "customer", Name: "Experience Design",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Interfaces are built feature-first with no design involvement."},
			{Rank: 2, Title: "Emerging", Rubric: "Design is consulted late, mostly for visual polish."},
			{Rank: 3, Title: "Defined", Rubric: "A design system exists and designers join initiatives from discovery."},
			{Rank: 4, Title: "Managed", Rubric: "Usability testing gates releases; accessibility is a tracked requirement."},
			{Rank: 5, Title: "Optimized", Rubric: "Experience metrics are monitored in production and drive iteration."},
		},
	},
	{
		ID: "channel-integration", AxisID: "customer", Name: "Channel Integration",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Channels operate in silos with inconsistent data about the same customer."},
			{Rank: 2, Title: "Emerging", Rubric: "Some channels share identity but handoffs lose context."},
			{Rank: 3, Title: "Defined", Rubric: "A unified customer record backs the main channels."},
			{Rank: 4, Title: "Managed", Rubric: "Journeys span channels seamlessly with consistent state."},
			{Rank: 5, Title: "Optimized", Rubric: "Channel mix is orchestrated per customer based on observed preference."},
		},
	},

	// Operations (3)
	{
		ID: "process-automation", AxisID: "operations", Name: "Process Automation",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Core processes are manual; spreadsheets bridge every system gap."},
			{Rank: 2, Title: "Emerging", Rubric: "Point automations exist but are owned by individuals, not teams."},
			{Rank: 3, Title: "Defined", Rubric: "High-volume processes are automated with documented ownership."},
			{Rank: 4, Title: "Managed", Rubric: "Automation coverage is measured and exceptions are triaged systematically."},
			{Rank: 5, Title: "Optimized", Rubric: "Processes are instrumented end-to-end and improved from telemetry."},
		},
	},
	{
		ID: "data-quality", AxisID: "operations", Name: "Data Quality",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "No data ownership; every report starts with manual cleanup."},
			{Rank: 2, Title: "Emerging", Rubric: "Known quality issues are listed but fixes are best-effort."},
			{Rank: 3, Title: "Defined", Rubric: "Critical datasets have stewards and documented quality rules."},
			{Rank: 4, Title: "Managed", Rubric: "Quality is monitored automatically with alerting on rule violations."},
			{Rank: 5, Title: "Optimized", Rubric: "Quality SLOs are agreed with consumers and drive remediation priority."},
		},
	},
	{
		ID: "continuous-improvement", AxisID: "operations", Name: "Continuous Improvement",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Problems are fixed when they hurt; no retrospective practice."},
			{Rank: 2, Title: "Emerging", Rubric: "Teams run retrospectives but actions rarely land."},
			{Rank: 3, Title: "Defined", Rubric: "Improvement backlog exists with visible follow-through."},
			{Rank: 4, Title: "Managed", Rubric: "Improvement work is capacity-planned alongside delivery work."},
			{Rank: 5, Title: "Optimized", Rubric: "Improvement outcomes are measured and practices spread across teams."},
		},
	},

	// People (3)
	{
		ID: "digital-skills", AxisID: "people", Name: "Digital Skills",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Skills depend on who happened to be hired; no skills map."},
			{Rank: 2, Title: "Emerging", Rubric: "Gaps are known anecdotally; training is self-directed."},
			{Rank: 3, Title: "Defined", Rubric: "A skills framework exists with role-based learning paths."},
			{Rank: 4, Title: "Managed", Rubric: "Skill coverage is assessed periodically and hiring targets the gaps."},
			{Rank: 5, Title: "Optimized", Rubric: "Learning is embedded in delivery and skill data informs staffing."},
		},
	},
	{
		ID: "leadership-sponsorship", AxisID: "people", Name: "Leadership Sponsorship",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Digital work is delegated down; leadership attention is episodic."},
			{Rank: 2, Title: "Emerging", Rubric: "A sponsor exists but engages mainly at steering committees."},
			{Rank: 3, Title: "Defined", Rubric: "Named executives own digital outcomes with time committed."},
			{Rank: 4, Title: "Managed", Rubric: "Leaders review outcome metrics monthly and unblock teams directly."},
			{Rank: 5, Title: "Optimized", Rubric: "Leadership models digital ways of working across the organization."},
		},
	},
	{
		ID: "collaboration-culture", AxisID: "people", Name: "Collaboration Culture",
		Levels: []Level{
			{Rank: 1, Title: "Ad hoc", Rubric: "Work crosses team boundaries by escalation only."},
			{Rank: 2, Title: "Emerging", Rubric: "Cross-team rituals exist but decisions still route through managers."},
			{Rank: 3, Title: "Defined", Rubric: "Cross-functional teams own outcomes with shared tooling."},
			{Rank: 4, Title: "Managed", Rubric: "Communities of practice actively spread knowledge between teams."},
			{Rank: 5, Title: "Optimized", Rubric: "Collaboration patterns are reviewed and adapted as the org evolves."},
		},
	},
}
