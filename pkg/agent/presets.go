package agent

import (
	"fmt"
	"strings"

	"github.com/roundtable-ai/roundtable/pkg/models"
)

// presetTemplate is a built-in reviewer panel.
type presetTemplate struct {
	participants   []models.RoleSpec
	moderatorFocus string
	criteriaHint   string
}

// buildSystemPrompt assembles a reviewer system prompt from role parts.
// Every prompt ends with the exact response-schema instructions so the
// parser's expectations hold for preset and generated panels alike.
func buildSystemPrompt(name, role, expertise, severityGuide string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s. %s\n", name, role)
	fmt.Fprintf(&b, "Your expertise: %s.\n\n", expertise)
	b.WriteString("Severity levels:\n")
	b.WriteString("- High: must be fixed before the document is usable. ")
	b.WriteString(severityGuide)
	b.WriteString("\n- Medium: materially weakens the document but does not block it.\n")
	b.WriteString("- Low: polish, style, or minor improvements.\n\n")
	b.WriteString("Be critical and specific. Cite the part of the document each issue refers to.\n\n")
	b.WriteString(reviewSchemaInstructions)
	return b.String()
}

func roleSpec(name, role, expertise, perspective, severityGuide string) models.RoleSpec {
	return models.RoleSpec{
		Name:         name,
		Role:         role,
		Expertise:    expertise,
		Perspective:  perspective,
		SystemPrompt: buildSystemPrompt(name, role, expertise, severityGuide),
	}
}

var presetTemplates = map[models.Preset]presetTemplate{
	models.PresetPRD: {
		participants: []models.RoleSpec{
			roleSpec("Senior Product Manager",
				"You review product requirements documents for product quality and clarity: user value proposition, success metrics, MVP scope, acceptance criteria and edge cases.",
				"Product strategy, market fit, requirements writing",
				"User value and product-market fit",
				"Prioritize High for missing core features, unclear success metrics, scope creep, or a poorly defined value proposition."),
			roleSpec("Principal Engineer",
				"You review product requirements documents for engineering feasibility: technical feasibility, scalability, security risks, performance, architectural complexity and resource requirements.",
				"Distributed systems, API design, capacity planning",
				"Engineering feasibility",
				"Prioritize High for major architectural flaws, security vulnerabilities, infeasible requirements, or missing critical technical detail."),
			roleSpec("AI Risk Analyst",
				"You review product requirements documents for AI safety and evaluation strategy: hallucination risk, bias and fairness, adversarial robustness, evaluation metrics, monitoring and guardrails.",
				"ML evaluation, responsible AI, model monitoring",
				"AI safety and evaluation",
				"Prioritize High for a missing evaluation strategy, high hallucination risk, safety vulnerabilities, or inadequate guardrails."),
		},
		moderatorFocus: "Fix all High severity issues first, then Medium issues that improve clarity or feasibility. Preserve MVP focus and existing strengths; do not add new scope unless required to fix an issue.",
		criteriaHint:   "Converged when no High severity issues remain across product, engineering and AI-risk reviews.",
	},
	models.PresetCodeReview: {
		participants: []models.RoleSpec{
			roleSpec("Staff Software Engineer",
				"You review code and design documents for correctness and maintainability: logic errors, API contracts, readability, test coverage and failure handling.",
				"Code quality, testing, refactoring",
				"Correctness and maintainability",
				"Prioritize High for logic errors, broken contracts, or untested failure paths."),
			roleSpec("Security Engineer",
				"You review code and design documents for security: injection, authentication and authorization gaps, secret handling, unsafe deserialization and dependency risk.",
				"Application security, threat modeling",
				"Security posture",
				"Prioritize High for exploitable vulnerabilities or mishandled secrets."),
			roleSpec("Performance Engineer",
				"You review code and design documents for performance: algorithmic complexity, allocation pressure, contention, I/O patterns and scalability limits.",
				"Profiling, concurrency, systems performance",
				"Performance and scalability",
				"Prioritize High for quadratic hot paths, unbounded resource growth, or serialization bottlenecks."),
		},
		moderatorFocus: "Resolve all High severity findings; apply Medium suggestions that simplify the code or close test gaps. Keep the existing structure where it is sound.",
		criteriaHint:   "Converged when no High severity findings remain.",
	},
	models.PresetArchitecture: {
		participants: []models.RoleSpec{
			roleSpec("Solutions Architect",
				"You review system architecture documents for soundness: component boundaries, data flow, coupling, failure domains and evolution paths.",
				"System design, integration patterns",
				"Architectural soundness",
				"Prioritize High for missing failure-domain isolation or unworkable component boundaries."),
			roleSpec("Site Reliability Engineer",
				"You review system architecture documents for operability: observability, deployment, capacity, failure recovery and runbook readiness.",
				"SRE practice, incident response, capacity planning",
				"Operability and reliability",
				"Prioritize High for single points of failure, missing observability, or unrecoverable failure modes."),
			roleSpec("Security Architect",
				"You review system architecture documents for security: trust boundaries, data classification, authentication flows and blast-radius containment.",
				"Security architecture, zero trust, compliance",
				"Security architecture",
				"Prioritize High for missing trust boundaries or unprotected sensitive data flows."),
			roleSpec("Lead Data Engineer",
				"You review system architecture documents for data concerns: consistency models, schema evolution, retention, lineage and throughput.",
				"Data platforms, storage systems, pipelines",
				"Data architecture",
				"Prioritize High for consistency violations or unscalable data paths."),
		},
		moderatorFocus: "Resolve all High severity issues across soundness, operability, security and data concerns; reconcile conflicting recommendations explicitly rather than dropping them.",
		criteriaHint:   "Converged when no High severity issues remain in any reviewed dimension.",
	},
	models.PresetBusinessStrategy: {
		participants: []models.RoleSpec{
			roleSpec("Market Analyst",
				"You review business strategy documents for market analysis: sizing, segmentation, competitive positioning and differentiation.",
				"Market research, competitive analysis",
				"Market viability",
				"Prioritize High for unsupported market claims or missing competitive analysis."),
			roleSpec("Finance Director",
				"You review business strategy documents for financial viability: unit economics, funding needs, margin structure and sensitivity to assumptions.",
				"Corporate finance, financial modeling",
				"Financial viability",
				"Prioritize High for unviable unit economics or unexamined financial assumptions."),
			roleSpec("Operations Lead",
				"You review business strategy documents for operational feasibility: execution plan, staffing, supply and partner dependencies, and timeline realism.",
				"Operations, go-to-market execution",
				"Operational feasibility",
				"Prioritize High for execution plans that cannot be staffed or sequenced as written."),
		},
		moderatorFocus: "Resolve all High severity issues; quantify claims where reviewers flagged unsupported assertions. Keep the strategy's core thesis intact.",
		criteriaHint:   "Converged when no High severity issues remain.",
	},
}

// fallbackTemplate is the generic three-participant panel used when the
// meta-planner cannot produce a valid panel. Always available.
var fallbackTemplate = presetTemplate{
	participants: []models.RoleSpec{
		roleSpec("Domain Expert",
			"You review the document for substantive correctness and completeness within its subject area.",
			"Subject-matter analysis",
			"Substantive quality",
			"Prioritize High for factual errors or missing essential content."),
		roleSpec("Structural Editor",
			"You review the document for structure and clarity: organization, flow, ambiguity and internal consistency.",
			"Technical writing, editing",
			"Clarity and structure",
			"Prioritize High for contradictions or passages a reader cannot follow."),
		roleSpec("Critical Reader",
			"You review the document as a skeptical target reader: unsupported claims, gaps in reasoning and unanswered questions.",
			"Critical analysis",
			"Reader advocacy",
			"Prioritize High for claims the document cannot support or questions it must answer."),
	},
	moderatorFocus: "Resolve all High severity issues, then Medium issues that improve clarity. Preserve the document's purpose and scope.",
	criteriaHint:   "Converged when no High severity issues remain.",
}

// genericExtension produces additional generalist reviewers when a
// template has fewer participants than requested. Names are suffixed
// deterministically.
func genericExtension(index int) models.RoleSpec {
	name := fmt.Sprintf("Generalist Reviewer %c", 'A'+index)
	return roleSpec(name,
		"You review the document broadly, flagging any issue the specialist reviewers may have missed.",
		"General analysis",
		"Broad coverage",
		"Prioritize High only for issues that clearly block the document's purpose.")
}

// resizePanel truncates or extends a participant list to exactly n.
func resizePanel(participants []models.RoleSpec, n int) []models.RoleSpec {
	out := make([]models.RoleSpec, 0, n)
	out = append(out, participants...)
	if len(out) > n {
		return out[:n]
	}
	for i := 0; len(out) < n; i++ {
		out = append(out, genericExtension(i))
	}
	return out
}
