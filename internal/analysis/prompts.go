package analysis

import "fmt"

// prompts maps scenario → named target → curated instruction text. Targets
// not present here fall back to a generic prompt that still mentions the
// requested target.
var prompts = map[Scenario]map[string]string{
	ScenarioPatterns: {
		"authentication":      "Analyze this codebase and identify all authentication and authorization patterns. Focus on login flows, session management, token handling, access control mechanisms, and security policies.",
		"data-flow":           "Analyze data flow and state management patterns throughout the codebase. Identify how data is stored, updated, shared, and propagated across components or modules.",
		"api-usage":           "Catalog all API usage patterns in this application. Include API design, integration patterns, error handling, and how different parts of the system communicate.",
		"component-structure": "Examine component and module organization patterns. Identify component hierarchies, module boundaries, reusable patterns, and code organization strategies.",
	},
	ScenarioArchitecture: {
		"overview":          "Analyze the overall system architecture. Identify the main components, data flow, service boundaries, integration patterns, and key architectural decisions.",
		"data-architecture": "Examine the data architecture including data models, data access patterns, database schemas, and data transformation processes.",
		"integration":       "Analyze integration patterns with external services, message systems, and communication protocols used throughout the application.",
	},
	ScenarioQuality: {
		"performance":     "Analyze this codebase for potential performance issues. Look for bottlenecks, optimization opportunities, resource usage patterns, and scalability considerations.",
		"security":        "Scan this codebase for potential security vulnerabilities. Look for authentication issues, input validation problems, data protection gaps, and security best practices violations.",
		"maintainability": "Assess code maintainability by examining code complexity, coupling, cohesion, readability, and adherence to coding standards.",
	},
	ScenarioReview: {
		"systematic":   "Perform a systematic code review. Identify code smells, anti-patterns, technical debt, improvement areas, and adherence to best practices.",
		"security":     "Conduct a security-focused code review. Look for potential security vulnerabilities, data handling issues, and access control weaknesses.",
		"performance":  "Perform a performance-focused code review. Identify performance bottlenecks, optimization opportunities, and resource usage patterns.",
		"architecture": "Conduct an architecture review. Evaluate architectural decisions, design patterns, service boundaries, and technology choices.",
	},
	ScenarioAudit: {
		"dependencies": "Analyze all third-party dependencies and libraries. Assess usage patterns, security vulnerabilities, version management, and maintenance considerations.",
		"testing":      "Examine the testing strategy and test coverage. Identify testing patterns, quality gates, and areas that might need more comprehensive testing.",
		"migration":    "Assess migration readiness by evaluating the current technology stack, dependency compatibility, and code health for potential upgrades.",
	},
	ScenarioFeatures: {
		"trace":            "Trace the implementation of a specific feature throughout the codebase. Show all files involved, data flow, API endpoints, UI components, and how the feature integrates with the rest of the system.",
		"api-endpoints":    "Catalog all API endpoints in this application. Include REST routes, GraphQL resolvers, tRPC procedures, their request/response patterns, authentication requirements, and how they're consumed by the frontend.",
		"react-hooks":      "Analyze this codebase and identify all React hooks usage patterns. Show how useState, useEffect, useContext, and custom hooks are being used. Include examples of best practices and potential issues.",
		"database-queries": "Find all database query patterns in this codebase. Include SQL queries, ORM usage, connection handling, and any database-related utilities. Show the different approaches used.",
	},
	ScenarioDocumentation: {
		"onboarding":    "Analyze this codebase to help create onboarding documentation. Identify key concepts developers need to understand, important files and directories, setup requirements, and the most critical patterns to learn first.",
		"architecture":  "Generate comprehensive architecture documentation. Identify the main components, data flow, service boundaries, key design decisions, and how different parts of the system interact.",
		"api-reference": "Generate API reference documentation. Document all endpoints, their parameters, responses, authentication requirements, and usage examples.",
	},
}

// Prompt renders the instruction text for a request. A curated prompt is
// used when the target matches a catalog entry; otherwise a generic prompt
// naming the scenario and target is produced. Context, when present, is
// appended verbatim.
func Prompt(r Request) string {
	var p string
	if byTarget, ok := prompts[r.Scenario]; ok {
		p = byTarget[r.Target]
	}
	if p == "" {
		p = fmt.Sprintf("Perform %s analysis on this codebase focusing on %s. Provide comprehensive insights and identify key patterns.", r.Scenario, r.Target)
	}
	if r.Context != "" {
		p = fmt.Sprintf("%s Context: %s", p, r.Context)
	}
	return p
}

// Targets returns the curated target names for a scenario, or nil when the
// scenario has no catalog entries.
func Targets(s Scenario) []string {
	byTarget, ok := prompts[s]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byTarget))
	for name := range byTarget {
		names = append(names, name)
	}
	return names
}
