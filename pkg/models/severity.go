// Package models defines the domain types shared across the roundtable
// core: severities, issues, reviews, document versions, iteration
// records, role specs and the convergence report.
package models

import (
	"fmt"
	"strings"
)

// Severity classifies an issue raised by a reviewer.
// High severity blocks convergence.
type Severity string

// Severity values, ordered High > Medium > Low.
const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// ParseSeverity parses a severity name case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return SeverityHigh, nil
	case "medium":
		return SeverityMedium, nil
	case "low":
		return SeverityLow, nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// SeverityCounts aggregates issue counts by severity.
type SeverityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Add increments the counter for the given severity.
func (c *SeverityCounts) Add(s Severity) {
	switch s {
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	}
}

// Merge adds another count set into this one.
func (c *SeverityCounts) Merge(other SeverityCounts) {
	c.High += other.High
	c.Medium += other.Medium
	c.Low += other.Low
}

// Total returns the total number of issues across all severities.
func (c SeverityCounts) Total() int {
	return c.High + c.Medium + c.Low
}

// CountBySeverity tallies the issues of a set of reviews.
// Duplicate findings across reviewers are NOT collapsed; the counts are
// plain sums, which is what the convergence rules operate on.
func CountBySeverity(reviews []*Review) SeverityCounts {
	var counts SeverityCounts
	for _, r := range reviews {
		for _, issue := range r.Issues {
			counts.Add(issue.Severity)
		}
	}
	return counts
}
