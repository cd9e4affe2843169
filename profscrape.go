// Package profscrape extracts structured professional-profile data from
// public profile pages by driving a headless browser, and from uploaded PDF
// resumes via plain-text heuristics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, chromedp/, sqlite/, echo/).
package profscrape
