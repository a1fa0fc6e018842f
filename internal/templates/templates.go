// Package templates holds the closed set of CV templates: seven named
// combinations of a layout kind and a color theme shared by the HTML and PDF
// renderers.
package templates

import (
	"fmt"
	"sort"
	"strings"
)

// The seven shipped template identifiers. The literal names matter: they are
// stored in links and dispatch both renderers.
const (
	OneColumnClassic        = "One Column - Classic"
	OneColumnMinimal        = "One Column - Minimal"
	TwoColumnProfessional   = "Two Column - Professional"
	TwoColumnSidebar        = "Two Column - Sidebar"
	TwoColumnSidebarSkills  = "Two Column - Sidebar Skillset"
	TwoColumnAccentPanel    = "Two Column - Accent Panel"
	TwoColumnSlateProfile   = "Two Column - Slate Profile"
)

// Available lists the selector entries in display order.
var Available = []string{
	OneColumnClassic,
	OneColumnMinimal,
	TwoColumnProfessional,
	TwoColumnSidebar,
	TwoColumnSidebarSkills,
	TwoColumnAccentPanel,
	TwoColumnSlateProfile,
}

// LayoutKind tags the structural arrangement a template uses.
type LayoutKind string

const (
	KindSingleColumnHero        LayoutKind = "single-column-hero"
	KindTwoColumnHeaderPanels   LayoutKind = "two-column-header-panels"
	KindTwoColumnSidebar        LayoutKind = "two-column-sidebar"
	KindTwoColumnSidebarSkills  LayoutKind = "two-column-sidebar-with-skills-panel"
	KindTwoColumnHeroSplit      LayoutKind = "two-column-hero-split"
	KindTwoColumnBannerSidebar  LayoutKind = "two-column-banner-sidebar"
)

// PDF drawing routines selected by a theme.
const (
	PDFLayoutClassicHero        = "classic_hero"
	PDFLayoutMinimalClean       = "minimal_clean"
	PDFLayoutProfessionalHeader = "professional_header"
	PDFLayoutModernHeader       = "modern_header"
)

// Theme is the color palette plus the PDF drawing routine for one template.
// Colors are CSS hex strings; the PDF renderer parses them to RGB.
type Theme struct {
	Background     string
	HeroBackground string
	HeroAccent     string
	HeroStrip      string
	PanelPrimary   string
	PanelSecondary string
	TextColor      string
	HeroText       string
	PanelBorder    string
	Border         string
	LinkColor      string
	PDFLayout      string
}

var baseTwoColumnTheme = Theme{
	Background:     "#e9eef5",
	HeroBackground: "#1e3a5f",
	HeroAccent:     "#274c77",
	HeroStrip:      "#93c5fd",
	PanelPrimary:   "#ffffff",
	PanelSecondary: "#f8fbff",
	TextColor:      "#0f172a",
	HeroText:       "#ffffff",
	PanelBorder:    "#d6e3f2",
	PDFLayout:      PDFLayoutProfessionalHeader,
}

var baseOneColumnTheme = Theme{
	Background:     "#f8fafc",
	HeroBackground: "#ffffff",
	HeroAccent:     "#c7d2fe",
	HeroStrip:      "#1d4ed8",
	PanelPrimary:   "#ffffff",
	PanelSecondary: "#f1f5f9",
	TextColor:      "#0f172a",
	HeroText:       "#0f172a",
}

// merge layers non-zero override fields over a base palette. Pure data merge.
func merge(base Theme, override Theme) Theme {
	out := base
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&out.Background, override.Background)
	set(&out.HeroBackground, override.HeroBackground)
	set(&out.HeroAccent, override.HeroAccent)
	set(&out.HeroStrip, override.HeroStrip)
	set(&out.PanelPrimary, override.PanelPrimary)
	set(&out.PanelSecondary, override.PanelSecondary)
	set(&out.TextColor, override.TextColor)
	set(&out.HeroText, override.HeroText)
	set(&out.PanelBorder, override.PanelBorder)
	set(&out.Border, override.Border)
	set(&out.LinkColor, override.LinkColor)
	set(&out.PDFLayout, override.PDFLayout)
	return out
}

var themes = map[string]Theme{
	TwoColumnProfessional: merge(baseTwoColumnTheme, Theme{
		PDFLayout: PDFLayoutProfessionalHeader,
	}),
	TwoColumnSidebar: merge(baseTwoColumnTheme, Theme{
		Background:     "#0f172a",
		HeroBackground: "#111827",
		HeroAccent:     "#1f2937",
		HeroStrip:      "#60a5fa",
		PanelPrimary:   "#fefefe",
		PanelSecondary: "#f4f6fb",
		HeroText:       "#f8fafc",
		PDFLayout:      PDFLayoutModernHeader,
	}),
	TwoColumnSidebarSkills: merge(baseTwoColumnTheme, Theme{
		Background:     "#f0f2f5",
		HeroBackground: "#0f172a",
		HeroAccent:     "#1e293b",
		HeroStrip:      "#60a5fa",
		PanelSecondary: "#f8fafc",
		HeroText:       "#f8fafc",
		PanelBorder:    "#dbe5f0",
		PDFLayout:      PDFLayoutModernHeader,
	}),
	TwoColumnAccentPanel: merge(baseTwoColumnTheme, Theme{
		Background:     "#f5f7fb",
		HeroBackground: "#102a43",
		HeroAccent:     "#1e3a8a",
		HeroStrip:      "#bae6fd",
		PanelSecondary: "#eef2ff",
		HeroText:       "#f8fafc",
		PDFLayout:      PDFLayoutModernHeader,
	}),
	TwoColumnSlateProfile: merge(baseTwoColumnTheme, Theme{
		Background:     "#eceef1",
		HeroBackground: "#0f172a",
		HeroAccent:     "#1e293b",
		HeroStrip:      "#cbd5f5",
		PanelSecondary: "#f1f5f9",
		HeroText:       "#f8fafc",
		PDFLayout:      PDFLayoutModernHeader,
	}),
	OneColumnClassic: merge(baseOneColumnTheme, Theme{
		Background:     "#030712",
		HeroBackground: "#102a43",
		HeroAccent:     "#1e3a8a",
		HeroStrip:      "#2563eb",
		PanelPrimary:   "#0f172a",
		PanelSecondary: "#0f172a",
		TextColor:      "#e2e8f0",
		HeroText:       "#f8fafc",
		Border:         "#1d4ed8",
		LinkColor:      "#38bdf8",
		PDFLayout:      PDFLayoutClassicHero,
	}),
	OneColumnMinimal: merge(baseOneColumnTheme, Theme{
		HeroAccent: "#93c5fd",
		PDFLayout:  PDFLayoutMinimalClean,
	}),
}

var layoutKinds = map[string]LayoutKind{
	OneColumnClassic:       KindSingleColumnHero,
	OneColumnMinimal:       KindSingleColumnHero,
	TwoColumnProfessional:  KindTwoColumnHeaderPanels,
	TwoColumnSidebar:       KindTwoColumnSidebar,
	TwoColumnSidebarSkills: KindTwoColumnSidebarSkills,
	TwoColumnAccentPanel:   KindTwoColumnHeroSplit,
	TwoColumnSlateProfile:  KindTwoColumnBannerSidebar,
}

// ThemeFor resolves a template name to its theme. Unknown names (legacy stored
// links, typos) fall back by the column-count substring heuristic, then to the
// minimal one-column theme.
func ThemeFor(template string) Theme {
	if theme, ok := themes[template]; ok {
		return theme
	}
	if strings.Contains(template, "Two Column") {
		return themes[TwoColumnProfessional]
	}
	if strings.Contains(template, "One Column") {
		return themes[OneColumnClassic]
	}
	return themes[OneColumnMinimal]
}

// KindFor resolves a template name to its layout kind, with the same fallback
// policy as ThemeFor.
func KindFor(template string) LayoutKind {
	if kind, ok := layoutKinds[template]; ok {
		return kind
	}
	if strings.Contains(template, "Two Column") {
		return KindTwoColumnHeaderPanels
	}
	return KindSingleColumnHero
}

// IsTwoColumn reports whether a template renders with the two-column PDF
// strategy.
func IsTwoColumn(template string) bool {
	if kind, ok := layoutKinds[template]; ok {
		return kind != KindSingleColumnHero
	}
	return strings.Contains(template, "Two Column")
}

// Slug converts a template name into its download-filename fragment:
// lowercased, spaces to underscores, dashes removed.
func Slug(template string) string {
	slug := strings.ToLower(template)
	slug = strings.ReplaceAll(slug, " ", "_")
	return strings.ReplaceAll(slug, "-", "")
}

// Validate cross-checks the selector list against the theme and layout maps
// and returns human-readable diagnostics. An inconsistent entry never blocks
// rendering of the templates that are configured correctly.
func Validate() []string {
	var issues []string

	selector := make(map[string]bool, len(Available))
	for _, name := range Available {
		selector[name] = true
		if _, ok := themes[name]; !ok {
			issues = append(issues, fmt.Sprintf("missing theme mapping: %s", name))
		}
		if _, ok := layoutKinds[name]; !ok {
			issues = append(issues, fmt.Sprintf("missing layout mapping: %s", name))
		}
	}
	for name := range themes {
		if !selector[name] {
			issues = append(issues, fmt.Sprintf("theme not in selector: %s", name))
		}
	}
	for name := range layoutKinds {
		if !selector[name] {
			issues = append(issues, fmt.Sprintf("layout not in selector: %s", name))
		}
	}

	sort.Strings(issues)
	return issues
}
