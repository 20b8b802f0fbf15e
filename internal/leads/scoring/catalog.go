package scoring

import (
	_ "embed"
	"fmt"
	"os"

	"placement_portal_backend/internal/leads/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog holds the outreach message texts: generic recommendations keyed
// by grade bucket, profile-specific additions, and per-action script
// references. The embedded default ships with the binary and can be
// overridden with a YAML file.
type Catalog struct {
	GradeRecommendations   map[Grade][]string    `yaml:"grade_recommendations"`
	ProfileRecommendations ProfileMessages       `yaml:"profile_recommendations"`
	ActionScripts          map[ActionKind]string `yaml:"action_scripts"`
	FollowUpTemplatePrefix string                `yaml:"follow_up_template_prefix"`
}

// ProfileMessages are the profile-specific recommendation additions,
// appended after the grade-bucket items in this fixed order: veteran,
// in recovery, currently homeless.
type ProfileMessages struct {
	Veteran           string `yaml:"veteran"`
	InRecovery        string `yaml:"in_recovery"`
	CurrentlyHomeless string `yaml:"currently_homeless"`
}

// LoadCatalog reads the message catalog from path, or the embedded default
// when path is empty. Every grade bucket must carry at least one message.
func LoadCatalog(path string) (*Catalog, error) {
	raw := defaultCatalogYAML
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read message catalog: %w", err)
		}
		raw = data
	}

	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}

	for _, grade := range []Grade{GradeA, GradeB, GradeC, GradeD, GradeF} {
		if len(catalog.GradeRecommendations[grade]) == 0 {
			return nil, fmt.Errorf("message catalog missing recommendations for grade %s", grade)
		}
	}
	if catalog.FollowUpTemplatePrefix == "" {
		return nil, fmt.Errorf("message catalog missing follow_up_template_prefix")
	}

	return &catalog, nil
}

// recommendationsFor assembles the ordered recommendation list: the grade
// bucket's generic items first, then profile additions in fixed order.
func (c *Catalog) recommendationsFor(grade Grade, lead domain.Lead) []string {
	recs := make([]string, 0, len(c.GradeRecommendations[grade])+3)
	recs = append(recs, c.GradeRecommendations[grade]...)
	if lead.IsVeteran && c.ProfileRecommendations.Veteran != "" {
		recs = append(recs, c.ProfileRecommendations.Veteran)
	}
	if lead.InRecovery && c.ProfileRecommendations.InRecovery != "" {
		recs = append(recs, c.ProfileRecommendations.InRecovery)
	}
	if lead.CurrentlyHomeless && c.ProfileRecommendations.CurrentlyHomeless != "" {
		recs = append(recs, c.ProfileRecommendations.CurrentlyHomeless)
	}
	return recs
}

// scriptFor returns the configured script reference for an action.
func (c *Catalog) scriptFor(action ActionKind) string {
	return c.ActionScripts[action]
}
