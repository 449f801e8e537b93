package config

import (
	"os"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// CareConfig represents the optional TOML care configuration: a patient
// profile override and a daily schedule override. When no file is given
// the compiled-in defaults are used.
type CareConfig struct {
	path string

	Profile  *ProfileSection `toml:"profile"`
	Schedule []ScheduleEntry `toml:"schedule"`
}

// ProfileSection overrides the patient reference profile
type ProfileSection struct {
	MaidenName             string   `toml:"maiden_name"`
	MarriedName            string   `toml:"married_name"`
	Age                    int      `toml:"age"`
	PrimaryAttachment      string   `toml:"primary_attachment"`
	DeceasedAttachments    []string `toml:"deceased_attachments"`
	ConflictedRelationship string   `toml:"conflicted_relationship"`
	CareerIdentity         string   `toml:"career_identity"`
	AchievementMarkers     []string `toml:"achievement_markers"`
	TraumaHistory          []string `toml:"trauma_history"`
	CurrentLocation        string   `toml:"current_location"`
	DisplacementFrom       string   `toml:"displacement_from"`
	DisplacementDuration   string   `toml:"displacement_duration"`
	PropertiesOwned        []string `toml:"properties_owned"`
}

// Validate checks if the ProfileSection is valid
func (p *ProfileSection) Validate() error {
	if p.MaidenName == "" {
		return goerr.New("profile maiden_name is required")
	}
	if p.PrimaryAttachment == "" {
		return goerr.New("profile primary_attachment is required")
	}
	return nil
}

// ScheduleEntry represents one schedule entry configuration
type ScheduleEntry struct {
	Time      string `toml:"time"`
	Purpose   string `toml:"purpose"`
	Utterance string `toml:"utterance"`
}

// Flags returns CLI flags for care configuration
func (c *CareConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "care-config",
			Usage:       "Path to TOML care configuration (profile and schedule overrides)",
			Sources:     cli.EnvVars("SAHELI_CARE_CONFIG"),
			Destination: &c.path,
		},
	}
}

// Configure loads and validates the care configuration, returning the
// profile and schedule to inject. Defaults apply for anything not given.
func (c *CareConfig) Configure() (*model.Profile, []model.ScheduleEntry, error) {
	if c.path != "" {
		// #nosec G304 - path is expected to be provided by CLI argument
		data, err := os.ReadFile(c.path)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to read care config file", goerr.V("path", c.path))
		}
		if err := toml.Unmarshal(data, c); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to parse TOML care config", goerr.V("path", c.path))
		}
	}

	profile := model.DefaultProfile()
	if c.Profile != nil {
		if err := c.Profile.Validate(); err != nil {
			return nil, nil, goerr.Wrap(err, "invalid profile section", goerr.V("path", c.path))
		}
		profile = c.Profile.toDomain()
	}

	schedule := model.DefaultSchedule()
	if len(c.Schedule) > 0 {
		schedule = make([]model.ScheduleEntry, 0, len(c.Schedule))
		for _, entry := range c.Schedule {
			purpose, err := types.ParseSchedulePurpose(entry.Purpose)
			if err != nil {
				return nil, nil, goerr.Wrap(err, "invalid schedule entry", goerr.V("time", entry.Time))
			}
			schedule = append(schedule, model.ScheduleEntry{
				TimeOfDay: entry.Time,
				Purpose:   purpose,
				Utterance: entry.Utterance,
			})
		}
	}
	if err := model.ValidateSchedule(schedule); err != nil {
		return nil, nil, goerr.Wrap(err, "care config validation failed", goerr.V("path", c.path))
	}

	return profile, schedule, nil
}

func (p *ProfileSection) toDomain() *model.Profile {
	return &model.Profile{
		MaidenName:             p.MaidenName,
		MarriedName:            p.MarriedName,
		Age:                    p.Age,
		PrimaryAttachment:      p.PrimaryAttachment,
		DeceasedAttachments:    p.DeceasedAttachments,
		ConflictedRelationship: p.ConflictedRelationship,
		CareerIdentity:         p.CareerIdentity,
		AchievementMarkers:     p.AchievementMarkers,
		TraumaHistory:          p.TraumaHistory,
		CurrentLocation:        p.CurrentLocation,
		DisplacementFrom:       p.DisplacementFrom,
		DisplacementDuration:   p.DisplacementDuration,
		PropertiesOwned:        p.PropertiesOwned,
	}
}
