// Package profile loads logger settings from TOML profile files, letting
// binaries keep verbosity and appearance preferences out of their flag lines.
//
// A profile sets only what it names; everything else keeps the Builder's
// defaults. Level names are lower-case:
//
//	[logging]
//	level = "debug"
//	show_level = true
//	filter = "server/http=trace"
//
//	[logging.levels.debug]
//	color = "#5f87ff"
//	stream = "stderr"
package profile

import (
	"fmt"

	"github.com/verbolabs/verbo"
)

// Profile is the root of a verbo.toml file.
type Profile struct {
	Logging Logging `toml:"logging"`
}

// Logging carries the [logging] section. Pointer fields distinguish "not
// set" from an explicit false or empty value.
type Logging struct {
	Level           string                   `toml:"level" validate:"omitempty,oneof=error warn info debug trace"`
	Verbosity       *int                     `toml:"verbosity" validate:"omitempty,min=0"`
	Filter          string                   `toml:"filter"`
	Separator       *string                  `toml:"separator"`
	Colors          *bool                    `toml:"colors"`
	ShowLevel       *bool                    `toml:"show_level"`
	ShowLineNumbers *bool                    `toml:"show_line_numbers"`
	ShowModulePath  *bool                    `toml:"show_module_path"`
	Levels          map[string]LevelOverride `toml:"levels" validate:"dive"`
}

// LevelOverride customizes one severity's appearance. Map keys in
// [logging.levels.*] are severity names.
type LevelOverride struct {
	Color  string `toml:"color"`
	Stream string `toml:"stream" validate:"omitempty,oneof=stdout stderr"`
}

// Apply transfers the profile's settings onto the builder. Unset fields
// leave the builder untouched, so flags applied afterwards still override.
func (p *Profile) Apply(b *verbo.Builder) error {
	lg := p.Logging

	if lg.Level != "" {
		s, err := verbo.ParseSeverity(lg.Level)
		if err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
		b.MaxLevel(s)
	}
	if lg.Verbosity != nil {
		b.Verbosity(*lg.Verbosity)
	}
	if lg.Filter != "" {
		b.Filter(lg.Filter)
	}
	if lg.Separator != nil {
		b.Separator(*lg.Separator)
	}
	if lg.ShowLevel != nil {
		b.Level(*lg.ShowLevel)
	}
	if lg.ShowLineNumbers != nil {
		b.LineNumbers(*lg.ShowLineNumbers)
	}
	if lg.ShowModulePath != nil {
		b.ModulePath(*lg.ShowModulePath)
	}
	if lg.Colors != nil {
		if *lg.Colors {
			b.Colors(true)
		} else {
			b.NoColors()
		}
	}

	for name, o := range lg.Levels {
		s, err := verbo.ParseSeverity(name)
		if err != nil {
			return fmt.Errorf("logging.levels.%s: %w", name, err)
		}
		if o.Color != "" {
			b.Color(s, o.Color)
		}
		if o.Stream != "" {
			stream, err := verbo.ParseStream(o.Stream)
			if err != nil {
				return fmt.Errorf("logging.levels.%s.stream: %w", name, err)
			}
			b.Output(s, stream)
		}
	}
	return nil
}
