package cmd

import (
	"github.com/spf13/pflag"

	"github.com/msto63/argv/foundation/args/profile"
	mdwlog "github.com/msto63/argv/foundation/core/log"
)

// classifierFlags builds a profile from --profile and the overrides
type classifierFlags struct {
	profilePath string
	discover    bool
	delimiters  string
	noNegative  bool
	captures    []string
}

func (f *classifierFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.profilePath, "profile", "p", "", "Profile file (.toml, .yaml, .yml, .hcl)")
	fs.BoolVar(&f.discover, "discover", false, "Search ./ and the user config directory for a profile")
	fs.StringVarP(&f.delimiters, "delimiters", "d", "", "Delimiter characters, e.g. \"-/\" (overrides the profile)")
	fs.BoolVar(&f.noNegative, "no-negative", false, "Read -5 as a flag instead of a negative number")
	fs.StringSliceVarP(&f.captures, "capture", "c", nil, "Identifier that takes a value (repeatable)")
}

// profile resolves the effective profile. Overrides are validated together
// with the profile.
func (f *classifierFlags) profile() (*profile.Profile, error) {
	p := profile.Default()
	switch {
	case f.profilePath != "":
		loaded, err := profile.Load(f.profilePath)
		if err != nil {
			return nil, err
		}
		p = loaded
	case f.discover:
		found, err := profile.Discover()
		if err != nil {
			return nil, err
		}
		p = found
	}

	if f.delimiters != "" {
		p.Delimiters = nil
		for _, r := range f.delimiters {
			p.Delimiters = append(p.Delimiters, string(r))
		}
	}
	if f.noNegative {
		p.NegativeNumbers = false
	}
	p.Captures = append(append([]string(nil), p.Captures...), f.captures...)

	if _, err := p.Rules(); err != nil {
		return nil, err
	}

	logger.Debug("profile resolved", mdwlog.Fields{
		"profile":  p.Name,
		"source":   p.Source,
		"captures": len(p.Captures),
	})
	return p, nil
}
