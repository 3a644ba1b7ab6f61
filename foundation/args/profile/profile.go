// File: profile.go
// Title: Classifier Profiles
// Description: Named, file-based classifier configurations. A profile holds
//              the delimiter set, the negative-number policy and the capture
//              list, and is read from TOML, YAML or HCL.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package profile

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	mdwargs "github.com/msto63/argv/foundation/args"
	mdwconfig "github.com/msto63/argv/foundation/core/config"
	mdwerror "github.com/msto63/argv/foundation/core/error"
	"github.com/msto63/argv/foundation/core/errors"
)

// EnvPrefix prefixes environment overrides of TOML and YAML profiles:
// ARGV_CLASSIFIER_NEGATIVE_NUMBERS=false
const EnvPrefix = "ARGV"

// DefaultName is used when a profile does not name itself
const DefaultName = "default"

// Format is the file format of a profile
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatHCL
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name ("toml", "yaml", "yml", "hcl")
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl":
		return FormatHCL, nil
	default:
		return FormatTOML, errors.InvalidInput(errors.ModuleProfile, "parse_format", s, "toml, yaml or hcl")
	}
}

// DetectFormat derives the format from the file extension; unknown
// extensions are read as TOML
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Profile is a classifier configuration
type Profile struct {
	Name            string
	Delimiters      []string
	NegativeNumbers bool
	Captures        []string

	// Source is the file the profile was loaded from, empty otherwise
	Source string
	Format Format
}

// Default returns the profile equivalent to args.DefaultPrefixRules with an
// empty capture list
func Default() *Profile {
	return &Profile{
		Name:            DefaultName,
		Delimiters:      []string{string(mdwargs.DefaultDelimiter)},
		NegativeNumbers: true,
	}
}

// Load reads a profile file. The format follows the file extension.
func Load(path string) (*Profile, error) {
	format := DetectFormat(path)

	var (
		p   *Profile
		err error
	)
	if format == FormatHCL {
		p, err = loadHCLFile(path)
	} else {
		p, err = loadConfigFile(path)
	}
	if err != nil {
		return nil, err
	}

	p.Source = path
	p.Format = format
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadString parses a profile from content
func LoadString(content string, format Format) (*Profile, error) {
	var (
		p   *Profile
		err error
	)
	switch format {
	case FormatHCL:
		p, err = decodeHCL([]byte(content), "profile.hcl")
	case FormatYAML:
		p, err = loadConfigString(content, mdwconfig.FormatYAML)
	default:
		p, err = loadConfigString(content, mdwconfig.FormatTOML)
	}
	if err != nil {
		return nil, err
	}

	p.Format = format
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Discover loads the first profile found in the working directory or the
// user configuration directory
func Discover() (*Profile, error) {
	path, err := mdwconfig.FindConfigFile(mdwconfig.DefaultDiscoveryOptions())
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Rules converts the profile into validated prefix rules
func (p *Profile) Rules() (mdwargs.PrefixRules, error) {
	delimiters := make([]rune, 0, len(p.Delimiters))
	for i, d := range p.Delimiters {
		if utf8.RuneCountInString(d) != 1 {
			return mdwargs.PrefixRules{}, errors.NewErrorBuilder(errors.ModuleProfile).
				Operation("rules").
				Messagef("profile %q: delimiter %q must be a single character", p.Name, d).
				Code(mdwerror.CodeInvalidConfig).
				Detail("delimiter", d).
				Detail("index", i).
				Build()
		}
		r, _ := utf8.DecodeRuneInString(d)
		delimiters = append(delimiters, r)
	}

	rules := mdwargs.PrefixRules{Delimiters: delimiters, NegativeNumbers: p.NegativeNumbers}
	if err := rules.Validate(); err != nil {
		return mdwargs.PrefixRules{}, mdwerror.Wrap(err, fmt.Sprintf("profile %q", p.Name)).
			WithOperation("profile.Rules")
	}
	return rules, nil
}

// CaptureList builds the capture list, stripping the profile's delimiters
// from every identifier
func (p *Profile) CaptureList() (*mdwargs.CaptureList, error) {
	rules, err := p.Rules()
	if err != nil {
		return nil, err
	}
	return rules.CaptureList(p.Captures...), nil
}

// Classifier builds a classifier from the profile
func (p *Profile) Classifier() (*mdwargs.Classifier, error) {
	rules, err := p.Rules()
	if err != nil {
		return nil, err
	}
	return mdwargs.NewClassifier(rules, rules.CaptureList(p.Captures...)), nil
}

// String provides a readable representation of the profile
func (p *Profile) String() string {
	return fmt.Sprintf("Profile{name: %s, delimiters: %q, negativeNumbers: %t, captures: %q}",
		p.Name, p.Delimiters, p.NegativeNumbers, p.Captures)
}

// validate checks the delimiters early so a broken profile fails at load
func (p *Profile) validate() error {
	if p.Name == "" {
		p.Name = DefaultName
	}
	if len(p.Delimiters) == 0 {
		p.Delimiters = []string{string(mdwargs.DefaultDelimiter)}
	}
	_, err := p.Rules()
	return err
}

func notFound(path string) error {
	return errors.NotFound(errors.ModuleProfile, "load", path)
}
