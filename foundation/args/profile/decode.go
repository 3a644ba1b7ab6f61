// File: decode.go
// Title: Profile Decoders
// Description: Reads the [classifier] section of a profile through the
//              config layer (TOML, YAML, environment overrides) or through
//              the HCL parser (classifier { ... } block).
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package profile

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	mdwconfig "github.com/msto63/argv/foundation/core/config"
	mdwerror "github.com/msto63/argv/foundation/core/error"
	"github.com/msto63/argv/foundation/core/errors"
)

const section = "classifier"

var sectionRules = mdwconfig.ValidationRules{
	section + ".name":             {Type: "string"},
	section + ".delimiters":       {Type: "[]string"},
	section + ".negative_numbers": {Type: "bool"},
	section + ".captures":         {Type: "[]string"},
}

func loadConfigFile(path string) (*Profile, error) {
	cfg, err := mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load profile").
			WithOperation("profile.Load").
			WithDetail("path", path)
	}
	return fromConfig(cfg)
}

func loadConfigString(content string, format mdwconfig.Format) (*Profile, error) {
	cfg, err := mdwconfig.LoadFromStringWithOptions(content, mdwconfig.LoadOptions{
		Format:    format,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse profile").
			WithOperation("profile.LoadString")
	}
	return fromConfig(cfg)
}

func fromConfig(cfg *mdwconfig.Config) (*Profile, error) {
	if err := cfg.Validate(sectionRules).Err(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid profile").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("profile.decode")
	}

	def := Default()
	return &Profile{
		Name:            cfg.GetString(section+".name", def.Name),
		Delimiters:      cfg.GetStringSlice(section+".delimiters", def.Delimiters),
		NegativeNumbers: cfg.GetBool(section+".negative_numbers", def.NegativeNumbers),
		Captures:        cfg.GetStringSlice(section + ".captures"),
	}, nil
}

// hclProfileFile is the top level of an HCL profile
type hclProfileFile struct {
	Classifier *hclClassifier `hcl:"classifier,block"`
	Remain     hcl.Body       `hcl:",remain"`
}

type hclClassifier struct {
	Name            *string  `hcl:"name,optional"`
	Delimiters      []string `hcl:"delimiters,optional"`
	NegativeNumbers *bool    `hcl:"negative_numbers,optional"`
	Captures        []string `hcl:"captures,optional"`
}

func loadHCLFile(path string) (*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(path)
		}
		return nil, errors.OperationFailed(errors.ModuleProfile, "load", err)
	}
	return decodeHCL(src, path)
}

func decodeHCL(src []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, hclError(diags, filename, mdwerror.CodeInvalidInput)
	}

	var parsed hclProfileFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, hclError(diags, filename, mdwerror.CodeInvalidConfig)
	}

	p := Default()
	if c := parsed.Classifier; c != nil {
		if c.Name != nil {
			p.Name = *c.Name
		}
		if c.Delimiters != nil {
			p.Delimiters = c.Delimiters
		}
		if c.NegativeNumbers != nil {
			p.NegativeNumbers = *c.NegativeNumbers
		}
		p.Captures = c.Captures
	}
	return p, nil
}

func hclError(diags hcl.Diagnostics, filename string, code mdwerror.Code) error {
	return errors.NewErrorBuilder(errors.ModuleProfile).
		Operation("decode_hcl").
		Messagef("failed to decode HCL profile %s", filename).
		Cause(diags).
		Code(code).
		Detail("filename", filename).
		Build()
}
