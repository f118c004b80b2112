// Package export writes UE profiles to disk as UE configuration YAML files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/webue/webue-client/pkg/webue"
	"gopkg.in/yaml.v3"
)

// Logger defines the logging surface export relies on.
type Logger interface {
	WarnObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) WarnObj(string, string, interface{}) {}

// FileName returns the file name used for a profile.
func FileName(supi string) string {
	return fmt.Sprintf("ue_profile_%s.yaml", supi)
}

// Profiles writes each profile to dir and returns the written paths. A
// profile that cannot be written is logged and skipped.
func Profiles(dir string, profiles []webue.UeProfile, log Logger) ([]string, error) {
	if log == nil {
		log = noopLogger{}
	}
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("export directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	written := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.Supi == "" || strings.ContainsAny(p.Supi, `/\`) {
			log.WarnObj("skipping profile with unusable supi", "supi", p.Supi)
			continue
		}
		path := filepath.Join(dir, FileName(p.Supi))
		if err := writeYAML(path, p); err != nil {
			log.WarnObj("failed to export profile", "export_error", map[string]string{
				"supi":  p.Supi,
				"error": err.Error(),
			})
			continue
		}
		written = append(written, path)
	}
	return written, nil
}

func writeYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadGenerateRequest reads a profile generation request from a YAML file.
func LoadGenerateRequest(path string) (webue.GenerateRequest, error) {
	var req webue.GenerateRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read generate request: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse generate request: %w", err)
	}
	if req.NumUEs < 1 {
		return req, fmt.Errorf("num_ues must be at least 1")
	}
	return req, nil
}

// LoadProfile reads a single UE profile from a YAML file.
func LoadProfile(path string) (webue.UeProfile, error) {
	var profile webue.UeProfile
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parse profile: %w", err)
	}
	return profile, nil
}
