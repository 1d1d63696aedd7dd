// Package config loads the environment-driven settings each controller
// binary needs, plus an optional static YAML file for operator-owned
// defaults that don't belong in an environment variable (RBAC role
// hierarchy overrides, ArgoCD namespace name).
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Argon2Params holds the DerivedSecret controller's KDF cost knobs, read
// from ARGON2_TIME_COST, ARGON2_MEMORY_COST, ARGON2_PARALLELISM.
type Argon2Params struct {
	TimeCost    uint32
	MemoryCost  uint32 // KiB
	Parallelism uint8
}

// DefaultArgon2Params returns the baseline KDF cost (time_cost=3,
// memory_cost=65536 KiB, parallelism=4).
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{TimeCost: 3, MemoryCost: 65536, Parallelism: 4}
}

// LoadArgon2Params reads cost parameters from the environment, falling
// back to DefaultArgon2Params for unset or unparsable values.
func LoadArgon2Params() Argon2Params {
	p := DefaultArgon2Params()
	if v, err := strconv.ParseUint(os.Getenv("ARGON2_TIME_COST"), 10, 32); err == nil {
		p.TimeCost = uint32(v)
	}
	if v, err := strconv.ParseUint(os.Getenv("ARGON2_MEMORY_COST"), 10, 32); err == nil {
		p.MemoryCost = uint32(v)
	}
	if v, err := strconv.ParseUint(os.Getenv("ARGON2_PARALLELISM"), 10, 8); err == nil {
		p.Parallelism = uint8(v)
	}
	return p
}

// DefaultMasterPasswordPath is where the DerivedSecret controller expects
// its master password to be mounted.
const DefaultMasterPasswordPath = "/master-password/master-password"

// ReadMasterPassword reads the master password file. Failure here is a
// configuration error, fatal at startup.
func ReadMasterPassword(path string) (string, error) {
	if path == "" {
		path = DefaultMasterPasswordPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading master password from %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("master password file %s is empty", path)
	}
	return string(data), nil
}

// GetEnv reads an environment variable with a default fallback.
func GetEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// Defaults captures operator-owned defaults loaded from an optional static
// YAML file rather than an environment variable or CRD field: the RBAC
// role hierarchy (highest-role-wins order) and the ArgoCD namespace name.
// A missing file is not an error — DefaultSettings() is used as-is.
type Defaults struct {
	RoleHierarchy []string `yaml:"roleHierarchy"`
	ArgoCDNamespace string `yaml:"argoCDNamespace"`
}

// DefaultSettings returns the baseline role hierarchy and "argocd"
// namespace name.
func DefaultSettings() Defaults {
	return Defaults{
		RoleHierarchy:   []string{"cluster-admin", "system-admin", "platform-operator", "app-developer"},
		ArgoCDNamespace: "argocd",
	}
}

// LoadDefaults reads path as YAML into a Defaults value seeded with
// DefaultSettings(); a missing file is not an error.
func LoadDefaults(path string) (Defaults, error) {
	d := DefaultSettings()
	if path == "" {
		return d, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	return d, nil
}
