package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the application
	Version = "1.0.0"

	// VersionMajor is the major version number
	VersionMajor = 1

	// VersionMinor is the minor version number
	VersionMinor = 0

	// VersionPatch is the patch version number
	VersionPatch = 0

	// VersionPrerelease is the pre-release identifier
	VersionPrerelease = ""

	// TemplateVersion is the Odoo import template layout the column sets follow
	TemplateVersion = "17.0"
)

var (
	// BuildTime is set during build using ldflags
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags
	GitCommit = "unknown"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	Version         string `json:"version"`
	TemplateVersion string `json:"template_version"`
	BuildTime       string `json:"build_time"`
	GitCommit       string `json:"git_commit"`
	GoVersion       string `json:"go_version"`
	OS              string `json:"os"`
	Architecture    string `json:"architecture"`
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:         Version,
		TemplateVersion: TemplateVersion,
		BuildTime:       BuildTime,
		GitCommit:       GitCommit,
		GoVersion:       runtime.Version(),
		OS:              runtime.GOOS,
		Architecture:    runtime.GOARCH,
	}
}

// GetVersionString returns a formatted version string
func GetVersionString(command string) string {
	return fmt.Sprintf("odooseed %s v%s", command, Version)
}

// GetFullVersionString returns a detailed version string
func GetFullVersionString(command string) string {
	info := GetVersionInfo()
	return fmt.Sprintf(
		"%s (template: odoo %s, built: %s, commit: %s, go: %s, os: %s/%s)",
		GetVersionString(command),
		info.TemplateVersion,
		info.BuildTime,
		info.GitCommit,
		info.GoVersion,
		info.OS,
		info.Architecture,
	)
}

// IsStable returns true for releases without a pre-release identifier
func IsStable() bool {
	return VersionMajor >= 1 && VersionPrerelease == ""
}
