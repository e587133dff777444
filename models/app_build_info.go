// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the value types shared by the vault packages.
package models

import "strings"

// NotAvailable is shown for build values the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata injected with
// -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// BuildField is one labelled build value.
type BuildField struct {
	Name  string
	Value string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Fields returns version, date and commit in display order. Unset values
// read [NotAvailable].
func (a AppBuildInfo) Fields() []BuildField {
	return []BuildField{
		{Name: "version", Value: orNotAvailable(a.buildVersion)},
		{Name: "date", Value: orNotAvailable(a.buildDate)},
		{Name: "commit", Value: orNotAvailable(a.buildCommit)},
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
