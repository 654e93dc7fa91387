// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo identifies the directory binary that is running.
// cmd/directory fills it from variables set with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=..."
// and prints it before loading configuration. Unset values are empty.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns an [AppBuildInfo] holding the given values.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

// BuildCommit returns the git commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }
