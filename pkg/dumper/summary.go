// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dumper

import (
	"time"

	"github.com/google/uuid"
	k8sversion "k8s.io/apimachinery/pkg/version"

	"github.com/NVIDIA/cluster-archive/pkg/version"
)

// Summary reports what one archive run captured. It is what the CLI
// serializes to the user after the run completes.
type Summary struct {
	// RunID is a unique identifier for this run.
	RunID string `json:"runId" yaml:"runId"`

	// StartedAt is the UTC time the run began.
	StartedAt time.Time `json:"startedAt" yaml:"startedAt"`

	// DurationSeconds is the wall-clock duration of the run.
	DurationSeconds float64 `json:"durationSeconds" yaml:"durationSeconds"`

	// Cluster describes the archived cluster.
	Cluster ClusterInfo `json:"cluster" yaml:"cluster"`

	// TypesDiscovered is the size of the discovered resource catalog.
	TypesDiscovered int `json:"typesDiscovered" yaml:"typesDiscovered"`

	// TypesDumped is the number of types fully listed and written.
	TypesDumped int `json:"typesDumped" yaml:"typesDumped"`

	// TypesFailed is the number of types skipped after a failed list.
	TypesFailed int `json:"typesFailed" yaml:"typesFailed"`

	// ObjectsDumped is the total number of objects written.
	ObjectsDumped int `json:"objectsDumped" yaml:"objectsDumped"`

	// LogFiles is the number of container log files written.
	LogFiles int `json:"logFiles" yaml:"logFiles"`

	// DataFiles is the number of config and secret data files written.
	DataFiles int `json:"dataFiles" yaml:"dataFiles"`

	// EventGroupsWritten is the number of per-object event files written.
	EventGroupsWritten int `json:"eventGroupsWritten" yaml:"eventGroupsWritten"`

	// EventGroupsSkipped is the number of event groups whose object was
	// never archived.
	EventGroupsSkipped int `json:"eventGroupsSkipped" yaml:"eventGroupsSkipped"`

	// EventsDropped is the number of events without a usable object
	// reference.
	EventsDropped int `json:"eventsDropped" yaml:"eventsDropped"`
}

// ClusterInfo identifies the cluster an archive was taken from.
type ClusterInfo struct {
	// Version is the parsed semantic version, without vendor suffixes.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// GitVersion is the server's version string as reported.
	GitVersion string `json:"gitVersion,omitempty" yaml:"gitVersion,omitempty"`

	// Platform is the server's os/arch.
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

func newSummary(info *k8sversion.Info) *Summary {
	s := &Summary{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
	if info != nil {
		s.Cluster = ClusterInfo{
			Version:    version.NormalizeGitVersion(info.GitVersion),
			GitVersion: info.GitVersion,
			Platform:   info.Platform,
		}
	}
	return s
}
