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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// dumpDuration tracks how long a full archive run takes.
	dumpDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ichnos_dump_duration_seconds",
		Help:    "Duration of a full archive run in seconds",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})

	// dumpObjectsTotal counts written objects by kind.
	dumpObjectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ichnos_dump_objects_total",
		Help: "Total number of objects written to the archive",
	}, []string{"kind"})

	// dumpTypeFailures counts resource types skipped after a failed list.
	dumpTypeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ichnos_dump_type_failures_total",
		Help: "Number of resource types skipped because listing them failed",
	})

	// dumpLogFetches counts container log fetch outcomes.
	dumpLogFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ichnos_dump_log_fetches_total",
		Help: "Container log fetch attempts by outcome",
	}, []string{"status"})

	// dumpEventGroups counts correlated event groups by outcome.
	dumpEventGroups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ichnos_dump_event_groups_total",
		Help: "Event groups correlated to archived objects by outcome",
	}, []string{"status"})
)

const (
	statusPresent = "present"
	statusAbsent  = "absent"
	statusWritten = "written"
	statusSkipped = "skipped"
)
