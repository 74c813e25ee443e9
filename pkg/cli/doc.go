// Package cli implements the command-line interface for the ichnos cluster
// archive tool.
//
// # Overview
//
// The ichnos CLI archives the full state of a Kubernetes cluster: every
// listable object the credentials can see, written one file per object into
// a deterministic directory tree, plus container logs, config data, and
// correlated events for selected kinds. It is designed for cluster
// administrators capturing a cluster for audits, migrations, or postmortems.
//
// # Commands
//
// dump - Archive the cluster:
//
//	ichnos dump [--root DIR] [--strip NAME]... [--push oci://REF]
//
// Discovers every listable resource type, lists all objects across all
// namespaces, and writes the archive tree. The run summary goes to stdout
// or --output in YAML, JSON, or table format. With --push the finished
// archive is packed and pushed to an OCI registry.
//
// version - Print build information:
//
//	ichnos version [--format yaml|json|table]
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--output, -o   Output file path for results (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--kubeconfig   Kubeconfig path (default: $KUBECONFIG, ~/.kube/config, in-cluster)
//
// # Environment Variables
//
// Every dump flag has an ICHNOS_ prefixed source:
//
//	ICHNOS_ROOT          Archive directory
//	ICHNOS_STRIP         Transform names applied before writing
//	ICHNOS_ESCAPE_NAMES  Escape path separators in object names
//	ICHNOS_LIST_RPS      List request pacing
//	ICHNOS_PUSH          OCI push target
//	ICHNOS_OUTPUT        Summary output path
//	ICHNOS_FORMAT        Summary output format
//	ICHNOS_KUBECONFIG    Kubeconfig path
//	ICHNOS_LOG_LEVEL     Log verbosity
//
// # Exit Codes
//
//	0  Success, including runs with skipped types
//	1  General error (invalid arguments, unreachable cluster, write failure)
//	2  Context canceled (SIGINT/SIGTERM)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/discovery - resource catalog construction
//   - pkg/dumper - the archive pipeline
//   - pkg/layout - archive path mapping
//   - pkg/strip - pre-write field removal
//   - pkg/kubectl - optional cluster-info capture
//   - pkg/oci - archive push
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cluster-archive/pkg/cli.version=1.0.0'"
package cli
