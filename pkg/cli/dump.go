/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
	"github.com/NVIDIA/cluster-archive/pkg/discovery"
	"github.com/NVIDIA/cluster-archive/pkg/dumper"
	apperrors "github.com/NVIDIA/cluster-archive/pkg/errors"
	"github.com/NVIDIA/cluster-archive/pkg/k8s/client"
	"github.com/NVIDIA/cluster-archive/pkg/kubectl"
	"github.com/NVIDIA/cluster-archive/pkg/layout"
	"github.com/NVIDIA/cluster-archive/pkg/oci"
	"github.com/NVIDIA/cluster-archive/pkg/serializer"
	"github.com/NVIDIA/cluster-archive/pkg/strip"
)

func dumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "dump",
		EnableShellCompletion: true,
		Usage:                 "Archive every listable object in the cluster",
		Description: `Discover every listable resource type the cluster serves and write all
objects to a directory tree, one file per object:

  <root>/<namespace>/<group>/<Kind>/<name>/raw.json

Cluster-scoped objects go under the _global_ namespace; core-group types
omit the group segment. The archive root also holds cluster-version.json,
apis.json (the discovered catalog), and cluster-info.txt when kubectl is
available.

Selected kinds get extra files next to raw.json:
  - Pods: current and previous container logs (logs-<container>.txt)
  - ConfigMaps and Secrets: one file per data entry (data-<key>)
  - Any object referenced by cluster events: events.txt

Types the credentials cannot list are skipped and counted; the run only
fails when the cluster is unreachable or the archive cannot be written.

# Examples

Archive to the default directory:
  ichnos dump

Archive to a named directory with escaped object names:
  ichnos dump --root ./prod-archive --escape-names

Keep managed fields in the output:
  ichnos dump --strip none

Pace list calls on a throttled control plane:
  ichnos dump --list-rps 5

Push the finished archive to a registry:
  ichnos dump --push oci://ghcr.io/nvidia/cluster-archive:prod-2026-08-22

Write the run summary as JSON to a file:
  ichnos dump --output summary.json --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Directory to write the archive tree into",
				Sources: cli.EnvVars("ICHNOS_ROOT"),
				Value:   "./cluster-archive",
			},
			&cli.StringSliceFlag{
				Name:    "strip",
				Usage:   "Named transforms applied to every object before writing (use \"none\" to disable)",
				Sources: cli.EnvVars("ICHNOS_STRIP"),
				Value:   []string{"managed-fields"},
			},
			&cli.BoolFlag{
				Name:    "escape-names",
				Usage:   "Escape path separators in object names instead of creating nested directories",
				Sources: cli.EnvVars("ICHNOS_ESCAPE_NAMES"),
			},
			&cli.FloatFlag{
				Name:    "list-rps",
				Usage:   "Maximum list requests per second, 0 for unlimited",
				Sources: cli.EnvVars("ICHNOS_LIST_RPS"),
			},
			&cli.StringFlag{
				Name:    "push",
				Usage:   "Push the finished archive to an OCI registry (format: oci://registry/repository:tag)",
				Sources: cli.EnvVars("ICHNOS_PUSH"),
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use plain HTTP for the push registry connection",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the push registry",
			},
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			strips, err := strip.Parse(stripNames(cmd.StringSlice("strip")))
			if err != nil {
				return err
			}

			// Validate the push target before touching the cluster.
			var pushRef *oci.Reference
			if target := cmd.String("push"); target != "" {
				ref, err := oci.ParseOutputTarget(target)
				if err != nil {
					return err
				}
				if !ref.IsOCI {
					return apperrors.New(apperrors.ErrCodeInvalidRequest,
						"push target must use the oci:// scheme")
				}
				if ref.Tag == "" {
					ref = ref.WithTag(version)
				}
				pushRef = ref
			}

			clients, err := client.Build(cmd.String("kubeconfig"))
			if err != nil {
				return err
			}

			// The version call doubles as the connectivity baseline: if it
			// fails, nothing else can work.
			info, err := clients.Discovery().ServerVersion()
			if err != nil {
				return apperrors.Wrap(apperrors.ErrCodeUnavailable,
					"failed to reach the cluster API", err)
			}
			slog.Info("connected to cluster",
				"gitVersion", info.GitVersion,
				"platform", info.Platform)

			catalog, err := discovery.Discover(clients.Discovery())
			if err != nil {
				return err
			}
			slog.Info("discovered resource catalog", "types", len(catalog))

			var opts []layout.Option
			if cmd.Bool("escape-names") {
				opts = append(opts, layout.WithEscapedNames())
			}
			lay := layout.New(cmd.String("root"), opts...)

			if err := os.MkdirAll(lay.Root(), defaults.DirMode); err != nil {
				return fmt.Errorf("failed to create archive root: %w", err)
			}

			writeClusterInfo(ctx, lay)

			d := &dumper.Dumper{
				Clientset: clients.Clientset,
				Dynamic:   clients.Dynamic,
				Layout:    lay,
				Version:   info,
				Catalog:   catalog,
				Strips:    strips,
			}
			if rps := cmd.Float("list-rps"); rps > 0 {
				d.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
			}

			sum, err := d.Run(ctx)
			if err != nil {
				return err
			}
			slog.Info("archive complete",
				"root", lay.Root(),
				"types", sum.TypesDumped,
				"objects", sum.ObjectsDumped)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if closer, ok := w.(serializer.Closer); ok {
				defer func() {
					_ = closer.Close()
				}()
			}
			if err := w.Serialize(ctx, sum); err != nil {
				return fmt.Errorf("failed to serialize run summary: %w", err)
			}

			if pushRef != nil {
				slog.Info("pushing archive", "reference", pushRef.ImageReference())
				res, err := oci.Push(ctx, oci.PushOptions{
					SourceDir:   lay.Root(),
					Registry:    pushRef.Registry,
					Repository:  pushRef.Repository,
					Tag:         pushRef.Tag,
					PlainHTTP:   cmd.Bool("plain-http"),
					InsecureTLS: cmd.Bool("insecure-tls"),
					Annotations: map[string]string{
						ociv1.AnnotationCreated: sum.StartedAt.Format(time.RFC3339),
					},
				})
				if err != nil {
					return fmt.Errorf("failed to push archive: %w", err)
				}
				slog.Info("archive pushed",
					"reference", res.Reference,
					"digest", res.Digest)
			}

			return nil
		},
	}
}

// stripNames turns the flag value into parseable transform names. The
// single value "none" disables stripping entirely.
func stripNames(names []string) []string {
	if len(names) == 1 && names[0] == "none" {
		return nil
	}
	return names
}

// writeClusterInfo captures "kubectl cluster-info" next to the archive when
// a working kubectl is around. The file is optional context for readers;
// any failure leaves it out and the dump continues.
func writeClusterInfo(ctx context.Context, lay *layout.Layout) {
	runner := kubectl.New(ctx)

	out, found, err := runner.ClusterInfo(ctx)
	if err != nil {
		slog.Warn("failed to capture cluster-info, continuing without it", "error", err)
		return
	}
	if !found {
		return
	}

	if err := serializer.WriteToFile(lay.ClusterInfoPath(), []byte(out)); err != nil {
		slog.Warn("failed to write cluster-info file, continuing without it", "error", err)
	}
}
