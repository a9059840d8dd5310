package cmd

import (
	"fmt"
	"strings"

	"github.com/sghaida/beanbox/di"
	"github.com/sghaida/beanbox/manifest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWireCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wire",
		Short: "Build the container and show every slot resolution",
		Long: `Build the container from the manifest and print how each dependency
slot was resolved. Fails when a component cannot be constructed, or when a
slot is unresolved under the "error" policy.

Example:
  beanbox wire -m beanbox.yaml --policy error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build()
			if err != nil {
				return err
			}

			printf(cmd, "beans (%d): %s\n", c.Len(), strings.Join(c.Names(), ", "))
			for _, r := range c.Resolutions() {
				printf(cmd, "%s\n", formatResolution(r))
			}
			if un := c.Unresolved(); len(un) > 0 {
				printf(cmd, "unresolved: %d\n", len(un))
			}
			return nil
		},
	}
}

func formatResolution(r di.Resolution) string {
	head := r.Bean + "." + r.Slot + " (" + r.Type + ")"
	switch r.Status {
	case di.StatusBound:
		return head + " -> " + r.Provider
	case di.StatusAmbiguous:
		return head + " ambiguous: " + strings.Join(r.Candidates, ", ")
	default:
		return head + " " + string(r.Status)
	}
}

// build loads the manifest and constructs a container from the catalog.
// A policy from flags or environment overrides the manifest's.
func (a *app) build() (*di.Container, error) {
	m, err := manifest.Load(a.cfg.Manifest)
	if err != nil {
		return nil, err
	}

	descs, err := m.Descriptors(a.catalog)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest %s: %w", a.cfg.Manifest, err)
	}

	policy := a.cfg.SlotPolicy
	if policy == "" {
		if policy, err = m.Policy(); err != nil {
			return nil, err
		}
	}

	a.log.Debug("building container",
		zap.String("manifest", a.cfg.Manifest),
		zap.Int("components", len(descs)),
		zap.String("policy", string(policy)))

	return di.New(descs, di.WithLogger(a.log), di.WithSlotPolicy(policy))
}
