package cmd

import (
	"github.com/sghaida/beanbox/di"
	"github.com/sghaida/beanbox/examples/garage"
	"github.com/spf13/cobra"
)

func newDriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drive",
		Short: "Build the garage container and drive the car",
		Long: `Build the container from the manifest, look the car up by type and
drive it. The manifest must select the garage components.

Example:
  beanbox drive -m examples/garage/beanbox.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build()
			if err != nil {
				return err
			}

			car, err := di.GetBean[*garage.Car](c)
			if err != nil {
				return err
			}

			out, err := car.Drive()
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", out)
			return nil
		},
	}
}
