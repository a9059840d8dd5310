package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List registered components",
		Long: `List the components registered in the catalog together with their
dependency slots.

Example:
  beanbox catalog --package github.com/sghaida/beanbox/examples/garage`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("package")

			descs := a.catalog.Scan(prefix)
			if len(descs) == 0 {
				printf(cmd, "no components registered\n")
				return nil
			}
			for _, d := range descs {
				slots := make([]string, 0, len(d.Slots()))
				for _, s := range d.Slots() {
					typ, _ := d.SlotType(s)
					slots = append(slots, s+" "+typ)
				}
				printf(cmd, "%s\t%s\t[%s]\n", d.Name(), d.Package(), strings.Join(slots, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringP("package", "p", "", "only components under this import path")
	return cmd
}
