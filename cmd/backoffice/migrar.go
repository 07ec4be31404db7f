package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
)

func newMigrarCmd() *cobra.Command {
	var listar bool
	cmd := &cobra.Command{
		Use:   "migrar",
		Short: "Aplica las migraciones SQL pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listar {
				names, err := postgres.MigrationNames()
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			}

			env, err := abrirEntorno(cmd.Context(), "migrar")
			if err != nil {
				return err
			}
			defer env.Close()

			applied, err := postgres.Migrate(cmd.Context(), env.pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "esquema al día")
				return nil
			}
			env.log.Info().Strs("migraciones", applied).Msg("migraciones aplicadas")
			for _, n := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "aplicada:", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&listar, "listar", false, "solo listar las migraciones embebidas")
	return cmd
}
