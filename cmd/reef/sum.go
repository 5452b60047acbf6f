package main

import (
	"github.com/spf13/cobra"

	"github.com/reeflabs/reef/internal/core/application"
	"github.com/reeflabs/reef/internal/infrastructure/storage/db/inmemory"
)

var sumCmd = &cobra.Command{
	Use:   "sum <utxos.json>",
	Short: "Aggregate a list of utxos into their total value",
	Args:  cobra.ExactArgs(1),
	RunE:  sumAction,
}

func sumAction(cmd *cobra.Command, args []string) error {
	var utxos application.Utxos
	if err := readJSONFile(args[0], &utxos); err != nil {
		return err
	}

	svc := application.NewUtxoService(inmemory.NewRepoManager())
	total, err := svc.SumUtxos(cmd.Context(), utxos)
	if err != nil {
		return err
	}

	return printRespJSON(total)
}
