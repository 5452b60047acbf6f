package main

import (
	"github.com/spf13/cobra"

	"github.com/reeflabs/reef/internal/core/application"
	"github.com/reeflabs/reef/internal/infrastructure/storage/db/inmemory"
)

var selectCmd = &cobra.Command{
	Use:   "select <inputs.json> <outputs.json>",
	Short: "Select utxos covering the given outputs",
	Long: "Select a subset of the given inputs whose total value covers the " +
		"given outputs in every dimension, lovelace and assets alike, and " +
		"compute the excess left over for the change. Fails when the inputs " +
		"are not enough",
	Args: cobra.ExactArgs(2),
	RunE: selectAction,
}

func init() {
	selectCmd.Flags().String(
		"surplus", "",
		"path to a JSON value counting as already-accumulated surplus",
	)
}

func selectAction(cmd *cobra.Command, args []string) error {
	var inputs, outputs application.Utxos
	if err := readJSONFile(args[0], &inputs); err != nil {
		return err
	}
	if err := readJSONFile(args[1], &outputs); err != nil {
		return err
	}

	surplus, err := surplusFromFlag(cmd)
	if err != nil {
		return err
	}

	svc := application.NewUtxoService(inmemory.NewRepoManager())
	result, err := svc.SelectUtxos(
		cmd.Context(), inputs, outputs, surplus,
		application.CoinSelectionStrategyAssetFirst,
	)
	if err != nil {
		return err
	}

	return printRespJSON(result)
}

func surplusFromFlag(cmd *cobra.Command) (*application.Utxo, error) {
	path, err := cmd.Flags().GetString("surplus")
	if err != nil || path == "" {
		return nil, err
	}

	surplus := &application.Utxo{}
	if err := readJSONFile(path, surplus); err != nil {
		return nil, err
	}
	return surplus, nil
}
