package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reeflabs/reef/internal/core/application"
)

var (
	utxoCmd = &cobra.Command{
		Use:   "utxo",
		Short: "Manage the local utxo set",
	}
	utxoAddCmd = &cobra.Command{
		Use:   "add <utxos.json>",
		Short: "Add utxos to the local set",
		Args:  cobra.ExactArgs(1),
		RunE:  utxoAddAction,
	}
	utxoListCmd = &cobra.Command{
		Use:   "list",
		Short: "List the utxos of the local set",
		Args:  cobra.NoArgs,
		RunE:  utxoListAction,
	}
	utxoRemoveCmd = &cobra.Command{
		Use:   "remove <txhash:index>...",
		Short: "Remove utxos from the local set",
		Args:  cobra.MinimumNArgs(1),
		RunE:  utxoRemoveAction,
	}
	utxoBalanceCmd = &cobra.Command{
		Use:   "balance",
		Short: "Show the total value of the local utxo set",
		Args:  cobra.NoArgs,
		RunE:  utxoBalanceAction,
	}
	utxoSelectCmd = &cobra.Command{
		Use:   "select <outputs.json>",
		Short: "Select utxos of the local set covering the given outputs",
		Args:  cobra.ExactArgs(1),
		RunE:  utxoSelectAction,
	}
)

func init() {
	utxoBalanceCmd.Flags().Bool("ada", false, "render the lovelace amount in ADA")
	utxoSelectCmd.Flags().String(
		"surplus", "",
		"path to a JSON value counting as already-accumulated surplus",
	)
	utxoCmd.AddCommand(
		utxoAddCmd, utxoListCmd, utxoRemoveCmd, utxoBalanceCmd, utxoSelectCmd,
	)
}

func utxoAddAction(cmd *cobra.Command, args []string) error {
	var utxos application.Utxos
	if err := readJSONFile(args[0], &utxos); err != nil {
		return err
	}

	svc, cleanup, err := getUtxoService()
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := svc.AddUtxos(cmd.Context(), utxos)
	if err != nil {
		return err
	}

	fmt.Printf("added %d utxo(s)\n", count)
	return nil
}

func utxoListAction(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := getUtxoService()
	if err != nil {
		return err
	}
	defer cleanup()

	utxos, err := svc.ListUtxos(cmd.Context())
	if err != nil {
		return err
	}

	return printRespJSON(utxos)
}

func utxoRemoveAction(cmd *cobra.Command, args []string) error {
	ids, err := parseUtxoIDs(args)
	if err != nil {
		return err
	}

	svc, cleanup, err := getUtxoService()
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := svc.RemoveUtxos(cmd.Context(), ids)
	if err != nil {
		return err
	}

	fmt.Printf("removed %d utxo(s)\n", count)
	return nil
}

func utxoBalanceAction(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := getUtxoService()
	if err != nil {
		return err
	}
	defer cleanup()

	balance, err := svc.GetBalance(cmd.Context())
	if err != nil {
		return err
	}

	if ada, _ := cmd.Flags().GetBool("ada"); ada {
		fmt.Printf("%s ADA\n", formatAda(balance.Lovelace))
		for _, asset := range balance.Assets {
			fmt.Printf("%s.%s: %s\n", asset.PolicyID, asset.AssetName, asset.Quantity)
		}
		return nil
	}

	return printRespJSON(balance)
}

func utxoSelectAction(cmd *cobra.Command, args []string) error {
	var outputs application.Utxos
	if err := readJSONFile(args[0], &outputs); err != nil {
		return err
	}

	surplus, err := surplusFromFlag(cmd)
	if err != nil {
		return err
	}

	svc, cleanup, err := getUtxoService()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.SelectWalletUtxos(
		cmd.Context(), outputs, surplus,
		application.CoinSelectionStrategyAssetFirst,
	)
	if err != nil {
		return err
	}

	return printRespJSON(result)
}
