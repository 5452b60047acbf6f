package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/reeflabs/reef/internal/config"
	"github.com/reeflabs/reef/internal/core/application"
	"github.com/reeflabs/reef/internal/core/ports"
	dbbadger "github.com/reeflabs/reef/internal/infrastructure/storage/db/badger"
	"github.com/reeflabs/reef/internal/infrastructure/storage/db/inmemory"
)

func getUtxoService() (*application.UtxoService, func(), error) {
	repoManager, err := getRepoManager()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() { repoManager.Close() }
	return application.NewUtxoService(repoManager), cleanup, nil
}

func getRepoManager() (ports.RepoManager, error) {
	switch dbType := config.GetString(config.DatabaseTypeKey); dbType {
	case "badger":
		dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
		return dbbadger.NewRepoManager(dbDir, nil)
	case "inmemory":
		return inmemory.NewRepoManager(), nil
	default:
		return nil, fmt.Errorf(
			"unsupported database type, must be one of %s", config.SupportedDbs,
		)
	}
}

func readJSONFile(path string, dest interface{}) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(file, dest); err != nil {
		return fmt.Errorf("invalid JSON in %s: %s", path, err)
	}
	return nil
}

func printRespJSON(resp interface{}) error {
	buf, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}

// parseUtxoIDs parses a list of outpoints in txhash:index format.
func parseUtxoIDs(args []string) ([]application.UtxoID, error) {
	ids := make([]application.UtxoID, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid outpoint %s, must be txhash:index", arg)
		}
		index, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid outpoint index in %s: %s", arg, err)
		}
		ids = append(ids, application.UtxoID{
			Hash: parts[0], Index: uint32(index),
		})
	}
	return ids, nil
}

// formatAda renders a lovelace amount in ADA (1 ADA = 10^6 lovelace).
func formatAda(lovelace *big.Int) string {
	if lovelace == nil {
		lovelace = new(big.Int)
	}
	return decimal.NewFromBigInt(lovelace, -6).StringFixed(6)
}
