package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/detpipe-core/detpipe/provenance/store"
	"github.com/detpipe-core/detpipe/sha256d"
)

var (
	showProvenanceStore      string
	showProvenanceDatasetHex string
	showProvenanceConfigHex  string
	showProvenanceSeed       uint64
	showProvenanceHistory    bool
)

var showProvenanceCmd = &cobra.Command{
	Use:   "show-provenance",
	Args:  cobra.NoArgs,
	Short: "Print a provenance chain's current head",
	Long: `Opens a provenance ledger and prints the latest snapshot for the
chain identified by (dataset_hash, config_hash, seed). With --history,
prints every snapshot in ascending epoch order instead.`,
	RunE: showProvenance,
}

func init() {
	showProvenanceCmd.Flags().StringVar(&showProvenanceStore, "store", "detpipe-provenance.db", "path to the provenance ledger")
	showProvenanceCmd.Flags().StringVar(&showProvenanceDatasetHex, "dataset-hash", "", "hex-encoded dataset_hash (required)")
	showProvenanceCmd.Flags().StringVar(&showProvenanceConfigHex, "config-hash", "", "hex-encoded config_hash (required)")
	showProvenanceCmd.Flags().Uint64Var(&showProvenanceSeed, "seed", 0, "chain seed")
	showProvenanceCmd.Flags().BoolVar(&showProvenanceHistory, "history", false, "print every snapshot, not just the head")
}

func showProvenance(cmd *cobra.Command, args []string) error {
	if showProvenanceDatasetHex == "" || showProvenanceConfigHex == "" {
		return fmt.Errorf("--dataset-hash and --config-hash are required")
	}

	datasetHash, err := digestFromHex(showProvenanceDatasetHex)
	if err != nil {
		return fmt.Errorf("--dataset-hash: %w", err)
	}
	configHash, err := digestFromHex(showProvenanceConfigHex)
	if err != nil {
		return fmt.Errorf("--config-hash: %w", err)
	}

	ledger, err := store.Open(showProvenanceStore)
	if err != nil {
		return err
	}
	defer ledger.Close()

	if showProvenanceHistory {
		history, err := ledger.History(datasetHash, configHash, showProvenanceSeed)
		if err != nil {
			return err
		}
		if len(history) == 0 {
			fmt.Println("no snapshots for this chain")
			return nil
		}
		for _, p := range history {
			printProvenance(p.CurrentEpoch, p.TotalEpochs, p.PrevHash, p.CurrentHash)
		}
		return nil
	}

	head, found, err := ledger.Head(datasetHash, configHash, showProvenanceSeed)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("no snapshots for this chain")
		return nil
	}
	printProvenance(head.CurrentEpoch, head.TotalEpochs, head.PrevHash, head.CurrentHash)
	return nil
}

func printProvenance(epoch, total uint32, prev, current sha256d.Digest) {
	fmt.Printf("epoch=%d total_epochs=%d prev_hash=%s current_hash=%s\n",
		epoch, total, hex.EncodeToString(prev[:]), hex.EncodeToString(current[:]))
}
