package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/detpipe-core/detpipe/fixed"
	"github.com/detpipe-core/detpipe/merkle"
	"github.com/detpipe-core/detpipe/obslog"
	"github.com/detpipe-core/detpipe/pipeline"
	"github.com/detpipe-core/detpipe/pipelineconfig"
	"github.com/detpipe-core/detpipe/provenance"
	"github.com/detpipe-core/detpipe/provenance/store"
	"github.com/detpipe-core/detpipe/sha256d"
)

var (
	runEpochConfig  string
	runEpochDataset string
	runEpochEpoch   uint32
	runEpochBatches uint32
	runEpochOut     string
	runEpochStore   string
)

var runEpochCmd = &cobra.Command{
	Use:   "run-epoch",
	Args:  cobra.NoArgs,
	Short: "Run one epoch of the deterministic pipeline",
	Long: `Loads a dataset and a YAML pipeline configuration, runs every
batch of one epoch, writes a JSON manifest per batch, and advances the
on-disk provenance chain if no fault went sticky during the epoch.`,
	RunE: runEpoch,
}

func init() {
	runEpochCmd.Flags().StringVar(&runEpochConfig, "config", "", "path to pipeline YAML config (required)")
	runEpochCmd.Flags().StringVar(&runEpochDataset, "dataset", "", "directory of .tensor sample files (required)")
	runEpochCmd.Flags().Uint32Var(&runEpochEpoch, "epoch", 0, "epoch number")
	runEpochCmd.Flags().Uint32Var(&runEpochBatches, "batches", 0, "number of batches (default: dataset size / batch_size, rounded up)")
	runEpochCmd.Flags().StringVar(&runEpochOut, "out", ".", "directory to write batch manifests into")
	runEpochCmd.Flags().StringVar(&runEpochStore, "store", "detpipe-provenance.db", "path to the provenance ledger")
}

func runEpoch(cmd *cobra.Command, args []string) error {
	logger := obslog.New(os.Stderr)

	if runEpochConfig == "" || runEpochDataset == "" {
		return fmt.Errorf("--config and --dataset are required")
	}

	cfg, err := pipelineconfig.Load(runEpochConfig)
	if err != nil {
		logger.Error("failed to load config", err)
		return err
	}

	dataset, err := loadDataset(runEpochDataset)
	if err != nil {
		logger.Error("failed to load dataset", err)
		return err
	}

	configHash, err := hashConfigFile(runEpochConfig)
	if err != nil {
		logger.Error("failed to hash config", err)
		return err
	}

	ledger, err := store.Open(runEpochStore)
	if err != nil {
		logger.Error("failed to open provenance store", err)
		return err
	}
	defer ledger.Close()

	prov, found, err := ledger.Head(dataset.DatasetHash, configHash, cfg.Seed)
	if err != nil {
		logger.Error("failed to read provenance head", err)
		return err
	}
	if !found {
		prov = provenance.Init(dataset.DatasetHash, configHash, cfg.Seed)
	}

	numBatches := runEpochBatches
	if numBatches == 0 {
		numBatches = (dataset.NumSamples + cfg.BatchSize - 1) / cfg.BatchSize
	}

	if err := os.MkdirAll(runEpochOut, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", runEpochOut, err)
	}

	var faults fixed.FaultFlags
	start := time.Now()
	batches := pipeline.RunEpoch(dataset, &cfg.Augment, &cfg.Normalize, cfg.BatchSize, numBatches, runEpochEpoch, cfg.Seed, &prov, &faults)
	elapsed := time.Since(start)

	for _, b := range batches {
		logger.BatchCommitted(b.Epoch, b.BatchIndex, b.BatchHash, faults, elapsed/time.Duration(len(batches)))
		path := filepath.Join(runEpochOut, fmt.Sprintf("batch-%06d-%06d.json", b.Epoch, b.BatchIndex))
		if err := writeManifest(path, b, faults); err != nil {
			logger.Error("failed to write batch manifest", err)
			return err
		}
	}

	batchHashes := make([]sha256d.Digest, len(batches))
	for i, b := range batches {
		batchHashes[i] = b.BatchHash
	}
	var rootFaults fixed.FaultFlags
	epochHash := merkle.Root(batchHashes, &rootFaults)
	logger.EpochCommitted(runEpochEpoch, epochHash, prov.CurrentHash, faults, elapsed)

	if faults.AnyFault() {
		return fmt.Errorf("epoch %d aborted: sticky fault set, provenance not advanced", runEpochEpoch)
	}

	if err := ledger.Put(prov); err != nil {
		logger.Error("failed to persist provenance", err)
		return err
	}

	fmt.Printf("epoch %d committed: %d batches, provenance head %x\n", runEpochEpoch, len(batches), prov.CurrentHash[:8])
	return nil
}
