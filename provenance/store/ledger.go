package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/detpipe-core/detpipe/provenance"
	"github.com/detpipe-core/detpipe/sha256d"
)

// Ledger is a bbolt-backed store of Provenance snapshots, one per epoch
// of each chain (see Put for how a repeated epoch is handled).
type Ledger struct {
	db *bbolt.DB
}

// record is the on-disk JSON form of a Provenance snapshot. Digest
// fields are stored as []byte (base64 in JSON) rather than [32]byte
// arrays, which would otherwise marshal as a verbose array of integers.
type record struct {
	DatasetHash  []byte
	ConfigHash   []byte
	Seed         uint64
	CurrentEpoch uint32
	TotalEpochs  uint32
	PrevHash     []byte
	CurrentHash  []byte
}

func toRecord(p provenance.Provenance) record {
	return record{
		DatasetHash:  p.DatasetHash[:],
		ConfigHash:   p.ConfigHash[:],
		Seed:         p.Seed,
		CurrentEpoch: p.CurrentEpoch,
		TotalEpochs:  p.TotalEpochs,
		PrevHash:     p.PrevHash[:],
		CurrentHash:  p.CurrentHash[:],
	}
}

func (r record) toProvenance() provenance.Provenance {
	var p provenance.Provenance
	copy(p.DatasetHash[:], r.DatasetHash)
	copy(p.ConfigHash[:], r.ConfigHash)
	p.Seed = r.Seed
	p.CurrentEpoch = r.CurrentEpoch
	p.TotalEpochs = r.TotalEpochs
	copy(p.PrevHash[:], r.PrevHash)
	copy(p.CurrentHash[:], r.CurrentHash)
	return p
}

// Open opens (creating if absent) the ledger file at path.
func Open(path string) (*Ledger, error) {
	opts := &bbolt.Options{
		Timeout:      1 * time.Second,
		NoGrowSync:   false,
		FreelistType: bbolt.FreelistArrayType,
	}
	db, err := bbolt.Open(path, 0600, opts)
	if err != nil {
		return nil, fmt.Errorf("store: open ledger: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the underlying file.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// bucketKey identifies the dataset commitment a chain belongs to.
func bucketKey(datasetHash, configHash sha256d.Digest, seed uint64) []byte {
	key := make([]byte, 0, sha256d.Size*2+8)
	key = append(key, datasetHash[:]...)
	key = append(key, configHash[:]...)
	var seedLE [8]byte
	binary.LittleEndian.PutUint64(seedLE[:], seed)
	return append(key, seedLE[:]...)
}

// Put appends p's snapshot into the bucket for its (dataset_hash,
// config_hash, seed), keyed by CurrentEpoch. Writing the same epoch
// twice overwrites — callers should only do this to correct a crashed
// write, never to rewrite history.
func (l *Ledger) Put(p provenance.Provenance) error {
	data, err := json.Marshal(toRecord(p))
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}

	bk := bucketKey(p.DatasetHash, p.ConfigHash, p.Seed)
	return l.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bk)
		if err != nil {
			return fmt.Errorf("store: create bucket: %w", err)
		}
		var epochKey [4]byte
		binary.BigEndian.PutUint32(epochKey[:], p.CurrentEpoch)
		return bucket.Put(epochKey[:], data)
	})
}

// Head returns the latest (highest-epoch) snapshot for the given chain,
// or found=false if the chain has never been written.
func (l *Ledger) Head(datasetHash, configHash sha256d.Digest, seed uint64) (p provenance.Provenance, found bool, err error) {
	bk := bucketKey(datasetHash, configHash, seed)
	err = l.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bk)
		if bucket == nil {
			return nil
		}
		cursor := bucket.Cursor()
		_, v := cursor.Last()
		if v == nil {
			return nil
		}
		var r record
		if uerr := json.Unmarshal(v, &r); uerr != nil {
			return fmt.Errorf("store: unmarshal snapshot: %w", uerr)
		}
		p = r.toProvenance()
		found = true
		return nil
	})
	return p, found, err
}

// History returns every snapshot for the given chain in ascending epoch
// order.
func (l *Ledger) History(datasetHash, configHash sha256d.Digest, seed uint64) ([]provenance.Provenance, error) {
	bk := bucketKey(datasetHash, configHash, seed)
	var out []provenance.Provenance
	err := l.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bk)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, v []byte) error {
			var r record
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("store: unmarshal snapshot: %w", err)
			}
			out = append(out, r.toProvenance())
			return nil
		})
	})
	return out, err
}
