// Package persist serializes world snapshots with msgpack and stores them
// on disk with atomic replacement, so a crash mid-write never corrupts the
// last good snapshot.
package persist

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mrDIMAS/rusty-shooter/internal/game"
)

// Encode serializes a snapshot to msgpack bytes.
func Encode(snap game.Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "persist: encode snapshot")
	}
	return data, nil
}

// Decode deserializes msgpack bytes into a snapshot.
func Decode(data []byte) (game.Snapshot, error) {
	var snap game.Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return game.Snapshot{}, errors.Wrap(err, "persist: decode snapshot")
	}
	return snap, nil
}

// Save writes a snapshot to path via a temp file and rename.
func Save(path string, snap game.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return errors.Wrap(err, "persist: create temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "persist: write snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "persist: close temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "persist: replace snapshot")
	}
	return nil
}

// Load reads and decodes a snapshot file.
func Load(path string) (game.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Snapshot{}, errors.Wrapf(err, "persist: read %s", path)
	}
	return Decode(data)
}
