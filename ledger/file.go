package ledger

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mirrordna/scd-go/handoff"
)

// loadSnapshot adopts a verified snapshot from the state file. A missing
// file is a normal fresh start; a malformed or drifted snapshot is logged
// and ignored so a corrupt file can never poison the ledger.
func (l *Ledger) loadSnapshot() {
	data, err := os.ReadFile(l.stateFile)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		l.logger.Error("failed to read state snapshot", "path", l.stateFile, "error", err)
		return
	}

	p, err := handoff.Decode(string(data))
	if err != nil {
		l.logger.Warn("state snapshot failed verification, starting fresh", "path", l.stateFile, "error", err)
		return
	}

	l.entries = p.Entries
	l.revision = p.Revision
	l.checksum = p.Checksum
	l.logger.Debug("state snapshot loaded", "path", l.stateFile, "revision", l.revision)
}

// writeSnapshot persists a payload via write-to-temp plus rename so readers
// never observe a partially written snapshot.
func writeSnapshot(path string, p handoff.Payload) error {
	s, err := p.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
