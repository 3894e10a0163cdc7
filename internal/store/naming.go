package store

import (
	"fmt"
	"strings"
	"time"
)

const (
	backupExt       = ".json"
	timestampLayout = "20060102T150405Z"
	shortIDLength   = 8
)

// backupFilename mints the stored name of one backup document:
// {app}-{UTC timestamp}-{short id}.json. The short id keeps two exports
// within the same second from colliding.
func backupFilename(app string, exportedAt time.Time, shortID string) string {
	return fmt.Sprintf("%s-%s-%s%s", app, exportedAt.UTC().Format(timestampLayout), shortID, backupExt)
}

// mintedFor reports whether name is a backup file minted for exactly app.
// It requires the full {app}-{timestamp}-{short id}.json shape: a bare app
// prefix is not enough, "foo" must not match the backups of "foo-bar".
func mintedFor(app, name string) bool {
	rest, ok := strings.CutPrefix(name, app+"-")
	if !ok {
		return false
	}
	rest, ok = strings.CutSuffix(rest, backupExt)
	if !ok {
		return false
	}
	stamp, short, ok := strings.Cut(rest, "-")
	if !ok || len(short) != shortIDLength {
		return false
	}
	_, err := time.Parse(timestampLayout, stamp)
	return err == nil
}

// validatePath ensures path looks like a name this store minted. Minted
// names never contain separators or dot-dot segments, so anything carrying
// them could only be an attempt to read outside the backup root.
func validatePath(path string) error {
	if path == "" || strings.ContainsAny(path, `/\`) || strings.Contains(path, "..") {
		return fmt.Errorf("%w: %q", ErrPathEscapesRoot, path)
	}
	return nil
}
