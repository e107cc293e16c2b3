//go:build !unix

package shred

import (
	"os"
)

// On platforms without flock the O_RDWR open is the only exclusivity
// check; Windows already enforces mandatory sharing at open time.
func lockExclusive(_ *os.File) error {
	return nil
}
