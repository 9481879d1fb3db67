// Package checksum provides the CRC32 (IEEE) integrity checker used to
// verify extracted entries against the checksums the ZIP container
// records. The algorithm is fixed because the container format fixes it.
package checksum

import (
	"github.com/zipdesk/zipdesk/pkg/checksum"
)

type CRC32IEEE struct{}

func NewCRC32IEEE() *CRC32IEEE {
	return &CRC32IEEE{}
}

func (c *CRC32IEEE) Checksum(data []byte) uint32 {
	return checksum.Checksum(data)
}

func (c *CRC32IEEE) Verify(data []byte, expected uint32) bool {
	return checksum.VerifyChecksum(data, expected)
}
