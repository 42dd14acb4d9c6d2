// Package binfile reads and writes whole instances in the fixed binary layout.
//
// The file has no magic number, version or checksum. Every integer is a
// little-endian 32-bit value, except the link placeholders which are 64-bit
// and always written as zero. In order:
//
//	user          256 x int32 achievements, int32 points
//	counts        uint32 task count, uint32 group count
//	settings      uint32 threshold, uint32 multiplier
//	groups        id, title[255], description[255], next, prev
//	tasks         id, created, priority, tag, group, complete, processed,
//	              ongoing, text[255], prev, next
//
// Text fields are NUL-terminated inside their 255 bytes. Link placeholders are
// skipped on read and the lists are rebuilt from record order.
package binfile

import (
	"encoding/binary"

	"ac-tracker/internal/domain"
)

var byteOrder = binary.LittleEndian

const (
	linkSize = 8

	userRecordSize  = domain.AchievementSlots*4 + 4
	headerSize      = 4 * 4
	groupRecordSize = 4 + 2*domain.TextFieldSize + 2*linkSize
	taskRecordSize  = 8*4 + domain.TextFieldSize + 2*linkSize
)

// Size returns the encoded length of a snapshot.
func Size(snapshot *domain.Snapshot) int {
	return userRecordSize + headerSize +
		len(snapshot.Groups)*groupRecordSize +
		len(snapshot.Tasks)*taskRecordSize
}
