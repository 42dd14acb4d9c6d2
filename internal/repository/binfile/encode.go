package binfile

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"ac-tracker/internal/domain"
)

// Encode writes snapshot to w.
func Encode(w io.Writer, snapshot *domain.Snapshot) error {
	if uint64(len(snapshot.Tasks)) > math.MaxUint32 || uint64(len(snapshot.Groups)) > math.MaxUint32 {
		return fmt.Errorf("too many records to encode")
	}

	bw := bufio.NewWriterSize(w, 4096)
	buf := make([]byte, max(userRecordSize, groupRecordSize, taskRecordSize))

	putUser(buf[:userRecordSize], &snapshot.User)
	if _, err := bw.Write(buf[:userRecordSize]); err != nil {
		return err
	}

	header := buf[:headerSize]
	byteOrder.PutUint32(header[0:], uint32(len(snapshot.Tasks)))
	byteOrder.PutUint32(header[4:], uint32(len(snapshot.Groups)))
	byteOrder.PutUint32(header[8:], snapshot.Settings.Threshold)
	byteOrder.PutUint32(header[12:], snapshot.Settings.Multiplier)
	if _, err := bw.Write(header); err != nil {
		return err
	}

	for i := range snapshot.Groups {
		rec := buf[:groupRecordSize]
		if err := putGroup(rec, &snapshot.Groups[i]); err != nil {
			return err
		}
		if _, err := bw.Write(rec); err != nil {
			return err
		}
	}

	for i := range snapshot.Tasks {
		rec := buf[:taskRecordSize]
		if err := putTask(rec, &snapshot.Tasks[i]); err != nil {
			return err
		}
		if _, err := bw.Write(rec); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func putUser(b []byte, u *domain.User) {
	off := 0
	for _, v := range u.Achievements {
		byteOrder.PutUint32(b[off:], uint32(v))
		off += 4
	}
	byteOrder.PutUint32(b[off:], uint32(u.Points))
}

func putGroup(b []byte, g *domain.Group) error {
	clear(b)
	byteOrder.PutUint32(b[0:], g.ID)
	off := 4
	if err := putText(b[off:off+domain.TextFieldSize], "group title", g.Title); err != nil {
		return err
	}
	off += domain.TextFieldSize
	if err := putText(b[off:off+domain.TextFieldSize], "group description", g.Description); err != nil {
		return err
	}
	// next and prev placeholders stay zero
	return nil
}

func putTask(b []byte, t *domain.Task) error {
	clear(b)
	fields := [...]uint32{
		t.ID,
		t.CreatedAt,
		t.Priority,
		t.Tag,
		t.Group,
		boolToUint32(t.Complete),
		boolToUint32(t.Processed),
		boolToUint32(t.Ongoing),
	}
	off := 0
	for _, v := range fields {
		byteOrder.PutUint32(b[off:], v)
		off += 4
	}
	// prev and next placeholders stay zero
	return putText(b[off:off+domain.TextFieldSize], "task text", t.Text)
}

// putText copies s into a zeroed fixed-width field, leaving room for the
// terminator.
func putText(field []byte, name, s string) error {
	if len(s) > domain.MaxTextLength {
		return fmt.Errorf("%s is %d bytes, limit is %d", name, len(s), domain.MaxTextLength)
	}
	copy(field, s)
	return nil
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
