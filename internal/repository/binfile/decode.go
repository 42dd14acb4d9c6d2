package binfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"ac-tracker/internal/domain"
)

// ErrMalformed marks input that does not follow the layout.
var ErrMalformed = errors.New("malformed instance data")

// Decode reads one snapshot from r. The reader must end right after the last
// task record.
func Decode(r io.Reader) (*domain.Snapshot, error) {
	br := bufio.NewReaderSize(r, 4096)
	buf := make([]byte, max(userRecordSize, groupRecordSize, taskRecordSize))
	snapshot := &domain.Snapshot{}

	if err := readRecord(br, buf[:userRecordSize], "user record"); err != nil {
		return nil, err
	}
	getUser(buf[:userRecordSize], &snapshot.User)

	if err := readRecord(br, buf[:headerSize], "header"); err != nil {
		return nil, err
	}
	taskCount := byteOrder.Uint32(buf[0:])
	groupCount := byteOrder.Uint32(buf[4:])
	snapshot.Settings.Threshold = byteOrder.Uint32(buf[8:])
	snapshot.Settings.Multiplier = byteOrder.Uint32(buf[12:])

	// Counts come from the file, so records are appended as they are read
	// instead of trusting the counts for allocation.
	for i := uint32(0); i < groupCount; i++ {
		rec := buf[:groupRecordSize]
		if err := readRecord(br, rec, fmt.Sprintf("group record %d", i)); err != nil {
			return nil, err
		}
		g, err := getGroup(rec)
		if err != nil {
			return nil, fmt.Errorf("group record %d: %w", i, err)
		}
		snapshot.Groups = append(snapshot.Groups, g)
	}

	for i := uint32(0); i < taskCount; i++ {
		rec := buf[:taskRecordSize]
		if err := readRecord(br, rec, fmt.Sprintf("task record %d", i)); err != nil {
			return nil, err
		}
		t, err := getTask(rec)
		if err != nil {
			return nil, fmt.Errorf("task record %d: %w", i, err)
		}
		snapshot.Tasks = append(snapshot.Tasks, t)
	}

	if _, err := br.ReadByte(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: trailing data after task records", ErrMalformed)
	}

	return snapshot, nil
}

func readRecord(r io.Reader, b []byte, what string) error {
	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: truncated %s", ErrMalformed, what)
		}
		return err
	}
	return nil
}

func getUser(b []byte, u *domain.User) {
	off := 0
	for i := range u.Achievements {
		u.Achievements[i] = int32(byteOrder.Uint32(b[off:]))
		off += 4
	}
	u.Points = int32(byteOrder.Uint32(b[off:]))
}

func getGroup(b []byte) (domain.Group, error) {
	var g domain.Group
	var err error

	g.ID = byteOrder.Uint32(b[0:])
	off := 4
	if g.Title, err = getText(b[off:off+domain.TextFieldSize], "title"); err != nil {
		return g, err
	}
	off += domain.TextFieldSize
	if g.Description, err = getText(b[off:off+domain.TextFieldSize], "description"); err != nil {
		return g, err
	}
	return g, nil
}

func getTask(b []byte) (domain.Task, error) {
	var t domain.Task
	var err error

	t.ID = byteOrder.Uint32(b[0:])
	t.CreatedAt = byteOrder.Uint32(b[4:])
	t.Priority = byteOrder.Uint32(b[8:])
	t.Tag = byteOrder.Uint32(b[12:])
	t.Group = byteOrder.Uint32(b[16:])
	t.Complete = byteOrder.Uint32(b[20:]) != 0
	t.Processed = byteOrder.Uint32(b[24:]) != 0
	t.Ongoing = byteOrder.Uint32(b[28:]) != 0

	t.Text, err = getText(b[32:32+domain.TextFieldSize], "text")
	return t, err
}

func getText(field []byte, name string) (string, error) {
	n := bytes.IndexByte(field, 0)
	if n < 0 {
		return "", fmt.Errorf("%w: %s is not NUL-terminated", ErrMalformed, name)
	}
	return string(field[:n]), nil
}
