package binfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ac-tracker/internal/domain"
	apperrors "ac-tracker/internal/errors"
)

func buildSnapshot(groups, tasks int) *domain.Snapshot {
	s := &domain.Snapshot{
		User:     domain.User{Points: -1234},
		Settings: domain.Settings{Multiplier: 10, Threshold: 3},
	}
	s.User.Achievements[0] = 1
	s.User.Achievements[domain.AchievementSlots-1] = -7

	for i := 0; i < groups; i++ {
		s.Groups = append(s.Groups, domain.Group{
			ID:          uint32(i),
			Title:       fmt.Sprintf("Group %d", i),
			Description: fmt.Sprintf("Description of group %d", i),
		})
	}
	for i := 0; i < tasks; i++ {
		s.Tasks = append(s.Tasks, domain.Task{
			ID:        uint32(i * 2),
			CreatedAt: 1700000000 + uint32(i)*86400,
			Priority:  uint32(i),
			Tag:       uint32(100 + i),
			Group:     uint32(i % 3),
			Complete:  i%2 == 0,
			Processed: i%3 == 0,
			Ongoing:   i == 4,
			Text:      fmt.Sprintf("task number %d", i),
		})
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d records", n), func(t *testing.T) {
			want := buildSnapshot(n, n)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, want))
			assert.Equal(t, Size(want), buf.Len())

			got, err := Decode(&buf)
			require.NoError(t, err)

			assert.Equal(t, want.User, got.User)
			assert.Equal(t, want.Settings, got.Settings)
			assert.Equal(t, want.Groups, got.Groups)
			assert.Equal(t, want.Tasks, got.Tasks)
		})
	}
}

func TestRoundTrip_BoundaryText(t *testing.T) {
	want := buildSnapshot(1, 1)
	want.Groups[0].Title = strings.Repeat("t", domain.MaxTextLength)
	want.Groups[0].Description = ""
	want.Tasks[0].Text = strings.Repeat("ü", domain.MaxTextLength/2)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))
	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want.Groups, got.Groups)
	assert.Equal(t, want.Tasks, got.Tasks)
}

func TestEncode_Layout(t *testing.T) {
	s := &domain.Snapshot{
		User:     domain.User{Points: 10},
		Settings: domain.Settings{Multiplier: 7, Threshold: 3},
		Groups:   []domain.Group{{ID: 0, Title: "A", Description: "B"}},
		Tasks:    []domain.Task{{ID: 5, Complete: true, Text: "T"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))
	b := buf.Bytes()

	require.Len(t, b, 1028+16+530+303)
	assert.Equal(t, uint32(10), byteOrder.Uint32(b[1024:]), "points follow achievements")

	header := b[userRecordSize:]
	assert.Equal(t, uint32(1), byteOrder.Uint32(header[0:]), "task count")
	assert.Equal(t, uint32(1), byteOrder.Uint32(header[4:]), "group count")
	assert.Equal(t, uint32(3), byteOrder.Uint32(header[8:]), "threshold first")
	assert.Equal(t, uint32(7), byteOrder.Uint32(header[12:]), "multiplier second")

	group := b[userRecordSize+headerSize:]
	assert.Equal(t, byte('A'), group[4])
	assert.Equal(t, byte(0), group[5])
	assert.Equal(t, make([]byte, 16), group[groupRecordSize-16:groupRecordSize], "link placeholders are zero")

	task := group[groupRecordSize:]
	assert.Equal(t, uint32(5), byteOrder.Uint32(task[0:]))
	assert.Equal(t, uint32(1), byteOrder.Uint32(task[20:]), "complete flag")
	assert.Equal(t, byte('T'), task[32])
}

func TestDecode_IgnoresLinkPlaceholders(t *testing.T) {
	want := buildSnapshot(2, 2)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, want))
	b := buf.Bytes()

	// Fill every link field with garbage, as a raw pointer dump would.
	groupStart := userRecordSize + headerSize
	for i := 0; i < 2; i++ {
		rec := b[groupStart+i*groupRecordSize:]
		copy(rec[groupRecordSize-16:groupRecordSize], bytes.Repeat([]byte{0xAB}, 16))
	}
	taskStart := groupStart + 2*groupRecordSize
	for i := 0; i < 2; i++ {
		rec := b[taskStart+i*taskRecordSize:]
		copy(rec[taskRecordSize-16:taskRecordSize], bytes.Repeat([]byte{0xCD}, 16))
	}

	got, err := Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, want.Groups, got.Groups)
	assert.Equal(t, want.Tasks, got.Tasks)
}

func TestDecode_Malformed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, buildSnapshot(2, 2)))
	valid := buf.Bytes()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated user", valid[:100]},
		{"truncated header", valid[:userRecordSize+4]},
		{"truncated group", valid[:userRecordSize+headerSize+10]},
		{"truncated task", valid[:len(valid)-1]},
		{"trailing data", append(append([]byte{}, valid...), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecode_UnterminatedText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, buildSnapshot(1, 0)))
	b := buf.Bytes()

	title := b[userRecordSize+headerSize+4:]
	copy(title[:domain.TextFieldSize], bytes.Repeat([]byte{'x'}, domain.TextFieldSize))

	_, err := Decode(bytes.NewReader(b))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEncode_RejectsOversizedText(t *testing.T) {
	s := buildSnapshot(0, 1)
	s.Tasks[0].Text = strings.Repeat("x", domain.TextFieldSize)

	err := Encode(&bytes.Buffer{}, s)
	assert.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.dat")
	want := buildSnapshot(3, 5)

	require.NoError(t, WriteFile(path, want))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be renamed away")
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReadFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")
	require.NoError(t, os.WriteFile(path, []byte("not an instance"), 0o600))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeIO))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestWriteFile_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "instance.dat")
	err := WriteFile(path, buildSnapshot(0, 0))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeIO))
}
