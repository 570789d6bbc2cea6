// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"encoding/binary"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/desertthunder/lrcx/internal/models"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FakeTags is an in-memory metadata reader and lyrics sink keyed by audio path.
type FakeTags struct {
	mu       sync.Mutex
	Info     map[string]models.TrackInfo
	Lyrics   map[string]string
	ReadErr  map[string]error
	EmbedErr error
}

func NewFakeTags() *FakeTags {
	return &FakeTags{
		Info:    map[string]models.TrackInfo{},
		Lyrics:  map[string]string{},
		ReadErr: map[string]error{},
	}
}

func (f *FakeTags) ReadTrackInfo(path string) (models.TrackInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ReadErr[path]; err != nil {
		return models.TrackInfo{}, err
	}
	return f.Info[path], nil
}

func (f *FakeTags) EmbedLyrics(path, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.EmbedErr != nil {
		return f.EmbedErr
	}
	f.Lyrics[path] = text
	return nil
}

// Embedded returns the lyrics last embedded into path.
func (f *FakeTags) Embedded(path string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.Lyrics[path]
	return v, ok
}

// MinimalFLAC returns a FLAC stream with a STREAMINFO block, a VORBIS_COMMENT block when comments
// is non-nil, and a single frame header in place of audio.
func MinimalFLAC(sampleRate int, totalSamples int64, comments []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("fLaC")

	info := make([]byte, 34)
	binary.BigEndian.PutUint16(info[0:], 4096)
	binary.BigEndian.PutUint16(info[2:], 4096)
	// sample rate (20 bits) | channels-1 (3 bits) | bits per sample-1 (5 bits) | total samples (36 bits)
	packed := uint64(sampleRate)<<44 | uint64(1)<<41 | uint64(15)<<36 | uint64(totalSamples)&0xFFFFFFFFF
	binary.BigEndian.PutUint64(info[10:], packed)

	last := comments == nil
	writeBlockHeader(&buf, 0, len(info), last)
	buf.Write(info)

	if comments != nil {
		var body bytes.Buffer
		vendor := "lrcx test"
		binary.Write(&body, binary.LittleEndian, uint32(len(vendor)))
		body.WriteString(vendor)
		binary.Write(&body, binary.LittleEndian, uint32(len(comments)))
		for _, c := range comments {
			binary.Write(&body, binary.LittleEndian, uint32(len(c)))
			body.WriteString(c)
		}
		writeBlockHeader(&buf, 4, body.Len(), true)
		buf.Write(body.Bytes())
	}

	buf.Write(FLACFrameHeader)
	return buf.Bytes()
}

// FLACFrameHeader starts with the FLAC frame sync code (14 bits of 1 then a zero bit).
var FLACFrameHeader = []byte{0xFF, 0xF8, 0x69, 0x08, 0x00, 0x00, 0x00}

func writeBlockHeader(buf *bytes.Buffer, blockType byte, length int, last bool) {
	h := blockType
	if last {
		h |= 0x80
	}
	buf.WriteByte(h)
	buf.WriteByte(byte(length >> 16))
	buf.WriteByte(byte(length >> 8))
	buf.WriteByte(byte(length))
}

// MustWriteFile writes content to path, creating parent directories.
func MustWriteFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
