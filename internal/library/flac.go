package library

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/lrcx/internal/models"
	"github.com/desertthunder/lrcx/internal/shared"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// LyricsField is the vorbis comment key lyrics are embedded under.
const LyricsField = "LYRICS"

// EmbeddingSink stores lyric text inside an audio file.
type EmbeddingSink interface {
	EmbedLyrics(path, text string) error
}

// FLACTags reads and writes FLAC vorbis comments.
type FLACTags struct{}

func NewFLACTags() *FLACTags {
	return &FLACTags{}
}

// ReadTrackInfo returns the first ARTIST and TITLE values (keys matched without case) and the
// stream duration in whole seconds, truncated.
func (t *FLACTags) ReadTrackInfo(path string) (models.TrackInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.TrackInfo{}, err
	}
	defer file.Close()

	f, err := flac.ParseMetadata(file)
	if err != nil {
		return models.TrackInfo{}, fmt.Errorf("%w: %s: %v", shared.ErrUnsupportedFile, filepath.Base(path), err)
	}

	var info models.TrackInfo
	if si, err := f.GetStreamInfo(); err == nil && si.SampleRate > 0 {
		info.Duration = int(si.SampleCount / int64(si.SampleRate))
	}

	cmt, _, err := vorbisComment(f)
	if err != nil {
		return models.TrackInfo{}, err
	}
	if cmt != nil {
		info.Artist = firstValue(cmt, flacvorbis.FIELD_ARTIST)
		info.Title = firstValue(cmt, flacvorbis.FIELD_TITLE)
	}
	return info, nil
}

// EmbedLyrics replaces every LYRICS comment with text, keeping all other comments.
// A vorbis comment block is added when the file has none.
func (t *FLACTags) EmbedLyrics(path, text string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f, err := parseFLAC(data)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrUnsupportedFile, filepath.Base(path), err)
	}

	cmt, idx, err := vorbisComment(f)
	if err != nil {
		return err
	}
	if cmt == nil {
		cmt = flacvorbis.New()
	}

	kept := cmt.Comments[:0]
	for _, c := range cmt.Comments {
		if !hasKey(c, LyricsField) {
			kept = append(kept, c)
		}
	}
	cmt.Comments = kept
	if err := cmt.Add(LyricsField, text); err != nil {
		return err
	}

	block := cmt.Marshal()
	if idx < 0 {
		f.Meta = append(f.Meta, &block)
	} else {
		f.Meta[idx] = &block
	}

	return writeAtomic(path, f.Marshal())
}

// parseFLAC reads the metadata blocks with go-flac and keeps the remaining bytes as frames.
// The audio must start with a frame sync code.
func parseFLAC(data []byte) (*flac.File, error) {
	r := bytes.NewReader(data)
	f, err := flac.ParseMetadata(r)
	if err != nil {
		return nil, err
	}

	frames := data[len(data)-r.Len():]
	if len(frames) < 2 || frames[0] != 0xFF || frames[1]>>2 != 0x3E {
		return nil, flac.ErrorNoSyncCode
	}
	f.Frames = flac.FrameData(frames)
	return f, nil
}

// writeAtomic writes data beside path and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil {
		os.Chmod(tmp.Name(), info.Mode().Perm())
	}
	return os.Rename(tmp.Name(), path)
}

func vorbisComment(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int, error) {
	for i, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return nil, -1, fmt.Errorf("%w: vorbis comment: %v", shared.ErrUnsupportedFile, err)
		}
		return cmt, i, nil
	}
	return nil, -1, nil
}

func firstValue(cmt *flacvorbis.MetaDataBlockVorbisComment, key string) string {
	for _, c := range cmt.Comments {
		if hasKey(c, key) {
			return strings.TrimSpace(c[len(key)+1:])
		}
	}
	return ""
}

func hasKey(comment, key string) bool {
	return len(comment) > len(key) && comment[len(key)] == '=' && strings.EqualFold(comment[:len(key)], key)
}
