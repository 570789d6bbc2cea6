package lyrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsSynced(t *testing.T) {
	tc := []struct {
		name string
		text string
		want bool
	}{
		{name: "minutes and seconds", text: "[01:02] line", want: true},
		{name: "centiseconds", text: "[00:01.00] Hello", want: true},
		{name: "milliseconds", text: "[00:01.000] Hello", want: true},
		{name: "timestamp deep in text", text: "plain\nplain\n[03:04.50] late", want: true},
		{name: "plain text", text: "Hello\nWorld", want: false},
		{name: "metadata only", text: "[ar:Artist]\n[ti:Title]", want: false},
		{name: "single digit minutes", text: "[1:02] line", want: false},
		{name: "one fractional digit", text: "[00:01.0] line", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSynced(tt.text); got != tt.want {
				t.Errorf("IsSynced(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if got := NewContent(tt.text).Synced; got != tt.want {
				t.Errorf("NewContent(%q).Synced = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsFileSynced(t *testing.T) {
	dir := t.TempDir()

	t.Run("synced file", func(t *testing.T) {
		path := filepath.Join(dir, "synced.lrc")
		os.WriteFile(path, []byte("[ar:A]\n[00:01.00] Hello"), 0644)
		if !IsFileSynced(path) {
			t.Error("expected synced file")
		}
	})

	t.Run("plain file", func(t *testing.T) {
		path := filepath.Join(dir, "plain.lrc")
		os.WriteFile(path, []byte("Hello\nWorld"), 0644)
		if IsFileSynced(path) {
			t.Error("expected unsynced file")
		}
	})

	t.Run("timestamp past prefix is not seen", func(t *testing.T) {
		path := filepath.Join(dir, "late.lrc")
		body := strings.Repeat("あ", PrefixScanLength) + "\n[00:01.00] late"
		os.WriteFile(path, []byte(body), 0644)

		if IsFileSynced(path) {
			t.Error("expected prefix scan to stop before the timestamp")
		}
		if !IsSynced(body) {
			t.Error("expected full scan to find the timestamp")
		}
	})

	t.Run("missing file counts as unsynced", func(t *testing.T) {
		if IsFileSynced(filepath.Join(dir, "missing.lrc")) {
			t.Error("expected missing file to be unsynced")
		}
	})
}

func TestParseLine(t *testing.T) {
	tc := []struct {
		line      string
		kind      LineKind
		timestamp string
		text      string
	}{
		{line: "", kind: LineBlank},
		{line: "   \t", kind: LineBlank},
		{line: "[00:05.00] こんにちは", kind: LineTimed, timestamp: "[00:05.00]", text: "こんにちは"},
		{line: "[00:05.00]", kind: LineTimed, timestamp: "[00:05.00]", text: ""},
		{line: "[00:05.00]   ", kind: LineTimed, timestamp: "[00:05.00]", text: ""},
		{line: "[00:05]text", kind: LineTimed, timestamp: "[00:05]", text: "text"},
		{line: "[lang:ja]", kind: LineMeta, text: "[lang:ja]"},
		{line: "[ar: Someone]", kind: LineMeta, text: "[ar: Someone]"},
		{line: "  plain words  ", kind: LineText, text: "plain words"},
		{line: "[chorus]", kind: LineText, text: "[chorus]"},
	}

	for _, tt := range tc {
		t.Run(tt.line, func(t *testing.T) {
			got := ParseLine(tt.line)
			if got.Kind != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, got.Kind)
			}
			if got.Timestamp != tt.timestamp {
				t.Errorf("expected timestamp %q, got %q", tt.timestamp, got.Timestamp)
			}
			if got.Text != tt.text {
				t.Errorf("expected text %q, got %q", tt.text, got.Text)
			}
			if Classify(tt.line) != tt.kind {
				t.Errorf("Classify disagrees with ParseLine for %q", tt.line)
			}
		})
	}
}

func TestScriptDetection(t *testing.T) {
	tc := []struct {
		text     string
		korean   bool
		japanese bool
	}{
		{text: "hello", korean: false, japanese: false},
		{text: "사랑해", korean: true, japanese: false},
		{text: "こんにちは", korean: false, japanese: true},
		{text: "カタカナ", korean: false, japanese: true},
		{text: "漢字", korean: false, japanese: true},
		{text: "사랑 こころ", korean: true, japanese: true},
	}

	for _, tt := range tc {
		t.Run(tt.text, func(t *testing.T) {
			if got := ContainsKorean(tt.text); got != tt.korean {
				t.Errorf("ContainsKorean = %v, want %v", got, tt.korean)
			}
			if got := ContainsJapanese(tt.text); got != tt.japanese {
				t.Errorf("ContainsJapanese = %v, want %v", got, tt.japanese)
			}
			if got := ContainsCJK(tt.text); got != (tt.korean || tt.japanese) {
				t.Errorf("ContainsCJK = %v, want %v", got, tt.korean || tt.japanese)
			}
		})
	}
}

func TestReadLyricFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("strips byte order mark", func(t *testing.T) {
		path := filepath.Join(dir, "bom.lrc")
		os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, []byte("[00:01.00] hi")...), 0644)

		got, err := ReadLyricFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "[00:01.00] hi" {
			t.Errorf("expected BOM to be stripped, got %q", got)
		}
	})

	t.Run("decodes GBK", func(t *testing.T) {
		path := filepath.Join(dir, "gbk.lrc")
		// "[00:01.00] 你好" in GBK
		data := append([]byte("[00:01.00] "), 0xC4, 0xE3, 0xBA, 0xC3)
		os.WriteFile(path, data, 0644)

		got, err := ReadLyricFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "[00:01.00] 你好" {
			t.Errorf("expected GBK to decode, got %q", got)
		}
	})

	t.Run("WriteLyricFile round trip", func(t *testing.T) {
		path := filepath.Join(dir, "out.lrc")
		if err := WriteLyricFile(path, "[00:01.00] Hello"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got, _ := ReadLyricFile(path)
		if got != "[00:01.00] Hello" {
			t.Errorf("unexpected content %q", got)
		}
	})

	t.Run("WriteLyricFile into missing directory fails", func(t *testing.T) {
		if err := WriteLyricFile(filepath.Join(dir, "nope", "x.lrc"), "x"); err == nil {
			t.Error("expected error")
		}
	})
}
