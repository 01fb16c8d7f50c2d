// Package catalog holds the static Quran reference data: the surah list and
// the verse texts in Arabic, English and Russian.
package catalog

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kerbaras/quran/pkg/data"
)

// ErrInvalidAsset is returned when a catalog file is missing or malformed.
var ErrInvalidAsset = errors.New("invalid catalog asset")

const (
	SurahsFile = "surahs.json"
	SurahCount = 114
)

// TextFile is the verse text file for a language.
func TextFile(lang data.Language) string {
	return "quran-" + string(lang) + ".txt"
}

// Catalog is the fully loaded reference data. It is read-only after Load.
type Catalog struct {
	surahs   []data.Surah
	byNumber map[int]data.Surah
	// texts[lang][surah] holds the verse lines of a surah in order.
	texts    map[data.Language]map[int][]string
	checksum string
}

// Default loads the catalog bundled with the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(bundled, "assets")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir loads a catalog laid out like the bundled one from a directory.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads surahs.json and the quran-<lang>.txt files from fsys. The
// Arabic text is required and every surah it carries must be complete.
// Translations are optional and may stop short, missing lines read as "".
func Load(fsys fs.FS) (*Catalog, error) {
	sum := sha256.New()

	raw, err := fs.ReadFile(fsys, SurahsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidAsset, SurahsFile, err)
	}
	sum.Write(raw)

	var surahs []data.Surah
	if err := json.Unmarshal(raw, &surahs); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidAsset, SurahsFile, err)
	}

	c := &Catalog{
		byNumber: make(map[int]data.Surah, len(surahs)),
		texts:    make(map[data.Language]map[int][]string),
	}
	for _, s := range surahs {
		if s.Number < 1 || s.Number > SurahCount {
			return nil, fmt.Errorf("%w: surah number %d out of range", ErrInvalidAsset, s.Number)
		}
		if _, dup := c.byNumber[s.Number]; dup {
			return nil, fmt.Errorf("%w: duplicate surah %d", ErrInvalidAsset, s.Number)
		}
		if s.NumberOfAyahs < 1 {
			return nil, fmt.Errorf("%w: surah %d has no verses", ErrInvalidAsset, s.Number)
		}
		c.byNumber[s.Number] = s
	}
	sort.Slice(surahs, func(i, j int) bool { return surahs[i].Number < surahs[j].Number })
	c.surahs = surahs

	for _, lang := range []data.Language{data.Arabic, data.English, data.Russian} {
		name := TextFile(lang)
		raw, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) && lang != data.Arabic {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidAsset, name, err)
		}
		sum.Write(raw)

		texts, err := c.parseText(name, raw)
		if err != nil {
			return nil, err
		}
		if lang == data.Arabic {
			if err := c.checkComplete(name, texts); err != nil {
				return nil, err
			}
		}
		c.texts[lang] = texts
	}

	c.checksum = hex.EncodeToString(sum.Sum(nil))
	return c, nil
}

// parseText reads "surah|ayah|text" lines. Blank lines and lines starting
// with # are skipped. Verse numbers of a surah must run 1, 2, 3, ...
func (c *Catalog) parseText(name string, raw []byte) (map[int][]string, error) {
	texts := make(map[int][]string)

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %s:%d: expected surah|ayah|text", ErrInvalidAsset, name, lineNo)
		}
		surah, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: bad surah number %q", ErrInvalidAsset, name, lineNo, parts[0])
		}
		ayah, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: bad ayah number %q", ErrInvalidAsset, name, lineNo, parts[1])
		}

		s, ok := c.byNumber[surah]
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: unknown surah %d", ErrInvalidAsset, name, lineNo, surah)
		}
		if want := len(texts[surah]) + 1; ayah != want {
			return nil, fmt.Errorf("%w: %s:%d: surah %d expects ayah %d, got %d", ErrInvalidAsset, name, lineNo, surah, want, ayah)
		}
		if ayah > s.NumberOfAyahs {
			return nil, fmt.Errorf("%w: %s:%d: surah %d has only %d ayahs", ErrInvalidAsset, name, lineNo, surah, s.NumberOfAyahs)
		}
		texts[surah] = append(texts[surah], strings.TrimSpace(parts[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAsset, name, err)
	}
	return texts, nil
}

// checkComplete rejects a surah whose text stops short of its ayah count. A
// surah may be left out entirely, it then reads as not indexed.
func (c *Catalog) checkComplete(name string, texts map[int][]string) error {
	for _, s := range c.surahs {
		lines, ok := texts[s.Number]
		if ok && len(lines) != s.NumberOfAyahs {
			return fmt.Errorf("%w: %s: surah %d has %d of %d ayahs", ErrInvalidAsset, name, s.Number, len(lines), s.NumberOfAyahs)
		}
	}
	return nil
}

// Surahs returns every surah ordered by number.
func (c *Catalog) Surahs() []data.Surah {
	out := make([]data.Surah, len(c.surahs))
	copy(out, c.surahs)
	return out
}

func (c *Catalog) Surah(number int) (data.Surah, bool) {
	s, ok := c.byNumber[number]
	return s, ok
}

// Arabic returns the Arabic verse lines of a surah, nil when the catalog
// carries no text for it.
func (c *Catalog) Arabic(surah int) []string {
	return c.texts[data.Arabic][surah]
}

// Translation returns the verse at index i (0-based) of a surah in lang, or
// "" when the translation has no such line.
func (c *Catalog) Translation(lang data.Language, surah, i int) string {
	lines := c.texts[lang][surah]
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// VerseCount is the number of Arabic verse lines in the catalog, which is
// the number of ayah rows a complete seed produces.
func (c *Catalog) VerseCount() int {
	n := 0
	for _, lines := range c.texts[data.Arabic] {
		n += len(lines)
	}
	return n
}

// Checksum identifies the catalog content.
func (c *Catalog) Checksum() string {
	return c.checksum
}

// FilterSurahs returns the surahs matching q: a case-insensitive substring of
// the English or Russian name, a substring of the number, or a substring of
// the Arabic name. An empty q matches everything.
func (c *Catalog) FilterSurahs(q string) []data.Surah {
	q = strings.TrimSpace(q)
	if q == "" {
		return c.Surahs()
	}
	lower := strings.ToLower(q)

	var out []data.Surah
	for _, s := range c.surahs {
		if strings.Contains(strings.ToLower(s.EnglishName), lower) ||
			strings.Contains(strconv.Itoa(s.Number), q) ||
			strings.Contains(strings.ToLower(s.RussianName), lower) ||
			strings.Contains(s.Name, q) {
			out = append(out, s)
		}
	}
	return out
}
