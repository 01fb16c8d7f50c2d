package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/quran/pkg/data"
)

const bookCSS = `body { font-family: serif; }
h1 { text-align: center; }
p.meta { text-align: center; color: #71717a; }
p.bismillah { text-align: center; font-size: 1.6em; margin: 1.5em 0; }
p.ayah { text-align: right; font-size: 1.4em; line-height: 2.2; margin-bottom: 0.2em; }
p.translation { border-left: 3px solid #1999b3; padding-left: 0.6em; margin-bottom: 1.4em; }
span.number { color: #1999b3; font-size: 0.8em; }
`

type EPubBuilder struct {
	outputDir string
	lang      data.Language
	cover     CoverOptions
}

func NewEPubBuilder(outputDir string, lang data.Language) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir, lang: lang, cover: DefaultCoverOptions()}
}

// BookTitle names a book holding the given surahs.
func BookTitle(surahs []SurahExport) string {
	switch len(surahs) {
	case 0:
		return "The Noble Quran"
	case 1:
		return "Surah " + surahs[0].Surah.EnglishName
	}
	nums := make([]int, len(surahs))
	for i, s := range surahs {
		nums[i] = s.Surah.Number
	}
	sort.Ints(nums)
	return fmt.Sprintf("The Noble Quran, Surahs %d-%d", nums[0], nums[len(nums)-1])
}

// CreateEPub compiles the surahs into a single EPub file in the output
// directory. Surahs without verses are skipped.
func (p *EPubBuilder) CreateEPub(title string, surahs []SurahExport) (string, error) {
	sorted := make([]SurahExport, 0, len(surahs))
	for _, s := range surahs {
		if len(s.Verses) > 0 {
			sorted = append(sorted, s)
		}
	}
	if len(sorted) == 0 {
		return "", fmt.Errorf("no verses to compile")
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Surah.Number < sorted[j].Surah.Number })

	if title == "" {
		title = BookTitle(sorted)
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// go-epub reads images and CSS from disk while writing, so the assets
	// live in a scratch directory until Write returns.
	scratch, err := os.MkdirTemp("", "quran-epub-*")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("The Noble Quran")
	e.SetLang(string(p.lang))
	e.SetDescription(describe(sorted))

	cssPath := filepath.Join(scratch, "book.css")
	if err := os.WriteFile(cssPath, []byte(bookCSS), 0644); err != nil {
		return "", err
	}
	css, err := e.AddCSS(cssPath, "book.css")
	if err != nil {
		return "", fmt.Errorf("failed to add stylesheet: %w", err)
	}

	if err := p.addCover(e, scratch, title, sorted, css); err != nil {
		return "", err
	}

	for _, s := range sorted {
		if _, err := e.AddSection(p.surahHTML(s), s.Surah.DisplayName(p.lang), "", css); err != nil {
			return "", fmt.Errorf("failed to add surah %d: %w", s.Surah.Number, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}
	return outputPath, nil
}

func (p *EPubBuilder) addCover(e *epub.Epub, scratch, title string, surahs []SurahExport, css string) error {
	var subtitle []string
	for _, s := range surahs {
		subtitle = append(subtitle, fmt.Sprintf("%d. %s", s.Surah.Number, s.Surah.EnglishName))
	}
	img, err := RenderCover(title, subtitle, p.cover)
	if err != nil {
		return err
	}

	coverPath := filepath.Join(scratch, "cover.png")
	if err := os.WriteFile(coverPath, img, 0644); err != nil {
		return err
	}
	internal, err := e.AddImage(coverPath, "cover.png")
	if err != nil {
		return fmt.Errorf("failed to add cover: %w", err)
	}

	body := fmt.Sprintf(`<div class="cover"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>`,
		internal, html.EscapeString(title))
	if _, err := e.AddSection(body, "Cover", "cover.xhtml", css); err != nil {
		return fmt.Errorf("failed to add cover section: %w", err)
	}
	return nil
}

func (p *EPubBuilder) surahHTML(s SurahExport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(s.Surah.DisplayName(p.lang)))
	fmt.Fprintf(&b, `<p class="meta"><span lang="ar" dir="rtl">%s</span> · %s · %s</p>`+"\n",
		html.EscapeString(s.Surah.Name),
		html.EscapeString(s.Surah.Meaning(p.lang)),
		html.EscapeString(s.Surah.RevelationType))

	if data.HasBismillah(s.Surah.Number) {
		fmt.Fprintf(&b, `<p class="bismillah" lang="ar" dir="rtl">%s</p>`+"\n", data.Bismillah)
	}

	for _, v := range s.Verses {
		fmt.Fprintf(&b, `<p class="ayah" lang="ar" dir="rtl">%s <span class="number">(%d)</span></p>`+"\n",
			html.EscapeString(v.Text), v.NumberInSurah)
		if v.Translation != "" {
			fmt.Fprintf(&b, `<p class="translation">%s</p>`+"\n", html.EscapeString(v.Translation))
		}
	}
	return b.String()
}

func describe(surahs []SurahExport) string {
	names := make([]string, len(surahs))
	for i, s := range surahs {
		names[i] = fmt.Sprintf("%d. %s (%s)", s.Surah.Number, s.Surah.EnglishName, s.Surah.Name)
	}
	return strings.Join(names, ", ")
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "quran"
	}
	return result
}
