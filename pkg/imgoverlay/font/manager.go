package font

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Manager はフォントの管理を行います
// 最初に読み込めたフォントフェースを全階級で共有します
type Manager struct {
	set    *TierSet
	otFont *opentype.Font
	faces  map[Tier]font.Face
	source string
	mu     sync.RWMutex
}

// NewManager は新しいフォントマネージャーを作成します
func NewManager(set *TierSet) *Manager {
	return &Manager{
		set:   set,
		faces: make(map[Tier]font.Face),
	}
}

// RegisterFonts はフォントを登録します
// 既に読み込み済みのフォントがある場合、以降の登録はスキップされます
func (m *Manager) RegisterFonts(fonts ...FontSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, src := range fonts {
		if m.otFont != nil {
			log.Printf("Font already loaded from %s, skipping registration", m.source)
			return nil
		}

		var data []byte
		var origin string
		var err error

		if src.Data != nil {
			data = src.Data
			origin = "memory"
		} else if src.Path != "" {
			data, err = os.ReadFile(src.Path)
			if err != nil {
				return fmt.Errorf("failed to read font file %s: %w", src.Path, err)
			}
			origin = src.Path
		} else {
			return fmt.Errorf("no font data or path provided")
		}

		otFont, err := opentype.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse font from %s: %w", origin, err)
		}

		m.otFont = otFont
		m.source = origin
		log.Printf("Font loaded successfully from %s (%d bytes)", origin, len(data))
	}

	return nil
}

// LoadSearchPaths は検索パス上の最初に使えるフォントを読み込みます
// 1つも読み込めなかった場合は false を返します（エラーにはなりません）
func (m *Manager) LoadSearchPaths(paths []string) bool {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := m.RegisterFonts(FontSource{Path: path}); err != nil {
			log.Printf("Warning: skipping font %s: %v", path, err)
			continue
		}
		return true
	}
	return false
}

// ScanSystemFonts はシステムフォントディレクトリをスキャンし、
// 最初に読み込めたフォントを採用します
func (m *Manager) ScanSystemFonts() error {
	dirs := systemFontDirs()

	log.Printf("Scanning system fonts from paths: %v", dirs)

	for _, dir := range dirs {
		found := ""
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" {
				return nil
			}
			found = path
			return filepath.SkipAll
		})
		if err != nil {
			// 警告として記録するが、処理は続行
			log.Printf("Warning: failed to scan directory %s: %v", dir, err)
			continue
		}
		if found == "" {
			continue
		}
		if err := m.RegisterFonts(FontSource{Path: found}); err != nil {
			log.Printf("Warning: skipping font %s: %v", found, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("no usable font found in system directories")
}

// Face は階級に対応するフォントフェースを返します
// スケーラブルフォントが無い場合は basicfont にフォールバックします
func (m *Manager) Face(t Tier) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[t]; ok {
		return face, nil
	}

	size, ok := m.set.Size(t)
	if !ok {
		return nil, fmt.Errorf("unknown font tier: %q", t)
	}

	if m.otFont == nil {
		log.Printf("No scalable font loaded, using basicfont fallback for tier %q", t)
		m.faces[t] = basicfont.Face7x13
		return basicfont.Face7x13, nil
	}

	// ポイントサイズ＝ピクセルサイズとなるよう DPI 72 で作成
	face, err := opentype.NewFace(m.otFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face for tier %q: %w", t, err)
	}

	m.faces[t] = face
	return face, nil
}

// Measure は階級でのテキストの描画幅（ピクセル）を返します
func (m *Manager) Measure(text string, t Tier) (int, error) {
	face, err := m.Face(t)
	if err != nil {
		return 0, err
	}
	return font.MeasureString(face, text).Ceil(), nil
}

// Fallback はスケーラブルフォントが読み込めず
// basicfont を使用しているかを返します
func (m *Manager) Fallback() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.otFont == nil
}

// Source は採用したフォントの出所を返します（診断用）
func (m *Manager) Source() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}

// TierSet は階級セットを返します
func (m *Manager) TierSet() *TierSet {
	return m.set
}

// ClearCache はフォントフェースのキャッシュをクリアします
func (m *Manager) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otFont = nil
	m.source = ""
	m.faces = make(map[Tier]font.Face)
}

// DefaultSearchPaths は既定のフォント検索パスを返します
func DefaultSearchPaths() []string {
	return []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		filepath.Join(os.Getenv("WINDIR"), "Fonts", "arial.ttf"),
		filepath.Join(os.Getenv("WINDIR"), "Fonts", "calibri.ttf"),
	}
}

// systemFontDirs はプラットフォーム別のフォントディレクトリを返します
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(os.Getenv("HOME"), ".local/share/fonts"),
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(os.Getenv("HOME"), "Library/Fonts"),
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("WINDIR"), "Fonts"),
		}
	default:
		return []string{}
	}
}
