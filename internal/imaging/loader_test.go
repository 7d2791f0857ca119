package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a solid PNG into dir and returns its path.
func createTestImage(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createTestGIF writes a paletted GIF into dir and returns its path.
func createTestGIF(t *testing.T, dir, name string, img *image.Paletted) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := gif.Encode(f, img, &gif.Options{NumColors: len(img.Palette)}); err != nil {
		t.Fatalf("failed to encode gif: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := createTestImage(t, t.TempDir(), "a.png", 100, 60, color.RGBA{255, 0, 0, 255})

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x60", bounds.Dx(), bounds.Dy())
	}
}

func TestLoad_GIFStaysPaletted(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 8, 8), SheetPalette)
	src.SetColorIndex(3, 4, SheetEmpty)
	path := createTestGIF(t, t.TempDir(), "p.gif", src)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p, ok := img.(*image.Paletted)
	if !ok {
		t.Fatalf("Load returned %T, want *image.Paletted", img)
	}
	if got := p.ColorIndexAt(3, 4); got != SheetEmpty {
		t.Errorf("index at (3,4): got %d, want %d", got, SheetEmpty)
	}

	info := Info(img)
	// GIF colour tables are padded to a power of two.
	if !info.Paletted || info.PaletteSize < len(SheetPalette) {
		t.Errorf("Info: got %+v", info)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if !errors.Is(err, ErrImageOpen) {
		t.Errorf("error should wrap ErrImageOpen: %v", err)
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gif")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should fail for invalid image data")
	}
	if !errors.Is(err, ErrImageOpen) {
		t.Errorf("error should wrap ErrImageOpen: %v", err)
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	createTestImage(t, dir, "b.gif", 4, 4, color.White)
	createTestImage(t, dir, "a.GIF", 4, 4, color.White)
	createTestImage(t, dir, "c.png", 4, 4, color.White)
	if err := os.Mkdir(filepath.Join(dir, "sub.gif"), 0755); err != nil {
		t.Fatal(err)
	}

	for _, ext := range []string{".gif", "gif"} {
		files, err := ListImages(dir, ext)
		if err != nil {
			t.Fatalf("ListImages failed: %v", err)
		}
		want := []string{filepath.Join(dir, "a.GIF"), filepath.Join(dir, "b.gif")}
		if len(files) != len(want) {
			t.Fatalf("ListImages(%q): got %v, want %v", ext, files, want)
		}
		for i := range want {
			if files[i] != want[i] {
				t.Errorf("ListImages(%q)[%d]: got %s, want %s", ext, i, files[i], want[i])
			}
		}
	}
}

func TestListImages_MissingDir(t *testing.T) {
	if _, err := ListImages("/nonexistent/input", ".gif"); err == nil {
		t.Error("ListImages should fail for a missing directory")
	}
}

func TestInfo_RGBA(t *testing.T) {
	info := Info(image.NewRGBA(image.Rect(0, 0, 30, 20)))
	if info.Width != 30 || info.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 30x20", info.Width, info.Height)
	}
	if info.Paletted || info.PaletteSize != 0 {
		t.Errorf("RGBA image reported as paletted: %+v", info)
	}
}
