package window

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrFontLoad is reported when the HUD font cannot be loaded.
var ErrFontLoad = errors.New("window: failed to load font")

// FatalStartupError aborts startup before a window is created.
type FatalStartupError struct {
	Path string
	Err  error
}

func (e *FatalStartupError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrFontLoad, e.Path, e.Err)
}

// Unwrap exposes both ErrFontLoad and the underlying cause.
func (e *FatalStartupError) Unwrap() []error {
	return []error{ErrFontLoad, e.Err}
}

// LoadFont loads a TrueType font for the HUD. An empty path selects the
// built-in Go Regular face.
func LoadFont(path string) (*text.GoTextFaceSource, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, &FatalStartupError{Path: path, Err: err}
		}
		data = b
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, &FatalStartupError{Path: path, Err: err}
	}
	return source, nil
}
