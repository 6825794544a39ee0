package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// intensity keeps scaled channels below 256 so they never round up out of byte range
var intensity = core.NewInterval(0, 0.999999)

// Frame is a row-major buffer of averaged linear colors
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Row returns the slice of pixels belonging to row j
func (f *Frame) Row(j int) []core.Vec3 {
	return f.Pixels[j*f.Width : (j+1)*f.Width]
}

// At returns the linear color of pixel (i, j)
func (f *Frame) At(i, j int) core.Vec3 {
	return f.Pixels[j*f.Width+i]
}

// linearToGamma applies gamma 2 to a linear channel value
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToByte gamma-corrects a linear channel and quantizes it to [0, 255]
func ToByte(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(linearToGamma(linear)))
}

// ToRGBA quantizes the frame into an 8-bit image
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			c := f.At(i, j)
			img.SetRGBA(i, j, color.RGBA{R: ToByte(c.X), G: ToByte(c.Y), B: ToByte(c.Z), A: 255})
		}
	}
	return img
}

// WritePPM encodes the frame as plain-text PPM (P3), one pixel per line starting top-left
func WritePPM(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	for _, c := range f.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", ToByte(c.X), ToByte(c.Y), ToByte(c.Z)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePNG encodes the frame as an 8-bit PNG
func WritePNG(w io.Writer, f *Frame) error {
	return png.Encode(w, f.ToRGBA())
}

// SaveImage writes the frame to path, picking PNG for a .png extension and PPM otherwise.
// The image is written to a temporary file next to path and renamed into place,
// so a failed write never leaves a partial image behind.
func SaveImage(path string, f *Frame) (err error) {
	encode := WritePPM
	if strings.EqualFold(filepath.Ext(path), ".png") {
		encode = WritePNG
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting image permissions: %w", err)
	}
	if err = encode(tmp, f); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming image into %s: %w", path, err)
	}
	return nil
}
