package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureOptions controls sampling of a loaded texture
type TextureOptions struct {
	WrapS     int32
	WrapT     int32
	MinFilter int32
	MagFilter int32
	// FlipY stores the image bottom row first so that v=0 samples the bottom edge
	FlipY   bool
	Mipmaps bool
}

// DefaultTextureOptions repeats in both directions with linear filtering
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
		FlipY:     true,
		Mipmaps:   true,
	}
}

// ParseWrapMode maps a config name to the GL wrap enum
func ParseWrapMode(name string) (int32, error) {
	switch name {
	case "", "repeat":
		return gl.REPEAT, nil
	case "clamp":
		return gl.CLAMP_TO_EDGE, nil
	case "mirror":
		return gl.MIRRORED_REPEAT, nil
	}
	return 0, fmt.Errorf("unknown wrap mode %q", name)
}

// ParseFilter maps a config name to GL min/mag filters
func ParseFilter(name string, mipmaps bool) (minFilter, magFilter int32, err error) {
	switch name {
	case "", "linear":
		if mipmaps {
			return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR, nil
		}
		return gl.LINEAR, gl.LINEAR, nil
	case "nearest":
		if mipmaps {
			return gl.NEAREST_MIPMAP_NEAREST, gl.NEAREST, nil
		}
		return gl.NEAREST, gl.NEAREST, nil
	}
	return 0, 0, fmt.Errorf("unknown texture filter %q", name)
}

// DecodeImage reads an image file into tightly packed RGBA
func DecodeImage(path string, flipY bool) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if flipY {
		FlipVertical(rgba)
	}
	return rgba, nil
}

// FlipVertical swaps rows in place
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// LoadTexture loads a 2D texture from a file
func LoadTexture(path string, opts TextureOptions) (uint32, int, int, error) {
	rgba, err := DecodeImage(path, opts.FlipY)
	if err != nil {
		return 0, 0, 0, err
	}
	size := rgba.Rect.Size()

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, opts.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, size.X, size.Y, nil
}
