package gpu

import (
	"fmt"

	"go.uber.org/zap"

	"glsb/handle"
)

// Texture owns one native texture object. Every operation binds the texture
// for its own duration, so callers never manage texture bindings for setup.
//
// Pixel data is always RGBA with one unsigned byte per channel.
type Texture struct {
	ctx  *Context
	slot *TextureSlot
	obj  *handle.Unique[uint32]

	useMipmap bool
	width     int
	height    int
}

// NewTexture allocates a native texture object for target.
func NewTexture(ctx *Context, target TextureTarget) (*Texture, error) {
	slot := ctx.TextureSlot(target)
	f := ctx.Functions()

	id := f.GenTexture()
	if id == 0 {
		return nil, fmt.Errorf("creating %s texture: %w", target, ErrResourceCreation)
	}
	Logger().Debug("texture created", zap.Stringer("target", target), zap.Uint32("id", id))

	return &Texture{
		ctx:  ctx,
		slot: slot,
		obj: handle.New(id, func(id uint32) {
			slot.Forget(id)
			f.DeleteTexture(id)
			Logger().Debug("texture deleted", zap.Stringer("target", target), zap.Uint32("id", id))
		}),
	}, nil
}

// ID returns the native texture name.
func (t *Texture) ID() uint32 {
	return t.obj.Get()
}

// Target returns the binding point of the texture.
func (t *Texture) Target() TextureTarget {
	return t.slot.Target()
}

// Allocated reports whether storage has been allocated.
func (t *Texture) Allocated() bool {
	return t.width > 0 && t.height > 0
}

// Size returns the dimensions of the allocated storage.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// UsesMipmap reports whether Allocate generates mipmaps.
func (t *Texture) UsesMipmap() bool {
	return t.useMipmap
}

// Bind binds the texture until Unbind, e.g. for the duration of draw calls.
func (t *Texture) Bind() {
	mustLive(t.obj, "binding texture")
	t.slot.Bind(t.ID())
}

// Unbind unbinds the texture if it is the one bound to its target.
func (t *Texture) Unbind() {
	if t.slot.IsBound(t.ID()) {
		t.slot.Unbind()
	}
}

// SetFiltering sets the minification and magnification filters. useMipmap
// selects mipmap sampling for minification and makes Allocate generate
// mipmaps; magnification never samples mipmaps. Trilinear filtering always
// uses mipmaps.
func (t *Texture) SetFiltering(filter Filter, useMipmap bool) {
	mustLive(t.obj, "setting texture filtering")
	t.useMipmap = useMipmap || filter == Trilinear

	sc := t.slot.Scoped(t.ID())
	defer sc.Release()

	f := t.ctx.Functions()
	target := Enum(t.Target())
	f.TexParameteri(target, TEXTURE_MIN_FILTER, filterParam(filter, t.useMipmap))
	f.TexParameteri(target, TEXTURE_MAG_FILTER, filterParam(filter, false))
}

// SetWrapping sets the same wrap mode for both texture axes.
func (t *Texture) SetWrapping(mode Wrapping) {
	mustLive(t.obj, "setting texture wrapping")
	sc := t.slot.Scoped(t.ID())
	defer sc.Release()

	f := t.ctx.Functions()
	target := Enum(t.Target())
	f.TexParameteri(target, TEXTURE_WRAP_S, int32(mode))
	f.TexParameteri(target, TEXTURE_WRAP_T, int32(mode))
}

// SetAnisotropy sets the maximum anisotropy used for sampling. Callers check
// for the anisotropic filtering extension first.
func (t *Texture) SetAnisotropy(level float32) {
	mustLive(t.obj, "setting texture anisotropy")
	sc := t.slot.Scoped(t.ID())
	defer sc.Release()

	t.ctx.Functions().TexParameterf(Enum(t.Target()), TEXTURE_MAX_ANISOTROPY, level)
}

// Allocate replaces the storage of the texture with width*height RGBA
// pixels. pixels must hold exactly width*height*4 bytes, or be nil to leave
// the content undefined. Mipmaps are generated if filtering asked for them.
func (t *Texture) Allocate(width, height int, pixels []byte) error {
	if !t.obj.Valid() {
		return fmt.Errorf("allocating %s texture: %w", t.Target(), ErrReleased)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("allocating %dx%d texture: %w", width, height, ErrInvalidDimensions)
	}
	if pixels != nil && len(pixels) != width*height*4 {
		return fmt.Errorf("allocating %dx%d texture from %d bytes: %w",
			width, height, len(pixels), ErrPixelDataSize)
	}

	sc := t.slot.Scoped(t.ID())
	defer sc.Release()

	f := t.ctx.Functions()
	target := Enum(t.Target())
	f.TexImage2D(target, 0, RGBA, width, height, RGBA, UNSIGNED_BYTE, pixels)
	if t.useMipmap {
		f.GenerateMipmap(target)
	}

	t.width, t.height = width, height
	return nil
}

// Release deletes the native texture. It is safe to call more than once.
func (t *Texture) Release() {
	t.obj.Release()
	t.width, t.height = 0, 0
}

func filterParam(filter Filter, useMipmap bool) int32 {
	switch filter {
	case Nearest:
		if useMipmap {
			return NEAREST_MIPMAP_NEAREST
		}
		return NEAREST
	case Linear:
		if useMipmap {
			return LINEAR_MIPMAP_NEAREST
		}
		return LINEAR
	case Trilinear:
		if useMipmap {
			return LINEAR_MIPMAP_LINEAR
		}
		return LINEAR
	}
	panic(fmt.Sprintf("gpu: unknown texture filter %d", filter))
}
