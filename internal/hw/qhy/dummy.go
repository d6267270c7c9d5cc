// Package qhy is a stand-in for the QHY camera SDK's single-frame
// capture call. It lets acquisition code run (and be tested) without a
// physical camera attached: descriptors come back as fixed constants,
// the image buffer is filled with a deterministic byte pattern, and
// every argument is logged for diagnostics.
package qhy

import (
	"unsafe"

	"github.com/astrobench/dummyqhy/internal/debug"
)

// Frame geometry reported by the dummy camera. The real SDK reads these
// from the sensor; the dummy always reports the same tiny mono frame.
const (
	FrameWidth        = 8 // pixels
	FrameHeight       = 4 // pixels
	FrameBitsPerPixel = 8
	FrameChannels     = 1 // mono

	// FrameBytes is the buffer capacity a single frame requires.
	FrameBytes = FrameWidth * FrameHeight * FrameChannels * FrameBitsPerPixel / 8
)

// Handle is an opaque device-session token. The dummy never interprets
// it; it is accepted (and logged) only so call sites match the vendor
// SDK signature.
type Handle uintptr

// Status is a vendor-style return code: 0 means success, anything else
// is a failure.
type Status uint32

const (
	// Success means the full pattern and all requested descriptors
	// were written.
	Success Status = 0
	// ErrMissingBuffer means no image buffer was supplied; nothing
	// was written.
	ErrMissingBuffer Status = 1
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case ErrMissingBuffer:
		return "missing image buffer"
	default:
		return "unknown status"
	}
}

// Capturer is the subset of the vendor SDK used by acquisition code.
// It allows swapping the dummy for a real SDK binding (or the other way
// around, in tests) without touching call sites.
type Capturer interface {
	SingleFrameCapture(h Handle, w, ht, bpp, ch *uint32, img []byte) Status
}

// Dummy is the no-hardware Capturer.
type Dummy struct{}

func (Dummy) SingleFrameCapture(h Handle, w, ht, bpp, ch *uint32, img []byte) Status {
	return SingleFrameCapture(h, w, ht, bpp, ch, img)
}

// SingleFrameCapture mimics GetQHYCCDSingleFrame. Each non-nil
// descriptor destination receives its fixed value (width 8, height 4,
// 8 bpp, 1 channel); nil destinations are skipped. A non-nil img gets
// bytes [0, FrameBytes) set to i mod 256 and the call returns Success.
// A nil img returns ErrMissingBuffer without writing anything, the
// descriptors included.
//
// img must have length >= FrameBytes when non-nil. The call never
// writes beyond img[FrameBytes-1].
func SingleFrameCapture(h Handle, w, ht, bpp, ch *uint32, img []byte) Status {
	debug.SDK("SingleFrameCapture", "handle=%#x w=%p h=%p bpp=%p ch=%p img=%#x len=%d",
		uintptr(h), w, ht, bpp, ch, bufferAddress(img), len(img))

	if img == nil {
		debug.Errorf("SingleFrameCapture: image buffer is nil")
		return ErrMissingBuffer
	}

	if w != nil {
		*w = FrameWidth
	}
	if ht != nil {
		*ht = FrameHeight
	}
	if bpp != nil {
		*bpp = FrameBitsPerPixel
	}
	if ch != nil {
		*ch = FrameChannels
	}

	for i := 0; i < FrameBytes; i++ {
		img[i] = byte(i)
	}
	return Success
}

// BufferAddressProbe returns the raw address of the buffer's first
// byte, or 0 for a nil or empty buffer. Diagnostic only: the value is
// logged and returned verbatim, never dereferenced.
func BufferAddressProbe(img []byte) uintptr {
	addr := bufferAddress(img)
	debug.SDK("BufferAddressProbe", "img=%#x", addr)
	return addr
}

// MemLength mimics GetQHYCCDMemLength: the buffer capacity, in bytes,
// a single frame needs. Callers size their buffer from this before
// capturing, the way they would against the real SDK.
func MemLength(h Handle) uint32 {
	debug.SDK("MemLength", "handle=%#x", uintptr(h))
	return FrameBytes
}

func bufferAddress(img []byte) uintptr {
	if len(img) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&img[0]))
}
