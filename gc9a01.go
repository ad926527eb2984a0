// Package gc9a01 controls a GC9A01 240x240 round TFT LCD via SPI.
//
// The GC9A01 takes commands and pixel data over a 4-wire serial interface:
// chip select, a data/command line, an optional reset line and the SPI data
// lines themselves. Pixels are sent in one of three MCU interface formats
// (12, 16 or 18 bits per pixel); see package pixfmt for the bit layouts.
package gc9a01

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/KalinD/gc9a01/image24bit"
	"github.com/KalinD/gc9a01/pixfmt"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Panel geometry in pixels.
const (
	Width  = 240
	Height = 240
)

var (
	// ErrInvalidRegion is returned when a window or area does not fit the panel.
	ErrInvalidRegion = errors.New("gc9a01: invalid region")
	// ErrShortBuffer is returned when a source image holds fewer pixels than
	// the target area.
	ErrShortBuffer = fmt.Errorf("gc9a01: %w", pixfmt.ErrShortBuffer)
	// ErrOutOfRange is returned when a register value does not fit its field.
	ErrOutOfRange = errors.New("gc9a01: value out of range")
	// ErrHalted is returned by every operation after Halt.
	ErrHalted = errors.New("gc9a01: halted")
)

// Opts is the configuration for the GC9A01 display.
type Opts struct {
	// Pixel format of the MCU interface (default: pixfmt.Bpp12)
	Format pixfmt.Format
	// Channel order of source images (default: pixfmt.RGB)
	Order pixfmt.ChannelOrder
	// Register table replayed by Initialize (default: VendorSequence)
	Sequence Sequence

	// Optional chip select and reset pins, used by NewSPI only.
	// Leave CS nil when the SPI controller drives chip select.
	CS  gpio.PinOut
	RST gpio.PinOut

	// Clock used for power-up and reset delays (default: real clock)
	Clock clockwork.Clock
	// Logger receives debug and trace events (default: disabled)
	Logger *zerolog.Logger
}

// Window is an inclusive rectangle of panel memory targeted by writes.
type Window struct {
	X0, Y0, X1, Y1 uint16
}

// Dev is the device handle for the GC9A01 display.
//
// Dev is not safe for concurrent use. Every method runs to completion on the
// caller's goroutine; the only blocking points are the transport and the
// clock's Sleep.
type Dev struct {
	// Communication
	t     Transport
	clock clockwork.Clock
	log   zerolog.Logger

	// Pixel pipeline, fixed for the life of the session
	packer pixfmt.Packer
	format pixfmt.Format
	order  pixfmt.ChannelOrder
	seq    Sequence

	// Display state
	rect      image.Rectangle
	madctl    byte
	window    Window
	hasWindow bool
	fb        *image24bit.RGB // lazily allocated for SetPixel/Display

	halted bool
}

// New returns a Dev that talks to the panel through t.
//
// New does not touch the panel. Call Initialize (after Reset, when a reset
// line is wired) before drawing.
//
// opts can be nil to use defaults (12 bpp, RGB, vendor sequence).
func New(t Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, errors.New("gc9a01: transport is required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	format := opts.Format
	if format == 0 {
		format = pixfmt.Bpp12
	}
	packer, err := pixfmt.NewPacker(format, opts.Order)
	if err != nil {
		return nil, fmt.Errorf("gc9a01: %w", err)
	}
	if opts.Sequence != VendorSequence && opts.Sequence != AdafruitSequence {
		return nil, fmt.Errorf("gc9a01: unknown init sequence %v", opts.Sequence)
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("device", "gc9a01").Logger()
	}

	return &Dev{
		t:      t,
		clock:  clock,
		log:    logger,
		packer: packer,
		format: format,
		order:  opts.Order,
		seq:    opts.Sequence,
		rect:   image.Rect(0, 0, Width, Height),
		madctl: MADCTLMX,
	}, nil
}

// NewSPI creates a new GC9A01 device connected via SPI and initializes it.
//
// The SPI port is configured for 40MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided. When opts.RST
// is set the panel is hardware reset before the init sequence.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("gc9a01: dc pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("gc9a01: failed to connect SPI: %w", err)
	}

	d, err := New(NewPeriphTransport(c, dc, opts.CS, opts.RST), opts)
	if err != nil {
		return nil, err
	}
	if opts.RST != nil {
		if err := d.Reset(); err != nil {
			return nil, err
		}
	}
	if err := d.Initialize(); err != nil {
		return nil, err
	}
	return d, nil
}

// Initialize replays the power-up register table and turns the display on.
//
// With the default options the bytes sent match the vendor table exactly;
// the pixel format entry follows Opts.Format.
func (d *Dev) Initialize() error {
	if d.halted {
		return ErrHalted
	}
	cmds, err := d.seq.commands(d.format, d.madctl)
	if err != nil {
		return err
	}
	d.log.Debug().
		Stringer("sequence", d.seq).
		Stringer("format", d.format).
		Int("commands", len(cmds)).
		Msg("initializing panel")
	d.hasWindow = false
	if err := d.replay(cmds); err != nil {
		return err
	}
	d.log.Debug().Msg("panel initialized")
	return nil
}

// Reset pulses the hardware reset line and waits for the controller to
// come back up. It is a no-op on transports without a reset line.
func (d *Dev) Reset() error {
	if d.halted {
		return ErrHalted
	}
	d.log.Debug().Msg("hardware reset")
	if err := d.t.SetReset(true); err != nil {
		return fmt.Errorf("gc9a01: failed to assert reset: %w", err)
	}
	d.clock.Sleep(resetDelay)
	if err := d.t.SetReset(false); err != nil {
		return fmt.Errorf("gc9a01: failed to release reset: %w", err)
	}
	d.hasWindow = false
	return nil
}

// send runs one command/data transaction.
func (d *Dev) send(cmd byte, params []byte) error {
	d.log.Trace().Hex("cmd", []byte{cmd}).Int("params", len(params)).Msg("write cycle")
	return writeCycle(d.t, cmd, params)
}

// SendCommand sends a raw command with its parameters.
func (d *Dev) SendCommand(cmd byte, params ...byte) error {
	return d.command(cmd, params...)
}

// be16 encodes each value as a big-endian 16 bit pair.
func be16(vals ...int) []byte {
	b := make([]byte, 0, 2*len(vals))
	for _, v := range vals {
		b = binary.BigEndian.AppendUint16(b, uint16(v))
	}
	return b
}

func checkWindow(x0, y0, x1, y1 int) error {
	if x0 < 0 || y0 < 0 || x1 < x0 || y1 < y0 || x1 >= Width || y1 >= Height {
		return fmt.Errorf("%w: window (%d,%d)-(%d,%d)", ErrInvalidRegion, x0, y0, x1, y1)
	}
	return nil
}

func checkArea(x0, y0, w, h int) error {
	if x0 < 0 || y0 < 0 || x0 >= Width || y0 >= Height ||
		w <= 0 || h <= 0 || w > Width-x0 || h > Height-y0 {
		return fmt.Errorf("%w: area %dx%d at (%d,%d)", ErrInvalidRegion, w, h, x0, y0)
	}
	return nil
}

// SetAddressWindow selects the inclusive panel region that the next memory
// write fills.
func (d *Dev) SetAddressWindow(x0, y0, x1, y1 int) error {
	if d.halted {
		return ErrHalted
	}
	if err := checkWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.setWindow(x0, y0, x1, y1)
}

func (d *Dev) setWindow(x0, y0, x1, y1 int) error {
	if err := d.send(cmdColumnAddr, be16(x0, x1)); err != nil {
		return err
	}
	if err := d.send(cmdRowAddr, be16(y0, y1)); err != nil {
		return err
	}
	d.window = Window{X0: uint16(x0), Y0: uint16(y0), X1: uint16(x1), Y1: uint16(y1)}
	d.hasWindow = true
	return nil
}

// Window returns the last address window sent to the panel. ok is false
// until a window has been set, and again after Reset or Initialize.
func (d *Dev) Window() (w Window, ok bool) {
	return d.window, d.hasWindow
}

// WriteImage packs w*h pixels from src and writes them to the area with its
// top-left corner at (x0, y0).
//
// src holds interleaved 8-bit triples in the session's channel order, row
// by row. At 12 bpp the pixel count must be even.
func (d *Dev) WriteImage(src []byte, x0, y0, w, h int) error {
	if d.halted {
		return ErrHalted
	}
	if err := checkArea(x0, y0, w, h); err != nil {
		return err
	}
	return d.writeArea(src, x0, y0, w, h, w*h)
}

// writeArea packs n pixels from src into the w by h area at (x0, y0). n may
// exceed w*h by the padding that the controller wraps onto the window start.
func (d *Dev) writeArea(src []byte, x0, y0, w, h, n int) error {
	size, err := pixfmt.PackedSize(n, d.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, err)
	}
	if need := n * pixfmt.BytesPerSourcePixel; len(src) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(src), need)
	}

	packed := make([]byte, size)
	if _, err := pixfmt.PackInto(packed, src, n, d.packer); err != nil {
		return fmt.Errorf("gc9a01: %w", err)
	}
	if err := d.setWindow(x0, y0, x0+w-1, y0+h-1); err != nil {
		return err
	}
	return d.send(cmdMemoryWrite, packed)
}

// FillArea paints a w by h area with its top-left corner at (x0, y0) in a
// single color.
func (d *Dev) FillArea(r, g, b uint8, x0, y0, w, h int) error {
	if d.halted {
		return ErrHalted
	}
	if err := checkArea(x0, y0, w, h); err != nil {
		return err
	}

	n := w * h
	per := d.packer.SourcePixels()
	if rem := n % per; rem != 0 {
		// The controller wraps the extra pixel back to the window start,
		// which already holds the same color.
		n += per - rem
	}

	size, err := pixfmt.PackedSize(n, d.format)
	if err != nil {
		return fmt.Errorf("gc9a01: %w", err)
	}

	src := make([]byte, d.packer.SourceBytes())
	for i := 0; i < len(src); i += pixfmt.BytesPerSourcePixel {
		d.putSource(src[i:], r, g, b)
	}
	// Every output chunk is produced by the packer from the one-chunk pattern.
	payload := make([]byte, size)
	for out := 0; out < size; {
		_, produced := d.packer.Pack(payload[out:], src)
		out += produced
	}

	if err := d.setWindow(x0, y0, x0+w-1, y0+h-1); err != nil {
		return err
	}
	return d.send(cmdMemoryWrite, payload)
}

// FillScreen paints the whole panel in a single color.
func (d *Dev) FillScreen(r, g, b uint8) error {
	return d.FillArea(r, g, b, 0, 0, Width, Height)
}

// putSource writes one source pixel in the session's channel order.
func (d *Dev) putSource(dst []byte, r, g, b uint8) {
	if d.order == pixfmt.BGR {
		dst[0], dst[1], dst[2] = b, g, r
		return
	}
	dst[0], dst[1], dst[2] = r, g, b
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws src onto the display area dst, aligning sp with dst.Min.
//
// At 12 bpp an area with an odd number of pixels gets one extra copy of its
// first pixel, which the controller wraps back onto the window start. The
// window itself never grows past dst.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	// Clip to display bounds
	sp = sp.Add(dst.Intersect(d.rect).Min.Sub(dst.Min))
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: source already in the session's layout at full size
	if img, ok := src.(*image24bit.RGB); ok && img.Order == d.order {
		if dst == d.rect && sp == (image.Point{}) && img.Rect == d.rect {
			return d.WriteImage(img.Pix, 0, 0, Width, Height)
		}
	}

	img := image24bit.NewRGB(image.Rect(0, 0, dst.Dx(), dst.Dy()), d.order)
	draw.Draw(img, img.Rect, src, sp, draw.Src)

	n := dst.Dx() * dst.Dy()
	pix := img.Pix
	if rem := n % d.packer.SourcePixels(); rem != 0 {
		first := img.Pix[:pixfmt.BytesPerSourcePixel]
		for i := rem; i < d.packer.SourcePixels(); i++ {
			pix = append(pix, first...)
			n++
		}
	}
	return d.writeArea(pix, dst.Min.X, dst.Min.Y, dst.Dx(), dst.Dy(), n)
}

// Halt turns the display off.
// After calling Halt, every other method returns ErrHalted.
func (d *Dev) Halt() error {
	d.halted = true
	d.log.Debug().Msg("halting")
	return d.send(cmdDisplayOff, nil)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("gc9a01.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
