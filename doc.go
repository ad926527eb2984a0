// Package gc9a01 controls a GC9A01 240x240 round TFT LCD via SPI.
//
// The GC9A01 is a 262K-color TFT controller driving round 1.28" panels. This
// driver implements the display.Drawer interface from periph.io and the
// drivers.Displayer interface from TinyGo.
//
// # Display Characteristics
//
// - 240×240 pixels, one fixed resolution
// - 12, 16 or 18 bits per pixel over the MCU interface
// - RGB or BGR source channel order
// - Hardware vertical scrolling and partial mode
// - Display inversion, idle mode and brightness control
// - Tearing effect output for frame-synchronized updates
//
// # Hardware Connection
//
// Connect the GC9A01 module to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO passed as Opts.CS
//	RST         → Optional: GPIO for hardware reset
//	BL          → 3.3V or a PWM pin
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"github.com/KalinD/gc9a01"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device; the panel is initialized and switched on
//		dev, _ := gc9a01.NewSPI(spiBus, dcPin, nil)
//		defer dev.Halt()
//
//		// Paint the whole screen teal
//		dev.FillScreen(0x00, 0x80, 0x80)
//
//		// Paint a 40×40 red square in the middle
//		dev.FillArea(0xFF, 0x00, 0x00, 100, 100, 40, 40)
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your module has its reset (RST) pin connected to a GPIO, provide it in
// the Opts struct:
//
//	rstPin := gpioreg.ByName("GPIO27")
//
//	dev, _ := gc9a01.NewSPI(spiBus, dcPin, &gc9a01.Opts{
//		RST: rstPin, // Optional reset pin
//	})
//
// The driver holds RST low, waits 120ms and releases it before replaying the
// init sequence. If RST is nil the driver relies on power-on reset and the
// software reset at the start of the init sequence.
//
// # Pixel Formats
//
// Source pixels are always 24-bit triples (see package image24bit). The
// driver packs them into the wire format selected by Opts.Format:
//
//	gc9a01.Opts{Format: pixfmt.Bpp12} // 3 bytes per 2 pixels (default)
//	gc9a01.Opts{Format: pixfmt.Bpp16} // 2 bytes per pixel
//	gc9a01.Opts{Format: pixfmt.Bpp18} // 3 bytes per pixel
//
// At 12bpp every write must cover an even number of pixels. WriteImage
// rejects odd areas; FillArea and Draw send one extra pixel, which the
// controller wraps back onto the start of the window.
//
// # Drawing
//
// Raw source buffers go straight to the panel:
//
//	img := image24bit.NewRGB(image.Rect(0, 0, 240, 240), pixfmt.RGB)
//	// ... fill img ...
//	dev.WriteImage(img.Pix, 0, 0, 240, 240)
//
// Any image.Image can be drawn with Draw, which clips to the panel:
//
//	dev.Draw(image.Rect(20, 20, 120, 120), photo, image.Point{})
//
// # TinyGo
//
// On microcontrollers build a transport from a drivers.SPI bus and pins:
//
//	t := gc9a01.NewTinyGoTransport(machine.SPI0, dc, cs, rst)
//	dev, _ := gc9a01.New(t, nil)
//	dev.Reset()
//	dev.Initialize()
//
// Dev then works as a drivers.Displayer, so tinyfont can render
// into its buffer; Display sends the buffer.
//
// # Init Sequences
//
// Two power-up tables ship with the driver: VendorSequence, the panel
// vendor's table, and AdafruitSequence, the shorter table used by the
// Adafruit library. Both set the pixel format and orientation from Opts.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see the
// GC9A01A datasheet from Galaxycore.
package gc9a01
