// Package ogimage renders 1200x630 social preview cards for site pages.
package ogimage

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	Width  = 1200
	Height = 630

	maxDescriptionLen = 120
)

// Params select the card content. Zero values fall back to the site defaults.
type Params struct {
	Title       string
	Description string
	Type        string // default, market, whitepaper, invest, legal
}

var accentColors = map[string]string{
	"default":    "#83D6C5",
	"market":     "#60A5FA",
	"whitepaper": "#A78BFA",
	"invest":     "#34D399",
	"legal":      "#6B7280",
}

// Renderer draws preview cards. Construct once; faces are shared across calls.
type Renderer struct {
	titleLarge font.Face
	titleSmall font.Face
	body       font.Face
	small      font.Face
}

// NewRenderer loads the card typeface from fontPath. An empty path or a load
// failure falls back to a built-in bitmap face so rendering always works.
func NewRenderer(fontPath string) (*Renderer, error) {
	r := &Renderer{
		titleLarge: basicfont.Face7x13,
		titleSmall: basicfont.Face7x13,
		body:       basicfont.Face7x13,
		small:      basicfont.Face7x13,
	}
	if fontPath == "" {
		return r, nil
	}

	raw, err := os.ReadFile(fontPath)
	if err != nil {
		return r, fmt.Errorf("read font file: %w", err)
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		return r, fmt.Errorf("parse TTF: %w", err)
	}

	face := func(size float64) font.Face {
		return truetype.NewFace(parsed, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	}
	r.titleLarge = face(64)
	r.titleSmall = face(52)
	r.body = face(28)
	r.small = face(18)
	return r, nil
}

// Render draws the card and returns it PNG-encoded.
func (r *Renderer) Render(p Params) ([]byte, error) {
	if p.Title == "" {
		p.Title = "Headless Markets"
	}
	if p.Description == "" {
		p.Description = "Agents form businesses. Humans invest after."
	}
	accentHex, ok := accentColors[p.Type]
	if !ok {
		accentHex = accentColors["default"]
	}
	accent := parseHex(accentHex)

	dc := gg.NewContext(Width, Height)

	dc.SetColor(color.Black)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	// Soft accent glow in opposing corners.
	dc.SetRGBA255(int(accent.R), int(accent.G), int(accent.B), 20)
	dc.DrawCircle(Width, 0, 520)
	dc.Fill()
	dc.SetRGBA255(int(accent.R), int(accent.G), int(accent.B), 14)
	dc.DrawCircle(0, Height, 440)
	dc.Fill()

	// Logo mark and wordmark.
	dc.SetColor(accent)
	dc.DrawRoundedRectangle(60, 60, 48, 48, 12)
	dc.Fill()
	dc.SetFontFace(r.body)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored("H", 84, 84, 0.5, 0.35)
	dc.SetColor(color.White)
	dc.DrawStringAnchored("Headless Markets", 124, 84, 0, 0.35)

	// Type badge, skipped for the default card.
	if p.Type != "" && p.Type != "default" {
		badge := strings.ToUpper(p.Type)
		if p.Type == "market" {
			badge = "AO MARKET"
		}
		dc.SetFontFace(r.small)
		bw, _ := dc.MeasureString(badge)
		bx := float64(Width) - 60 - bw - 32
		dc.SetRGBA255(int(accent.R), int(accent.G), int(accent.B), 32)
		dc.DrawRoundedRectangle(bx, 66, bw+32, 36, 8)
		dc.Fill()
		dc.SetColor(accent)
		dc.DrawStringAnchored(badge, bx+16+bw/2, 84, 0.5, 0.35)
	}

	// Title shrinks for long page names.
	titleFace := r.titleLarge
	if len(p.Title) > 40 {
		titleFace = r.titleSmall
	}
	dc.SetFontFace(titleFace)
	dc.SetColor(color.White)
	dc.DrawStringWrapped(p.Title, 60, 240, 0, 0, 900, 1.1, gg.AlignLeft)

	desc := p.Description
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen] + "..."
	}
	dc.SetFontFace(r.body)
	dc.SetColor(parseHex("#A0A0A0"))
	dc.DrawStringWrapped(desc, 60, 400, 0, 0, 800, 1.4, gg.AlignLeft)

	// Bottom bar.
	dc.SetColor(parseHex("#262626"))
	dc.DrawRectangle(60, 530, Width-120, 1)
	dc.Fill()
	dc.SetFontFace(r.small)
	if p.Type == "market" {
		dc.SetColor(parseHex("#34D399"))
		dc.DrawCircle(68, 574, 4)
		dc.Fill()
		dc.SetColor(parseHex("#6B7280"))
		dc.DrawStringAnchored("Live on Base", 84, 574, 0, 0.35)
		dc.DrawStringAnchored("Quorum Governed", 240, 574, 0, 0.35)
	} else {
		dc.SetColor(accent)
		dc.DrawStringAnchored("Agents discover agents. Agents form AOs. AOs create markets.", 60, 574, 0, 0.35)
	}
	dc.SetColor(parseHex("#404040"))
	dc.DrawStringAnchored("headlessmarkets.xyz", Width-60, 574, 1, 0.35)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func parseHex(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
