package theme

import "github.com/gdamore/tcell/v2"

// Standard DOS 16-color values, for terminals that render truecolor poorly
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSGreen     = tcell.NewHexColor(0x008000)
	DOSBrown     = tcell.NewHexColor(0x808000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSCyan      = tcell.NewHexColor(0x008080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)

	DOSDarkGray   = tcell.NewHexColor(0x808080)
	DOSLightRed   = tcell.NewHexColor(0xFF0000)
	DOSLightGreen = tcell.NewHexColor(0x00FF00)
	DOSYellow     = tcell.NewHexColor(0xFFFF00)
	DOSLightCyan  = tcell.NewHexColor(0x00FFFF)
	DOSWhite      = tcell.NewHexColor(0xFFFFFF)
)

// ClassicTheme is a blue-and-gray scorer's console
type ClassicTheme struct{}

// NewClassicTheme creates a new classic theme instance
func NewClassicTheme() *ClassicTheme {
	return &ClassicTheme{}
}

func (t *ClassicTheme) Name() string {
	return "classic"
}

func (t *ClassicTheme) DefaultColors() DefaultColors {
	return DefaultColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Muted:      DOSDarkGray,
	}
}

func (t *ClassicTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: DOSBlue,
		Foreground: DOSWhite,
		Border:     DOSWhite,
		Title:      DOSWhite,
		ButtonBg:   DOSLightGray,
		ButtonFg:   DOSBlack,
		FieldBg:    tcell.NewHexColor(0x000040), // darker blue
		FieldFg:    DOSWhite,
	}
}

func (t *ClassicTheme) StatusColors() StatusColors {
	return StatusColors{
		Background:  DOSBlue,
		Foreground:  DOSLightGray,
		HighlightFg: DOSWhite,
		ErrorFg:     DOSLightRed,
		PlayingFg:   DOSLightGreen,
		PausedFg:    DOSYellow,
		FinishedFg:  DOSLightCyan,
	}
}

func (t *ClassicTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Border:     DOSLightGray,
		Title:      DOSLightGray,
	}
}

func (t *ClassicTheme) ScoreColors() ScoreColors {
	return ScoreColors{
		Dot:    DOSDarkGray,
		Runs:   DOSLightCyan,
		Four:   DOSLightGreen,
		Six:    DOSLightRed,
		Wicket: DOSYellow,
	}
}

func (t *ClassicTheme) FieldColors() FieldColors {
	return FieldColors{
		Background:  DOSGreen,
		Boundary:    DOSWhite,
		InnerCircle: DOSLightGray,
		Pitch:       DOSBrown,
		Striker:     DOSWhite,
		Text:        DOSWhite,
		Grid:        DOSCyan,
	}
}

func (t *ClassicTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      DOSLightGray,
		TitleColor: DOSLightGray,
		Padding:    0,
	}
}
