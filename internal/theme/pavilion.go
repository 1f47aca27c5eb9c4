package theme

import "github.com/gdamore/tcell/v2"

// Slate palette of the desktop replay window
var (
	Slate900   = tcell.NewHexColor(0x0f172a)
	Slate800   = tcell.NewHexColor(0x1e293b)
	Slate400   = tcell.NewHexColor(0x94a3b8)
	Periwinkle = tcell.NewHexColor(0xcbd5f5)
	Blue600    = tcell.NewHexColor(0x2563eb)
	Blue700    = tcell.NewHexColor(0x1d4ed8)
	Sky400     = tcell.NewHexColor(0x38bdf8)
	Green500   = tcell.NewHexColor(0x22c55e)
	Red500     = tcell.NewHexColor(0xef4444)
	Amber700   = tcell.NewHexColor(0xa16207)
	Amber400   = tcell.NewHexColor(0xfbbf24)
	White      = tcell.NewHexColor(0xffffff)
)

// PavilionTheme is the default dark slate theme
type PavilionTheme struct{}

// NewPavilionTheme creates a new pavilion theme instance
func NewPavilionTheme() *PavilionTheme {
	return &PavilionTheme{}
}

func (t *PavilionTheme) Name() string {
	return "pavilion"
}

func (t *PavilionTheme) DefaultColors() DefaultColors {
	return DefaultColors{
		Background: Slate900,
		Foreground: White,
		Muted:      Periwinkle,
	}
}

func (t *PavilionTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: Slate800,
		Foreground: White,
		Border:     Slate400,
		Title:      White,
		ButtonBg:   Blue600,
		ButtonFg:   White,
		FieldBg:    Slate900,
		FieldFg:    White,
	}
}

func (t *PavilionTheme) StatusColors() StatusColors {
	return StatusColors{
		Background:  Blue700,
		Foreground:  Periwinkle,
		HighlightFg: White,
		ErrorFg:     Red500,
		PlayingFg:   Green500,
		PausedFg:    Amber400,
		FinishedFg:  Sky400,
	}
}

func (t *PavilionTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: Slate900,
		Foreground: White,
		Border:     Slate400,
		Title:      White,
	}
}

func (t *PavilionTheme) ScoreColors() ScoreColors {
	return ScoreColors{
		Dot:    Slate400,
		Runs:   Sky400,
		Four:   Green500,
		Six:    Red500,
		Wicket: Amber400,
	}
}

func (t *PavilionTheme) FieldColors() FieldColors {
	return FieldColors{
		Background:  Slate900,
		Boundary:    White,
		InnerCircle: Slate400,
		Pitch:       Amber700,
		Striker:     White,
		Text:        White,
		Grid:        Slate800,
	}
}

func (t *PavilionTheme) BorderStyle() BorderStyle {
	return BorderStyle{
		Color:      Slate400,
		TitleColor: White,
		Padding:    0,
	}
}
