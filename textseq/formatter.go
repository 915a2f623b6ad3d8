package textseq

import (
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/seqs"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleFormatter outputs a text sequence to a console with a fixed width
// font, breaking lines at element boundaries. Element widths are measured
// in fixed-width “en”s, respecting East Asian width rules (UAX#11).
type ConsoleFormatter struct {
	LineWidth int            // target line length in ens
	Context   *uax11.Context // East Asian width context, nil for heuristics
	col       *color.Color
}

// NewConsoleFormatter creates a formatter for consoles with a fixed width
// font. If col is nil, a default color is used. The line width is read from
// the current terminal's properties (if stdout is interactive).
func NewConsoleFormatter(col *color.Color) *ConsoleFormatter {
	if col == nil {
		col = color.New(color.FgBlue)
	}
	return &ConsoleFormatter{
		LineWidth: widthFromTerminal(),
		Context:   uax11.ContextFromEnvironment(),
		col:       col,
	}
}

// Print outputs the elements of a text sequence to w, coloring each element
// and breaking lines whenever the next element would overshoot the line.
// Elements wider than a whole line are put on a line of their own.
func (fw *ConsoleFormatter) Print(s seqs.Seq[string], w io.Writer) error {
	if w == nil {
		return seqs.ErrIllegalArguments
	}
	context := fw.Context
	if context == nil {
		context = uax11.LatinContext
	}
	var outerr error
	spaceleft := fw.LineWidth
	linestart := true
	s.Each(func(frag string) bool {
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		if fraglen >= spaceleft && !linestart {
			if _, err := w.Write([]byte{'\n'}); err != nil {
				outerr = err
				return false
			}
			spaceleft = fw.LineWidth
		}
		if _, err := fw.col.Fprint(w, frag); err != nil {
			outerr = err
			return false
		}
		spaceleft -= fraglen
		linestart = false
		return true
	})
	if outerr != nil {
		return outerr
	}
	if !linestart {
		_, outerr = w.Write([]byte{'\n'})
	}
	return outerr
}

// widthFromTerminal checks wether stdout is a terminal, and if so it reads
// the terminal's width, leaving some room for margins.
func widthFromTerminal() int {
	width := 65
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			switch {
			case w > 65:
				width = w - 10
			case w > 30:
				width = w - 5
			case w > 10:
				width = w
			default:
				width = 10
			}
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", width)
	return width
}
