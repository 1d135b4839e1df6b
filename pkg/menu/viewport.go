package menu

// Screen geometry of the search box. The box border takes one cell on every
// side. The query line sits on row 1, a divider on row 2 and the prompt on
// row 3; items start after a blank row, each followed by one spacing row.
// The last inner row holds the key help.
const (
	// SearchFieldStart is the screen column where query text begins:
	// two cells of border/padding plus the "Search: " label.
	SearchFieldStart = 2 + len(SearchLabel)
	SearchLabel      = "Search: "

	// headerRows is the vertical budget taken before the first item:
	// top border, query, divider, prompt and a blank row.
	headerRows = 5
	// footerRows is the budget taken after the last item: the help row
	// and the bottom border.
	footerRows = 2
	// itemIndent is the column where item text is drawn.
	itemIndent = 6
	// wrapMargin is the horizontal space lost to indentation and border.
	wrapMargin = 11

	DefaultRows = 24
	DefaultCols = 80
)

// Layout is the terminal size the menus lay themselves out against.
type Layout struct {
	Rows int
	Cols int
}

// DefaultLayout is used until the terminal reports its size.
func DefaultLayout() Layout {
	return Layout{Rows: DefaultRows, Cols: DefaultCols}
}

// WrapWidth is the number of columns an item may use before wrapping.
func (l Layout) WrapWidth() int {
	return max(l.Cols-wrapMargin, 1)
}

// MaxVisible is the item-count budget used when stepping the selection
// down: floor((rows-3)/2) scaled by 0.8 so the last partially visible item
// is never cut off. It never drops below one item.
func (l Layout) MaxVisible() int {
	budget := int(float64((l.Rows-3)/2) * 0.80)
	return max(budget, 1)
}

// itemsEnd is the first row items and their spacing rows may not reach.
func (l Layout) itemsEnd() int {
	return l.Rows - footerRows
}

// Window is the slice of items the renderer should draw.
type Window struct {
	Offset int // index of the first drawn item
	Count  int // number of items drawn from Offset
}

// Scroll returns the scroll offset that keeps selected fully on screen.
// If selected is above offset the view jumps straight to it. Otherwise the
// rows of offset..selected are accumulated (wrapped rows plus one spacing
// row each, after the header budget); whenever that overflows before the
// selected item is reached, the offset moves to the overflowing item and
// the accounting restarts.
func Scroll(items []string, selected, offset int, l Layout) int {
	if len(items) == 0 {
		return 0
	}
	if selected >= len(items) {
		selected = len(items) - 1
	}
	if selected < offset {
		offset = selected
	}

	width := l.WrapWidth()
	limit := l.itemsEnd()
	for {
		needed := headerRows
		restarted := false
		for i := offset; i <= selected && i < len(items); i++ {
			h := wrappedHeight(items[i], width)
			needed += h + 1
			if needed > limit && i > offset {
				offset = i
				restarted = true
				break
			}
		}
		if !restarted {
			return offset
		}
	}
}

// VisibleCount reports how many whole items, starting at offset, fit in the
// box before the row budget is exhausted.
func VisibleCount(items []string, offset int, l Layout) int {
	width := l.WrapWidth()
	row := headerRows
	count := 0
	for i := offset; i < len(items); i++ {
		h := wrappedHeight(items[i], width)
		if row+h+1 > l.itemsEnd() {
			break
		}
		row += 1 + h
		count++
	}
	return count
}

// Compute runs Scroll and VisibleCount together. An item taller than the
// whole box is still reported as visible so the selection is never lost;
// the renderer clips it.
func Compute(items []string, selected, offset int, l Layout) Window {
	offset = Scroll(items, selected, offset, l)
	count := VisibleCount(items, offset, l)
	if count == 0 && offset < len(items) {
		count = 1
	}
	return Window{Offset: offset, Count: count}
}
