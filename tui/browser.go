package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bobmatnyc/memory-client-go/api"
	"github.com/bobmatnyc/memory-client-go/utils"
)

// browser wires the tview components to the fetched records they display.
// All state mutation happens on the tview event loop.
type browser struct {
	app    *tview.Application
	client *api.Client

	searchInput *tview.InputField
	filterInput *tview.InputField
	list        *tview.List
	detail      *tview.TextView

	items []map[string]any // last fetched results
	view  []int            // positions of items currently listed
	idx   index
}

// Browse opens the interactive result browser and blocks until the user
// quits. A non-empty initialQuery is searched right away.
func Browse(client *api.Client, initialQuery string) error {
	b := newBrowser(client)
	if initialQuery != "" {
		b.searchInput.SetText(initialQuery)
		b.search(initialQuery)
	}
	return b.app.SetRoot(b.layout(), true).SetFocus(b.searchInput).Run()
}

func newBrowser(client *api.Client) *browser {
	b := &browser{
		app:    tview.NewApplication(),
		client: client,
	}

	// TUI Component: Search input - submits a unified search to the service
	b.searchInput = tview.NewInputField()
	b.searchInput.SetTitle("Search").SetBorder(true)
	b.searchInput.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			b.search(b.searchInput.GetText())
		case tcell.KeyESC:
			b.app.SetFocus(b.list)
		}
	})

	// TUI Component: Filter input - narrows already fetched results offline
	b.filterInput = tview.NewInputField()
	b.filterInput.SetTitle("Filter (local)").SetBorder(true)
	b.filterInput.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			b.applyFilter(b.filterInput.GetText())
			if b.list.GetItemCount() > 0 {
				b.app.SetFocus(b.list)
			}
		case tcell.KeyESC:
			b.app.SetFocus(b.searchInput)
		}
	})

	// TUI Component: Result list
	b.list = tview.NewList().ShowSecondaryText(true)
	b.list.SetTitle("Results").SetBorder(true)
	b.list.SetSelectedFocusOnly(true)
	b.list.SetChangedFunc(func(position int, mainText, secondaryText string, shortcut rune) {
		b.showDetail(position)
	})
	b.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyESC:
			b.app.SetFocus(b.filterInput)
			return nil
		}

		// Vim-like navigation keys
		switch event.Rune() {
		case 'j':
			if b.list.GetCurrentItem() < b.list.GetItemCount()-1 {
				b.list.SetCurrentItem(b.list.GetCurrentItem() + 1)
			}
			return nil
		case 'k':
			if b.list.GetCurrentItem() > 0 {
				b.list.SetCurrentItem(b.list.GetCurrentItem() - 1)
			}
			return nil
		case '/':
			b.app.SetFocus(b.filterInput)
			return nil
		case 'q':
			b.app.Stop()
			return nil
		}
		return event
	})

	// TUI Component: Detail pane - selected record as indented JSON
	b.detail = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetChangedFunc(func() {
			b.app.Draw()
		})
	b.detail.SetTitle("Detail").SetBorder(true)

	return b
}

func (b *browser) layout() tview.Primitive {
	// TUI Component: Help bar showing available keyboard shortcuts
	help := tview.NewTextView().SetTextAlign(tview.AlignCenter)
	help.SetText("enter: search, esc: cycle focus, j/k: down/up, /: filter loaded results, q: quit")

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
				AddItem(b.searchInput, 3, 1, true).
				AddItem(b.filterInput, 3, 1, false).
				AddItem(b.list, 0, 1, false), 0, 1, true).
			AddItem(b.detail, 0, 2, false), 0, 1, true).
		AddItem(help, 1, 1, false)
}

// search runs a unified search against the service and reloads the list.
// The call runs off the event loop so a slow service cannot freeze input.
func (b *browser) search(query string) {
	b.detail.SetText("Searching...")
	go func() {
		result, err := b.client.Search(context.Background(), query)
		b.app.QueueUpdateDraw(func() {
			if err != nil {
				b.setItems(nil)
				b.detail.SetText(fmt.Sprintf("[red]%v[-]", tview.Escape(err.Error())))
				return
			}

			items := utils.ServiceItems(result)
			if items == nil {
				// Unrecognized response shape, show it raw instead
				b.setItems(nil)
				b.detail.SetText(tview.Escape(utils.FormatJSON(result)))
				return
			}

			b.filterInput.SetText("")
			b.setItems(items)
			if len(items) > 0 {
				b.app.SetFocus(b.list)
			}
		})
	}()
}

// setItems replaces the fetched records and rebuilds the local filter index.
func (b *browser) setItems(items []map[string]any) {
	b.items = items
	docs := make([]string, len(items))
	for i, item := range items {
		docs[i] = searchableText(item)
	}
	b.idx = buildIndex(docs)
	b.showAll()
}

func (b *browser) showAll() {
	b.view = b.view[:0]
	for i := range b.items {
		b.view = append(b.view, i)
	}
	b.reloadList()
}

// applyFilter narrows the list to records matching the filter text. The
// match runs against the already fetched records only, no service call.
func (b *browser) applyFilter(text string) {
	if strings.TrimSpace(text) == "" {
		b.showAll()
		return
	}
	b.view = b.idx.search(text)
	b.reloadList()
}

func (b *browser) reloadList() {
	b.list.Clear()
	for _, i := range b.view {
		item := b.items[i]
		b.list.AddItem(itemTitle(item), itemSubtitle(item), rune(0), nil)
	}
	if b.list.GetItemCount() > 0 {
		b.list.SetCurrentItem(0)
		b.showDetail(0)
	} else {
		b.detail.SetText("No results.")
	}
}

// showDetail renders the record at the given list position as indented JSON.
func (b *browser) showDetail(position int) {
	if position < 0 || position >= len(b.view) {
		return
	}
	b.detail.SetText(tview.Escape(utils.FormatJSON(b.items[b.view[position]])))
	b.detail.ScrollToBeginning()
}

// itemTitle prefers the memory title, then the entity name.
func itemTitle(item map[string]any) string {
	if title := utils.FieldString(item, "title"); title != "" {
		return title
	}
	if name := utils.FieldString(item, "name"); name != "" {
		return name
	}
	return "(untitled)"
}

func itemSubtitle(item map[string]any) string {
	kind := utils.FieldString(item, "memory_type")
	if kind == "" {
		kind = utils.FieldString(item, "entity_type")
	}
	created := utils.FieldString(item, "created_at")
	if created != "" {
		created = utils.FormatTimestamp(created)
	}

	switch {
	case kind != "" && created != "":
		return kind + " - " + created
	case kind != "":
		return kind
	default:
		return created
	}
}

// searchableText is what the filter index sees for one record.
func searchableText(item map[string]any) string {
	parts := make([]string, 0, 4)
	for _, key := range []string{"title", "name", "content", "description"} {
		if v := utils.FieldString(item, key); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
