package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding
	Activity   key.Binding

	// List filters
	CycleKind      key.Binding
	FavoritesOnly  key.Binding
	ToggleFavorite key.Binding
	MarkCooked     key.Binding

	// Sharing
	CopyLink key.Binding
	CopyText key.Binding
	Share    key.Binding
	ShowQR   key.Binding
	Import   key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Activity view
	WarningsOnly key.Binding

	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch list/detail"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to list"),
		),
		Activity: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Activity log"),
		),

		CycleKind: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle kind filter"),
		),
		FavoritesOnly: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Favourites only"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "Toggle favourite"),
		),
		MarkCooked: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Mark cooked"),
		),

		CopyLink: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy share link"),
		),
		CopyText: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy as text"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Share"),
		),
		ShowQR: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "QR code"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Import link"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		WarningsOnly: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Warnings only"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleKind, k.CopyLink, k.Share, k.ShowQR, k.Import, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp, k.Tab, k.Escape},
		{k.CycleKind, k.FavoritesOnly, k.ToggleFavorite, k.MarkCooked},
		{k.CopyLink, k.CopyText, k.Share, k.ShowQR, k.Import},
		{k.Activity, k.WarningsOnly, k.CycleTheme, k.Help, k.Quit},
	}
}
