package keymap

// Binding describes a single key binding for dispatch and documentation.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
}

// All contains all key bindings, in help display order.
var All = []Binding{
	{[]string{" "}, ActionPlayPause, "Play/pause"},
	{[]string{"n"}, ActionNextSong, "Next song"},
	{[]string{"p"}, ActionPrevSong, "Previous song"},
	{[]string{"N", "right"}, ActionNextStream, "Next stream"},
	{[]string{"P", "left"}, ActionPrevStream, "Previous stream"},
	{[]string{"b"}, ActionPrevStreamLiteral, "Previous stream (ignore history)"},
	{[]string{"y"}, ActionToggleYap, "Toggle continuous playback"},
	{[]string{"l"}, ActionCycleLoop, "Cycle loop mode"},
	{[]string{"s"}, ActionToggleShuffle, "Toggle shuffle"},
	{[]string{"?"}, ActionHelp, "Toggle help"},
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit"},
}
