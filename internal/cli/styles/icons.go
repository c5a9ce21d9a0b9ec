package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconCursor  = "\uf054" // chevron-right
	IconClock   = "\uf017" // clock

	// Keyboard states
	IconKeyboard = "\uf11c" // keyboard
	IconExpand   = "\uf065" // expand (full-screen)
	IconCollapse = "\uf066" // compress (windowed)
	IconHidden   = "\uf070" // eye-slash
	IconHeight   = "\uf07d" // arrows-v
	IconTouch    = "\uf0a7" // hand-o-down
)
