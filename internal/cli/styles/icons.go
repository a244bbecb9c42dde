package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconConfig  = "\ue615" // config

	IconSun     = "\uf185" // sun
	IconMoon    = "\uf186" // moon
	IconBattery = "\uf240" // battery full
	IconPlug    = "\uf1e6" // plug
	IconLock    = "\uf023" // lock
	IconDesktop = "\uf108" // desktop
)
