package components

// Navigator moves the host page to a section. Implementations leave game mode.
type Navigator interface {
	Navigate(sectionID string)
}
