package model

// LoadStatus represents the state of the loading indicator
type LoadStatus string

const (
	// LoadStatusIdle means nothing is pending
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means a token fetch or a submitted search is pending
	LoadStatusLoading LoadStatus = "Loading"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsLoading returns true if skeletons should be shown instead of tokens
func (ls LoadStatus) IsLoading() bool {
	return ls == LoadStatusLoading
}

// ImageStatus represents the state of a token logo
type ImageStatus string

const (
	// ImageStatusPending means the logo has not finished loading
	ImageStatusPending ImageStatus = "Pending"

	// ImageStatusLoaded means the logo decoded successfully
	ImageStatusLoaded ImageStatus = "Loaded"

	// ImageStatusFailed means the logo could not be loaded and the placeholder is shown
	ImageStatusFailed ImageStatus = "Failed"
)

// String returns the string representation of ImageStatus
func (is ImageStatus) String() string {
	return string(is)
}

// IsSettled returns true once the skeleton behind a logo can be dropped.
// A failed logo counts as settled.
func (is ImageStatus) IsSettled() bool {
	return is == ImageStatusLoaded || is == ImageStatusFailed
}
