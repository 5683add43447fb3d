package state

import "github.com/ytget/snapshot/internal/model"

// Event is an input to State.Apply
type Event interface {
	isEvent()
}

// CategoriesLoaded carries the result of category discovery
type CategoriesLoaded struct {
	Categories []string
	Err        error
}

// CategorySelected starts a token fetch for Category. Seq identifies the fetch.
type CategorySelected struct {
	Category string
	Seq      uint64
}

// TokensLoaded carries the result of the fetch identified by Seq
type TokensLoaded struct {
	Seq    uint64
	Tokens []model.Token
	Err    error
}

// SearchTermChanged updates the search field without filtering
type SearchTermChanged struct {
	Term string
}

// SearchSubmitted marks the start of the search identified by Seq
type SearchSubmitted struct {
	Seq uint64
}

// SearchApplied commits the search identified by Seq
type SearchApplied struct {
	Seq uint64
}

// ImageLoaded records that the logo for Key decoded successfully
type ImageLoaded struct {
	Key string
}

// ImageFailed records that the logo for Key could not be loaded
type ImageFailed struct {
	Key string
}

// HoverEntered makes Key the hovered token
type HoverEntered struct {
	Key string
}

// HoverLeft clears the hovered token if it is still Key
type HoverLeft struct {
	Key string
}

func (CategoriesLoaded) isEvent()  {}
func (CategorySelected) isEvent()  {}
func (TokensLoaded) isEvent()      {}
func (SearchTermChanged) isEvent() {}
func (SearchSubmitted) isEvent()   {}
func (SearchApplied) isEvent()     {}
func (ImageLoaded) isEvent()       {}
func (ImageFailed) isEvent()       {}
func (HoverEntered) isEvent()      {}
func (HoverLeft) isEvent()         {}
