package model

// Package model defines domain data structures used across the app: token
// records as published by the token lists, their stable keys, and the status
// enums for list loading and logo loading.
