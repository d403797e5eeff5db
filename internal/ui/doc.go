package ui

// Package ui contains the chrome of the demo application: a compact theme
// and the event monitor that renders bridged widget events as they arrive on
// their channels.
