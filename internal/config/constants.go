package config

import "time"

// Base application details
const AppName = "tidehx"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tidehx.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editing defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultMaxHistory = 100
const DefaultSearchTimeoutMs = 250
const SystemClipboard = true

// ReloadDebounce is the quiet period before a changed config file is re-read.
const ReloadDebounce = 200 * time.Millisecond
