package catalog

import "github.com/muurk/btautolaunch/internal/theme"

// EventKind is the lifecycle event recorded by an audit entry
type EventKind string

const (
	EventStarted   EventKind = "Started"
	EventKilled    EventKind = "Killed"
	EventRecovered EventKind = "Recovered"
	EventLaunched  EventKind = "Launched"
	EventFailed    EventKind = "Failed"
)

// LogEntry is one audit-trail record
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"`
	Event     EventKind `json:"event"`
	Details   string    `json:"details"`
}

// EventStyle is the icon and tone used to render an event kind
type EventStyle struct {
	Icon string
	Tone theme.Tone
}

var eventStyles = map[EventKind]EventStyle{
	EventStarted:   {Icon: "⏻", Tone: theme.ToneInfo},
	EventKilled:    {Icon: "✖", Tone: theme.ToneDestructive},
	EventRecovered: {Icon: "↻", Tone: theme.ToneSuccess},
	EventLaunched:  {Icon: "➚", Tone: theme.ToneHighlight},
	EventFailed:    {Icon: "⚠", Tone: theme.ToneWarning},
}

// StyleFor returns the icon and tone of an event kind. The mapping is closed;
// unknown kinds render as informational.
func StyleFor(kind EventKind) EventStyle {
	if s, ok := eventStyles[kind]; ok {
		return s
	}
	return EventStyle{Icon: "•", Tone: theme.ToneInfo}
}

var auditTrail = []LogEntry{
	{ID: "1", Timestamp: "14:22:01.442", Event: EventStarted, Details: "Foregound Service (BtAutoLaunchListener) initiated."},
	{ID: "2", Timestamp: "14:22:05.122", Event: EventLaunched, Details: "Spotify package intent sent to system."},
	{ID: "3", Timestamp: "14:35:12.889", Event: EventKilled, Details: "LowMemoryKiller (LMK) terminated process (OOM_ADJ: 100)."},
	{ID: "4", Timestamp: "14:35:15.112", Event: EventRecovered, Details: "JobScheduler restarted service as persistent."},
	{ID: "5", Timestamp: "15:01:44.221", Event: EventFailed, Details: "RSSI -98dbm. Aborted auto-launch for network stability."},
}

// EntryList is an EventLog backed by a fixed slice
type EntryList []LogEntry

// Entries implements EventLog
func (l EntryList) Entries() []LogEntry {
	return append([]LogEntry(nil), l...)
}

// StaticLog returns the mock audit trail
func StaticLog() EntryList {
	return EntryList(auditTrail)
}
