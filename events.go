package pagemix

// Lifecycle event names in the default page vocabulary.
const (
	EventLoad            = "onLoad"
	EventReady           = "onReady"
	EventShow            = "onShow"
	EventHide            = "onHide"
	EventUnload          = "onUnload"
	EventPullDownRefresh = "onPullDownRefresh"
	EventReachBottom     = "onReachBottom"
	EventShareAppMessage = "onShareAppMessage"
)

// Hook names for the fixed load sequence. These are page-level slots, not
// lifecycle events: they never fan out and mixin contributions under these
// names have no effect (see Merge).
const (
	EventBeforeLoad = "onBeforeLoad"
	EventAfterLoad  = "onAfterLoad"
)

// Lifecycle event names in the app vocabulary.
const (
	EventLaunch       = "onLaunch"
	EventError        = "onError"
	EventPageNotFound = "onPageNotFound"
)

// EventSet is an ordered vocabulary of lifecycle event names recognized by
// the merge engine. The first entry is the vocabulary's load event: the
// name handled by the fixed load sequence and excluded from generic
// fan-out.
//
// Vocabularies are injected into MergeWith rather than read from globals,
// so hosts with a different event vocabulary substitute their own EventSet
// without code changes.
type EventSet []string

// PageEvents is the default vocabulary for page configurations.
var PageEvents = EventSet{
	EventLoad,
	EventReady,
	EventShow,
	EventHide,
	EventUnload,
	EventPullDownRefresh,
	EventReachBottom,
	EventShareAppMessage,
}

// AppEvents is the vocabulary for app-level configurations. onLaunch is the
// vocabulary's load event.
var AppEvents = EventSet{
	EventLaunch,
	EventShow,
	EventHide,
	EventError,
	EventPageNotFound,
}

// Contains reports whether name is a recognized event in the vocabulary.
func (s EventSet) Contains(name string) bool {
	for _, e := range s {
		if e == name {
			return true
		}
	}
	return false
}

// LoadEvent returns the vocabulary's load event name, or "" for an empty
// vocabulary.
func (s EventSet) LoadEvent() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
