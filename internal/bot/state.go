package bot

import "github.com/google/uuid"

// State gates how a chat's next free-text input is interpreted.
type State int

const (
	// StateStart is the initial state; only commands are understood.
	StateStart State = iota
	// StateProfile marks registration in flight for a captured handle.
	StateProfile
	// StateListOptions awaits a numeric menu choice.
	StateListOptions
	// StateViewProfiles advances to the next candidate on any message.
	StateViewProfiles
	// StateInputAge awaits an integer age.
	StateInputAge
	// StateInputGender awaits a gender choice.
	StateInputGender
	// StateInputDisplayedName through StateInputLocation form the
	// "change profile text" flow behind menu option 4.
	StateInputDisplayedName
	StateInputDescription
	StateInputLocation
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateProfile:
		return "profile"
	case StateListOptions:
		return "list_options"
	case StateViewProfiles:
		return "view_profiles"
	case StateInputAge:
		return "input_age"
	case StateInputGender:
		return "input_gender"
	case StateInputDisplayedName:
		return "input_displayed_name"
	case StateInputDescription:
		return "input_description"
	case StateInputLocation:
		return "input_location"
	default:
		return "unknown"
	}
}

// Session is the per-chat conversation marker. Handle is captured during
// registration; LastShown is the candidate presented most recently, the
// target of a like sent from StateViewProfiles.
type Session struct {
	State     State
	Handle    string
	LastShown uuid.UUID
}
