package bot

const (
	msgCommandNotFound  = "Command not found!"
	msgMenuHeader       = "This is your profile"
	msgMenu             = "1. Browse profiles\n2. Fill in your profile again\n3. Change photo/video\n4. Change profile text"
	msgAskAge           = "How old are you?"
	msgAskGender        = "Now let's pick your gender"
	msgGenericError     = "I didn't get that, try again"
	msgAskName          = "What name should we show on your profile?"
	msgAskDescription   = "Tell us a bit about yourself"
	msgAskLocation      = "Where are you from?"
	msgMediaUnsupported = "Photo and video upload is not available here yet"
	msgNoCandidates     = "No new profiles for you yet, come back later"
	msgMatch            = "It's a match!"
	msgLikeSent         = "Like sent"
	msgTransient        = "Something went wrong, please try again later"
)

var menuOptions = []string{"1", "2", "3", "4"}

var genderOptions = []string{"MALE", "FEMALE"}
