package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	RegisterSuccess       = "registration submitted, your account is awaiting approval"
	SessionResumedSuccess = "session restored successfully"
	PasswordResetSuccess  = "password reset link sent"
	AlreadyAuthenticated  = "already authenticated"

	// Profile messages
	ProfileGetSuccess      = "get profile successfully"
	ProfileUpdateSuccess   = "profile updated successfully"
	PasswordChangedSuccess = "password changed successfully"

	// Preference messages
	LanguageUpdatedSuccess = "language preference updated"
	ThemeUpdatedSuccess    = "theme preference updated"

	// Navigation messages
	NavigationGetSuccess = "get navigation menu successfully"

	// Upload messages
	UploadImageSuccess = "image uploaded successfully"
)
