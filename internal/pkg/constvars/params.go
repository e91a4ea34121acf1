package constvars

const (
	URLParamID = "id"
)

// Upstream resource paths, relative to the backend base URL.
const (
	ResourceUsers             = "users"
	ResourceEnfants           = "enfants"
	ResourceMaladies          = "maladies"
	ResourcePosts             = "posts"
	ResourcePrograms          = "programs"
	ResourceTeams             = "teams"
	ResourcePhases            = "phases"
	ResourceAnachids          = "anachids"
	ResourceCartesTechniques  = "cartes-techniques"
	ResourceHobbies           = "hobbies"
	ResourceTransactions      = "transactions"

	// Account-approval endpoints on the users resource.
	ResourceUsersInactive   = "users/inactive"
	ResourceUserActivateFmt = "users/%d/activate"
)
