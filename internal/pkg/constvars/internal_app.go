package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "OGEC_SVC_"
)

// Roles recognized by the upstream OGEC backend. The set is closed: a user
// record always carries exactly one of these.
const (
	OgecRoleDirector         = "director"
	OgecRoleEducateur        = "educateur"
	OgecRoleChefGroupe       = "chef_groupe"
	OgecRoleInfirmier        = "infirmier"
	OgecRoleAnimateurGeneral = "animateur_general"
	OgecRoleEconomat         = "economat"
	OgecRolePostman          = "postman"
	OgecRoleNormal           = "normal"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBanned   = "banned"
)

const (
	LanguageEnglish = "en"
	LanguageFrench  = "fr"
	LanguageArabic  = "ar"

	DirectionLTR = "ltr"
	DirectionRTL = "rtl"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var SupportedLanguages = []string{LanguageEnglish, LanguageFrench, LanguageArabic}

var SupportedThemes = []string{ThemeLight, ThemeDark}

// Client-side route paths the gateway reasons about. DashboardPath is the
// post-login landing route, LoginPath the forced-logout target.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

const (
	SessionKeyPrefix = "ogec:session:"
)
